// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/jonboulle/clockwork"
)

// ShouldValidate reports whether params are a positive assertion from the
// provider (openid.mode is id_res).  It says nothing about whether the
// assertion is valid; it only selects between redirecting and validating.
func ShouldValidate(params url.Values) bool {
	return params.Get(Param(paramMode)) == string(ModeIDRes)
}

// Verifier is the Steam relying party.  It builds login URLs and validates
// callbacks without keeping any state between requests, so a single Verifier
// can be shared by concurrent requests.
type Verifier struct {
	config    *Config
	authURL   string
	transport Transport
	clock     clockwork.Clock
	logger    hclog.Logger
}

// NewVerifier creates a Verifier for the config.
//
// Supported options: WithTransport, WithClock, WithLogger
func NewVerifier(c *Config, opt ...Option) (*Verifier, error) {
	const op = "openid.NewVerifier"
	if c == nil {
		return nil, fmt.Errorf("%s: config is nil: %w", op, ErrConfiguration)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: config is invalid: %w", op, err)
	}
	opts := getVerifierOpts(opt...)

	authURL, err := AuthURL(c.ReturnURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	v := &Verifier{
		config:    c,
		authURL:   authURL,
		transport: opts.withTransport,
		clock:     opts.withClock,
		logger:    opts.withLogger,
	}
	if v.transport == nil {
		t, err := NewHTTPTransport(c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		v.transport = t
	}
	return v, nil
}

// Config returns the verifier's config.
func (v *Verifier) Config() *Config { return v.config }

// AuthURL returns the Steam login URL the user should be redirected to.
func (v *Verifier) AuthURL() string { return v.authURL }

// ShouldValidate reports whether params are a positive assertion that should
// be passed to Validate.  See the package level ShouldValidate.
func (v *Verifier) ShouldValidate(params url.Values) bool {
	return ShouldValidate(params)
}

// Validate checks the callback params and, when every local check passes,
// confirms them with the provider.  It returns the verified SteamID.
//
// The checks run in order and the first failure is returned: required
// arguments, op_endpoint, return_to, response_nonce, identity and finally the
// check_authentication round trip.
func (v *Verifier) Validate(ctx context.Context, params url.Values) (SteamID, error) {
	const op = "openid.(Verifier).Validate"
	v.logger.Debug("validating callback")

	args, err := ValidateArguments(params)
	if err != nil {
		return "", err
	}
	if ep := args.Get(paramOPEndpoint); ep != Endpoint {
		return "", newParameterError(op, ErrInvalidEndpoint, Param(paramOPEndpoint), Endpoint, ep)
	}
	if rt := args.Get(paramReturnTo); !strings.HasPrefix(rt, v.config.ReturnURL) {
		return "", newParameterError(op, ErrInvalidReturnTo, Param(paramReturnTo), v.config.ReturnURL, rt)
	}
	if err := ValidateNonce(args.Get(paramResponseNonce), v.clock.Now()); err != nil {
		return "", err
	}
	id, err := ExtractSteamID(args.Get(paramIdentity))
	if err != nil {
		return "", err
	}

	body, err := v.transport.SendVerification(ctx, args.VerificationBody())
	if err != nil {
		return "", fmt.Errorf("%s: check_authentication failed: %w", op, err)
	}
	kv := ParseKeyValues(body)
	v.logger.Debug("verification response", "keys", kv.Keys())
	if err := CheckVerification(kv); err != nil {
		return "", err
	}
	return id, nil
}

// ValidateRequest validates the callback parameters of req's query string.
func (v *Verifier) ValidateRequest(ctx context.Context, req *http.Request) (SteamID, error) {
	const op = "openid.(Verifier).ValidateRequest"
	if req == nil || req.URL == nil {
		return "", fmt.Errorf("%s: request is nil: %w", op, ErrConfiguration)
	}
	return v.Validate(ctx, req.URL.Query())
}

// State is a step of an authentication attempt.
type State int

const (
	StateStart State = iota
	StateAwaitingCallback
	StateValidating
	StateAuthenticated
	StateFailed
)

// String returns the state's name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateAwaitingCallback:
		return "awaiting_callback"
	case StateValidating:
		return "validating"
	case StateAuthenticated:
		return "authenticated"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Attempt is the outcome of Authenticate for a single request.
type Attempt struct {
	// State is StateAwaitingCallback, StateAuthenticated or StateFailed.
	State State

	// RedirectURL is set when State is StateAwaitingCallback.
	RedirectURL string

	// SteamID is set when State is StateAuthenticated.
	SteamID SteamID

	// Err is set when State is StateFailed.
	Err error
}

// Authenticate runs one step of the login flow for req.  A request that isn't
// a provider callback yields StateAwaitingCallback and the URL to redirect the
// user to.  A callback is validated and yields either StateAuthenticated or
// StateFailed; for StateFailed the validation error is also returned.
func (v *Verifier) Authenticate(ctx context.Context, req *http.Request) (*Attempt, error) {
	const op = "openid.(Verifier).Authenticate"
	if req == nil || req.URL == nil {
		err := fmt.Errorf("%s: request is nil: %w", op, ErrConfiguration)
		return &Attempt{State: StateFailed, Err: err}, err
	}
	params := req.URL.Query()
	if !ShouldValidate(params) {
		v.logger.Debug("redirecting to provider", "state", StateAwaitingCallback)
		return &Attempt{State: StateAwaitingCallback, RedirectURL: v.authURL}, nil
	}

	v.logger.Debug("callback received", "state", StateValidating)
	id, err := v.Validate(ctx, params)
	if err != nil {
		v.logger.Warn("authentication failed", "state", StateFailed, "error", err)
		return &Attempt{State: StateFailed, Err: err}, err
	}
	v.logger.Debug("authenticated", "state", StateAuthenticated, "steam_id", id)
	return &Attempt{State: StateAuthenticated, SteamID: id}, nil
}

// verifierOptions is the set of available options for NewVerifier
type verifierOptions struct {
	withTransport Transport
	withClock     clockwork.Clock
	withLogger    hclog.Logger
}

// verifierDefaults is a handy way to get the defaults at runtime and during
// unit tests.
func verifierDefaults() verifierOptions {
	return verifierOptions{
		withClock:  clockwork.NewRealClock(),
		withLogger: hclog.NewNullLogger(),
	}
}

// getVerifierOpts gets the verifier defaults and applies the opt overrides
// passed in
func getVerifierOpts(opt ...Option) verifierOptions {
	opts := verifierDefaults()
	ApplyOpts(&opts, opt...)
	if opts.withClock == nil {
		opts.withClock = clockwork.NewRealClock()
	}
	if opts.withLogger == nil {
		opts.withLogger = hclog.NewNullLogger()
	}
	return opts
}
