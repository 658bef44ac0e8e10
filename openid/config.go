// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-multierror"

	sdkHttp "github.com/hashicorp/cap-steam/sdk/http"
)

// Config represents the relying party configuration for Steam's stateless
// OpenID 2.0 flow.
type Config struct {
	// ReturnURL is where Steam redirects the user after login.  A callback's
	// openid.return_to must start with it. (required)
	ReturnURL string

	// ProviderCA is an optional CA cert PEM to use when sending
	// check_authentication requests.
	ProviderCA string

	// UserAgent is sent with check_authentication requests.  Defaults to
	// DefaultUserAgent.
	UserAgent string

	// VerificationURL is where check_authentication requests are posted.
	// Defaults to Endpoint; set it to route verification through a proxy.
	// It does not change the op_endpoint a callback must carry.
	VerificationURL string
}

// NewConfig composes a new config for the Steam relying party.
// Supported options:
//
//	WithProviderCA
//	WithUserAgent
//	WithVerificationURL
func NewConfig(returnURL string, opt ...Option) (*Config, error) {
	const op = "openid.NewConfig"
	opts := getConfigOpts(opt...)
	c := &Config{
		ReturnURL:       returnURL,
		ProviderCA:      opts.withProviderCA,
		UserAgent:       opts.withUserAgent,
		VerificationURL: opts.withVerificationURL,
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: invalid config: %w", op, err)
	}
	return c, nil
}

// Validate the configuration.  Every problem found is reported and the
// returned error always matches ErrConfiguration.
func (c *Config) Validate() error {
	const op = "openid.(Config).Validate"
	if c == nil {
		return fmt.Errorf("%s: config is nil: %w", op, ErrConfiguration)
	}
	var errs *multierror.Error
	if c.ReturnURL == "" {
		errs = multierror.Append(errs, fmt.Errorf("%s: return URL is empty: %w", op, ErrConfiguration))
	} else if err := validateURL(c.ReturnURL); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("%s: return URL %q: %w", op, c.ReturnURL, err))
	}
	if c.VerificationURL != "" {
		if err := validateURL(c.VerificationURL); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: verification URL %q: %w", op, c.VerificationURL, err))
		}
	}
	return errs.ErrorOrNil()
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", err, ErrConfiguration)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("scheme is not http or https: %w", ErrConfiguration)
	}
	if u.Host == "" {
		return fmt.Errorf("host is empty: %w", ErrConfiguration)
	}
	return nil
}

// HttpClient is a helper function that creates a new http client for
// check_authentication requests, trusting ProviderCA when it's set.
func (c *Config) HttpClient() (*http.Client, error) {
	const op = "openid.(Config).HttpClient"
	client, err := sdkHttp.NewClient(c.ProviderCA)
	if err != nil {
		if errors.Is(err, sdkHttp.ErrInvalidCertificatePem) {
			return nil, fmt.Errorf("%s: could not parse CA PEM value: %w", op, ErrConfiguration)
		}
		return nil, fmt.Errorf("%s: could not get an http client: %w", op, err)
	}
	return client, nil
}

func (c *Config) userAgent() string {
	if c.UserAgent == "" {
		return DefaultUserAgent
	}
	return c.UserAgent
}

func (c *Config) verificationURL() string {
	if c.VerificationURL == "" {
		return Endpoint
	}
	return c.VerificationURL
}

// configOptions is the set of available options for NewConfig
type configOptions struct {
	withProviderCA      string
	withUserAgent       string
	withVerificationURL string
}

func configDefaults() configOptions {
	return configOptions{}
}

// getConfigOpts gets the defaults and applies the opt overrides passed in.
func getConfigOpts(opt ...Option) configOptions {
	opts := configDefaults()
	ApplyOpts(&opts, opt...)
	return opts
}

// WithProviderCA provides an optional CA cert for check_authentication requests
func WithProviderCA(cert string) Option {
	return func(o interface{}) {
		if o, ok := o.(*configOptions); ok {
			o.withProviderCA = cert
		}
	}
}

// WithUserAgent provides an optional User-Agent for check_authentication requests
func WithUserAgent(ua string) Option {
	return func(o interface{}) {
		if o, ok := o.(*configOptions); ok {
			o.withUserAgent = ua
		}
	}
}

// WithVerificationURL provides an optional URL check_authentication requests
// are posted to instead of Endpoint.
func WithVerificationURL(u string) Option {
	return func(o interface{}) {
		if o, ok := o.(*configOptions); ok {
			o.withVerificationURL = u
		}
	}
}
