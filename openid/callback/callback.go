// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package callback

import (
	"fmt"
	"net/http"

	"github.com/hashicorp/cap-steam/openid"
)

// Login creates a handler which redirects the user to the Steam login page.
func Login(v *openid.Verifier) (http.HandlerFunc, error) {
	const op = "callback.Login"
	if v == nil {
		return nil, fmt.Errorf("%s: verifier is nil: %w", op, openid.ErrConfiguration)
	}
	return func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, v.AuthURL(), http.StatusFound)
	}, nil
}

// Callback creates a handler for the provider's redirect back to the
// configured return URL.  The request is validated (including the
// check_authentication round trip, bound to the request's context) and the
// result passed to sFn or eFn.  A request that isn't a positive assertion
// (a cancelled login for instance) is an error.
func Callback(v *openid.Verifier, sFn SuccessResponseFunc, eFn ErrorResponseFunc) (http.HandlerFunc, error) {
	const op = "callback.Callback"
	if err := validateArgs(op, v, sFn, eFn); err != nil {
		return nil, err
	}
	return func(w http.ResponseWriter, req *http.Request) {
		id, err := v.ValidateRequest(req.Context(), req)
		if err != nil {
			eFn(fmt.Errorf("%s: %w", op, err), w, req)
			return
		}
		sFn(id, w, req)
	}, nil
}

// Authenticate creates a single handler for both legs of the flow: requests
// that aren't a provider callback are redirected to Steam, callbacks are
// validated and passed to sFn or eFn.  Mount it at the configured return URL.
func Authenticate(v *openid.Verifier, sFn SuccessResponseFunc, eFn ErrorResponseFunc) (http.HandlerFunc, error) {
	const op = "callback.Authenticate"
	if err := validateArgs(op, v, sFn, eFn); err != nil {
		return nil, err
	}
	return func(w http.ResponseWriter, req *http.Request) {
		attempt, err := v.Authenticate(req.Context(), req)
		switch {
		case err != nil:
			eFn(fmt.Errorf("%s: %w", op, err), w, req)
		case attempt.State == openid.StateAwaitingCallback:
			http.Redirect(w, req, attempt.RedirectURL, http.StatusFound)
		default:
			sFn(attempt.SteamID, w, req)
		}
	}, nil
}

func validateArgs(op string, v *openid.Verifier, sFn SuccessResponseFunc, eFn ErrorResponseFunc) error {
	switch {
	case v == nil:
		return fmt.Errorf("%s: verifier is nil: %w", op, openid.ErrConfiguration)
	case sFn == nil:
		return fmt.Errorf("%s: success response func is nil: %w", op, openid.ErrConfiguration)
	case eFn == nil:
		return fmt.Errorf("%s: error response func is nil: %w", op, openid.ErrConfiguration)
	}
	return nil
}
