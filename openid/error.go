// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration         = errors.New("configuration error")
	ErrMissingParameter      = errors.New("missing parameter")
	ErrInvalidMode           = errors.New("invalid mode")
	ErrInvalidNamespace      = errors.New("invalid namespace")
	ErrInvalidSignedFields   = errors.New("invalid signed fields")
	ErrInvalidEndpoint       = errors.New("invalid op_endpoint")
	ErrInvalidReturnTo       = errors.New("invalid return_to")
	ErrInvalidNonceFormat    = errors.New("invalid nonce format")
	ErrStaleNonce            = errors.New("nonce is stale")
	ErrInvalidIdentityFormat = errors.New("invalid identity format")
	ErrNetwork               = errors.New("network error")
	ErrRateLimited           = errors.New("rate limited")
	ErrVerificationTransport = errors.New("verification request failed")
	ErrVerificationRejected  = errors.New("verification rejected")
)

// ParameterError describes a callback parameter that failed validation.  It
// unwraps to one of the package's sentinel errors.
type ParameterError struct {
	// Op is the operation that rejected the parameter.
	Op string

	// Parameter is the namespaced parameter name (e.g. "openid.mode").
	Parameter string

	// Expected is the required value (or prefix), when there is one.
	Expected string

	// Actual is the value received.
	Actual string

	Err error
}

func newParameterError(op string, err error, param, expected, actual string) *ParameterError {
	return &ParameterError{
		Op:        op,
		Parameter: param,
		Expected:  expected,
		Actual:    actual,
		Err:       err,
	}
}

// Error satisfies the error interface.
func (e *ParameterError) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "%q", e.Parameter)
	switch {
	case e.Expected != "":
		fmt.Fprintf(&b, ": expected %q, got %q", e.Expected, e.Actual)
	case e.Actual != "":
		fmt.Fprintf(&b, ": got %q", e.Actual)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the sentinel error.
func (e *ParameterError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StatusError is returned when the provider answers a check_authentication
// request with a non-2xx status.  It unwraps to ErrRateLimited for 403 and
// 429 and to ErrVerificationTransport otherwise.
type StatusError struct {
	Op         string
	StatusCode int
	Err        error
}

// Error satisfies the error interface.
func (e *StatusError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: provider responded with HTTP %d: %s", e.Op, e.StatusCode, e.Err)
}

// Unwrap returns the sentinel error.
func (e *StatusError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
