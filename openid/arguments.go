// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"net/url"
)

// Arguments are the validated OpenID callback arguments, keyed by their
// namespaced parameter name (e.g. "openid.identity").
type Arguments map[string]string

// Get returns the value of the un-prefixed field name.
func (a Arguments) Get(name string) string {
	return a[Param(name)]
}

// VerificationBody returns the body of a check_authentication request: every
// argument, with openid.mode replaced by check_authentication.
func (a Arguments) VerificationBody() url.Values {
	body := make(url.Values, len(a))
	for k, v := range a {
		body.Set(k, v)
	}
	body.Set(Param(paramMode), string(ModeCheckAuthentication))
	return body
}

// ValidateArguments reads the required OpenID fields from the callback
// parameters and checks the ones that have fixed values: mode, ns and the
// signed field list.  The returned Arguments contain only the required
// fields.
func ValidateArguments(params url.Values) (Arguments, error) {
	const op = "openid.ValidateArguments"
	args := make(Arguments, len(signedFields)+len(unsignedRequired))

	for _, fields := range [][]string{signedFields, unsignedRequired} {
		for _, f := range fields {
			key := Param(f)
			v := params.Get(key)
			if v == "" {
				return nil, newParameterError(op, ErrMissingParameter, key, "", "")
			}
			args[key] = v
		}
	}

	if mode := args.Get(paramMode); mode != string(ModeIDRes) {
		return nil, newParameterError(op, ErrInvalidMode, Param(paramMode), string(ModeIDRes), mode)
	}
	if ns := args.Get(paramNS); ns != Namespace {
		return nil, newParameterError(op, ErrInvalidNamespace, Param(paramNS), Namespace, ns)
	}
	if signed := args.Get(paramSigned); signed != expectedSigned {
		return nil, newParameterError(op, ErrInvalidSignedFields, Param(paramSigned), expectedSigned, signed)
	}
	return args, nil
}
