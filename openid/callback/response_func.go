// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package callback

import (
	"net/http"

	"github.com/hashicorp/cap-steam/openid"
)

// SuccessResponseFunc is used by Callbacks to create a http response when the
// callback is successful.
//
// The id is the SteamID verified by the provider.  The function should use the
// http.ResponseWriter to send back whatever content (headers, html, JSON,
// etc) it wishes to the client that originated the login, typically after
// establishing a session for id.
type SuccessResponseFunc func(id openid.SteamID, w http.ResponseWriter, req *http.Request)

// ErrorResponseFunc is used by Callbacks to create a http response when the
// callback fails.
//
// The error matches one of the openid package's sentinel errors (use
// errors.Is).  Users should only be shown a generic failure, the error kind is
// meant for logs.
type ErrorResponseFunc func(e error, w http.ResponseWriter, req *http.Request)
