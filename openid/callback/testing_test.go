// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package callback

import (
	"net/http"

	"github.com/hashicorp/cap-steam/openid"
)

// testSuccessFn is a test SuccessResponseFunc
func testSuccessFn(id openid.SteamID, w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("login successful: " + id.String()))
}

// testFailFn is a test ErrorResponseFunc
func testFailFn(e error, w http.ResponseWriter, _ *http.Request) {
	http.Error(w, e.Error(), http.StatusUnauthorized)
}
