// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"fmt"
	"net/url"
)

// AuthURL returns the Steam login URL for a checkid_setup request.  Steam
// redirects the user back to returnURL, which is passed through unmodified,
// and picks the identity itself (identifier_select).
func AuthURL(returnURL string) (string, error) {
	const op = "openid.AuthURL"
	if returnURL == "" {
		return "", fmt.Errorf("%s: return URL is empty: %w", op, ErrConfiguration)
	}
	q := url.Values{}
	q.Set(Param(paramNS), Namespace)
	q.Set(Param(paramMode), string(ModeCheckIDSetup))
	q.Set(Param(paramReturnTo), returnURL)
	q.Set(Param(paramIdentity), IdentifierSelect)
	q.Set(Param(paramClaimedID), IdentifierSelect)
	return Endpoint + "?" + q.Encode(), nil
}
