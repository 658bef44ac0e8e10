// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"fmt"
	"time"
)

// ValidateNonce checks that the response nonce starts with an RFC3339 UTC
// timestamp (YYYY-MM-DDTHH:MM:SSZ) that is no more than NonceSkew away from
// now, in either direction.
func ValidateNonce(nonce string, now time.Time) error {
	const op = "openid.ValidateNonce"
	key := Param(paramResponseNonce)
	m := nonceRegex.FindStringSubmatch(nonce)
	if m == nil || m[1] == "" {
		return newParameterError(op, ErrInvalidNonceFormat, key, "", nonce)
	}
	issued, err := time.Parse(time.RFC3339, m[1])
	if err != nil {
		return fmt.Errorf("%w: %s", newParameterError(op, ErrInvalidNonceFormat, key, "", nonce), err)
	}
	skew := now.Sub(issued)
	if skew < 0 {
		skew = -skew
	}
	if skew > NonceSkew {
		return newParameterError(op, ErrStaleNonce, key, "", nonce)
	}
	return nil
}
