// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"fmt"
	"strconv"
)

// SteamID is a verified 64-bit Steam account identifier in its decimal form
// (e.g. "76561198000000000").
type SteamID string

// String returns the decimal SteamID.
func (id SteamID) String() string { return string(id) }

// Uint64 returns the numeric SteamID.
func (id SteamID) Uint64() (uint64, error) {
	const op = "openid.(SteamID).Uint64"
	n, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// ExtractSteamID returns the SteamID embedded in a Steam identity URL of the
// form https://steamcommunity.com/openid/id/<steamid>/ (the trailing slash is
// optional).
func ExtractSteamID(identity string) (SteamID, error) {
	const op = "openid.ExtractSteamID"
	m := identityRegex.FindStringSubmatch(identity)
	if m == nil || m[1] == "" {
		return "", newParameterError(op, ErrInvalidIdentityFormat, Param(paramIdentity), "", identity)
	}
	return SteamID(m[1]), nil
}

// IdentityURL returns the Steam identity URL for id.
func IdentityURL(id SteamID) string {
	return "https://steamcommunity.com/openid/id/" + string(id)
}
