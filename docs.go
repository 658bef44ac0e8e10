// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

// cap-steam provides a stateless Steam OpenID 2.0 relying party: it builds
// the Steam login redirect, validates the callback and confirms it with
// Steam, yielding a verified SteamID.
//
// See README.md
package cap
