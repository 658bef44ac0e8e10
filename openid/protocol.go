// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"regexp"
	"strings"
	"time"
)

const (
	// Endpoint is Steam's OpenID login endpoint.  Authentication requests are
	// sent to it and every positive assertion must name it as op_endpoint.
	Endpoint = "https://steamcommunity.com/openid/login"

	// Namespace is the OpenID 2.0 namespace URI.
	Namespace = "http://specs.openid.net/auth/2.0"

	// IdentifierSelect lets the provider choose the identity at login time.
	IdentifierSelect = "http://specs.openid.net/auth/2.0/identifier_select"

	// DefaultUserAgent is sent with every check_authentication request unless
	// the Config overrides it.
	DefaultUserAgent = "cap-steam-openid/1.0.0"

	// NonceSkew is the maximum allowed distance (in either direction) between
	// a response nonce's timestamp and the current time.
	NonceSkew = 300 * time.Second
)

// Mode is an openid.mode value.
type Mode string

const (
	ModeCheckIDSetup        Mode = "checkid_setup"
	ModeIDRes               Mode = "id_res"
	ModeCheckAuthentication Mode = "check_authentication"
)

// paramPrefix namespaces every OpenID query parameter.
const paramPrefix = "openid."

// Parameter names, without the "openid." prefix.
const (
	paramNS            = "ns"
	paramMode          = "mode"
	paramOPEndpoint    = "op_endpoint"
	paramClaimedID     = "claimed_id"
	paramIdentity      = "identity"
	paramReturnTo      = "return_to"
	paramResponseNonce = "response_nonce"
	paramAssocHandle   = "assoc_handle"
	paramSigned        = "signed"
	paramSig           = "sig"
)

// Param returns the namespaced query parameter name for name.
func Param(name string) string {
	return paramPrefix + name
}

// signedFields is the exact, ordered list of fields Steam signs.
var signedFields = []string{
	paramSigned,
	paramOPEndpoint,
	paramClaimedID,
	paramIdentity,
	paramReturnTo,
	paramResponseNonce,
	paramAssocHandle,
}

// unsignedRequired are required in a callback but not part of the signature.
var unsignedRequired = []string{
	paramMode,
	paramSig,
	paramNS,
}

var expectedSigned = strings.Join(signedFields, ",")

// SignedFields returns a copy of the ordered list of fields Steam signs.
func SignedFields() []string {
	return append([]string(nil), signedFields...)
}

// ExpectedSigned returns the exact openid.signed value a callback must carry.
func ExpectedSigned() string { return expectedSigned }

var (
	identityRegex = regexp.MustCompile(`^https://steamcommunity\.com/openid/id/(76561[0-9]{12})/?$`)
	nonceRegex    = regexp.MustCompile(`^([0-9]{4}-[0-9]{2}-[0-9]{2}T[0-9]{2}:[0-9]{2}:[0-9]{2}Z)`)
)
