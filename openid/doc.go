// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

/*
openid is a package for authenticating Steam users with the stateless form of
the OpenID 2.0 protocol that Steam implements.

The relying party never associates with the provider and never stores a
shared secret.  Instead every positive assertion returned to the callback is
validated locally (required fields, signed field list, endpoint, return_to,
nonce freshness, identity format) and then sent back to the provider in a
check_authentication request, which the provider must answer with
"is_valid:true".  Only then is the SteamID embedded in the identity URL
returned.

Primary types provided by the package:

* Config: the relying party configuration (return URL, CA, user agent).

* Verifier: builds the login URL and validates callbacks.

* Transport: sends the check_authentication request.  HTTPTransport is the
default; any Transport (or TransportFunc) can be supplied via WithTransport.

* SteamID: the verified 64-bit Steam identifier.

Testing support: StartTestProvider starts a local check_authentication
endpoint and TestCallbackParams builds provider shaped callback parameters.

See the callback package for http.HandlerFunc helpers.
*/
package openid
