// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Transport sends a check_authentication request to the provider and returns
// the raw key-value response body.
//
// Implementations must be concurrently safe, since a Verifier is shared across
// requests.
type Transport interface {
	SendVerification(ctx context.Context, body url.Values) (string, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, body url.Values) (string, error)

// SendVerification calls f(ctx, body).
func (f TransportFunc) SendVerification(ctx context.Context, body url.Values) (string, error) {
	return f(ctx, body)
}

// HTTPTransport posts check_authentication requests over HTTP.
type HTTPTransport struct {
	client    *http.Client
	url       string
	userAgent string
}

// ensure that HTTPTransport implements the Transport interface
var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport creates an HTTPTransport for the config.  Its client
// trusts the config's ProviderCA when one is set.
func NewHTTPTransport(c *Config) (*HTTPTransport, error) {
	const op = "openid.NewHTTPTransport"
	if c == nil {
		return nil, fmt.Errorf("%s: config is nil: %w", op, ErrConfiguration)
	}
	client, err := c.HttpClient()
	if err != nil {
		return nil, fmt.Errorf("%s: unable to create http client: %w", op, err)
	}
	return &HTTPTransport{
		client:    client,
		url:       c.verificationURL(),
		userAgent: c.userAgent(),
	}, nil
}

// SendVerification posts body as a form to the provider.  A 403 or 429 is
// reported as ErrRateLimited, any other non-2xx as ErrVerificationTransport,
// and a request that got no response as ErrNetwork.
func (t *HTTPTransport) SendVerification(ctx context.Context, body url.Values) (string, error) {
	const op = "openid.(HTTPTransport).SendVerification"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, strings.NewReader(body.Encode()))
	if err != nil {
		return "", fmt.Errorf("%s: unable to create request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %s: %w", op, err, ErrNetwork)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		switch resp.StatusCode {
		case http.StatusForbidden, http.StatusTooManyRequests:
			return "", &StatusError{Op: op, StatusCode: resp.StatusCode, Err: ErrRateLimited}
		default:
			return "", &StatusError{Op: op, StatusCode: resp.StatusCode, Err: ErrVerificationTransport}
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: unable to read response body: %s: %w", op, err, ErrNetwork)
	}
	return string(raw), nil
}
