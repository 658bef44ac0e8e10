// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPTransport(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		config        *Config
		wantErr       bool
		wantIsErr     error
		wantURL       string
		wantUserAgent string
	}{
		{
			name:          "defaults",
			config:        &Config{ReturnURL: testReturnURL},
			wantURL:       Endpoint,
			wantUserAgent: DefaultUserAgent,
		},
		{
			name:          "overrides",
			config:        &Config{ReturnURL: testReturnURL, UserAgent: "ua", VerificationURL: "https://proxy.example.com/openid/login"},
			wantURL:       "https://proxy.example.com/openid/login",
			wantUserAgent: "ua",
		},
		{name: "nil", wantErr: true, wantIsErr: ErrConfiguration},
		{name: "bad-ca", config: &Config{ReturnURL: testReturnURL, ProviderCA: "bad"}, wantErr: true, wantIsErr: ErrConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert, require := assert.New(t), require.New(t)
			got, err := NewHTTPTransport(tt.config)
			if tt.wantErr {
				require.Error(err)
				assert.Truef(errors.Is(err, tt.wantIsErr), "wanted %q and got %q", tt.wantIsErr, err)
				return
			}
			require.NoError(err)
			assert.Equal(tt.wantURL, got.url)
			assert.Equal(tt.wantUserAgent, got.userAgent)
			assert.NotNil(got.client)
		})
	}
}

func TestHTTPTransport_SendVerification(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tp := StartTestProvider(t)

	tr, err := NewHTTPTransport(tp.Config(testReturnURL))
	require.NoError(t, err)

	body := url.Values{}
	body.Set("openid.mode", "check_authentication")
	body.Set("openid.sig", "s+/=")

	t.Run("ok", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		got, err := tr.SendVerification(ctx, body)
		require.NoError(err)
		assert.Equal(TestReply(true, Namespace), got)

		reqs := tp.Requests()
		require.NotEmpty(reqs)
		last := reqs[len(reqs)-1]
		assert.Equal("application/x-www-form-urlencoded", last.ContentType)
		assert.Equal(DefaultUserAgent, last.UserAgent)
		assert.Equal(body, last.Form)
	})
	t.Run("canceled", func(t *testing.T) {
		assert, require := assert.New(t), require.New(t)
		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := tr.SendVerification(cancelCtx, body)
		require.Error(err)
		assert.True(errors.Is(err, ErrNetwork))
	})
}

func TestHTTPTransport_StatusCodes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
		wantIsErr  error
	}{
		{name: "ok", statusCode: http.StatusOK},
		{name: "no-content", statusCode: http.StatusNoContent},
		{name: "forbidden", statusCode: http.StatusForbidden, wantErr: true, wantIsErr: ErrRateLimited},
		{name: "too-many", statusCode: http.StatusTooManyRequests, wantErr: true, wantIsErr: ErrRateLimited},
		{name: "bad-request", statusCode: http.StatusBadRequest, wantErr: true, wantIsErr: ErrVerificationTransport},
		{name: "unavailable", statusCode: http.StatusServiceUnavailable, wantErr: true, wantIsErr: ErrVerificationTransport},
		{name: "redirect", statusCode: http.StatusNotModified, wantErr: true, wantIsErr: ErrVerificationTransport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert, require := assert.New(t), require.New(t)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer srv.Close()

			tr, err := NewHTTPTransport(&Config{ReturnURL: testReturnURL, VerificationURL: srv.URL})
			require.NoError(err)
			_, err = tr.SendVerification(ctx, url.Values{})
			if tt.wantErr {
				require.Error(err)
				assert.Truef(errors.Is(err, tt.wantIsErr), "wanted %q and got %q", tt.wantIsErr, err)
				var sErr *StatusError
				require.True(errors.As(err, &sErr))
				assert.Equal(tt.statusCode, sErr.StatusCode)
				return
			}
			require.NoError(err)
		})
	}
}

func TestHTTPTransport_NoResponse(t *testing.T) {
	t.Parallel()
	assert, require := assert.New(t), require.New(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	tr, err := NewHTTPTransport(&Config{ReturnURL: testReturnURL, VerificationURL: srv.URL})
	require.NoError(err)
	_, err = tr.SendVerification(context.Background(), url.Values{})
	require.Error(err)
	assert.True(errors.Is(err, ErrNetwork))
	assert.False(errors.Is(err, ErrVerificationTransport))
}

func TestTransportFunc(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	var got url.Values
	var tr Transport = TransportFunc(func(_ context.Context, body url.Values) (string, error) {
		got = body
		return "is_valid:true", nil
	})
	body := url.Values{"a": []string{"b"}}
	reply, err := tr.SendVerification(context.Background(), body)
	assert.NoError(err)
	assert.Equal("is_valid:true", reply)
	assert.Equal(body, got)
}
