// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"bytes"
	"encoding/base64"
	"encoding/pem"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hashicorp/go-uuid"
	"github.com/stretchr/testify/require"
)

// nonceTimeFormat is the timestamp layout Steam uses for response nonces.
const nonceTimeFormat = "2006-01-02T15:04:05Z"

// TestNonce returns a response nonce issued at t, followed by unique
// characters the way Steam generates them.
func TestNonce(t *testing.T, at time.Time) string {
	t.Helper()
	suffix, err := uuid.GenerateUUID()
	require.NoError(t, err)
	return at.UTC().Format(nonceTimeFormat) + strings.ReplaceAll(suffix, "-", "")[:12]
}

// TestCallbackParams returns the query parameters Steam would send to
// returnTo after a successful login by id, with a nonce issued at the given
// time.  The signature is random; only the provider can check it.
func TestCallbackParams(t *testing.T, id SteamID, returnTo string, at time.Time) url.Values {
	t.Helper()
	require := require.New(t)
	handle, err := uuid.GenerateUUID()
	require.NoError(err)
	sig, err := uuid.GenerateRandomBytes(20)
	require.NoError(err)

	identity := IdentityURL(id)
	params := url.Values{}
	params.Set(Param(paramNS), Namespace)
	params.Set(Param(paramMode), string(ModeIDRes))
	params.Set(Param(paramOPEndpoint), Endpoint)
	params.Set(Param(paramClaimedID), identity)
	params.Set(Param(paramIdentity), identity)
	params.Set(Param(paramReturnTo), returnTo)
	params.Set(Param(paramResponseNonce), TestNonce(t, at))
	params.Set(Param(paramAssocHandle), handle)
	params.Set(Param(paramSigned), expectedSigned)
	params.Set(Param(paramSig), base64.StdEncoding.EncodeToString(sig))
	return params
}

// TestVerificationRequest is a check_authentication request received by a
// TestProvider.
type TestVerificationRequest struct {
	ContentType string
	UserAgent   string
	Form        url.Values
}

// TestProvider is a local TLS server that answers check_authentication
// requests the way Steam does.  By default it replies "is_valid:true".
type TestProvider struct {
	httpServer *httptest.Server
	caCert     string

	mu         sync.Mutex
	statusCode int
	reply      string
	requests   []TestVerificationRequest

	t *testing.T
}

// StartTestProvider creates a disposable TestProvider which is stopped when
// the test completes.
func StartTestProvider(t *testing.T) *TestProvider {
	t.Helper()
	require := require.New(t)

	p := &TestProvider{
		statusCode: http.StatusOK,
		reply:      TestReply(true, Namespace),
		t:          t,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/openid/login", p.verificationHandler)

	p.httpServer = httptest.NewUnstartedServer(mux)
	p.httpServer.Config.ErrorLog = log.New(io.Discard, "", 0)
	p.httpServer.StartTLS()
	t.Cleanup(p.httpServer.Close)

	var buf bytes.Buffer
	err := pem.Encode(&buf, &pem.Block{Type: "CERTIFICATE", Bytes: p.httpServer.Certificate().Raw})
	require.NoError(err)
	p.caCert = buf.String()
	return p
}

// TestReply returns a check_authentication response body.
func TestReply(isValid bool, ns string) string {
	valid := "false"
	if isValid {
		valid = "true"
	}
	return "ns:" + ns + "\nis_valid:" + valid + "\n"
}

// Stop stops the running TestProvider.
func (p *TestProvider) Stop() {
	p.httpServer.Close()
}

// CACert returns the PEM of the provider's self-signed certificate.
func (p *TestProvider) CACert() string { return p.caCert }

// VerificationURL returns the provider's check_authentication URL.
func (p *TestProvider) VerificationURL() string {
	return p.httpServer.URL + "/openid/login"
}

// Config returns a Config with returnURL whose check_authentication requests
// go to the provider.
func (p *TestProvider) Config(returnURL string) *Config {
	p.t.Helper()
	c, err := NewConfig(returnURL, WithProviderCA(p.caCert), WithVerificationURL(p.VerificationURL()))
	require.NoError(p.t, err)
	return c
}

// SetReply sets the response body for subsequent requests.
func (p *TestProvider) SetReply(body string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reply = body
}

// SetStatusCode sets the HTTP status for subsequent requests.
func (p *TestProvider) SetStatusCode(code int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statusCode = code
}

// Requests returns the check_authentication requests received so far.
func (p *TestProvider) Requests() []TestVerificationRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]TestVerificationRequest(nil), p.requests...)
}

func (p *TestProvider) verificationHandler(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := req.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p.mu.Lock()
	p.requests = append(p.requests, TestVerificationRequest{
		ContentType: req.Header.Get("Content-Type"),
		UserAgent:   req.Header.Get("User-Agent"),
		Form:        req.PostForm,
	})
	code, reply := p.statusCode, p.reply
	p.mu.Unlock()

	if req.PostForm.Get(Param(paramMode)) != string(ModeCheckAuthentication) {
		http.Error(w, "unexpected mode", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(reply))
}
