// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNonce(t *testing.T) {
	t.Parallel()
	issued := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	nonce := "2024-01-02T03:04:05Zb9f2c1"

	tests := []struct {
		name      string
		nonce     string
		now       time.Time
		wantErr   bool
		wantIsErr error
	}{
		{name: "now", nonce: nonce, now: issued},
		{name: "no-suffix", nonce: "2024-01-02T03:04:05Z", now: issued},
		{name: "past-boundary", nonce: nonce, now: issued.Add(300000 * time.Millisecond)},
		{name: "future-boundary", nonce: nonce, now: issued.Add(-300000 * time.Millisecond)},
		{name: "past-stale", nonce: nonce, now: issued.Add(300001 * time.Millisecond), wantErr: true, wantIsErr: ErrStaleNonce},
		{name: "future-stale", nonce: nonce, now: issued.Add(-300001 * time.Millisecond), wantErr: true, wantIsErr: ErrStaleNonce},
		{name: "day-old", nonce: nonce, now: issued.Add(24 * time.Hour), wantErr: true, wantIsErr: ErrStaleNonce},
		{name: "empty", nonce: "", now: issued, wantErr: true, wantIsErr: ErrInvalidNonceFormat},
		{name: "garbage", nonce: "abc", now: issued, wantErr: true, wantIsErr: ErrInvalidNonceFormat},
		{name: "offset", nonce: "2024-01-02T03:04:05+00:00abc", now: issued, wantErr: true, wantIsErr: ErrInvalidNonceFormat},
		{name: "fraction", nonce: "2024-01-02T03:04:05.123Zabc", now: issued, wantErr: true, wantIsErr: ErrInvalidNonceFormat},
		{name: "prefixed", nonce: "x2024-01-02T03:04:05Z", now: issued, wantErr: true, wantIsErr: ErrInvalidNonceFormat},
		{name: "bad-month", nonce: "2024-13-02T03:04:05Zabc", now: issued, wantErr: true, wantIsErr: ErrInvalidNonceFormat},
		{name: "bad-day", nonce: "2024-02-30T03:04:05Zabc", now: issued, wantErr: true, wantIsErr: ErrInvalidNonceFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert, require := assert.New(t), require.New(t)
			err := ValidateNonce(tt.nonce, tt.now)
			if tt.wantErr {
				require.Error(err)
				assert.Truef(errors.Is(err, tt.wantIsErr), "wanted %q and got %q", tt.wantIsErr, err)
				return
			}
			require.NoError(err)
		})
	}
}

func TestTestNonce(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	at := time.Date(2024, 1, 2, 3, 4, 5, 999, time.FixedZone("x", 3600))
	n1, n2 := TestNonce(t, at), TestNonce(t, at)
	assert.NotEqual(n1, n2)
	assert.Regexp(`^2024-01-02T02:04:05Z[0-9a-f]{12}$`, n1)
	assert.NoError(ValidateNonce(n1, at))
}
