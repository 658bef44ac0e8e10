// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"github.com/hashicorp/go-hclog"
	"github.com/jonboulle/clockwork"
)

// Option defines a common functional options type which can be used in a
// variadic parameter pattern.
type Option func(interface{})

// ApplyOpts takes a pointer to the options struct as a set of default options
// and applies the slice of opts as overrides.
func ApplyOpts(opts interface{}, opt ...Option) {
	for _, o := range opt {
		if o == nil { // ignore any nil Options
			continue
		}
		o(opts)
	}
}

// WithLogger provides an optional logger for the Verifier.
func WithLogger(l hclog.Logger) Option {
	return func(o interface{}) {
		if o, ok := o.(*verifierOptions); ok {
			o.withLogger = l
		}
	}
}

// WithClock provides an optional clock used when checking nonce freshness.
func WithClock(c clockwork.Clock) Option {
	return func(o interface{}) {
		if o, ok := o.(*verifierOptions); ok {
			o.withClock = c
		}
	}
}

// WithTransport provides an optional Transport used to send
// check_authentication requests.  It replaces the default HTTPTransport.
func WithTransport(t Transport) Option {
	return func(o interface{}) {
		if o, ok := o.(*verifierOptions); ok {
			o.withTransport = t
		}
	}
}
