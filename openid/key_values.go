// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: MPL-2.0

package openid

import (
	"fmt"
	"strings"
)

// KeyValues is an OpenID key-value form response, in the order the keys first
// appeared.
type KeyValues struct {
	keys   []string
	values map[string]string
}

// ParseKeyValues parses a key-value form body: one "key:value" pair per line,
// split at the first colon.  Lines without a colon are ignored, so parsing
// never fails.  A repeated key keeps its first position and its last value.
func ParseKeyValues(body string) *KeyValues {
	kv := &KeyValues{values: map[string]string{}}
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		if _, seen := kv.values[k]; !seen {
			kv.keys = append(kv.keys, k)
		}
		kv.values[k] = v
	}
	return kv
}

// Get returns the value for key and whether it was present.
func (kv *KeyValues) Get(key string) (string, bool) {
	if kv == nil {
		return "", false
	}
	v, ok := kv.values[key]
	return v, ok
}

// Keys returns the keys in order.
func (kv *KeyValues) Keys() []string {
	if kv == nil {
		return nil
	}
	return append([]string(nil), kv.keys...)
}

// Len returns the number of keys.
func (kv *KeyValues) Len() int {
	if kv == nil {
		return 0
	}
	return len(kv.keys)
}

// CheckVerification accepts a check_authentication response only when it
// says is_valid:true within the OpenID 2.0 namespace.
func CheckVerification(kv *KeyValues) error {
	const op = "openid.CheckVerification"
	if v, _ := kv.Get("is_valid"); v != "true" {
		return fmt.Errorf("%s: is_valid is %q: %w", op, v, ErrVerificationRejected)
	}
	if ns, _ := kv.Get(paramNS); ns != Namespace {
		return fmt.Errorf("%s: ns is %q: %w", op, ns, ErrVerificationRejected)
	}
	return nil
}
