// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"crypto"
	"crypto/hmac"

	"github.com/bytemare/hash"
)

// IsHashAvailable reports whether the hash function is registered and usable.
func IsHashAvailable(id crypto.Hash) bool {
	return hash.FromCrypto(id).Available()
}

// NewMac returns a newly instantiated Mac.
func NewMac(id crypto.Hash) *Mac {
	return &Mac{h: hash.FromCrypto(id).GetHashFunction()}
}

// Mac wraps a hash function and exposes Message Authentication Code methods.
type Mac struct {
	h *hash.Fixed
}

// Equal returns a constant-time comparison of the input.
func (m *Mac) Equal(a, b []byte) bool {
	return hmac.Equal(a, b)
}

// MAC computes a MAC over the message using key.
func (m *Mac) MAC(key, message []byte) []byte {
	return m.h.Hmac(message, key)
}

// Size returns the MAC's output length.
func (m *Mac) Size() int {
	return m.h.Size()
}

// NewHash returns a newly instantiated Hash.
func NewHash(id crypto.Hash) *Hash {
	return &Hash{h: hash.FromCrypto(id).GetHashFunction()}
}

// Hash wraps a hash function and exposes only necessary hashing methods.
type Hash struct {
	h *hash.Fixed
}

// Size returns the output size of the hashing function.
func (h *Hash) Size() int {
	return h.h.Size()
}

// Sum returns the current hash of the running state.
func (h *Hash) Sum() []byte {
	return h.h.Sum(nil)
}

// Write adds input to the running state.
func (h *Hash) Write(p []byte) {
	_, _ = h.h.Write(p)
}
