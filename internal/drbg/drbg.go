// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package drbg exposes seedable deterministic pseudorandom byte sources built on
// extendable output functions. A Reader seeded with the same bytes yields the same
// stream on every run, which is what makes secret re-derivation reproducible.
package drbg

import (
	"github.com/cloudflare/circl/xof"
)

// Available reports whether the XOF identifier designates a supported generator.
// xof.ID.New panics on unregistered identifiers, so this must be checked first.
func Available(id xof.ID) bool {
	switch id {
	case xof.SHAKE128, xof.SHAKE256, xof.BLAKE2XB, xof.BLAKE2XS:
		return true
	default:
		return false
	}
}

// NewReader returns a deterministic byte source seeded with seed.
func NewReader(id xof.ID, seed []byte) *Reader {
	x := id.New()
	_, _ = x.Write(seed)

	return &Reader{x: x}
}

// Reader reads the expanded output of a seeded XOF. The stream evolves with every
// read and never fails.
type Reader struct {
	x xof.XOF
}

// Read fills p from the generator's output stream.
func (r *Reader) Read(p []byte) (int, error) {
	return r.x.Read(p)
}
