// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal provides structures and functions to operate secretbox that are not part of the public API.
package internal

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
)

// RandomBytes returns random bytes of length len (wrapper for crypto/rand).
func RandomBytes(length int) []byte {
	return ReadBytes(cryptorand.Reader, length)
}

// ReadBytes returns length bytes read from src. A failing byte source is an environment
// defect, not a data-dependent failure, and panics.
func ReadBytes(src io.Reader, length int) []byte {
	r := make([]byte, length)
	if _, err := io.ReadFull(src, r); err != nil {
		panic(fmt.Errorf("unexpected error in reading key material bytes: %w", err))
	}

	return r
}

// Wipe overwrites the slice contents with zeroes.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
