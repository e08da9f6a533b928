// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import "github.com/bytemare/secretbox/internal/encoding"

// Authenticate computes the MAC code over the concatenated transcript parts under key.
// Callers are responsible for unambiguous framing of variable-length parts.
func Authenticate(mac *Mac, key []byte, transcript ...[]byte) []byte {
	return mac.MAC(key, encoding.Concatenate(transcript...))
}

// Verify recomputes the code over the transcript and compares it to code in constant time.
// A mismatch is a normal outcome, not an error.
func Verify(mac *Mac, key, code []byte, transcript ...[]byte) bool {
	return mac.Equal(Authenticate(mac, key, transcript...), code)
}
