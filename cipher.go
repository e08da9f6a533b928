// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package secretbox

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Cipher designates one of the supported authenticated ciphers. The set is a closed
// enumeration mapped to concrete implementations at compile time.
type Cipher byte

const (
	// AES128GCM is AES-128 in Galois/Counter Mode.
	AES128GCM Cipher = 1 + iota

	// AES256GCM is AES-256 in Galois/Counter Mode.
	AES256GCM

	// ChaCha20Poly1305 is ChaCha20-Poly1305 with a 12-byte nonce.
	ChaCha20Poly1305

	// XChaCha20Poly1305 is XChaCha20-Poly1305 with a 24-byte nonce.
	XChaCha20Poly1305

	maxCipher
)

// Available reports whether the identifier designates a supported cipher.
func (c Cipher) Available() bool {
	return c > 0 && c < maxCipher
}

// String returns the cipher's common name.
func (c Cipher) String() string {
	switch c {
	case AES128GCM:
		return "AES-128-GCM"
	case AES256GCM:
		return "AES-256-GCM"
	case ChaCha20Poly1305:
		return "ChaCha20-Poly1305"
	case XChaCha20Poly1305:
		return "XChaCha20-Poly1305"
	default:
		return "unknown"
	}
}

// KeySize returns the cipher's key length in bytes.
func (c Cipher) KeySize() int {
	if c == AES128GCM {
		return 16
	}

	return chacha20poly1305.KeySize
}

// NonceSize returns the cipher's nonce length in bytes.
func (c Cipher) NonceSize() int {
	if c == XChaCha20Poly1305 {
		return chacha20poly1305.NonceSizeX
	}

	return chacha20poly1305.NonceSize
}

// Overhead returns the ciphertext expansion in bytes.
func (c Cipher) Overhead() int {
	return chacha20poly1305.Overhead
}

// New returns a ready-to-use AEAD instance keyed with key.
func (c Cipher) New(key []byte) (cipher.AEAD, error) {
	if len(key) != c.KeySize() {
		return nil, fmt.Errorf("invalid key length for %s: got %d, want %d", c, len(key), c.KeySize())
	}

	switch c {
	case AES128GCM, AES256GCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}

		return cipher.NewGCM(block)
	case ChaCha20Poly1305:
		return chacha20poly1305.New(key)
	case XChaCha20Poly1305:
		return chacha20poly1305.NewX(key)
	default:
		return nil, fmt.Errorf("unknown cipher identifier %d", c)
	}
}
