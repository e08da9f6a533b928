// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package secretbox

import (
	"crypto"

	"github.com/bytemare/ksf"
	"github.com/cloudflare/circl/xof"

	"github.com/bytemare/secretbox/internal"
	"github.com/bytemare/secretbox/internal/drbg"
)

// confLength is the byte length of a serialized Configuration.
const confLength = 5

// Configuration collects the algorithm identifiers a box is sealed with. All fields
// are closed enumerations mapped to concrete implementations, never free-form strings.
type Configuration struct {
	// AEAD identifies the authenticated cipher sealing the plaintext.
	AEAD Cipher

	// MAC identifies the hash function backing the HMAC over the ciphertext.
	MAC crypto.Hash

	// Hash identifies the hash function producing the derivation seed.
	Hash crypto.Hash

	// XOF identifies the deterministic generator expanding the seed into key material.
	XOF xof.ID

	// KSF identifies the stretching function hardening low-entropy input, with 0 for none.
	KSF ksf.Identifier
}

// DefaultConfiguration returns a Configuration with sane cipher suite defaults.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		AEAD: AES256GCM,
		MAC:  crypto.SHA512,
		Hash: crypto.SHA512,
		XOF:  xof.SHAKE256,
		KSF:  0,
	}
}

// Verify returns an error if any algorithm identifier is unknown or unavailable in
// this build. Availability can only change between creation and use if the build
// configuration changed, which is a defect and not a recoverable condition.
func (c *Configuration) Verify() error {
	if !c.AEAD.Available() {
		return ErrInvalidAEADid
	}

	if !internal.IsHashAvailable(c.MAC) {
		return ErrInvalidMACid
	}

	if !internal.IsHashAvailable(c.Hash) {
		return ErrInvalidHASHid
	}

	if !drbg.Available(c.XOF) {
		return ErrInvalidXOFid
	}

	if c.KSF != 0 && !c.KSF.Available() {
		return ErrInvalidKSFid
	}

	return nil
}

// Serialize returns the byte encoding of the Configuration.
func (c *Configuration) Serialize() []byte {
	return []byte{
		byte(c.AEAD),
		byte(c.MAC),
		byte(c.Hash),
		byte(c.XOF),
		byte(c.KSF),
	}
}

// DeserializeConfiguration decodes the input into a Configuration, and verifies it.
func DeserializeConfiguration(encoded []byte) (*Configuration, error) {
	if len(encoded) != confLength {
		return nil, ErrEncoding
	}

	c := &Configuration{
		AEAD: Cipher(encoded[0]),
		MAC:  crypto.Hash(encoded[1]),
		Hash: crypto.Hash(encoded[2]),
		XOF:  xof.ID(encoded[3]),
		KSF:  ksf.Identifier(encoded[4]),
	}

	if err := c.Verify(); err != nil {
		return nil, err
	}

	return c, nil
}
