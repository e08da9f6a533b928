// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package secretbox

import (
	"github.com/bytemare/secretbox/internal"
	"github.com/bytemare/secretbox/internal/encoding"
)

// Box couples a ciphertext with a MAC code computed over that ciphertext at sealing
// time. A Box is immutable after construction and can only be opened with the Secret
// returned by the call that sealed it.
type Box struct {
	// Ciphertext is the sealed payload, plaintext length plus the cipher's overhead.
	Ciphertext []byte

	// Code is the MAC code over Ciphertext.
	Code []byte
}

// Seal encrypts plaintext under a fresh Secret and authenticates the resulting
// ciphertext (encrypt-then-MAC): the code covers exactly the bytes that will later
// be decrypted, so forged or corrupted ciphertext is rejected before any decryption
// attempt. The Secret is returned once, for single immediate use. A nil conf uses
// DefaultConfiguration.
func Seal(conf *Configuration, plaintext []byte) (*Box, *Secret, error) {
	if conf == nil {
		conf = DefaultConfiguration()
	}

	if err := conf.Verify(); err != nil {
		return nil, nil, err
	}

	secret := randomSecret(conf)

	box, err := sealWithSecret(secret, plaintext)
	if err != nil {
		return nil, nil, err
	}

	return box, secret, nil
}

func sealWithSecret(secret *Secret, plaintext []byte) (*Box, error) {
	c, err := secret.Cipher()
	if err != nil {
		return nil, err
	}

	ciphertext := c.Seal(nil, secret.nonce, plaintext, nil)

	code, err := secret.MAC(ciphertext)
	if err != nil {
		return nil, err
	}

	return &Box{
		Ciphertext: ciphertext,
		Code:       code,
	}, nil
}

// Verify reports whether the code matches the ciphertext under secret. A mismatch is
// a normal outcome. Verify also returns false if secret is destroyed or unusable;
// use Unlock to distinguish those conditions.
func (b *Box) Verify(secret *Secret) bool {
	mac, err := secret.macInstance()
	if err != nil {
		return false
	}

	return internal.Verify(mac, secret.macKey, b.Code, b.Ciphertext)
}

// Unlock verifies the MAC code over the ciphertext and, only on success, decrypts.
// A mismatch yields ErrIntegrity and no decryption is attempted. A destroyed or
// misconfigured secret yields the corresponding error instead, so callers can tell
// untrustworthy data from a broken environment.
func (b *Box) Unlock(secret *Secret) ([]byte, error) {
	mac, err := secret.macInstance()
	if err != nil {
		return nil, err
	}

	if !internal.Verify(mac, secret.macKey, b.Code, b.Ciphertext) {
		return nil, ErrIntegrity
	}

	return b.open(secret)
}

// UnlockUnverified decrypts without checking the MAC code. This is an explicit
// opt-out for callers that have verified the Box by other means; it must never be
// the default path. The cipher may still reject tampered input on its own, in which
// case ErrDecryption is returned rather than ErrIntegrity.
func (b *Box) UnlockUnverified(secret *Secret) ([]byte, error) {
	return b.open(secret)
}

func (b *Box) open(secret *Secret) ([]byte, error) {
	c, err := secret.Cipher()
	if err != nil {
		return nil, err
	}

	plaintext, err := c.Open(nil, secret.nonce, b.Ciphertext, nil)
	if err != nil {
		return nil, ErrDecryption
	}

	return plaintext, nil
}

// Serialize returns the byte encoding of the Box.
func (b *Box) Serialize() []byte {
	return encoding.Concatenate(
		encoding.EncodeVectorLen(b.Ciphertext, 4),
		encoding.EncodeVector(b.Code),
	)
}
