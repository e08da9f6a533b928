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
	"crypto/cipher"
	cryptorand "crypto/rand"
	"io"
	"sync/atomic"

	"github.com/bytemare/secretbox/internal"
)

// Secret is the destroyable key bundle unlocking exactly one Box: a cipher key and
// nonce for the AEAD, and a MAC key for the code over the ciphertext. A Secret is
// immutable after construction, except for its destruction state, and is intended
// for single use. No operation in this package re-encrypts under an existing Secret.
type Secret struct {
	cipherKey []byte
	nonce     []byte
	macKey    []byte
	aead      Cipher
	mac       crypto.Hash
	destroyed atomic.Bool
}

func newSecret(conf *Configuration, cipherKey, nonce, macKey []byte) *Secret {
	s := &Secret{
		cipherKey: make([]byte, len(cipherKey)),
		nonce:     make([]byte, len(nonce)),
		macKey:    make([]byte, len(macKey)),
		aead:      conf.AEAD,
		mac:       conf.MAC,
	}

	copy(s.cipherKey, cipherKey)
	copy(s.nonce, nonce)
	copy(s.macKey, macKey)

	return s
}

// generateSecret draws a cipher key, cipher nonce, and MAC key from src, in that
// fixed order. It serves both fresh generation from crypto/rand and deterministic
// re-derivation from a seeded generator.
func generateSecret(conf *Configuration, src io.Reader) *Secret {
	cipherKey := internal.ReadBytes(src, conf.AEAD.KeySize())
	nonce := internal.ReadBytes(src, conf.AEAD.NonceSize())
	macKey := internal.ReadBytes(src, internal.NewMac(conf.MAC).Size())

	return newSecret(conf, cipherKey, nonce, macKey)
}

func randomSecret(conf *Configuration) *Secret {
	return generateSecret(conf, cryptorand.Reader)
}

// DecodeSecret reconstructs a Secret from raw key material, validating the lengths
// against the configured algorithms.
func DecodeSecret(conf *Configuration, cipherKey, nonce, macKey []byte) (*Secret, error) {
	if conf == nil {
		return nil, ErrConfiguration
	}

	if err := conf.Verify(); err != nil {
		return nil, err
	}

	if len(cipherKey) != conf.AEAD.KeySize() ||
		len(nonce) != conf.AEAD.NonceSize() ||
		len(macKey) != internal.NewMac(conf.MAC).Size() {
		return nil, ErrEncoding
	}

	return newSecret(conf, cipherKey, nonce, macKey), nil
}

// Cipher materializes a ready-to-use cipher instance bound to the stored key. It
// fails with ErrDestroyed after Destroy, and with a configuration error if the
// cipher identifier is not usable.
func (s *Secret) Cipher() (cipher.AEAD, error) {
	if s.IsDestroyed() {
		return nil, ErrDestroyed
	}

	if !s.aead.Available() {
		return nil, ErrInvalidAEADid
	}

	c, err := s.aead.New(s.cipherKey)
	if err != nil {
		return nil, ErrConfiguration.Join(err)
	}

	return c, nil
}

// MAC computes the authentication code over message under this Secret's MAC key. It
// fails with ErrDestroyed after Destroy, and with a configuration error if the hash
// backing the MAC is unavailable.
func (s *Secret) MAC(message []byte) ([]byte, error) {
	mac, err := s.macInstance()
	if err != nil {
		return nil, err
	}

	return internal.Authenticate(mac, s.macKey, message), nil
}

func (s *Secret) macInstance() (*internal.Mac, error) {
	if s.IsDestroyed() {
		return nil, ErrDestroyed
	}

	if !internal.IsHashAvailable(s.mac) {
		return nil, ErrInvalidMACid
	}

	return internal.NewMac(s.mac), nil
}

// Destroy zeroizes the key material. It is idempotent and safe for concurrent use.
func (s *Secret) Destroy() {
	if s.destroyed.CompareAndSwap(false, true) {
		internal.Wipe(s.cipherKey)
		internal.Wipe(s.nonce)
		internal.Wipe(s.macKey)
	}
}

// IsDestroyed reports whether the key material has been zeroized.
func (s *Secret) IsDestroyed() bool {
	return s.destroyed.Load()
}

// TagSecret authenticates Tags only. It is established out of band with whoever is
// authorized to verify a Tag, which is not necessarily the party able to decrypt
// the accompanying Box.
type TagSecret struct {
	key       []byte
	mac       crypto.Hash
	destroyed atomic.Bool
}

// NewTagSecret builds a TagSecret from a raw MAC key.
func NewTagSecret(mac crypto.Hash, key []byte) (*TagSecret, error) {
	if !internal.IsHashAvailable(mac) {
		return nil, ErrInvalidMACid
	}

	if len(key) == 0 {
		return nil, ErrEncoding
	}

	s := &TagSecret{
		key: make([]byte, len(key)),
		mac: mac,
	}
	copy(s.key, key)

	return s, nil
}

// GenerateTagSecret returns a TagSecret with a fresh random key of the MAC's
// output length.
func GenerateTagSecret(mac crypto.Hash) (*TagSecret, error) {
	if !internal.IsHashAvailable(mac) {
		return nil, ErrInvalidMACid
	}

	return NewTagSecret(mac, internal.RandomBytes(internal.NewMac(mac).Size()))
}

// MAC computes the authentication code over message under this TagSecret's key.
func (s *TagSecret) MAC(message []byte) ([]byte, error) {
	mac, err := s.macInstance()
	if err != nil {
		return nil, err
	}

	return internal.Authenticate(mac, s.key, message), nil
}

func (s *TagSecret) macInstance() (*internal.Mac, error) {
	if s.IsDestroyed() {
		return nil, ErrDestroyed
	}

	if !internal.IsHashAvailable(s.mac) {
		return nil, ErrInvalidMACid
	}

	return internal.NewMac(s.mac), nil
}

// Destroy zeroizes the key material. It is idempotent and safe for concurrent use.
func (s *TagSecret) Destroy() {
	if s.destroyed.CompareAndSwap(false, true) {
		internal.Wipe(s.key)
	}
}

// IsDestroyed reports whether the key material has been zeroized.
func (s *TagSecret) IsDestroyed() bool {
	return s.destroyed.Load()
}

// TaggedSecret is the compound Secret of a TaggedBox: the derived box Secret plus
// the TagSecret it was derived under, kept for destruction bookkeeping.
type TaggedSecret struct {
	*Secret
	tagAuth *TagSecret
}

// Destroy zeroizes both the box Secret and the embedded TagSecret.
func (s *TaggedSecret) Destroy() {
	s.Secret.Destroy()
	s.tagAuth.Destroy()
}

// IsDestroyed reports destruction only when every embedded key has been destroyed.
func (s *TaggedSecret) IsDestroyed() bool {
	return s.Secret.IsDestroyed() && s.tagAuth.IsDestroyed()
}
