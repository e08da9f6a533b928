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
	"github.com/bytemare/secretbox/internal/encoding"
	internalKSF "github.com/bytemare/secretbox/internal/ksf"
)

// TagLength is the byte length of a Tag's random tag bytes.
const TagLength = 32

// Tag is the public, self-authenticated recipe to re-derive a TaggedBox's Secret
// from an external bytestring. Its code binds every algorithm identifier and the
// tag bytes together under a TagSecret: substituting any field invalidates the code.
//
// The reconstructed Secret can be shared without divulging the external bytestring;
// recovering it would require reversing the deterministic generator and then
// pre-imaging the hash that produced its seed.
type Tag struct {
	// TagBytes is random, public, and unique per box. It doubles as the stretching salt.
	TagBytes []byte

	// Code is the MAC code over the algorithm identifiers and TagBytes.
	Code []byte

	// MAC identifies the hash backing both the Tag's and the Box's MAC.
	MAC crypto.Hash

	// AEAD identifies the cipher sealing the Box.
	AEAD Cipher

	// Hash identifies the hash producing the derivation seed.
	Hash crypto.Hash

	// XOF identifies the deterministic generator expanding the seed.
	XOF xof.ID

	// KSF identifies the stretching function applied to the external bytestring.
	KSF ksf.Identifier
}

// Configuration returns the algorithm set recorded in the Tag.
func (t *Tag) Configuration() *Configuration {
	return &Configuration{
		AEAD: t.AEAD,
		MAC:  t.MAC,
		Hash: t.Hash,
		XOF:  t.XOF,
		KSF:  t.KSF,
	}
}

// transcript is the content the Tag's code authenticates. Identifiers are fixed
// single bytes and the tag bytes are length-prefixed, so no two distinct field
// combinations concatenate to the same transcript.
func (t *Tag) transcript() []byte {
	return encoding.Concatenate(
		[]byte{byte(t.MAC), byte(t.AEAD), byte(t.Hash), byte(t.XOF), byte(t.KSF)},
		encoding.EncodeVector(t.TagBytes),
	)
}

// Verify reports whether the Tag's code is valid under tagSecret. A mismatch is a
// normal outcome. Verify also returns false if tagSecret is destroyed or unusable.
func (t *Tag) Verify(tagSecret *TagSecret) bool {
	mac, err := tagSecret.macInstance()
	if err != nil {
		return false
	}

	return internal.Verify(mac, tagSecret.key, t.Code, t.transcript())
}

// Serialize returns the byte encoding of the Tag.
func (t *Tag) Serialize() []byte {
	return encoding.Concatenate(
		[]byte{byte(t.MAC), byte(t.AEAD), byte(t.Hash), byte(t.XOF), byte(t.KSF)},
		encoding.EncodeVector(t.TagBytes),
		encoding.EncodeVector(t.Code),
	)
}

// TaggedBox is a Box whose Secret is recoverable by combining an external
// bytestring, such as a passphrase, with the Box's Tag.
type TaggedBox struct {
	Box *Box
	Tag *Tag
}

// SealTagged seals plaintext like Seal, except that the Secret is derived
// deterministically from passphrase and a fresh Tag instead of drawn from the true
// random source. The Tag is authenticated under tagSecret and returned as part of
// the TaggedBox; the derived Secret is returned once, embedded in a TaggedSecret.
func SealTagged(
	conf *Configuration,
	plaintext, passphrase []byte,
	tagSecret *TagSecret,
) (*TaggedBox, *TaggedSecret, error) {
	if conf == nil {
		conf = DefaultConfiguration()
	}

	if err := conf.Verify(); err != nil {
		return nil, nil, err
	}

	tag := &Tag{
		TagBytes: internal.RandomBytes(TagLength),
		Code:     nil,
		MAC:      conf.MAC,
		AEAD:     conf.AEAD,
		Hash:     conf.Hash,
		XOF:      conf.XOF,
		KSF:      conf.KSF,
	}

	code, err := tagSecret.MAC(tag.transcript())
	if err != nil {
		return nil, nil, err
	}

	tag.Code = code

	secret := deriveBoxSecret(tag, passphrase)

	box, err := sealWithSecret(secret, plaintext)
	if err != nil {
		return nil, nil, err
	}

	return &TaggedBox{Box: box, Tag: tag},
		&TaggedSecret{Secret: secret, tagAuth: tagSecret},
		nil
}

// deriveBoxSecret reproduces the Box Secret from the external bytestring and the
// Tag's recipe: stretch the bytestring, hash it with the tag bytes into a seed,
// seed the deterministic generator, and draw key material with the same routine
// used for fresh random Secrets. Callers must have verified the Tag first.
func deriveBoxSecret(tag *Tag, passphrase []byte) *Secret {
	conf := tag.Configuration()
	h := internal.NewHash(conf.Hash)

	stretched := internalKSF.NewKSF(conf.KSF).Harden(passphrase, tag.TagBytes, h.Size())

	h.Write(encoding.EncodeVector(stretched))
	h.Write(encoding.EncodeVector(tag.TagBytes))

	return generateSecret(conf, drbg.NewReader(conf.XOF, h.Sum()))
}

// DeriveSecret reconstructs the TaggedBox's Secret from passphrase. The Tag is
// verified first, and derivation aborts with ErrIntegrity if that fails: a tampered
// algorithm identifier or tag bytestring would silently yield different,
// attacker-influenced key material.
//
// Deriving twice from the same passphrase and Tag yields identical key material.
func (b *TaggedBox) DeriveSecret(passphrase []byte, tagSecret *TagSecret) (*TaggedSecret, error) {
	mac, err := tagSecret.macInstance()
	if err != nil {
		return nil, err
	}

	if !internal.Verify(mac, tagSecret.key, b.Tag.Code, b.Tag.transcript()) {
		return nil, ErrIntegrity
	}

	if err := b.Tag.Configuration().Verify(); err != nil {
		return nil, err
	}

	return &TaggedSecret{
		Secret:  deriveBoxSecret(b.Tag, passphrase),
		tagAuth: tagSecret,
	}, nil
}

// Unlock derives the Secret from passphrase and opens the Box with it. The derived
// key material is destroyed before returning; tagSecret is left untouched.
func (b *TaggedBox) Unlock(passphrase []byte, tagSecret *TagSecret) ([]byte, error) {
	secret, err := b.DeriveSecret(passphrase, tagSecret)
	if err != nil {
		return nil, err
	}
	defer secret.Secret.Destroy()

	return b.Box.Unlock(secret.Secret)
}

// Serialize returns the byte encoding of the TaggedBox.
func (b *TaggedBox) Serialize() []byte {
	return encoding.Concatenate(b.Box.Serialize(), b.Tag.Serialize())
}
