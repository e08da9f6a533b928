// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package secretbox_test

import (
	"crypto"
	"testing"

	"github.com/bytemare/ksf"
	"github.com/cloudflare/circl/xof"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/secretbox"
	"github.com/bytemare/secretbox/internal/encoding"
)

var testPassphrase = []byte("correct horse battery staple")

func TestSealTagged_RoundTrip(t *testing.T) {
	testAll(t, func(t *testing.T, c *testConfiguration) {
		tagSecret := newTagSecret(t, c.conf.MAC)

		tagged, secret, err := secretbox.SealTagged(c.conf, []byte("hello world"), testPassphrase, tagSecret)
		require.NoError(t, err)
		require.True(t, tagged.Tag.Verify(tagSecret))
		require.True(t, tagged.Box.Verify(secret.Secret))

		got, err := tagged.Box.Unlock(secret.Secret)
		require.NoError(t, err)
		require.Equal(t, []byte("hello world"), got)
	})
}

func TestTaggedBox_Unlock(t *testing.T) {
	testAll(t, func(t *testing.T, c *testConfiguration) {
		tagSecret := newTagSecret(t, c.conf.MAC)

		tagged, _, err := secretbox.SealTagged(c.conf, []byte("hello world"), testPassphrase, tagSecret)
		require.NoError(t, err)

		got, err := tagged.Unlock(testPassphrase, tagSecret)
		require.NoError(t, err)
		require.Equal(t, []byte("hello world"), got)

		// The tag secret survives Unlock and can derive again.
		require.False(t, tagSecret.IsDestroyed())

		got, err = tagged.Unlock(testPassphrase, tagSecret)
		require.NoError(t, err)
		require.Equal(t, []byte("hello world"), got)
	})
}

func TestTaggedBox_WrongPassphrase(t *testing.T) {
	testAll(t, func(t *testing.T, c *testConfiguration) {
		tagSecret := newTagSecret(t, c.conf.MAC)

		tagged, _, err := secretbox.SealTagged(c.conf, []byte("hello world"), testPassphrase, tagSecret)
		require.NoError(t, err)

		_, err = tagged.Unlock([]byte("incorrect donkey battery staple"), tagSecret)
		require.ErrorIs(t, err, secretbox.ErrIntegrity)
	})
}

func TestTaggedBox_WrongTagSecret(t *testing.T) {
	testAll(t, func(t *testing.T, c *testConfiguration) {
		tagSecret := newTagSecret(t, c.conf.MAC)
		other := newTagSecret(t, c.conf.MAC)

		tagged, _, err := secretbox.SealTagged(c.conf, []byte("hello world"), testPassphrase, tagSecret)
		require.NoError(t, err)

		require.False(t, tagged.Tag.Verify(other))

		_, err = tagged.DeriveSecret(testPassphrase, other)
		require.ErrorIs(t, err, secretbox.ErrIntegrity)
	})
}

func TestDeriveSecret_Deterministic(t *testing.T) {
	testAll(t, func(t *testing.T, c *testConfiguration) {
		tagSecret := newTagSecret(t, c.conf.MAC)

		tagged, _, err := secretbox.SealTagged(c.conf, []byte("hello world"), testPassphrase, tagSecret)
		require.NoError(t, err)

		first, err := tagged.DeriveSecret(testPassphrase, tagSecret)
		require.NoError(t, err)

		second, err := tagged.DeriveSecret(testPassphrase, tagSecret)
		require.NoError(t, err)

		for _, secret := range []*secretbox.TaggedSecret{first, second} {
			got, err := tagged.Box.Unlock(secret.Secret)
			require.NoError(t, err)
			require.Equal(t, []byte("hello world"), got)
		}
	})
}

// tagTranscript rebuilds the authenticated content of a Tag, so tests can forge
// codes over modified fields.
func tagTranscript(tag *secretbox.Tag) []byte {
	return encoding.Concatenate(
		[]byte{byte(tag.MAC), byte(tag.AEAD), byte(tag.Hash), byte(tag.XOF), byte(tag.KSF)},
		encoding.EncodeVector(tag.TagBytes),
	)
}

func TestTag_TamperedFields(t *testing.T) {
	tests := []struct {
		modify func(tag *secretbox.Tag)
		name   string
	}{
		{name: "MAC", modify: func(tag *secretbox.Tag) { tag.MAC = crypto.SHA256 }},
		{name: "AEAD", modify: func(tag *secretbox.Tag) { tag.AEAD = secretbox.ChaCha20Poly1305 }},
		{name: "Hash", modify: func(tag *secretbox.Tag) { tag.Hash = crypto.SHA256 }},
		{name: "XOF", modify: func(tag *secretbox.Tag) { tag.XOF = xof.SHAKE128 }},
		{name: "KSF", modify: func(tag *secretbox.Tag) { tag.KSF = ksf.PBKDF2Sha512 }},
		{name: "TagBytes", modify: func(tag *secretbox.Tag) { flipBit(tag.TagBytes) }},
		{name: "Code", modify: func(tag *secretbox.Tag) { flipBit(tag.Code) }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tagSecret := newTagSecret(t, crypto.SHA512)

			tagged, _, err := secretbox.SealTagged(nil, []byte("hello world"), testPassphrase, tagSecret)
			require.NoError(t, err)

			test.modify(tagged.Tag)

			require.False(t, tagged.Tag.Verify(tagSecret))

			_, err = tagged.DeriveSecret(testPassphrase, tagSecret)
			require.ErrorIs(t, err, secretbox.ErrIntegrity)
		})
	}
}

// An attacker holding the tag secret can forge a valid code over substituted
// identifiers, but the resulting derivation lands on different key material and the
// box still refuses to open.
func TestTag_ForgedRecipe(t *testing.T) {
	tagSecret := newTagSecret(t, crypto.SHA512)

	tagged, _, err := secretbox.SealTagged(nil, []byte("hello world"), testPassphrase, tagSecret)
	require.NoError(t, err)

	tagged.Tag.XOF = xof.SHAKE128

	code, err := tagSecret.MAC(tagTranscript(tagged.Tag))
	require.NoError(t, err)
	tagged.Tag.Code = code

	require.True(t, tagged.Tag.Verify(tagSecret))

	_, err = tagged.Unlock(testPassphrase, tagSecret)
	require.ErrorIs(t, err, secretbox.ErrIntegrity)
}

func TestTag_UnverifiableRecipe(t *testing.T) {
	tagSecret := newTagSecret(t, crypto.SHA512)

	tagged, _, err := secretbox.SealTagged(nil, []byte("hello world"), testPassphrase, tagSecret)
	require.NoError(t, err)

	// A forged code over an unknown cipher passes verification but fails the
	// configuration check before any derivation happens.
	tagged.Tag.AEAD = 0

	code, err := tagSecret.MAC(tagTranscript(tagged.Tag))
	require.NoError(t, err)
	tagged.Tag.Code = code

	_, err = tagged.DeriveSecret(testPassphrase, tagSecret)
	require.ErrorIs(t, err, secretbox.ErrInvalidAEADid)
}

func TestTaggedBox_Serialize(t *testing.T) {
	testAll(t, func(t *testing.T, c *testConfiguration) {
		tagSecret := newTagSecret(t, c.conf.MAC)

		tagged, _, err := secretbox.SealTagged(c.conf, []byte("hello world"), testPassphrase, tagSecret)
		require.NoError(t, err)

		decoded, err := secretbox.DeserializeTaggedBox(tagged.Serialize())
		require.NoError(t, err)
		require.Equal(t, tagged.Box.Ciphertext, decoded.Box.Ciphertext)
		require.Equal(t, tagged.Box.Code, decoded.Box.Code)
		require.Equal(t, tagged.Tag.Serialize(), decoded.Tag.Serialize())
		require.True(t, decoded.Tag.Verify(tagSecret))

		got, err := decoded.Unlock(testPassphrase, tagSecret)
		require.NoError(t, err)
		require.Equal(t, []byte("hello world"), got)
	})
}

func TestTag_Serialize(t *testing.T) {
	tagSecret := newTagSecret(t, crypto.SHA512)

	tagged, _, err := secretbox.SealTagged(nil, []byte("hello world"), testPassphrase, tagSecret)
	require.NoError(t, err)

	decoded, err := secretbox.DeserializeTag(tagged.Tag.Serialize())
	require.NoError(t, err)
	require.Equal(t, tagged.Tag, decoded)
	require.True(t, decoded.Verify(tagSecret))
}

func TestDeserializeTag_Invalid(t *testing.T) {
	tagSecret := newTagSecret(t, crypto.SHA512)

	tagged, _, err := secretbox.SealTagged(nil, []byte("hello world"), testPassphrase, tagSecret)
	require.NoError(t, err)

	encoded := tagged.Tag.Serialize()

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "empty", input: nil},
		{name: "short identifiers", input: encoded[:4]},
		{name: "truncated", input: encoded[:len(encoded)-1]},
		{name: "trailing bytes", input: append(encoded[:len(encoded):len(encoded)], 0)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := secretbox.DeserializeTag(test.input)
			require.ErrorIs(t, err, secretbox.ErrEncoding)
		})
	}
}

func TestSealTagged_Argon2id(t *testing.T) {
	conf := secretbox.DefaultConfiguration()
	conf.KSF = ksf.Argon2id

	tagSecret := newTagSecret(t, conf.MAC)

	tagged, _, err := secretbox.SealTagged(conf, []byte("hello world"), testPassphrase, tagSecret)
	require.NoError(t, err)
	require.Equal(t, ksf.Argon2id, tagged.Tag.KSF)

	got, err := tagged.Unlock(testPassphrase, tagSecret)
	require.NoError(t, err)
	require.Equal(t, []byte("hello world"), got)

	_, err = tagged.Unlock([]byte("wrong"), tagSecret)
	require.ErrorIs(t, err, secretbox.ErrIntegrity)
}
