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

	"github.com/cloudflare/circl/xof"
	"github.com/stretchr/testify/require"

	"github.com/bytemare/secretbox"
)

type testConfiguration struct {
	conf *secretbox.Configuration
	name string
}

var configurationTable = []*testConfiguration{
	{
		name: "AES128GCM-SHA256-SHAKE128",
		conf: &secretbox.Configuration{
			AEAD: secretbox.AES128GCM,
			MAC:  crypto.SHA256,
			Hash: crypto.SHA256,
			XOF:  xof.SHAKE128,
		},
	},
	{
		name: "AES256GCM-SHA512-SHAKE256",
		conf: &secretbox.Configuration{
			AEAD: secretbox.AES256GCM,
			MAC:  crypto.SHA512,
			Hash: crypto.SHA512,
			XOF:  xof.SHAKE256,
		},
	},
	{
		name: "ChaCha20Poly1305-SHA512-BLAKE2XB",
		conf: &secretbox.Configuration{
			AEAD: secretbox.ChaCha20Poly1305,
			MAC:  crypto.SHA512,
			Hash: crypto.SHA512,
			XOF:  xof.BLAKE2XB,
		},
	},
	{
		name: "XChaCha20Poly1305-SHA256-BLAKE2XS",
		conf: &secretbox.Configuration{
			AEAD: secretbox.XChaCha20Poly1305,
			MAC:  crypto.SHA256,
			Hash: crypto.SHA256,
			XOF:  xof.BLAKE2XS,
		},
	},
}

func testAll(t *testing.T, f func(t *testing.T, c *testConfiguration)) {
	t.Helper()

	for _, c := range configurationTable {
		t.Run(c.name, func(t *testing.T) {
			f(t, c)
		})
	}
}

// flipBit inverts one bit around the middle of b.
func flipBit(b []byte) {
	b[len(b)/2] ^= 0x04
}

func newTagSecret(t *testing.T, mac crypto.Hash) *secretbox.TagSecret {
	t.Helper()

	tagSecret, err := secretbox.GenerateTagSecret(mac)
	require.NoError(t, err)

	return tagSecret
}
