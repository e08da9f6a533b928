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

	"github.com/bytemare/secretbox/internal/encoding"
)

// DeserializeBox decodes the input into a Box. No verification is performed:
// integrity is only established by Unlock or Verify under the matching Secret.
func DeserializeBox(input []byte) (*Box, error) {
	box, rest, err := decodeBox(input)
	if err != nil {
		return nil, err
	}

	if len(rest) != 0 {
		return nil, ErrEncoding
	}

	return box, nil
}

// DeserializeTag decodes the input into a Tag. The Tag's authenticity must still be
// established with Verify before it is used for derivation.
func DeserializeTag(input []byte) (*Tag, error) {
	tag, rest, err := decodeTag(input)
	if err != nil {
		return nil, err
	}

	if len(rest) != 0 {
		return nil, ErrEncoding
	}

	return tag, nil
}

// DeserializeTaggedBox decodes the input into a TaggedBox.
func DeserializeTaggedBox(input []byte) (*TaggedBox, error) {
	box, rest, err := decodeBox(input)
	if err != nil {
		return nil, err
	}

	tag, rest, err := decodeTag(rest)
	if err != nil {
		return nil, err
	}

	if len(rest) != 0 {
		return nil, ErrEncoding
	}

	return &TaggedBox{Box: box, Tag: tag}, nil
}

func decodeBox(input []byte) (*Box, []byte, error) {
	ciphertext, rest, err := encoding.DecodeVectorLen(input, 4)
	if err != nil {
		return nil, nil, ErrEncoding.Join(err)
	}

	code, rest, err := encoding.DecodeVector(rest)
	if err != nil {
		return nil, nil, ErrEncoding.Join(err)
	}

	return &Box{
		Ciphertext: copyBytes(ciphertext),
		Code:       copyBytes(code),
	}, rest, nil
}

func decodeTag(input []byte) (*Tag, []byte, error) {
	if len(input) < confLength {
		return nil, nil, ErrEncoding
	}

	ids, rest := input[:confLength], input[confLength:]

	tagBytes, rest, err := encoding.DecodeVector(rest)
	if err != nil {
		return nil, nil, ErrEncoding.Join(err)
	}

	code, rest, err := encoding.DecodeVector(rest)
	if err != nil {
		return nil, nil, ErrEncoding.Join(err)
	}

	return &Tag{
		TagBytes: copyBytes(tagBytes),
		Code:     copyBytes(code),
		MAC:      crypto.Hash(ids[0]),
		AEAD:     Cipher(ids[1]),
		Hash:     crypto.Hash(ids[2]),
		XOF:      xof.ID(ids[3]),
		KSF:      ksf.Identifier(ids[4]),
	}, rest, nil
}

func copyBytes(in []byte) []byte {
	out := make([]byte, len(in))
	copy(out, in)

	return out
}
