// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package encoding provides byte encoding utilities.
package encoding

import (
	"encoding/binary"
	"errors"
)

var (
	errInputNegative = errors.New("negative input")
	errInputLarge    = errors.New("input is too high for length")
	errLengthInvalid = errors.New("length must be 1, 2, or 4")

	// ErrVectorShort indicates a truncated length-prefixed vector.
	ErrVectorShort = errors.New("insufficient bytes for vector")
)

// I2OSP Integer to Octet Stream Primitive on 1, 2, or 4 bytes.
func I2OSP(value, length int) []byte {
	if length != 1 && length != 2 && length != 4 {
		panic(errLengthInvalid)
	}

	if value < 0 {
		panic(errInputNegative)
	}

	if length < 4 && value >= 1<<(8*length) {
		panic(errInputLarge)
	}

	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, uint32(value))

	return out[4-length:]
}

// OS2IP Octet Stream to Integer Primitive on maximum 4 bytes / 32 bits.
func OS2IP(input []byte) int {
	if len(input) == 0 || len(input) > 4 {
		panic(errLengthInvalid)
	}

	out := make([]byte, 4)
	copy(out[4-len(input):], input)

	return int(binary.BigEndian.Uint32(out))
}

// EncodeVectorLen prepends in with its length over the given number of bytes.
func EncodeVectorLen(in []byte, length int) []byte {
	return append(I2OSP(len(in), length), in...)
}

// EncodeVector prepends in with its 2-byte length.
func EncodeVector(in []byte) []byte {
	return EncodeVectorLen(in, 2)
}

// DecodeVectorLen reads a vector with a length prefix of the given number of bytes,
// returning the vector contents and the remaining input.
func DecodeVectorLen(in []byte, length int) (data, rest []byte, err error) {
	if len(in) < length {
		return nil, nil, ErrVectorShort
	}

	dataLen := OS2IP(in[:length])
	in = in[length:]

	if len(in) < dataLen {
		return nil, nil, ErrVectorShort
	}

	return in[:dataLen], in[dataLen:], nil
}

// DecodeVector reads a vector with a 2-byte length prefix.
func DecodeVector(in []byte) (data, rest []byte, err error) {
	return DecodeVectorLen(in, 2)
}

// Concatenate takes the variadic array of input and returns a concatenation of it.
func Concatenate(input ...[]byte) []byte {
	length := 0
	for _, b := range input {
		length += len(b)
	}

	buf := make([]byte, 0, length)

	for _, in := range input {
		buf = append(buf, in...)
	}

	return buf
}
