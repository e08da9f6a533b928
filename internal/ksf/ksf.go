// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package ksf provides the Key Stretching Functions.
package ksf

import (
	"github.com/bytemare/ksf"
)

// KSF wraps a key stretching function and exposes its functions.
type KSF struct {
	ksfInterface
}

// NewKSF returns a newly instantiated KSF. The zero identifier yields the identity
// function, i.e. no stretching.
func NewKSF(id ksf.Identifier) *KSF {
	if id == 0 {
		return &KSF{&IdentityKSF{}}
	}

	return &KSF{id.Get()}
}

type ksfInterface interface {
	// Harden uses default parameters for the key derivation function over the input password and salt.
	Harden(password, salt []byte, length int) []byte
}

// IdentityKSF represents a KSF with no operations.
type IdentityKSF struct{}

// Harden returns the password as is.
func (i IdentityKSF) Harden(password, _ []byte, _ int) []byte {
	return password
}
