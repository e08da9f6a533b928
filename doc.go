// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package secretbox implements authenticated-encryption containers with single-use keys.
//
// A Box couples a ciphertext with a MAC code computed over that ciphertext (encrypt-then-MAC),
// and can only be opened with the Secret returned at sealing time. Secrets are destroyable
// key bundles intended for exactly one Box.
//
// A TaggedBox additionally carries a Tag: public, self-authenticated metadata from which the
// Box's Secret can be re-derived deterministically from a low-entropy bytestring such as a
// passphrase. The Tag is authenticated under its own Secret, so a tampered derivation recipe
// is detected before any key material is derived from it.
package secretbox
