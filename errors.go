// SPDX-License-Identifier: MIT
//
// Copyright (C) 2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package secretbox

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var (
	// ErrConfiguration indicates that the configuration is invalid.
	ErrConfiguration = ErrCodeConfiguration.New("")

	// ErrIntegrity indicates that MAC verification failed on a Box or a Tag. This is the
	// expected outcome under corruption or tampering, and the data must be rejected.
	ErrIntegrity = ErrCodeIntegrity.New("")

	// ErrDecryption indicates that the cipher itself rejected the ciphertext. This can only
	// be observed when MAC verification was skipped or passed with unrelated key material.
	ErrDecryption = ErrCodeDecryption.New("")

	// ErrDestroyed indicates an attempt to use a Secret whose key material has been destroyed.
	ErrDestroyed = ErrCodeDestroyed.New("")

	// ErrEncoding indicates malformed input to a decoding or deserialization function.
	ErrEncoding = ErrCodeEncoding.New("")

	// ErrInvalidAEADid indicates an unknown cipher identifier.
	ErrInvalidAEADid = ErrCodeConfiguration.New("invalid AEAD identifier")

	// ErrInvalidMACid indicates an unknown or unavailable MAC hash identifier.
	ErrInvalidMACid = ErrCodeConfiguration.New("invalid MAC identifier")

	// ErrInvalidHASHid indicates an unknown or unavailable hash identifier.
	ErrInvalidHASHid = ErrCodeConfiguration.New("invalid Hash identifier")

	// ErrInvalidXOFid indicates an unknown deterministic generator identifier.
	ErrInvalidXOFid = ErrCodeConfiguration.New("invalid XOF identifier")

	// ErrInvalidKSFid indicates an unknown key stretching function identifier.
	ErrInvalidKSFid = ErrCodeConfiguration.New("invalid KSF identifier")
)

// ErrorCode categorizes errors returned by this package, so callers can distinguish
// "this data is untrustworthy" from "this system is misconfigured".
type ErrorCode byte //nolint:errname // This is an error code, not an error type.

const (
	// ErrCodeUnknown represents an unknown error.
	ErrCodeUnknown ErrorCode = iota

	// ErrCodeConfiguration represents an unrecoverable configuration or environment error,
	// e.g. an algorithm that is not available. Retrying cannot succeed.
	ErrCodeConfiguration

	// ErrCodeIntegrity represents a MAC verification failure. Recoverable: reject the data.
	ErrCodeIntegrity

	// ErrCodeDecryption represents a decryption failure reported by the cipher.
	ErrCodeDecryption

	// ErrCodeDestroyed represents the use of destroyed key material.
	ErrCodeDestroyed

	// ErrCodeEncoding represents malformed serialized input.
	ErrCodeEncoding
)

// New creates a new Error with the given message and errors.
func (c ErrorCode) New(message string, errs ...error) *Error {
	if message == "" {
		message = strings.ReplaceAll(c.String(), "_", " ")
	}

	return &Error{
		Code:    c,
		Message: message,
		Err:     errors.Join(errs...),
	}
}

// String returns the string representation of the ErrorCode. If the code is not recognized, it returns "unknown_error".
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeUnknown:
		return "unknown_error"
	case ErrCodeConfiguration:
		return "configuration_error"
	case ErrCodeIntegrity:
		return "integrity_error"
	case ErrCodeDecryption:
		return "decryption_error"
	case ErrCodeDestroyed:
		return "destroyed_error"
	case ErrCodeEncoding:
		return "encoding_error"
	default:
		return "unknown_error"
	}
}

// Error implements the error interface for the ErrorCode type. It returns a string representation of the error code.
func (c ErrorCode) Error() string {
	return c.String()
}

// Is implements the errors.Is method for the ErrorCode type.
// It allows checking if the error is of a specific ErrorCode.
func (c ErrorCode) Is(target error) bool {
	var errCode ErrorCode
	if errors.As(target, &errCode) {
		return byte(c) == byte(errCode)
	}

	var boxErr *Error
	if errors.As(target, &boxErr) {
		return byte(c) == byte(boxErr.Code)
	}

	return false
}

// As implements the errors.As method for the ErrorCode type. It allows type assertion to specific error types.
func (c ErrorCode) As(target any) bool {
	switch t := target.(type) {
	case ErrorCode:
		return true
	case *ErrorCode:
		*t = c
		return true
	default:
		return false
	}
}

// Error represents an error returned by this package.
type Error struct {
	Err     error
	Message string
	Code    ErrorCode
}

// Error implements the error interface for the Error type. By convention, we return only the concise form of the
// current error, without the cause. The cause can be retrieved with the Unwrap() method.
func (e *Error) Error() string { return e.Message }

// Unwrap implements the errors.Unwrap method for the Error type. It allows retrieving the underlying error, if any.
func (e *Error) Unwrap() error { return e.Err }

// Join wraps the provided errors into the current error.
func (e *Error) Join(errs ...error) error {
	return errors.Join(e, errors.Join(errs...))
}

// LogValue implements the slog.LogValuer interface for the Error type.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("code", int(e.Code)),
		slog.String("code_name", e.Code.String()),
		slog.String("message", e.Message),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.Any("error", e.Err))
	}

	return slog.GroupValue(attrs...)
}

// Format implements the fmt.Formatter interface for the Error type. It allows formatting the error in different ways.
func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			e.formatV(f)
			return
		}

		fallthrough
	case 's':
		_, _ = io.WriteString(f, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.Error())
	default:
		_, _ = io.WriteString(f, e.Error())
	}
}

// Is implements the errors.Is method for the Error type. It allows checking if the error is of a specific ErrorCode.
func (e *Error) Is(target error) bool {
	return e.Code.Is(target) && strings.EqualFold(e.Message, target.Error())
}

// As implements the errors.As method for the Error type. It allows type assertion to specific error types.
func (e *Error) As(target any) bool {
	switch t := target.(type) {
	case *ErrorCode:
		*t = e.Code
		return true
	case **Error:
		*t = e
		return true
	default:
		return false
	}
}

func (e *Error) formatV(f fmt.State) {
	_, _ = fmt.Fprintf(f, "%s (code %d: %s)", e.Message, e.Code, e.Code.String())
	printV(f, e.Err, 1)
}

func printV(f fmt.State, err error, depth int) {
	if err == nil {
		return
	}

	prefix := strings.Repeat("  ", depth)
	_, _ = fmt.Fprintf(f, "\n%s↳ %v", prefix, err)

	// Check for errors that can unwrap multiple errors
	var multiUnwrapper interface{ Unwrap() []error }
	if errors.As(err, &multiUnwrapper) {
		for _, child := range multiUnwrapper.Unwrap() {
			printV(f, child, depth+1)
		}

		return
	}

	// Check for errors that can unwrap a single error
	var singleUnwrapper interface{ Unwrap() error }
	if errors.As(err, &singleUnwrapper) {
		printV(f, singleUnwrapper.Unwrap(), depth+1)
	}
}
