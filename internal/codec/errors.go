// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "errors"

// Sentinel errors returned by the byte conversions. Callers should match them
// with [errors.Is]; every returned error wraps exactly one of these values.
var (
	// ErrMalformedInput is returned when a hex string has an odd length or
	// contains characters outside [0-9a-fA-F].
	ErrMalformedInput = errors.New("malformed input")

	// ErrLengthMismatch is returned by [XOR] when the operands differ in length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrDecodeFailure is returned by [UTF8Decode] when the bytes left after
	// terminator truncation are not valid UTF-8.
	ErrDecodeFailure = errors.New("decode failure")
)
