// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Terminator marks the end of the plaintext inside a decrypted buffer.
const Terminator byte = 0x00

// UTF8Encode returns the UTF-8 bytes of s.
func UTF8Encode(s string) []byte {
	return []byte(s)
}

// UTF8Decode truncates b at the first [Terminator] (if any) and decodes the
// remainder as UTF-8. Whatever follows the terminator, including padding and
// partial multi-byte sequences, is never looked at.
func UTF8Decode(b []byte) (string, error) {
	b = TruncateAtTerminator(b)
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: invalid utf-8 sequence", ErrDecodeFailure)
	}

	return string(b), nil
}

// TruncateAtTerminator returns b up to, but excluding, the first
// [Terminator]. The whole slice is returned when no terminator is present.
func TruncateAtTerminator(b []byte) []byte {
	if i := bytes.IndexByte(b, Terminator); i >= 0 {
		return b[:i]
	}
	return b
}
