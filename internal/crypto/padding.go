// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"fmt"
	"strings"
)

// Padding names the scheme used to extend a plaintext to the block size.
type Padding string

const (
	// PaddingPKCS7 appends n bytes of value n (1 <= n <= BlockSize). A full
	// block is added when the input is already aligned. This is the default.
	PaddingPKCS7 Padding = "pkcs7"

	// PaddingZero appends 0x00 bytes up to the next block boundary and adds
	// nothing to aligned input. It matches envelopes written by hosts that
	// zero-pad; the NUL terminator makes it unambiguous on decryption.
	PaddingZero Padding = "zero"
)

// ParsePadding maps a configuration value onto a [Padding]. An empty value
// selects [PaddingPKCS7].
func ParsePadding(s string) (Padding, error) {
	switch p := Padding(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PaddingPKCS7, nil
	case PaddingPKCS7, PaddingZero:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPadding, s)
	}
}

// pad returns a new slice holding b extended to a multiple of blockSize.
func (p Padding) pad(b []byte, blockSize int) []byte {
	var n int
	switch p {
	case PaddingZero:
		n = (blockSize - len(b)%blockSize) % blockSize
		return append(append(make([]byte, 0, len(b)+n), b...), make([]byte, n)...)
	default:
		n = blockSize - len(b)%blockSize
		return append(append(make([]byte, 0, len(b)+n), b...), bytes.Repeat([]byte{byte(n)}, n)...)
	}
}

// unpad removes the padding added by pad. A malformed PKCS#7 suffix is left
// in place and never reported, so bad padding is indistinguishable from a
// wrong key. Zero padding is not stripped here; the terminator truncation
// takes care of it.
func (p Padding) unpad(b []byte, blockSize int) []byte {
	if p == PaddingZero || len(b) == 0 {
		return b
	}

	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return b
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return b
		}
	}
	return b[:len(b)-n]
}
