// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec holds the byte-level conversions used by the encryption
// envelope: hex transport encoding, UTF-8 with the NUL terminator convention
// and the XOR used for block chaining.
package codec

import (
	"encoding/hex"
	"fmt"
)

// HexToBytes decodes a case-insensitive hex string. The empty string decodes
// to an empty, non-nil slice.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd hex length %d", ErrMalformedInput, len(s))
	}

	out := make([]byte, hex.DecodedLen(len(s)))
	if _, err := hex.Decode(out, []byte(s)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	return out, nil
}

// BytesToHex encodes b as lower-case hex, two characters per byte.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}
