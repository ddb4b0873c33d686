// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/MKhiriev/gaspass/internal/codec"
)

// BlockSize is the AES block size and therefore the IV length.
const BlockSize = aes.BlockSize

// cbcEngine is AES in cipher-block-chaining mode with an explicit padding.
type cbcEngine struct {
	padding Padding
}

// NewCBCEngine returns an AES-CBC [BlockCipher] that pads with padding.
// The key length selects AES-128/192/256.
func NewCBCEngine(padding Padding) BlockCipher {
	return &cbcEngine{padding: padding}
}

// Encrypt implements [BlockCipher]. Every plaintext block is XORed with the
// previous ciphertext block (the IV for the first one) before the AES
// forward transform.
func (c *cbcEngine) Encrypt(plain, key, iv []byte) ([]byte, error) {
	block, err := newAES(key, iv)
	if err != nil {
		return nil, err
	}

	padded := c.padding.pad(plain, BlockSize)
	out := make([]byte, len(padded))
	prev := iv

	for i := 0; i < len(padded); i += BlockSize {
		mixed, err := codec.XOR(padded[i:i+BlockSize], prev)
		if err != nil {
			return nil, fmt.Errorf("chain block %d: %w", i/BlockSize, err)
		}
		block.Encrypt(out[i:i+BlockSize], mixed)
		prev = out[i : i+BlockSize]
	}

	return out, nil
}

// Decrypt implements [BlockCipher]. Each block goes through the AES inverse
// transform and is XORed with the previous ciphertext block (or the IV).
func (c *cbcEngine) Decrypt(ciphertext, key, iv []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a positive multiple of %d",
			ErrInvalidCiphertextLength, len(ciphertext), BlockSize)
	}

	block, err := newAES(key, iv)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(ciphertext))
	buf := make([]byte, BlockSize)
	prev := iv

	for i := 0; i < len(ciphertext); i += BlockSize {
		cur := ciphertext[i : i+BlockSize]
		block.Decrypt(buf, cur)
		plain, err := codec.XOR(buf, prev)
		if err != nil {
			return nil, fmt.Errorf("chain block %d: %w", i/BlockSize, err)
		}
		out = append(out, plain...)
		prev = cur
	}

	return c.padding.unpad(out, BlockSize), nil
}

func newAES(key, iv []byte) (cipher.Block, error) {
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("%w: iv is %d bytes, want %d", codec.ErrLengthMismatch, len(iv), BlockSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", codec.ErrLengthMismatch, err)
	}
	return block, nil
}
