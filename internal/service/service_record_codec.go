// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/gaspass/internal/codec"
	"github.com/MKhiriev/gaspass/internal/crypto"
	"github.com/MKhiriev/gaspass/models"
)

// recordCodec is the private implementation of [RecordCodec].
type recordCodec struct {
	engine crypto.BlockCipher

	// random is the IV source. Always crypto/rand outside of tests.
	random io.Reader
}

// NewRecordCodec returns a [RecordCodec] that encrypts with engine and draws
// IVs from the OS CSPRNG.
func NewRecordCodec(engine crypto.BlockCipher) RecordCodec {
	return &recordCodec{engine: engine, random: rand.Reader}
}

// Encrypt implements [RecordCodec].
//
//  1. read 16 random IV bytes
//  2. UTF-8 encode plaintext and append the 0x00 terminator
//  3. derive the record key from the session and the IV
//  4. CBC encrypt
//  5. hex encode ciphertext and IV
func (c *recordCodec) Encrypt(session *crypto.Session, plaintext string) (models.CipherEnvelope, error) {
	if strings.IndexByte(plaintext, codec.Terminator) >= 0 {
		return models.CipherEnvelope{}, fmt.Errorf("%w: plaintext contains a NUL byte", codec.ErrMalformedInput)
	}

	iv := make([]byte, crypto.BlockSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return models.CipherEnvelope{}, fmt.Errorf("generate iv: %w", err)
	}

	plain := append(codec.UTF8Encode(plaintext), codec.Terminator)
	defer clear(plain)

	key, err := session.RecordKey(iv)
	if err != nil {
		return models.CipherEnvelope{}, fmt.Errorf("derive record key: %w", err)
	}
	defer clear(key)

	cipherText, err := c.engine.Encrypt(plain, key, iv)
	if err != nil {
		return models.CipherEnvelope{}, fmt.Errorf("encrypt: %w", err)
	}

	return models.CipherEnvelope{
		Data: codec.BytesToHex(cipherText),
		IV:   codec.BytesToHex(iv),
	}, nil
}

// Decrypt implements [RecordCodec].
func (c *recordCodec) Decrypt(session *crypto.Session, dataHex, ivHex string) (string, error) {
	if dataHex == "" || ivHex == "" {
		return "", nil
	}

	data, err := codec.HexToBytes(dataHex)
	if err != nil {
		return "", fmt.Errorf("decode data: %w", err)
	}
	iv, err := codec.HexToBytes(ivHex)
	if err != nil {
		return "", fmt.Errorf("decode iv: %w", err)
	}
	if len(iv) != crypto.BlockSize {
		return "", fmt.Errorf("%w: iv is %d bytes, want %d", codec.ErrMalformedInput, len(iv), crypto.BlockSize)
	}
	if len(data)%crypto.BlockSize != 0 {
		return "", fmt.Errorf("%w: data is %d bytes", crypto.ErrInvalidCiphertextLength, len(data))
	}

	key, err := session.RecordKey(iv)
	if err != nil {
		return "", fmt.Errorf("derive record key: %w", err)
	}
	defer clear(key)

	plain, err := c.engine.Decrypt(data, key, iv)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}
	defer clear(plain)

	return codec.UTF8Decode(plain)
}
