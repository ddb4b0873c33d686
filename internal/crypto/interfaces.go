// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a passphrase into the AES key of a single record.
//
// Derivation is split in two steps so that the expensive, record-independent
// part runs once per session:
//
//	sessionKey = SessionKey(passphrase)              (on unlock, cached)
//	recordKey  = RecordKey(passphrase, sessionKey, iv) (on every encrypt/decrypt)
//
// The record IV doubles as the per-record salt, so decryption re-derives the
// exact same key from the stored IV and nothing else has to be persisted.
type KeyDeriver interface {
	// Mode reports which derivation strategy the deriver implements.
	Mode() Mode

	// SessionKey derives the session-wide key material from passphrase.
	// Returns ErrInvalidPassphraseBytes for an empty passphrase.
	SessionKey(passphrase []byte) ([]byte, error)

	// RecordKey derives the AES key for the record whose IV is iv.
	// Returns ErrInvalidPassphraseBytes for an empty passphrase and
	// ErrInvalidSalt when iv is not BlockSize bytes long.
	RecordKey(passphrase, sessionKey, iv []byte) ([]byte, error)
}

// BlockCipher encrypts and decrypts byte sequences with a key and IV.
// Implementations are unauthenticated: decrypting with the wrong key or a
// corrupted ciphertext does not fail, it yields garbage.
type BlockCipher interface {
	// Encrypt pads plain and encrypts it. The result is block aligned.
	Encrypt(plain, key, iv []byte) ([]byte, error)

	// Decrypt decrypts a block aligned ciphertext and strips the padding.
	// Returns ErrInvalidCiphertextLength for unaligned input.
	Decrypt(ciphertext, key, iv []byte) ([]byte, error)
}
