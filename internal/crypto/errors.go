// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors of the key derivation and block cipher layers. They are
// always returned wrapped; use [errors.Is] to match.
var (
	// ErrInvalidCiphertextLength is returned when a ciphertext is empty or is
	// not a multiple of the AES block size.
	ErrInvalidCiphertextLength = errors.New("invalid ciphertext length")

	// ErrInvalidPassphraseBytes is returned when key derivation is asked to
	// work with an empty passphrase.
	ErrInvalidPassphraseBytes = errors.New("invalid passphrase bytes")

	// ErrInvalidSalt is returned when the shared salt is missing or a record
	// IV used as salt does not have the block size length.
	ErrInvalidSalt = errors.New("invalid salt")

	// ErrVaultLocked is returned by [Keyring.With] when no passphrase has been
	// submitted yet or the session was locked.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrUnknownMode is returned by [ParseMode] for an unsupported KDF mode.
	ErrUnknownMode = errors.New("unknown key derivation mode")

	// ErrUnknownPadding is returned by [ParsePadding] for an unsupported
	// padding name.
	ErrUnknownPadding = errors.New("unknown padding")
)
