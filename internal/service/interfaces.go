// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/gaspass/internal/crypto"
	"github.com/MKhiriev/gaspass/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RecordCodec turns a plaintext secret into a [models.CipherEnvelope] and
// back. Every call is synchronous and only reads the session.
//
// Plaintext must not contain a NUL byte: the envelope marks the end of the
// secret with a single 0x00 terminator and the decrypted buffer is cut at
// the first one.
type RecordCodec interface {
	// Encrypt generates a fresh random IV, derives the record key from it and
	// returns the hex ciphertext and hex IV. Returns a wrapped
	// codec.ErrMalformedInput when plaintext contains a NUL byte.
	Encrypt(session *crypto.Session, plaintext string) (models.CipherEnvelope, error)

	// Decrypt opens the envelope given by dataHex and ivHex. An empty data or
	// IV field means "no secret stored" and yields "" without error.
	//
	// Decryption is unauthenticated: a wrong session key or a corrupted
	// envelope produces wrong plaintext or a codec.ErrDecodeFailure, never a
	// dedicated integrity error.
	Decrypt(session *crypto.Session, dataHex, ivHex string) (string, error)
}

// VaultService is the host-facing vault: it owns the session lifecycle and
// moves envelopes between the [RecordCodec] and the record store.
type VaultService interface {
	// Unlock derives a new session from passphrase, replacing the active one.
	Unlock(ctx context.Context, passphrase string) error

	// Lock wipes the active session.
	Lock(ctx context.Context)

	// Add encrypts password and posts the (site, user, cipher, iv) row.
	Add(ctx context.Context, site, user, password string) (models.Record, error)

	// Search returns the rows matching term with their envelopes untouched.
	// Nothing is decrypted.
	Search(ctx context.Context, term string) ([]models.Record, error)

	// Reveal decrypts the password of a row on demand. Rows without a secret
	// reveal as "". Failures wrap ErrCouldNotDecrypt.
	Reveal(ctx context.Context, record models.Record) (string, error)
}

// VaultServiceWrapper decorates a [VaultService] with extra behaviour such
// as input validation.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}

// AppInfoService reports the build metadata of the running binary.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.AppBuildInfo
	Version(ctx context.Context) string
}
