// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Record is one row of the backing store. The store only ever sees these four
// opaque strings; the plaintext password is derivable on demand with the
// session key and is never stored.
type Record struct {
	Site string `json:"site"`
	User string `json:"user"`

	// PasswordCipher is the hex ciphertext of the password, empty when no
	// secret is stored for the row.
	PasswordCipher string `json:"password_cipher,omitempty"`

	// IV is the hex initialization vector paired with PasswordCipher.
	IV string `json:"iv,omitempty"`
}

// HasSecret reports whether the row carries an encrypted password.
func (r Record) HasSecret() bool {
	return r.PasswordCipher != "" && r.IV != ""
}

// Envelope returns the cipher envelope stored in the row.
func (r Record) Envelope() CipherEnvelope {
	return CipherEnvelope{Data: r.PasswordCipher, IV: r.IV}
}

// NewRecord builds the row handed to the store for an encrypted password.
func NewRecord(site, user string, env CipherEnvelope) Record {
	return Record{Site: site, User: user, PasswordCipher: env.Data, IV: env.IV}
}
