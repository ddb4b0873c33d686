// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CipherEnvelope is the external representation of one encrypted secret:
// lower-case hex ciphertext and the hex IV it was produced with. It can only
// be opened with the session key that was active when it was created.
type CipherEnvelope struct {
	Data string `json:"data"`
	IV   string `json:"iv"`
}

// IsEmpty reports whether the envelope holds no secret.
func (e CipherEnvelope) IsEmpty() bool {
	return e.Data == "" || e.IV == ""
}
