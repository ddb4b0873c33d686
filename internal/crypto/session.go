// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Session is the key material of one unlocked vault: the passphrase bytes
// and the session key derived from them at submit time. A Session is
// created by [NewSession] (or [Keyring.Unlock]) and wiped by [Session.Clear].
// It is read-only between the two, so concurrent readers need no locking.
type Session struct {
	id         string
	passphrase []byte
	sessionKey []byte
	deriver    KeyDeriver
}

// NewSession derives the session key for passphrase with deriver.
// Returns ErrInvalidPassphraseBytes (wrapped) for an empty passphrase.
func NewSession(passphrase string, deriver KeyDeriver) (*Session, error) {
	pass := []byte(passphrase)

	sessionKey, err := deriver.SessionKey(pass)
	if err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}

	return &Session{
		id:         uuid.NewString(),
		passphrase: pass,
		sessionKey: sessionKey,
		deriver:    deriver,
	}, nil
}

// ID returns a random identifier of the session. It carries no key material
// and is safe to log.
func (s *Session) ID() string {
	return s.id
}

// Mode reports the derivation mode the session was created with.
func (s *Session) Mode() Mode {
	return s.deriver.Mode()
}

// RecordKey derives the AES key of the record whose IV is iv. Deriving twice
// with the same IV yields identical bytes.
func (s *Session) RecordKey(iv []byte) ([]byte, error) {
	if s.passphrase == nil {
		return nil, ErrVaultLocked
	}
	return s.deriver.RecordKey(s.passphrase, s.sessionKey, iv)
}

// Clear overwrites the passphrase and session key with zeros. The session is
// unusable afterwards.
func (s *Session) Clear() {
	clear(s.passphrase)
	clear(s.sessionKey)
	s.passphrase = nil
	s.sessionKey = nil
}

// Keyring owns the active [Session] of a multi-threaded host. Unlock and Lock
// take the write lock and therefore wait for in-flight operations started
// through [Keyring.With] to drain.
type Keyring struct {
	deriver KeyDeriver

	mu      sync.RWMutex
	session *Session
}

// NewKeyring returns a locked keyring that derives keys with deriver.
func NewKeyring(deriver KeyDeriver) *Keyring {
	return &Keyring{deriver: deriver}
}

// Unlock replaces the active session with one derived from passphrase and
// returns the new session ID. The previous session, if any, is cleared.
func (k *Keyring) Unlock(passphrase string) (string, error) {
	session, err := NewSession(passphrase, k.deriver)
	if err != nil {
		return "", err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if k.session != nil {
		k.session.Clear()
	}
	k.session = session

	return session.ID(), nil
}

// Lock clears and drops the active session. Safe to call when locked.
func (k *Keyring) Lock() {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.session != nil {
		k.session.Clear()
		k.session = nil
	}
}

// Unlocked reports whether a session is active.
func (k *Keyring) Unlocked() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()

	return k.session != nil
}

// With runs fn with the active session while holding the read lock.
// Returns ErrVaultLocked without calling fn when no session is active.
func (k *Keyring) With(fn func(*Session) error) error {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.session == nil {
		return ErrVaultLocked
	}
	return fn(k.session)
}
