// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Mode selects the key derivation strategy. It is resolved once per
// deployment from configuration, never per call.
type Mode string

const (
	// ModeDirect derives the key as SHA-256(passphrase). No work factor: only
	// suitable when passphrase strength is guaranteed elsewhere.
	ModeDirect Mode = "direct"

	// ModeHardened combines a per-record PBKDF2 stretch salted with the record
	// IV and a session-wide PBKDF2 stretch salted with the deployment shared
	// salt under an HMAC keyed by the passphrase.
	ModeHardened Mode = "hardened"
)

// Default parameters of the hardened mode.
const (
	DefaultSharedIterations = 1000
	DefaultRecordIterations = 5000
	HardenedKeyLen          = 16 // AES-128
)

// ParseMode maps a configuration value onto a [Mode]. Matching is case
// insensitive.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeDirect, ModeHardened:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// NewKeyDeriver returns the [KeyDeriver] for mode. sharedSalt is only used
// (and required) by [ModeHardened].
func NewKeyDeriver(mode Mode, sharedSalt []byte) (KeyDeriver, error) {
	switch mode {
	case ModeDirect:
		return NewDirectKeyDeriver(), nil
	case ModeHardened:
		return NewHardenedKeyDeriver(sharedSalt)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// directKeyDeriver implements [ModeDirect].
type directKeyDeriver struct{}

// NewDirectKeyDeriver returns the single-factor SHA-256 deriver. The session
// key is the 32-byte digest and is used as-is (AES-256) for every record.
func NewDirectKeyDeriver() KeyDeriver {
	return directKeyDeriver{}
}

func (directKeyDeriver) Mode() Mode { return ModeDirect }

func (directKeyDeriver) SessionKey(passphrase []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrInvalidPassphraseBytes
	}
	sum := sha256.Sum256(passphrase)
	return sum[:], nil
}

func (directKeyDeriver) RecordKey(passphrase, sessionKey, iv []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrInvalidPassphraseBytes
	}
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("%w: iv is %d bytes, want %d", ErrInvalidSalt, len(iv), BlockSize)
	}
	return append([]byte(nil), sessionKey...), nil
}

// hardenedKeyDeriver implements [ModeHardened].
type hardenedKeyDeriver struct {
	sharedSalt []byte

	// PBKDF2 tuning. Kept in the struct so tests can lower the work factor;
	// production code always uses the defaults.
	sharedIterations int
	recordIterations int
	keyLen           int
}

// NewHardenedKeyDeriver returns the two-factor deriver bound to sharedSalt:
//
//	sharedKey = PBKDF2-HMAC-SHA1(passphrase, sharedSalt, 1000, 16)
//	recordKM  = PBKDF2-HMAC-SHA1(passphrase, iv, 5000, 16)
//	key       = HMAC-SHA256(passphrase, recordKM || sharedKey)[:16]
//
// Returns ErrInvalidSalt when sharedSalt is empty.
func NewHardenedKeyDeriver(sharedSalt []byte) (KeyDeriver, error) {
	d, err := newHardenedKeyDeriver(sharedSalt, DefaultSharedIterations, DefaultRecordIterations)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func newHardenedKeyDeriver(sharedSalt []byte, sharedIter, recordIter int) (*hardenedKeyDeriver, error) {
	if len(sharedSalt) == 0 {
		return nil, fmt.Errorf("%w: shared salt is empty", ErrInvalidSalt)
	}
	return &hardenedKeyDeriver{
		sharedSalt:       append([]byte(nil), sharedSalt...),
		sharedIterations: sharedIter,
		recordIterations: recordIter,
		keyLen:           HardenedKeyLen,
	}, nil
}

func (h *hardenedKeyDeriver) Mode() Mode { return ModeHardened }

// SessionKey returns the shared key. It is derived once when the passphrase
// is submitted and cached by the [Session].
func (h *hardenedKeyDeriver) SessionKey(passphrase []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrInvalidPassphraseBytes
	}
	return pbkdf2.Key(passphrase, h.sharedSalt, h.sharedIterations, h.keyLen, sha1.New), nil
}

func (h *hardenedKeyDeriver) RecordKey(passphrase, sessionKey, iv []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, ErrInvalidPassphraseBytes
	}
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("%w: iv is %d bytes, want %d", ErrInvalidSalt, len(iv), BlockSize)
	}

	recordKM := pbkdf2.Key(passphrase, iv, h.recordIterations, h.keyLen, sha1.New)

	mac := hmac.New(sha256.New, passphrase)
	mac.Write(recordKM)
	mac.Write(sessionKey)
	return mac.Sum(nil)[:h.keyLen], nil
}
