// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gaspass/internal/crypto"
	"github.com/MKhiriev/gaspass/internal/logger"
	"github.com/MKhiriev/gaspass/internal/store"
	"github.com/MKhiriev/gaspass/models"
)

type vaultService struct {
	keyring *crypto.Keyring
	codec   RecordCodec
	records store.RecordStore
	logger  *logger.Logger
}

// NewVaultService wires the session keyring, the record codec and the
// backing store into a [VaultService].
func NewVaultService(keyring *crypto.Keyring, codec RecordCodec, records store.RecordStore, logger *logger.Logger) VaultService {
	return &vaultService{
		keyring: keyring,
		codec:   codec,
		records: records,
		logger:  logger,
	}
}

func (v *vaultService) Unlock(ctx context.Context, passphrase string) error {
	log := logger.FromContext(ctx)

	sessionID, err := v.keyring.Unlock(passphrase)
	if err != nil {
		log.Err(err).Str("func", "vaultService.Unlock").Msg("failed to derive session key")
		return fmt.Errorf("unlock vault: %w", err)
	}

	log.Debug().Str("func", "vaultService.Unlock").Str("session_id", sessionID).Msg("vault unlocked")
	return nil
}

func (v *vaultService) Lock(ctx context.Context) {
	v.keyring.Lock()
	logger.FromContext(ctx).Debug().Str("func", "vaultService.Lock").Msg("vault locked")
}

func (v *vaultService) Add(ctx context.Context, site, user, password string) (models.Record, error) {
	log := logger.FromContext(ctx)

	var envelope models.CipherEnvelope
	err := v.keyring.With(func(session *crypto.Session) error {
		var err error
		envelope, err = v.codec.Encrypt(session, password)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "vaultService.Add").
			Str("site", site).
			Str("user", user).
			Msg("failed to encrypt password")
		return models.Record{}, fmt.Errorf("encrypt password for %s: %w", site, err)
	}

	record := models.NewRecord(site, user, envelope)
	if err = v.records.PostData(ctx, record); err != nil {
		log.Err(err).
			Str("func", "vaultService.Add").
			Str("site", site).
			Str("user", user).
			Msg("failed to post record")
		return models.Record{}, fmt.Errorf("post record for %s: %w", site, err)
	}

	log.Info().Str("func", "vaultService.Add").Str("site", site).Str("user", user).Msg("record added")
	return record, nil
}

func (v *vaultService) Search(ctx context.Context, term string) ([]models.Record, error) {
	records, err := v.records.Search(ctx, term)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultService.Search").
			Str("term", term).
			Msg("search failed")
		return nil, fmt.Errorf("search records: %w", err)
	}

	return records, nil
}

func (v *vaultService) Reveal(ctx context.Context, record models.Record) (string, error) {
	if !record.HasSecret() {
		return "", nil
	}

	var plaintext string
	err := v.keyring.With(func(session *crypto.Session) error {
		var err error
		plaintext, err = v.codec.Decrypt(session, record.PasswordCipher, record.IV)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultService.Reveal").
			Str("site", record.Site).
			Str("user", record.User).
			Msg("failed to decrypt record")
		return "", fmt.Errorf("%w: %w", ErrCouldNotDecrypt, err)
	}

	return plaintext, nil
}
