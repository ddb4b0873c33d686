// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/gaspass/internal/codec"
	"github.com/MKhiriev/gaspass/internal/config"
	"github.com/MKhiriev/gaspass/internal/crypto"
	"github.com/MKhiriev/gaspass/internal/logger"
	"github.com/MKhiriev/gaspass/internal/store"
)

// Services groups the service layer of the vault host.
type Services struct {
	Keyring      *crypto.Keyring
	RecordCodec  RecordCodec
	VaultService VaultService
}

// NewServices resolves the key derivation strategy and padding from cfg
// once, then wires the keyring, the record codec and the validated vault
// service on top of storages.
//
// Returns an error for an unknown mode or padding, or when the shared salt
// of the hardened mode is missing or not valid hex.
func NewServices(cfg config.Crypto, storages *store.Storages, logger *logger.Logger) (*Services, error) {
	mode, err := crypto.ParseMode(cfg.KDFMode)
	if err != nil {
		return nil, fmt.Errorf("resolve kdf mode: %w", err)
	}

	padding, err := crypto.ParsePadding(cfg.Padding)
	if err != nil {
		return nil, fmt.Errorf("resolve padding: %w", err)
	}

	var sharedSalt []byte
	if mode == crypto.ModeHardened {
		if sharedSalt, err = codec.HexToBytes(cfg.SharedSalt); err != nil {
			return nil, fmt.Errorf("decode shared salt: %w", err)
		}
	}

	deriver, err := crypto.NewKeyDeriver(mode, sharedSalt)
	if err != nil {
		return nil, fmt.Errorf("create key deriver: %w", err)
	}

	keyring := crypto.NewKeyring(deriver)
	recordCodec := NewRecordCodec(crypto.NewCBCEngine(padding))
	vault := NewVaultValidationService().Wrap(
		NewVaultService(keyring, recordCodec, storages.RecordStore, logger),
	)

	logger.Debug().
		Str("kdf_mode", string(mode)).
		Str("padding", string(padding)).
		Msg("services created")

	return &Services{
		Keyring:      keyring,
		RecordCodec:  recordCodec,
		VaultService: vault,
	}, nil
}
