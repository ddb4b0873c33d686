// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/gaspass/internal/codec"
	"github.com/MKhiriev/gaspass/internal/crypto"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// validate checks that the final merged [StructuredConfig] is usable before
// anything is derived from it.
func (cfg *StructuredConfig) validate() error {
	mode, err := crypto.ParseMode(cfg.Crypto.KDFMode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCryptoConfigs, err)
	}

	if _, err = crypto.ParsePadding(cfg.Crypto.Padding); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCryptoConfigs, err)
	}

	if mode == crypto.ModeHardened {
		salt, err := codec.HexToBytes(cfg.Crypto.SharedSalt)
		if err != nil {
			return fmt.Errorf("%w: shared salt: %w", ErrInvalidCryptoConfigs, err)
		}
		if len(salt) == 0 {
			return fmt.Errorf("%w: shared salt is required in hardened mode", ErrInvalidCryptoConfigs)
		}
	}

	switch strings.ToLower(cfg.Storage.DB.Driver) {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	return nil
}
