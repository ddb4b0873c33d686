// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
)

// Default values applied to fields no other source has set.
const (
	DefaultKDFMode  = "direct"
	DefaultPadding  = "pkcs7"
	DefaultDriver   = "sqlite3"
	DefaultLogLevel = "warn"

	defaultDBFile = "vault.db"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Crypto: Crypto{
			KDFMode: DefaultKDFMode,
			Padding: DefaultPadding,
		},
		Storage: Storage{
			DB: DB{
				Driver: DefaultDriver,
				DSN:    defaultDSN(),
			},
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// defaultDSN places the sqlite vault file in the user's config directory,
// falling back to the working directory.
func defaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return defaultDBFile
	}
	return filepath.Join(dir, "gaspass", defaultDBFile)
}
