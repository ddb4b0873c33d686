// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs and returns the config
// the parsed values are written into.
//
// Flags:
//
//	--kdf-mode      key derivation mode (direct|hardened)
//	--shared-salt   hex encoded shared salt for hardened mode
//	--padding       block padding (pkcs7|zero)
//	--db-driver     database driver (sqlite3|pgx)
//	-d/--dsn        database DSN
//	--log-level     log level
//	-c/--config     json file path with configs
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := new(StructuredConfig)

	fs.StringVar(&cfg.Crypto.KDFMode, "kdf-mode", "", "Key derivation mode (direct|hardened)")
	fs.StringVar(&cfg.Crypto.SharedSalt, "shared-salt", "", "Hex encoded shared salt for hardened mode")
	fs.StringVar(&cfg.Crypto.Padding, "padding", "", "Block padding (pkcs7|zero)")
	fs.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", "Database driver (sqlite3|pgx)")
	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "Database DSN")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")

	return cfg
}
