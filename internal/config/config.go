// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EnvPrefix is prepended to every environment variable read by [parseEnv].
const EnvPrefix = "GASPASS_"

// StructuredConfig is the top-level configuration container for gaspass.
// It is populated by merging values from command-line flags, environment
// variables, an optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Crypto selects the key derivation strategy and the block padding.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Storage holds the backing store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: GASPASS_CONFIG, flag: -c / --config.
	JSONFilePath string `env:"CONFIG"`
}

// Crypto holds the settings of the encryption envelope.
type Crypto struct {
	// KDFMode is "direct" (SHA-256 of the passphrase) or "hardened"
	// (PBKDF2 with a per-record IV salt and a deployment-wide shared salt).
	// Env: GASPASS_CRYPTO_KDF_MODE
	KDFMode string `env:"KDF_MODE"`

	// SharedSalt is the hex encoded deployment-wide salt. Required in
	// hardened mode, ignored otherwise.
	// Env: GASPASS_CRYPTO_SHARED_SALT
	SharedSalt string `env:"SHARED_SALT"`

	// Padding is "pkcs7" or "zero".
	// Env: GASPASS_CRYPTO_PADDING
	Padding string `env:"PADDING"`
}

// Storage groups the configuration of the record store.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver is the database/sql driver name: "sqlite3" or "pgx".
	// Env: GASPASS_STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name. A file path for sqlite3, a
	// postgres:// URL for pgx.
	// Env: GASPASS_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: GASPASS_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. The first source that sets a field wins:
//  1. Command-line flags bound by [BindFlags]
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// flags may be nil when no flag set is in use.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
