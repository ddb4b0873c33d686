// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidCryptoConfigs indicates an unknown KDF mode or padding, or a
	// missing or malformed shared salt in hardened mode.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidStorageConfigs indicates an unsupported driver or an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
