// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"

	"github.com/MKhiriev/gaspass/internal/service"
)

// Prompter reads a secret from the user without echoing it.
type Prompter interface {
	ReadSecret(prompt string) ([]byte, error)
}

// Clipboard receives revealed passwords when --copy is set.
type Clipboard interface {
	WriteAll(text string) error
}

// VaultOpener builds the vault for one command run. The returned context
// carries the configured logger; the closer releases the store.
type VaultOpener func(ctx context.Context) (context.Context, service.VaultService, io.Closer, error)
