// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the gaspass command-line host.
//
// Each command loads the configuration, opens the record store, resolves
// the key derivation strategy once and runs a single vault operation. The
// passphrase is read from the terminal without echo and the session is
// locked again before the command returns.
package client
