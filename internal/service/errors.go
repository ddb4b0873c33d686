// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrCouldNotDecrypt wraps every failure of [VaultService.Reveal]; hosts
	// show it to the user instead of the underlying cause.
	ErrCouldNotDecrypt = errors.New("could not decrypt")

	ErrValidationNoSite       = errors.New("no site provided")
	ErrValidationNoUser       = errors.New("no user provided")
	ErrValidationNoPassword   = errors.New("no password provided")
	ErrValidationNoPassphrase = errors.New("no passphrase provided")
)
