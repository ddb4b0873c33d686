// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/gaspass/models"
)

// VaultValidationService rejects obviously bad input before it reaches the
// wrapped [VaultService].
type VaultValidationService struct {
	inner VaultService
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{}
}

func (v *VaultValidationService) Unlock(ctx context.Context, passphrase string) error {
	if passphrase == "" {
		return ErrValidationNoPassphrase
	}
	return v.inner.Unlock(ctx, passphrase)
}

func (v *VaultValidationService) Lock(ctx context.Context) {
	v.inner.Lock(ctx)
}

func (v *VaultValidationService) Add(ctx context.Context, site, user, password string) (models.Record, error) {
	site, user = strings.TrimSpace(site), strings.TrimSpace(user)

	switch {
	case site == "":
		return models.Record{}, fmt.Errorf("error during record validation: %w", ErrValidationNoSite)
	case user == "":
		return models.Record{}, fmt.Errorf("error during record validation: %w", ErrValidationNoUser)
	case password == "":
		return models.Record{}, fmt.Errorf("error during record validation: %w", ErrValidationNoPassword)
	}

	return v.inner.Add(ctx, site, user, password)
}

func (v *VaultValidationService) Search(ctx context.Context, term string) ([]models.Record, error) {
	return v.inner.Search(ctx, strings.TrimSpace(term))
}

func (v *VaultValidationService) Reveal(ctx context.Context, record models.Record) (string, error) {
	return v.inner.Reveal(ctx, record)
}

func (v *VaultValidationService) Wrap(inner VaultService) VaultService {
	v.inner = inner
	return v
}
