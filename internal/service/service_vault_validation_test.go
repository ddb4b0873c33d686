package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/gaspass/internal/mock"
	"github.com/MKhiriev/gaspass/internal/service"
	"github.com/MKhiriev/gaspass/models"
)

func newValidatedVault(t *testing.T) (service.VaultService, *mock.MockVaultService) {
	t.Helper()
	inner := mock.NewMockVaultService(gomock.NewController(t))
	return service.NewVaultValidationService().Wrap(inner), inner
}

func TestVaultValidation_Unlock(t *testing.T) {
	vault, inner := newValidatedVault(t)
	ctx := context.Background()

	require.ErrorIs(t, vault.Unlock(ctx, ""), service.ErrValidationNoPassphrase)

	inner.EXPECT().Unlock(ctx, " spaces are kept ").Return(nil)
	require.NoError(t, vault.Unlock(ctx, " spaces are kept "))
}

func TestVaultValidation_Lock(t *testing.T) {
	vault, inner := newValidatedVault(t)
	ctx := context.Background()

	inner.EXPECT().Lock(ctx)
	vault.Lock(ctx)
}

func TestVaultValidation_Add(t *testing.T) {
	tests := []struct {
		name     string
		site     string
		user     string
		password string
		wantErr  error
	}{
		{name: "missing site", site: "  ", user: "alice", password: "pw", wantErr: service.ErrValidationNoSite},
		{name: "missing user", site: "example.com", user: "", password: "pw", wantErr: service.ErrValidationNoUser},
		{name: "missing password", site: "example.com", user: "alice", password: "", wantErr: service.ErrValidationNoPassword},
		{name: "site checked first", site: "", user: "", password: "", wantErr: service.ErrValidationNoSite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vault, _ := newValidatedVault(t)

			_, err := vault.Add(context.Background(), tt.site, tt.user, tt.password)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "error during record validation")
		})
	}
}

func TestVaultValidation_AddTrimsSiteAndUser(t *testing.T) {
	vault, inner := newValidatedVault(t)
	ctx := context.Background()

	want := models.Record{Site: "example.com", User: "alice"}
	inner.EXPECT().Add(ctx, "example.com", "alice", " pw ").Return(want, nil)

	got, err := vault.Add(ctx, "  example.com ", "\talice\n", " pw ")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVaultValidation_SearchTrimsTerm(t *testing.T) {
	vault, inner := newValidatedVault(t)
	ctx := context.Background()

	inner.EXPECT().Search(ctx, "mail").Return(nil, nil)

	_, err := vault.Search(ctx, "  mail ")
	require.NoError(t, err)
}

func TestVaultValidation_RevealPassesThrough(t *testing.T) {
	vault, inner := newValidatedVault(t)
	ctx := context.Background()
	record := models.Record{Site: "s", User: "u", PasswordCipher: "aa", IV: "bb"}

	inner.EXPECT().Reveal(ctx, record).Return("secret", nil)

	got, err := vault.Reveal(ctx, record)
	require.NoError(t, err)
	assert.Equal(t, "secret", got)
}
