// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/gaspass/internal/config"
	"github.com/MKhiriev/gaspass/internal/logger"
	"github.com/MKhiriev/gaspass/internal/service"
	"github.com/MKhiriev/gaspass/internal/store"
	"github.com/MKhiriev/gaspass/models"
)

// App is the gaspass command-line host.
type App struct {
	appInfo   service.AppInfoService
	flags     *config.StructuredConfig
	prompter  Prompter
	clipboard Clipboard
	open      VaultOpener
}

// NewApp returns a host that reads secrets from the terminal and opens the
// vault described by flags, environment and config file.
func NewApp(buildInfo models.AppBuildInfo) *App {
	a := &App{
		appInfo:   service.NewAppInfoService(buildInfo),
		prompter:  newTerminalPrompter(os.Stdin, os.Stderr),
		clipboard: systemClipboard{},
	}
	a.open = a.openVault
	return a
}

// Run executes the command line args against the vault.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.Command()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// Command builds the cobra command tree. Flags are bound to the app on
// every call.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "gaspass",
		Short:         "gaspass keeps site passwords encrypted under one passphrase",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	a.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		a.newAddCmd(),
		a.newSearchCmd(),
		a.newRevealCmd(),
		a.newVersionCmd(),
	)

	return root
}

// openVault loads the configuration and wires logger, storages and services.
func (a *App) openVault(ctx context.Context) (context.Context, service.VaultService, io.Closer, error) {
	cfg, err := config.GetStructuredConfig(a.flags)
	if err != nil {
		return ctx, nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.NewLogger("gaspass").AtLevel(cfg.Log.Level)
	if err != nil {
		return ctx, nil, nil, err
	}
	ctx = log.WithContext(ctx)

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return ctx, nil, nil, fmt.Errorf("open store: %w", err)
	}

	services, err := service.NewServices(cfg.Crypto, storages, log)
	if err != nil {
		storages.Close()
		return ctx, nil, nil, fmt.Errorf("create services: %w", err)
	}

	return ctx, services.VaultService, storages, nil
}

// withVault opens the vault, runs fn and releases the store. When unlock is
// set the passphrase is prompted for first and the session is locked after
// fn returns.
func (a *App) withVault(ctx context.Context, unlock bool, fn func(ctx context.Context, vault service.VaultService) error) error {
	ctx, vault, closer, err := a.open(ctx)
	if err != nil {
		return err
	}
	defer closer.Close()

	if unlock {
		passphrase, err := a.prompter.ReadSecret("Passphrase: ")
		if err != nil {
			return err
		}
		err = vault.Unlock(ctx, string(passphrase))
		clear(passphrase)
		if err != nil {
			return err
		}
		defer vault.Lock(ctx)
	}

	return fn(ctx, vault)
}
