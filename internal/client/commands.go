// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/gaspass/internal/service"
	"github.com/MKhiriev/gaspass/models"
)

// ErrRecordNotFound is returned by reveal when no row has the given site and
// user.
var ErrRecordNotFound = errors.New("no record for site and user")

const lockedMarker = "[locked]"

func (a *App) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <site> <user>",
		Short: "Encrypt a password and store it for site and user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			site, user := args[0], args[1]

			return a.withVault(cmd.Context(), true, func(ctx context.Context, vault service.VaultService) error {
				password, err := a.prompter.ReadSecret("Password for " + site + ": ")
				if err != nil {
					return err
				}
				defer clear(password)

				record, err := vault.Add(ctx, site, user, string(password))
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "added %s for %s\n", record.User, record.Site)
				return nil
			})
		},
	}
}

func (a *App) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [term]",
		Short: "List stored rows whose site or user contains term",
		Long: `List stored rows whose site or user contains term, ignoring case.
Nothing is decrypted: rows holding a password are shown as ` + lockedMarker + `.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, "")

			return a.withVault(cmd.Context(), false, func(ctx context.Context, vault service.VaultService) error {
				records, err := vault.Search(ctx, term)
				if err != nil {
					return err
				}

				return printRecords(cmd, records)
			})
		},
	}
}

func (a *App) newRevealCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "reveal <site> <user>",
		Short: "Decrypt the password stored for site and user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			site, user := args[0], args[1]

			return a.withVault(cmd.Context(), true, func(ctx context.Context, vault service.VaultService) error {
				record, err := findRecord(ctx, vault, site, user)
				if err != nil {
					return err
				}

				password, err := vault.Reveal(ctx, record)
				if err != nil {
					if errors.Is(err, service.ErrCouldNotDecrypt) {
						return service.ErrCouldNotDecrypt
					}
					return err
				}

				if copyToClipboard {
					if err = a.clipboard.WriteAll(password); err != nil {
						return fmt.Errorf("copy to clipboard: %w", err)
					}
					fmt.Fprintln(cmd.OutOrStdout(), "password copied to clipboard")
					return nil
				}

				fmt.Fprintln(cmd.OutOrStdout(), password)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the password to the clipboard instead of printing it")

	return cmd
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.appInfo.Version(cmd.Context()))
			return nil
		},
	}
}

// findRecord returns the most recently added row with exactly site and user.
// Search orders rows by creation time within a site and user.
func findRecord(ctx context.Context, vault service.VaultService, site, user string) (models.Record, error) {
	records, err := vault.Search(ctx, site)
	if err != nil {
		return models.Record{}, err
	}

	var (
		found models.Record
		ok    bool
	)
	for _, r := range records {
		if r.Site == site && r.User == user {
			found, ok = r, true
		}
	}
	if !ok {
		return models.Record{}, fmt.Errorf("%w: %s %s", ErrRecordNotFound, site, user)
	}

	return found, nil
}

func printRecords(cmd *cobra.Command, records []models.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no records found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SITE\tUSER\tPASSWORD")
	for _, r := range records {
		secret := "-"
		if r.HasSecret() {
			secret = lockedMarker
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Site, r.User, secret)
	}
	return w.Flush()
}
