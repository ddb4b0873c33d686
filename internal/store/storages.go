// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/gaspass/internal/config"
	"github.com/MKhiriev/gaspass/internal/logger"
)

type Storages struct {
	RecordStore RecordStore

	db *DB
}

// NewStorages connects to the configured database, applies the migrations
// and builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch Dialect(strings.ToLower(cfg.DB.Driver)) {
	case DialectSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.DB.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to migrate database")
		db.Close()
		return nil, err
	}

	return &Storages{
		RecordStore: NewRecordRepository(db, log),
		db:          db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
