// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/gaspass/internal/logger"
	"github.com/MKhiriev/gaspass/models"
)

const (
	postDataAttempts   = 2
	postDataRetryDelay = 200 * time.Millisecond
)

type recordRepository struct {
	*DB
	retryDelay time.Duration
	logger     *logger.Logger
}

// NewRecordRepository returns the SQL backed [RecordStore].
func NewRecordRepository(db *DB, logger *logger.Logger) RecordStore {
	return &recordRepository{
		DB:         db,
		retryDelay: postDataRetryDelay,
		logger:     logger,
	}
}

func (r *recordRepository) Search(ctx context.Context, term string) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchRecordsQuery(r.builder(), term)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Search").Msg("failed to build search query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.Search").Msg("failed to execute search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0)
	for rows.Next() {
		var record models.Record
		if err = rows.Scan(&record.Site, &record.User, &record.PasswordCipher, &record.IV); err != nil {
			log.Err(err).Str("func", "recordRepository.Search").Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "recordRepository.Search").Msg("error during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

// PostData inserts record under a fresh row key. A retryable failure is
// attempted once more after a short delay.
func (r *recordRepository) PostData(ctx context.Context, record models.Record) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRecordQuery(r.builder(), uuid.NewString(), record)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.PostData").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 1; ; attempt++ {
		err = r.insert(ctx, query, args)
		if err == nil {
			return nil
		}

		class := r.errorClassificator.Classify(err)
		if class != Retryable || attempt >= postDataAttempts {
			log.Err(err).
				Str("func", "recordRepository.PostData").
				Str("site", record.Site).
				Int("attempt", attempt).
				Stringer("class", class).
				Msg("failed to insert record")
			return err
		}

		log.Warn().
			Err(err).
			Str("func", "recordRepository.PostData").
			Int("attempt", attempt).
			Msg("retrying record insert")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.retryDelay):
		}
	}
}

func (r *recordRepository) insert(ctx context.Context, query string, args []any) error {
	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotSaved
	}

	return nil
}
