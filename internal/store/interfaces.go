// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/gaspass/models"
)

// RecordStore is the backing store of vault rows. It only ever sees the four
// opaque strings of a [models.Record].
type RecordStore interface {
	// Search returns every row whose site or user contains term, case
	// insensitively. An empty term matches all rows.
	Search(ctx context.Context, term string) ([]models.Record, error)
	// PostData appends record as a new row.
	PostData(ctx context.Context, record models.Record) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
