// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/gaspass/models"
)

const recordsTable = "records"

var recordColumns = []string{"site", "username", "password_cipher", "iv"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildSearchRecordsQuery selects the rows whose site or username contains
// term, ignoring case. LIKE wildcards in term match literally. An empty term
// selects every row.
func buildSearchRecordsQuery(b sq.StatementBuilderType, term string) (string, []any, error) {
	query := b.Select(recordColumns...).
		From(recordsTable).
		OrderBy("site", "username", "created_at")

	if term != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		query = query.Where(sq.Or{
			sq.Expr(`LOWER(site) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(username) LIKE ? ESCAPE '\'`, pattern),
		})
	}

	return query.ToSql()
}

// buildInsertRecordQuery inserts record under the row key id.
func buildInsertRecordQuery(b sq.StatementBuilderType, id string, record models.Record) (string, []any, error) {
	return b.Insert(recordsTable).
		Columns(append([]string{"id"}, recordColumns...)...).
		Values(id, record.Site, record.User, record.PasswordCipher, record.IV).
		ToSql()
}
