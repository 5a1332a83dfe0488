// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// AccessTokenKey is the client_state key under which the bearer token lives.
const AccessTokenKey = "access_token"

const clientStateTable = "client_state"

// sqlite uses "?" placeholders, which is squirrel's default format.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildGetStateQuery selects the value stored under key.
func buildGetStateQuery(key string) (string, []any, error) {
	return sqlite.
		Select("value").
		From(clientStateTable).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
}

// buildUpsertStateQuery inserts value under key or overwrites the existing
// row.
func buildUpsertStateQuery(key, value string, at time.Time) (string, []any, error) {
	return sqlite.
		Insert(clientStateTable).
		Columns("key", "value", "updated_at").
		Values(key, value, at.UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

// buildDeleteStateQuery removes the row stored under key.
func buildDeleteStateQuery(key string) (string, []any, error) {
	return sqlite.
		Delete(clientStateTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
