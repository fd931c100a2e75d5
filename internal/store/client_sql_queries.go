// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const sessionTable = "session"

// SQLite takes "?" placeholders, which is squirrel's default.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildUpsertSession writes every key/value pair in one statement,
// replacing existing values.
func buildUpsertSession(now time.Time, kv ...[2]string) (string, []any, error) {
	q := qb.Insert(sessionTable).Columns("key", "value", "updated_at")
	for _, pair := range kv {
		q = q.Values(pair[0], pair[1], now)
	}

	return q.Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildSelectSession(keys ...string) (string, []any, error) {
	return qb.Select("key", "value").
		From(sessionTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
}

func buildDeleteSession(keys ...string) (string, []any, error) {
	return qb.Delete(sessionTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
}
