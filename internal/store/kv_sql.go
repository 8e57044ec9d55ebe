// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/market-pulse/migrations"
)

const kvTable = "kv_entries"

// sqlKV stores entries in the kv_entries table. Expiry is kept as unix
// milliseconds so both dialects compare it the same way.
type sqlKV struct {
	db      *DB
	builder sq.StatementBuilderType
	now     func() time.Time
}

// NewSQLKV wraps a migrated connection as a [KV].
func NewSQLKV(db *DB) KV {
	return newSQLKV(db, time.Now)
}

func newSQLKV(db *DB, now func() time.Time) *sqlKV {
	var placeholder sq.PlaceholderFormat = sq.Question
	if db.dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &sqlKV{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		now:     now,
	}
}

func (s *sqlKV) buildGet(key string, now time.Time) (string, []any, error) {
	return s.builder.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		Where(sq.Or{sq.Eq{"expires_at": nil}, sq.Gt{"expires_at": now.UnixMilli()}}).
		ToSql()
}

func (s *sqlKV) buildSet(key string, value []byte, ttl time.Duration, now time.Time) (string, []any, error) {
	var expiresAt sql.NullInt64
	if ttl > 0 {
		expiresAt = sql.NullInt64{Int64: now.Add(ttl).UnixMilli(), Valid: true}
	}

	return s.builder.
		Insert(kvTable).
		Columns("key", "value", "expires_at", "updated_at").
		Values(key, value, expiresAt, now.UnixMilli()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at, updated_at = excluded.updated_at").
		ToSql()
}

func (s *sqlKV) buildDelete(key string) (string, []any, error) {
	return s.builder.Delete(kvTable).Where(sq.Eq{"key": key}).ToSql()
}

func (s *sqlKV) buildPurge(now time.Time) (string, []any, error) {
	return s.builder.
		Delete(kvTable).
		Where(sq.NotEq{"expires_at": nil}).
		Where(sq.LtOrEq{"expires_at": now.UnixMilli()}).
		ToSql()
}

func (s *sqlKV) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := s.buildGet(key, s.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = s.db.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqlKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	query, args, err := s.buildSet(key, value, ttl, s.now())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, query, args, nil)
}

func (s *sqlKV) Delete(ctx context.Context, key string) error {
	query, args, err := s.buildDelete(key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, query, args, nil)
}

func (s *sqlKV) PurgeExpired(ctx context.Context) (int64, error) {
	query, args, err := s.buildPurge(s.now())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var n int64
	return n, s.exec(ctx, query, args, &n)
}

func (s *sqlKV) exec(ctx context.Context, query string, args []any, affected *int64) error {
	err := s.db.withRetry(ctx, func() error {
		res, err := s.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		if affected != nil {
			*affected, err = res.RowsAffected()
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return nil
}

func (s *sqlKV) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlKV) Close() error {
	return s.db.Close()
}
