// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/quiz-scores/metrics"
	"github.com/danielhkuo/quiz-scores/models"
)

const (
	insertRecordSQL = `INSERT INTO records (user_name, score, accuracy, date_time) VALUES (?, ?, ?, ?)`
	listRecordsSQL  = `SELECT user_name, score, accuracy, date_time FROM records ORDER BY date_time DESC, id DESC`
)

// Queryer is the per-request handle Insert and ListAll run on.
// *sqlx.Conn from Store.Conn satisfies it.
type Queryer interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Store is the records store bound to one engine for the life of the process
type Store struct {
	db      *sqlx.DB
	binding Binding
	now     func() time.Time
	metrics *metrics.Metrics

	insertSQL string
	listSQL   string
}

type Option func(*Store)

// WithClock overrides the wall clock used to stamp date_time
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// Open opens the connection pool for binding and verifies it is reachable
func Open(ctx context.Context, binding Binding, opts ...Option) (*Store, error) {
	conn, err := sqlx.Open(binding.Driver, binding.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", binding, err)
	}

	conn.SetMaxOpenConns(25)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(5 * time.Minute)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", binding, err)
	}

	s := &Store{
		db:        conn,
		binding:   binding,
		now:       time.Now,
		insertSQL: binding.Rebind(insertRecordSQL),
		listSQL:   binding.Rebind(listRecordsSQL),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics.SetEngine(binding.String())

	return s, nil
}

func (s *Store) Binding() Binding {
	return s.binding
}

// Conn acquires a dedicated connection for one unit of work.
// The caller must Close it on every path.
func (s *Store) Conn(ctx context.Context) (*sqlx.Conn, error) {
	conn, err := s.db.Connx(ctx)
	if err != nil {
		s.metrics.StoreError("conn")
		return nil, storeErr("acquire connection for", err)
	}
	return conn, nil
}

// EnsureSchema creates the records table if it does not exist.
// Safe to call on every startup.
func (s *Store) EnsureSchema(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range s.binding.SchemaStatements() {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema: %w", err)
	}
	return nil
}

// Insert stamps the current time and writes one record in its own transaction.
// Nothing is committed unless Insert returns nil.
func (s *Store) Insert(ctx context.Context, q Queryer, in models.NewRecord) error {
	stamp := models.NewTimestamp(s.now())

	tx, err := q.BeginTxx(ctx, nil)
	if err != nil {
		s.metrics.StoreError("insert")
		return storeErr("insert", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, s.insertSQL, in.UserName, in.Score, in.Accuracy, s.binding.EncodeTimestamp(stamp))
	if err != nil {
		s.metrics.StoreError("insert")
		return storeErr("insert", err)
	}

	if err := tx.Commit(); err != nil {
		s.metrics.StoreError("insert")
		return storeErr("insert", err)
	}

	s.metrics.RecordInserted()
	return nil
}

// ListAll returns every record, newest first. An empty table yields an empty slice.
func (s *Store) ListAll(ctx context.Context, q Queryer) ([]models.Record, error) {
	records := []models.Record{}
	if err := q.SelectContext(ctx, &records, s.listSQL); err != nil {
		s.metrics.StoreError("list")
		return nil, storeErr("list", err)
	}
	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
