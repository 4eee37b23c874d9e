// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"slices"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quiz-scores/models"
)

var (
	ErrDriverUnavailable  = errors.New("no database driver available")
	ErrInvalidDatabaseURL = errors.New("invalid database URL")
)

// Engine identifies the backing database
type Engine int

const (
	EngineSQLite Engine = iota + 1
	EnginePostgres
)

func (e Engine) String() string {
	switch e {
	case EngineSQLite:
		return "sqlite"
	case EnginePostgres:
		return "postgres"
	default:
		return fmt.Sprintf("engine(%d)", int(e))
	}
}

// registeredDrivers is swapped in tests
var registeredDrivers = sql.Drivers

// Binding carries everything engine-specific: driver, DSN, and SQL dialect.
// Store never branches on the engine itself.
type Binding struct {
	Engine        Engine
	Driver        string
	DSN           string
	BindType      int // sqlx.QUESTION or sqlx.DOLLAR
	IDColumn      string
	UserNameType  string
	AccuracyType  string
	TimestampType string
}

// Resolve picks the engine from the configured database URL.
// An empty URL selects the embedded SQLite file at sqlitePath.
// It never opens a connection.
func Resolve(databaseURL, sqlitePath string) (Binding, error) {
	if databaseURL == "" {
		return sqliteBinding(sqlitePath)
	}

	u, err := url.Parse(databaseURL)
	if err != nil {
		return Binding{}, fmt.Errorf("%w: %v", ErrInvalidDatabaseURL, err)
	}
	if u.Scheme == "" {
		return Binding{}, fmt.Errorf("%w: missing scheme", ErrInvalidDatabaseURL)
	}

	switch u.Scheme {
	case "postgres", "postgresql":
		if err := requireDriver("postgres"); err != nil {
			return Binding{}, err
		}
		return Binding{
			Engine:        EnginePostgres,
			Driver:        "postgres",
			DSN:           databaseURL,
			BindType:      sqlx.DOLLAR,
			IDColumn:      "SERIAL PRIMARY KEY",
			UserNameType:  fmt.Sprintf("VARCHAR(%d)", models.MaxUserNameLength),
			AccuracyType:  "DOUBLE PRECISION",
			TimestampType: "TIMESTAMP WITHOUT TIME ZONE",
		}, nil
	default:
		return Binding{}, fmt.Errorf("%w: unsupported scheme %q", ErrDriverUnavailable, u.Scheme)
	}
}

func sqliteBinding(path string) (Binding, error) {
	if path == "" {
		return Binding{}, errors.New("sqlite path is required when no database URL is set")
	}
	if err := requireDriver("sqlite"); err != nil {
		return Binding{}, err
	}

	// WAL plus a busy timeout lets concurrent requests queue inside SQLite
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

	return Binding{
		Engine:        EngineSQLite,
		Driver:        "sqlite",
		DSN:           dsn,
		BindType:      sqlx.QUESTION,
		IDColumn:      "INTEGER PRIMARY KEY AUTOINCREMENT",
		UserNameType:  "TEXT",
		AccuracyType:  "REAL",
		TimestampType: "TEXT",
	}, nil
}

func requireDriver(name string) error {
	if !slices.Contains(registeredDrivers(), name) {
		return fmt.Errorf("%w: %s driver is not registered", ErrDriverUnavailable, name)
	}
	return nil
}

// Rebind converts a query written with ? placeholders to the engine's style
func (b Binding) Rebind(query string) string {
	return sqlx.Rebind(b.BindType, query)
}

// SchemaStatements returns the idempotent DDL for the records table
func (b Binding) SchemaStatements() []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS records (
    id %s,
    user_name %s NOT NULL,
    score INTEGER NOT NULL,
    accuracy %s NOT NULL,
    date_time %s NOT NULL
)`, b.IDColumn, b.UserNameType, b.AccuracyType, b.TimestampType),
		`CREATE INDEX IF NOT EXISTS idx_records_date_time ON records(date_time)`,
	}
}

// EncodeTimestamp returns the value bound to date_time on insert
func (b Binding) EncodeTimestamp(ts models.Timestamp) any {
	if b.Engine == EnginePostgres {
		return ts.Time
	}
	return ts.String()
}

// Redacted returns the DSN with any password masked
func (b Binding) Redacted() string {
	if b.Engine != EnginePostgres {
		return b.DSN
	}
	u, err := url.Parse(b.DSN)
	if err != nil {
		return "<unparseable>"
	}
	return u.Redacted()
}

func (b Binding) String() string {
	return b.Engine.String()
}
