// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db is the records store and the resolver that binds it to an engine.

# Engine Resolution

Resolve turns the single DATABASE_URL setting into a Binding:

	binding, err := db.Resolve(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatal(err) // no driver for the configured URL
	}

  - empty URL: embedded SQLite file (modernc.org/sqlite), ? placeholders,
    INTEGER PRIMARY KEY AUTOINCREMENT, TEXT timestamps
  - postgres:// URL: PostgreSQL (lib/pq), $n placeholders,
    SERIAL PRIMARY KEY, TIMESTAMP WITHOUT TIME ZONE

Resolve never opens a connection. Unknown schemes and missing drivers
return ErrDriverUnavailable.

# Store

	store, err := db.Open(ctx, binding)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal(err)
	}

EnsureSchema is safe to call on every startup - it uses IF NOT EXISTS.

# Units of Work

Each request acquires its own connection and releases it when done:

	conn, err := store.Conn(r.Context())
	if err != nil {
		return err
	}
	defer conn.Close()

	err = store.Insert(ctx, conn, models.NewRecord{UserName: "alice", Score: 950, Accuracy: 0.87})
	records, err := store.ListAll(ctx, conn)

Insert commits in its own transaction. ListAll returns records ordered
by date_time descending (ties broken by id descending).

# Errors

Per-operation failures are *StoreError values and match ErrStore:

	if errors.Is(err, db.ErrStore) { ... }

Nothing is retried.

# Table

	records(id, user_name, score, accuracy, date_time)
	idx_records_date_time ON records(date_time)
*/
package db
