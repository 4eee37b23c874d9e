// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Host: Listen address (default: 0.0.0.0)
  - Port: Server listen port (default: 5000)
  - DatabaseURL: PostgreSQL connection URL; empty selects SQLite
  - SQLitePath: SQLite file used when DatabaseURL is empty (default: quiz_records.db)
  - Debug: Debug logging (default: on when DatabaseURL is empty)

# CLI Flags

	-host   Listen address
	-p      Server port
	-d      Database URL
	-f      SQLite database file
	-debug  Debug logging (true/false)

# Environment Variables

Flags fall back to environment variables:

	HOST         → -host
	PORT         → -p
	DATABASE_URL → -d
	SQLITE_PATH  → -f
	DEBUG        → -debug

CLI flags take precedence over environment variables. main loads a .env
file into the environment before ParseFlags runs.

# Validation

ParseFlags returns an error for a non-numeric PORT, a port outside
1-65535, or a DEBUG value strconv.ParseBool rejects.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	binding, err := db.Resolve(cfg.DatabaseURL, cfg.SQLitePath)
	// ...
	server := http.Server{Addr: cfg.Addr()}
*/
package cliparse
