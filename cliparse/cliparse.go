// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
)

const (
	DefaultHost       = "0.0.0.0"
	DefaultPort       = 5000
	DefaultSQLitePath = "quiz_records.db"
)

type Config struct {
	Host        string
	Port        int
	DatabaseURL string
	SQLitePath  string
	Debug       bool
}

// Addr returns the host:port the server listens on
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ParseFlags reads flags, falling back to environment variables, then defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var debug string

	fs := flag.NewFlagSet("quiz-scores", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.StringVar(&cfg.Host, "host", "", "Listen address")
	fs.IntVar(&cfg.Port, "p", 0, "Server port")

	// Storage config; no -d means the embedded SQLite file
	fs.StringVar(&cfg.DatabaseURL, "d", "", "PostgreSQL database URL (empty for SQLite)")
	fs.StringVar(&cfg.SQLitePath, "f", "", "SQLite database file")

	fs.StringVar(&debug, "debug", "", "Enable debug logging (true/false)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Host == "" {
		cfg.Host = os.Getenv("HOST")
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, errors.New("port must be between 1 and 65535")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.SQLitePath == "" {
		cfg.SQLitePath = os.Getenv("SQLITE_PATH")
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = DefaultSQLitePath
	}

	if debug == "" {
		debug = os.Getenv("DEBUG")
	}
	if debug != "" {
		v, err := strconv.ParseBool(debug)
		if err != nil {
			return Config{}, errors.New("invalid debug value (use true or false)")
		}
		cfg.Debug = v
	} else {
		// Local SQLite runs are development runs
		cfg.Debug = cfg.DatabaseURL == ""
	}

	return cfg, nil
}
