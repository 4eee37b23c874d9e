// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/danielhkuo/quiz-scores/db"
)

// TestDBURLEnv points the PostgreSQL tests at an existing database instead of a container
const TestDBURLEnv = "TEST_DATABASE_URL"

// SetupSQLiteStore opens a fresh SQLite-backed store in a temp dir with the schema in place
func SetupSQLiteStore(t *testing.T, opts ...db.Option) *db.Store {
	t.Helper()

	binding, err := db.Resolve("", filepath.Join(t.TempDir(), "quiz_records.db"))
	if err != nil {
		t.Fatalf("Failed to resolve sqlite binding: %v", err)
	}

	return openStore(t, binding, opts...)
}

// SetupPostgresStore opens a PostgreSQL-backed store with an empty records table.
// Uses TEST_DATABASE_URL when set, otherwise starts a postgres container.
// Skips when neither is available.
func SetupPostgresStore(t *testing.T, opts ...db.Option) *db.Store {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping PostgreSQL test in short mode")
	}

	dbURL := os.Getenv(TestDBURLEnv)
	if dbURL == "" {
		dbURL = startPostgresContainer(t)
	}

	binding, err := db.Resolve(dbURL, "")
	if err != nil {
		t.Fatalf("Failed to resolve postgres binding: %v", err)
	}

	store := openStore(t, binding, opts...)

	// Clean up table before each test
	conn, err := store.Conn(context.Background())
	if err != nil {
		t.Fatalf("Failed to acquire connection: %v", err)
	}
	defer conn.Close()
	if _, err := conn.ExecContext(context.Background(), "TRUNCATE records RESTART IDENTITY"); err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	return store
}

func startPostgresContainer(t *testing.T) string {
	t.Helper()

	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("quiz_scores_test"),
		postgres.WithUsername("quiz"),
		postgres.WithPassword("quizpass"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}

	connStr, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get postgres connection string: %v", err)
	}
	return connStr
}

func openStore(t *testing.T, binding db.Binding, opts ...db.Option) *db.Store {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := db.Open(ctx, binding, opts...)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return store
}

// StepClock returns a clock that starts at start and advances by step on every call
func StepClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
