// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quiz-scores/testutil"
)

func TestHealth(t *testing.T) {
	store := testutil.SetupSQLiteStore(t)
	handler := NewHealthHandler(store)

	w := httptest.NewRecorder()
	handler.Health(w, httptest.NewRequest("GET", "/health", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestHealth_StoreDown(t *testing.T) {
	store := testutil.SetupSQLiteStore(t)
	handler := NewHealthHandler(store)
	store.Close()

	w := httptest.NewRecorder()
	handler.Health(w, httptest.NewRequest("GET", "/health", nil))

	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
}
