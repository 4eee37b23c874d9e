// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.RecordInserted()
	m.RecordInserted()
	m.StoreError("insert")
	m.ObserveRequest("POST", "POST /api/scores", http.StatusCreated, 5*time.Millisecond)

	assert.Equal(t, 2.0, promtest.ToFloat64(m.recordsInserted))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.storeErrors.WithLabelValues("insert")))
	assert.Equal(t, 0.0, promtest.ToFloat64(m.storeErrors.WithLabelValues("list")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.requests.WithLabelValues("POST", "POST /api/scores", "201")))
}

func TestMetrics_SetEngineReplacesPrevious(t *testing.T) {
	m := New()

	m.SetEngine("sqlite")
	m.SetEngine("postgres")

	assert.Equal(t, 1, promtest.CollectAndCount(m.engineInfo))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.engineInfo.WithLabelValues("postgres")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordInserted()
		m.StoreError("list")
		m.SetEngine("sqlite")
		m.ObserveRequest("GET", "GET /", http.StatusOK, time.Millisecond)
	})

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordInserted()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "quiz_records_inserted_total 1"),
		"expected inserted counter in exposition, got:\n%s", w.Body.String())
}
