// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quiz-scores/db"
	"github.com/danielhkuo/quiz-scores/models"
	"github.com/danielhkuo/quiz-scores/testutil"
)

func TestSaveScore(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedBody   string
		expectedRows   int
	}{
		{
			name:           "valid record",
			body:           `{"user_name":"alice","score":950,"accuracy":0.87}`,
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"message":"Record saved successfully!"}`,
			expectedRows:   1,
		},
		{
			name:           "zero score and accuracy are valid",
			body:           `{"user_name":"bob","score":0,"accuracy":0}`,
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"message":"Record saved successfully!"}`,
			expectedRows:   1,
		},
		{
			name:           "malformed JSON",
			body:           `{"user_name":"alice",`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid JSON"}`,
		},
		{
			name:           "non-integer score",
			body:           `{"user_name":"alice","score":9.5,"accuracy":0.5}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid JSON"}`,
		},
		{
			name:           "missing user_name",
			body:           `{"score":950,"accuracy":0.87}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"user_name is required"}`,
		},
		{
			name:           "missing score and accuracy",
			body:           `{"user_name":"alice"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"score is required; accuracy is required"}`,
		},
		{
			name:           "user_name too long",
			body:           `{"user_name":"` + strings.Repeat("x", 101) + `","score":1,"accuracy":1}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"user_name must be at most 100 characters"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.SetupSQLiteStore(t)
			handler := NewScoreHandler(store)

			req := httptest.NewRequest("POST", "/api/scores", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.SaveScore(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())

			records := listRecords(t, store)
			assert.Len(t, records, tt.expectedRows)
		})
	}
}

func TestSaveScore_ThenListScores(t *testing.T) {
	store := testutil.SetupSQLiteStore(t)
	handler := NewScoreHandler(store)

	before := time.Now().Truncate(time.Second)
	w := httptest.NewRecorder()
	handler.SaveScore(w, testutil.MakeRequest("POST", "/api/scores", map[string]any{
		"user_name": "alice",
		"score":     950,
		"accuracy":  0.87,
	}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = httptest.NewRecorder()
	handler.ListScores(w, testutil.MakeRequest("GET", "/api/scores", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var records []models.Record
	testutil.AssertJSON(t, w, &records)
	require.Len(t, records, 1)
	assert.Equal(t, "alice", records[0].UserName)
	assert.Equal(t, 950, records[0].Score)
	assert.InDelta(t, 0.87, records[0].Accuracy, 1e-9)
	assert.False(t, records[0].DateTime.Before(before))
	assert.False(t, records[0].DateTime.After(time.Now()))
}

func TestListScores_Empty(t *testing.T) {
	store := testutil.SetupSQLiteStore(t)
	handler := NewScoreHandler(store)

	w := httptest.NewRecorder()
	handler.ListScores(w, testutil.MakeRequest("GET", "/api/scores", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListScores_NewestFirst(t *testing.T) {
	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local)
	store := testutil.SetupSQLiteStore(t, db.WithClock(testutil.StepClock(start, time.Second)))
	handler := NewScoreHandler(store)

	for _, name := range []string{"t1", "t2", "t3"} {
		w := httptest.NewRecorder()
		handler.SaveScore(w, testutil.MakeRequest("POST", "/api/scores", map[string]any{
			"user_name": name, "score": 100, "accuracy": 1.0,
		}, nil))
		testutil.AssertStatus(t, w, http.StatusCreated)
	}

	w := httptest.NewRecorder()
	handler.ListScores(w, testutil.MakeRequest("GET", "/api/scores", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	assert.JSONEq(t, `[
		{"user_name":"t3","score":100,"accuracy":1,"date_time":"2026-10-19 09:00:02"},
		{"user_name":"t2","score":100,"accuracy":1,"date_time":"2026-10-19 09:00:01"},
		{"user_name":"t1","score":100,"accuracy":1,"date_time":"2026-10-19 09:00:00"}
	]`, w.Body.String())
}

func TestScoreHandler_StoreFailureIs500(t *testing.T) {
	store := testutil.SetupSQLiteStore(t)
	handler := NewScoreHandler(store)
	require.NoError(t, store.Close())

	t.Run("save", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.SaveScore(w, testutil.MakeRequest("POST", "/api/scores", map[string]any{
			"user_name": "alice", "score": 1, "accuracy": 0.5,
		}, nil))

		testutil.AssertStatus(t, w, http.StatusInternalServerError)
		var resp models.ErrorResponse
		testutil.AssertJSON(t, w, &resp)
		assert.True(t, strings.HasPrefix(resp.Error, "Server error: "), "unexpected error %q", resp.Error)
	})

	t.Run("list", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ListScores(w, testutil.MakeRequest("GET", "/api/scores", nil, nil))

		testutil.AssertStatus(t, w, http.StatusInternalServerError)
		assert.Contains(t, w.Body.String(), "Server error: ")
	})
}

func TestSaveScore_InvalidInputNeverReachesStore(t *testing.T) {
	store := testutil.SetupSQLiteStore(t)
	handler := NewScoreHandler(store)
	// A closed store would turn any database call into a 500
	require.NoError(t, store.Close())

	w := httptest.NewRecorder()
	handler.SaveScore(w, testutil.MakeRequest("POST", "/api/scores", map[string]any{"score": 1}, nil))

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

// listRecords reads the table directly through the store
func listRecords(t *testing.T, store *db.Store) []models.Record {
	t.Helper()
	w := httptest.NewRecorder()
	NewScoreHandler(store).ListScores(w, testutil.MakeRequest("GET", "/api/scores", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var records []models.Record
	testutil.AssertJSON(t, w, &records)
	return records
}
