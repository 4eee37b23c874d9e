// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/quiz-scores/testutil"
)

func TestQuizPage(t *testing.T) {
	handler := NewPageHandler()

	w := httptest.NewRecorder()
	handler.QuizPage(w, httptest.NewRequest("GET", "/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected text/html, got %s", ct)
	}

	body := w.Body.String()
	for _, want := range []string{"<title>Quiz</title>", `maxlength="100"`, "const scoresPath ="} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
}
