// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quiz-scores/db"
	"github.com/danielhkuo/quiz-scores/handlers"
	"github.com/danielhkuo/quiz-scores/metrics"
	"github.com/danielhkuo/quiz-scores/middleware"
)

func NewRouter(store *db.Store, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	scoreHandler := handlers.NewScoreHandler(store)
	healthHandler := handlers.NewHealthHandler(store)
	pageHandler := handlers.NewPageHandler()

	// Operations
	mux.HandleFunc("GET /health", middleware.WithLogging(m, healthHandler.Health))
	mux.Handle("GET /metrics", m.Handler())

	// Scores API
	mux.HandleFunc("POST /api/scores", middleware.WithLogging(m, scoreHandler.SaveScore))
	mux.HandleFunc("GET /api/scores", middleware.WithLogging(m, scoreHandler.ListScores))

	// Quiz page
	mux.HandleFunc("GET /{$}", middleware.WithLogging(m, pageHandler.QuizPage))

	return mux
}

// NewHandler wraps the router with request IDs and CORS
func NewHandler(store *db.Store, m *metrics.Metrics) http.Handler {
	return middleware.CORS(middleware.WithRequestID(NewRouter(store, m)))
}
