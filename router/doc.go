// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the quiz-scores API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, m)

NewHandler additionally wraps it with request IDs and CORS, and is what
main serves:

	server := http.Server{Handler: router.NewHandler(store, m)}

# Endpoints

Operations:

	GET /health  - Store reachability (200 OK / 503)
	GET /metrics - Prometheus metrics

Scores:

	POST /api/scores - Save a quiz record
	GET  /api/scores - List records, newest first

Page:

	GET / - Quiz page

# Handler Initialization

The router creates handler instances with dependency injection:

	scoreHandler := handlers.NewScoreHandler(store)
	healthHandler := handlers.NewHealthHandler(store)
	pageHandler := handlers.NewPageHandler()

API, page and health routes are wrapped with middleware.WithLogging, which logs
each request and feeds the request metrics.
*/
package router
