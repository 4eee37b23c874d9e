// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quiz-scores API.

# Handler Types

Each handler is a struct with its dependencies:

  - ScoreHandler: save and list quiz records
  - HealthHandler: store reachability
  - PageHandler: the quiz page

Handlers are created via constructor functions that accept the records store:

	scoreHandler := handlers.NewScoreHandler(store)

# Scores

	POST /api/scores → SaveScore
	GET  /api/scores → ListScores

SaveScore decodes and validates the body before any database call:

	{"user_name": "alice", "score": 950, "accuracy": 0.87}

  - 201 {"message": "Record saved successfully!"}
  - 400 {"error": "Invalid JSON"} or {"error": "user_name is required"}
  - 500 {"error": "Server error: <detail>"}

ListScores returns every record, newest first:

	[{"user_name": "alice", "score": 950, "accuracy": 0.87, "date_time": "2026-10-19 14:03:22"}]

# Connections

Every request acquires its own connection from the store and releases it
with defer, on success and error paths alike:

	conn, err := h.store.Conn(r.Context())
	if err != nil { ... }
	defer conn.Close()

# Page

GET / renders templates/quiz_page.html, embedded in the binary. The page
runs a short quiz in the browser and posts the result to /api/scores.
*/
package handlers
