// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the quiz-scores API.

# Request Types

SaveScoreRequest is the body of POST /api/scores:

	{"user_name": "alice", "score": 950, "accuracy": 0.87}

Fields carry validator tags and are checked before the store is reached.
Score and Accuracy are pointers so a missing field fails "required" while
an explicit 0 passes.

# Domain Types

  - NewRecord: caller-supplied fields of a record
  - Record: a stored record as returned by GET /api/scores (no id)
  - Timestamp: second-precision local time, "YYYY-MM-DD HH:MM:SS" on the wire

# Timestamps

Timestamp implements sql.Scanner and accepts both engines' shapes:

	TEXT '2026-10-19 14:03:22'          (SQLite)
	TIMESTAMP WITHOUT TIME ZONE         (PostgreSQL)

Both decode to the same wall-clock instant in time.Local.

# Response Types

  - MessageResponse: {"message": "..."}
  - ErrorResponse: {"error": "..."}
*/
package models
