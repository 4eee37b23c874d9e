// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging and metrics:

	mux.HandleFunc("GET /api/scores", middleware.WithLogging(m, handler))

Logs request start at debug level and completion (status, duration_ms,
request_id) at info level. The matched route pattern labels the
Prometheus request counter and histogram. m may be nil.

# Request IDs

	handler := middleware.WithRequestID(mux)

Reuses an incoming X-Request-ID or generates a uuid, echoes it in the
response header and stores it in the request context:

	id := middleware.RequestID(r.Context())

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(middleware.WithRequestID(mux)),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type, X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusCreated, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message") // {"error": "message"}

Parse JSON request bodies (capped at 1 MiB):

	var req models.SaveScoreRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, X-Real-IP, then RemoteAddr. Used in request logs.
*/
package middleware
