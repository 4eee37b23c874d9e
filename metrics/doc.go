// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus metrics for the quiz-scores server.

	m := metrics.New()
	mux.Handle("GET /metrics", m.Handler())

Collected series (namespace "quiz"):

  - quiz_http_requests_total{method,route,status}
  - quiz_http_request_duration_seconds{method,route}
  - quiz_records_inserted_total
  - quiz_store_errors_total{op}
  - quiz_store_engine_info{engine}

A nil *Metrics is valid and records nothing.
*/
package metrics
