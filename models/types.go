// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the wire and SQLite storage format of a record's date_time
const TimestampLayout = "2006-01-02 15:04:05"

// MaxUserNameLength is enforced on input and by VARCHAR(100) on PostgreSQL
const MaxUserNameLength = 100

const MessageRecordSaved = "Record saved successfully!"

// Request types

// Score and Accuracy are pointers so that a missing field is told apart from 0
type SaveScoreRequest struct {
	UserName string   `json:"user_name" validate:"required,max=100"`
	Score    *int     `json:"score" validate:"required"`
	Accuracy *float64 `json:"accuracy" validate:"required"`
}

// NewRecord converts a validated request into store input
func (r SaveScoreRequest) NewRecord() NewRecord {
	rec := NewRecord{UserName: r.UserName}
	if r.Score != nil {
		rec.Score = *r.Score
	}
	if r.Accuracy != nil {
		rec.Accuracy = *r.Accuracy
	}
	return rec
}

// Response types

type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

// NewRecord is what a caller supplies; id and date_time are assigned by the store
type NewRecord struct {
	UserName string
	Score    int
	Accuracy float64
}

// Record is one persisted quiz attempt. The engine-assigned id is never exposed.
type Record struct {
	UserName string    `json:"user_name" db:"user_name"`
	Score    int       `json:"score" db:"score"`
	Accuracy float64   `json:"accuracy" db:"accuracy"`
	DateTime Timestamp `json:"date_time" db:"date_time"`
}

// Timestamp is a local wall-clock time with second precision.
// SQLite hands it back as TEXT, PostgreSQL as a native TIMESTAMP WITHOUT TIME ZONE.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to the second and moves it to the local zone
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.In(time.Local).Truncate(time.Second)}
}

// ParseTimestamp parses the TimestampLayout form in the local zone
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return Timestamp{Time: t}, nil
}

func (ts Timestamp) String() string {
	return ts.Format(TimestampLayout)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// Scan implements sql.Scanner
func (ts *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		// TIMESTAMP WITHOUT TIME ZONE comes back in UTC; keep the wall clock, not the instant
		*ts = Timestamp{Time: time.Date(v.Year(), v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second(), 0, time.Local)}
		return nil
	case string:
		parsed, err := ParseTimestamp(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case []byte:
		parsed, err := ParseTimestamp(string(v))
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case nil:
		return fmt.Errorf("date_time is NULL")
	default:
		return fmt.Errorf("unsupported date_time type %T", src)
	}
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
