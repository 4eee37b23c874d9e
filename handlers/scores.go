// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/quiz-scores/db"
	"github.com/danielhkuo/quiz-scores/middleware"
	"github.com/danielhkuo/quiz-scores/models"
)

type ScoreHandler struct {
	store    *db.Store
	validate *validator.Validate
}

func NewScoreHandler(store *db.Store) *ScoreHandler {
	return &ScoreHandler{store: store, validate: newValidator()}
}

// SaveScore handles POST /api/scores
func (h *ScoreHandler) SaveScore(w http.ResponseWriter, r *http.Request) {
	var req models.SaveScoreRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input before touching the database
	if err := h.validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	conn, err := h.store.Conn(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	defer conn.Close()

	if err := h.store.Insert(r.Context(), conn, req.NewRecord()); err != nil {
		serverError(w, r, err)
		return
	}

	slog.Info("record saved",
		"user_name", req.UserName,
		"score", *req.Score,
		"request_id", middleware.RequestID(r.Context()),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: models.MessageRecordSaved,
	})
}

// ListScores handles GET /api/scores
func (h *ScoreHandler) ListScores(w http.ResponseWriter, r *http.Request) {
	conn, err := h.store.Conn(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}
	defer conn.Close()

	records, err := h.store.ListAll(r.Context(), conn)
	if err != nil {
		serverError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, records)
}

// serverError reports a store failure as 500 with the error's detail
func serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("records store failed",
		"error", err,
		"path", r.URL.Path,
		"request_id", middleware.RequestID(r.Context()),
	)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error: "+err.Error())
}
