// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quiz-scores/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/quiz_page.html"))

type pageData struct {
	Title       string
	ScoresPath  string
	MaxNameSize int
}

type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// QuizPage handles GET /
func (h *PageHandler) QuizPage(w http.ResponseWriter, r *http.Request) {
	// Render fully before any header is written
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, pageData{
		Title:       "Quiz",
		ScoresPath:  "/api/scores",
		MaxNameSize: models.MaxUserNameLength,
	})
	if err != nil {
		slog.Error("failed to render quiz page", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
