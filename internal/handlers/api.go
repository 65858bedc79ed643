// Copyright (c) 2026 Anhar Fahrudin <hi@anharfhd.space>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the portfolio site.
// Handlers are grouped by concern (blog API, public pages) and receive
// their dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/anharfhdn/portfolio/internal/apperr"
	"github.com/anharfhdn/portfolio/internal/models"
	"github.com/anharfhdn/portfolio/internal/visibility"
)

// PostRepository is the store surface the handlers consume. Satisfied
// by *store.PostStore.
type PostRepository interface {
	List(vctx visibility.Context) ([]models.Post, error)
	FindBySlug(slug string, mode visibility.Mode) (*models.Post, error)
	Upsert(posts []models.Post) ([]models.Post, error)
	UpdateFields(slug string, fields map[string]any) (*models.Post, error)
	ChangeStatus(slug string, action models.Action) (*models.Post, error)
	Delete(slug string, permanent bool) (*models.Post, error)
	Count() (int, error)
}

// respondData writes the success envelope {"data": v}.
func respondData(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]any{"data": v}); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// respondError writes the failure envelope {"error": msg}, mapping the
// error taxonomy onto status codes: validation 400, not-found 404,
// everything else 500. Store failures are logged; their details stay
// out of the response body.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := err.Error()
	switch {
	case apperr.IsValidation(err):
		status = http.StatusBadRequest
	case apperr.IsNotFound(err):
		status = http.StatusNotFound
	default:
		slog.Error("request failed", "error", err)
		msg = "internal error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(map[string]any{"error": msg}); encErr != nil {
		slog.Error("encode error response failed", "error", encErr)
	}
}
