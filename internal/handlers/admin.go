// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the bakeshop server.
// Handlers are grouped by concern (public storefront, admin theme API) and
// receive their dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bakeshop/internal/editor"
	"bakeshop/internal/models"
	"bakeshop/internal/themepack"
)

// Admin groups the JSON theme management API.
type Admin struct {
	editor *editor.Service
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(ed *editor.Service) *Admin {
	return &Admin{editor: ed}
}

// ListThemes returns every stored theme.
func (a *Admin) ListThemes(w http.ResponseWriter, r *http.Request) {
	themes, err := a.editor.List(r.Context())
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if themes == nil {
		themes = []models.Theme{}
	}
	writeJSON(w, http.StatusOK, themes)
}

// GetTheme returns one theme.
func (a *Admin) GetTheme(w http.ResponseWriter, r *http.Request) {
	t, err := a.editor.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// CreateTheme stores a new theme. Compiled fields in the body are ignored
// and regenerated.
func (a *Admin) CreateTheme(w http.ResponseWriter, r *http.Request) {
	var t models.Theme
	if !decodeTheme(w, r, &t) {
		return
	}
	if msg := validateTheme(&t); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	created, err := a.editor.Create(r.Context(), &t)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateTheme applies the body over the stored theme: fields absent from
// the body keep their stored values.
func (a *Admin) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t, err := a.editor.Get(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	if !decodeTheme(w, r, t) {
		return
	}
	t.ID = id
	if msg := validateTheme(t); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	updated, err := a.editor.Update(r.Context(), t)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTheme removes a theme.
func (a *Admin) DeleteTheme(w http.ResponseWriter, r *http.Request) {
	if err := a.editor.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ActivateTheme flags a theme as active.
func (a *Admin) ActivateTheme(w http.ResponseWriter, r *http.Request) {
	a.setActive(w, r, true)
}

// DeactivateTheme clears a theme's active flag.
func (a *Admin) DeactivateTheme(w http.ResponseWriter, r *http.Request) {
	a.setActive(w, r, false)
}

func (a *Admin) setActive(w http.ResponseWriter, r *http.Request, active bool) {
	id := chi.URLParam(r, "id")
	if err := a.editor.SetActive(r.Context(), id, active); err != nil {
		a.fail(w, r, err)
		return
	}
	t, err := a.editor.Get(r.Context(), id)
	if err != nil {
		a.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// ImportPack parses a pasted theme pack from the request body and merges
// it over the theme named by ?base=, or over the built-in theme when
// absent. Unparseable packs answer 422 with the parser message.
func (a *Admin) ImportPack(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPackBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "Theme pack is too large (max 1 MiB).")
		return
	}

	base := r.URL.Query().Get("base")
	t, err := a.editor.Import(r.Context(), string(body), base)
	if err != nil {
		a.fail(w, r, err)
		return
	}

	status := http.StatusCreated
	if base != "" {
		status = http.StatusOK
	}
	writeJSON(w, status, t)
}

// PreviewTheme compiles the body without saving it.
func (a *Admin) PreviewTheme(w http.ResponseWriter, r *http.Request) {
	var t models.Theme
	if !decodeTheme(w, r, &t) {
		return
	}
	if msg := validateTokens(&t); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	writeJSON(w, http.StatusOK, a.editor.Preview(t))
}

// fail maps editor and parser errors onto status codes.
func (a *Admin) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, editor.ErrNotFound):
		writeError(w, http.StatusNotFound, "Theme not found.")
	case errors.Is(err, themepack.ErrUnsupportedFormat), errors.Is(err, themepack.ErrInvalidJSON):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error("admin theme request failed", "error", err, "method", r.Method, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// decodeTheme decodes a JSON theme body into t. Unknown keys are ignored.
func decodeTheme(w http.ResponseWriter, r *http.Request, t *models.Theme) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxThemeBodyBytes)).Decode(t); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.")
		return false
	}
	return true
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
