// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"bakeshop/internal/dom"
	"bakeshop/internal/models"
	"bakeshop/internal/render"
	"bakeshop/internal/themeruntime"
	"bakeshop/internal/tokens"
)

// Public groups the storefront handlers. Every request mounts its own
// theme runtime: the preview parameter and mode cookie are per visitor.
type Public struct {
	themes   themeruntime.Store
	renderer *render.Renderer
	live     http.Handler
}

// NewPublic creates a new Public handler group. themes and live may be nil:
// without a theme store every page renders the built-in theme.
func NewPublic(themes themeruntime.Store, renderer *render.Renderer, live http.Handler) *Public {
	return &Public{themes: themes, renderer: renderer, live: live}
}

// runtime loads a theme runtime for the request. The sink collects the
// final stylesheet and mode. A preview parameter outranks the visitor's
// saved selection, which outranks the active theme.
func (p *Public) runtime(w http.ResponseWriter, r *http.Request) (*themeruntime.Runtime, *themeruntime.MemorySink) {
	sink := &themeruntime.MemorySink{}
	preview := r.URL.Query().Get("preview_theme")
	rt := themeruntime.New(themeruntime.Options{
		Store:          p.themes,
		Sink:           sink,
		Modes:          newCookieModes(w, r),
		PreviewThemeID: preview,
	})
	rt.Load(r.Context())

	if id := selectedTheme(r); preview == "" && id != "" {
		if err := rt.SwitchTheme(id); err != nil {
			slog.Debug("saved theme selection not loaded", "id", id, "error", err)
		}
	}
	return rt, sink
}

// selectable returns the themes offered by the selector. Without stored
// themes the built-in theme is the only choice.
func selectable(rt *themeruntime.Runtime) []models.Theme {
	if themes := rt.Themes(); len(themes) > 0 {
		return themes
	}
	return []models.Theme{*themeruntime.Fallback()}
}

// Showcase renders the storefront page with the resolved theme injected
// into its style element.
func (p *Public) Showcase(w http.ResponseWriter, r *http.Request) {
	rt, sink := p.runtime(w, r)

	page, err := p.renderer.Showcase(&render.ShowcaseData{
		Current:   rt.Current(),
		Themes:    selectable(rt),
		Mode:      rt.CurrentMode(),
		PreviewID: r.URL.Query().Get("preview_theme"),
	})
	if err != nil {
		slog.Error("render showcase failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	doc, err := dom.Parse(bytes.NewReader(page))
	if err != nil {
		slog.Error("parse showcase failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if sink.Writes() > 0 {
		doc.Replace(sink.CSS())
	}
	if m := sink.Mode(); m != "" {
		doc.MarkMode(m)
	} else {
		doc.MarkMode(rt.CurrentMode())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := doc.Render(w); err != nil {
		slog.Warn("write showcase failed", "error", err)
	}
}

// ThemeCSS serves the stylesheet of the resolved theme. The theme and
// mode query parameters pick a theme and force a mode for this response
// without persisting either.
func (p *Public) ThemeCSS(w http.ResponseWriter, r *http.Request) {
	rt, sink := p.runtime(w, r)

	if id := r.URL.Query().Get("theme"); id != "" {
		if err := rt.SwitchTheme(id); err != nil {
			http.NotFound(w, r)
			return
		}
	}
	if q := r.URL.Query().Get("mode"); q != "" {
		rt.ApplyTheme(rt.Current(), models.ParseMode(q))
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write([]byte(sink.CSS()))
}

// modeRequest is the JSON body accepted by SetMode.
type modeRequest struct {
	Mode string `json:"mode"`
}

// SetMode persists the visitor's light/dark choice. Form posts are
// redirected back; JSON callers get the new state.
func (p *Public) SetMode(w http.ResponseWriter, r *http.Request) {
	raw := r.FormValue("mode")
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req modeRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body.")
			return
		}
		raw = req.Mode
	}
	if raw != string(models.ModeLight) && raw != string(models.ModeDark) {
		writeError(w, http.StatusBadRequest, `Mode must be "light" or "dark".`)
		return
	}

	rt, _ := p.runtime(w, r)
	rt.ToggleMode(models.Mode(raw))

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]string{
			"mode":     string(rt.CurrentMode()),
			"theme_id": rt.Current().ID,
		})
		return
	}
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// selectRequest is the JSON body accepted by SelectTheme.
type selectRequest struct {
	ThemeID string `json:"theme_id"`
}

// SelectTheme switches the visitor to a loaded theme and remembers the
// choice. Unknown ids are a 404 and leave the saved selection alone.
func (p *Public) SelectTheme(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("theme_id")
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req selectRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body.")
			return
		}
		id = req.ThemeID
	}
	if id == "" {
		writeError(w, http.StatusBadRequest, "theme_id is required.")
		return
	}

	rt, _ := p.runtime(w, r)
	if err := rt.SwitchTheme(id); err != nil {
		if errors.Is(err, themeruntime.ErrThemeNotFound) {
			writeError(w, http.StatusNotFound, "Theme not found.")
			return
		}
		slog.Error("switch theme failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	rememberTheme(w, id)

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, map[string]string{
			"mode":     string(rt.CurrentMode()),
			"theme_id": rt.Current().ID,
		})
		return
	}
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// themeOption is one entry of the theme selector.
type themeOption struct {
	ID       string            `json:"id"`
	Name     string            `json:"theme_name"`
	Category string            `json:"category"`
	IsActive bool              `json:"is_active"`
	Current  bool              `json:"current"`
	Swatches map[string]string `json:"swatches"`
}

// Themes lists the selectable themes with hex swatches of their light
// brand and surface colours.
func (p *Public) Themes(w http.ResponseWriter, r *http.Request) {
	rt, _ := p.runtime(w, r)
	current := rt.Current()

	themes := selectable(rt)
	opts := make([]themeOption, 0, len(themes))
	for _, t := range themes {
		light := t.LightModeTokens
		opts = append(opts, themeOption{
			ID:       t.ID,
			Name:     t.ThemeName,
			Category: t.Category,
			IsActive: t.IsActive,
			Current:  current != nil && current.ID == t.ID,
			Swatches: map[string]string{
				"primary":    tokens.Swatch(light.BrandColors.PrimaryHSL),
				"accent":     tokens.Swatch(light.BrandColors.AccentHSL),
				"background": tokens.Swatch(light.SurfaceColors.BackgroundHSL),
			},
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"mode":   rt.CurrentMode(),
		"themes": opts,
	})
}

// Live upgrades to the live theme event channel.
func (p *Public) Live(w http.ResponseWriter, r *http.Request) {
	if p.live == nil {
		http.NotFound(w, r)
		return
	}
	p.live.ServeHTTP(w, r)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// backTo returns the same-site referer path, or the showcase root.
func backTo(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}
