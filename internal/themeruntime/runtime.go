// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package themeruntime selects the active storefront theme and applies its
// compiled CSS to a style sink. Theme loading never fails: an unreachable
// or empty store degrades to the built-in fallback theme.
//
// Loads and switches pick the current theme. Each takes a ticket from a
// monotonic counter and commits only if no newer pick has committed, so a
// slow, stale load can never overwrite a newer choice. Mode toggles and
// plain applies never pick a theme and take no ticket.
package themeruntime

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"bakeshop/internal/models"
)

// ErrThemeNotFound is returned by SwitchTheme for ids that are not loaded.
var ErrThemeNotFound = errors.New("theme not found")

// errNoStore marks a runtime built without a theme store.
var errNoStore = errors.New("theme store not configured")

// State is the lifecycle state of a Runtime.
type State int

const (
	StateLoading State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "loading"
}

// Store is the part of the theme store the runtime reads.
type Store interface {
	List(ctx context.Context) ([]models.Theme, error)
}

// Options configures a Runtime.
type Options struct {
	// Store may be nil when no theme store is configured.
	Store Store
	Sink  StyleSink
	// Modes defaults to an in-memory store.
	Modes ModeStore
	// PreviewThemeID is the preview_theme query parameter of the page the
	// runtime was mounted on. It is read once and never re-resolved.
	PreviewThemeID string
}

// Runtime is the theme controller of one page.
type Runtime struct {
	store     Store
	sink      StyleSink
	modes     ModeStore
	previewID string

	issued atomic.Uint64

	mu         sync.Mutex
	state      State
	themes     []models.Theme
	listTicket uint64
	picked     uint64 // ticket of the last committed pick
	current    *models.Theme
}

// New creates a Runtime in the loading state.
func New(opts Options) *Runtime {
	if opts.Sink == nil {
		opts.Sink = &MemorySink{}
	}
	if opts.Modes == nil {
		opts.Modes = &MemoryModes{}
	}
	return &Runtime{
		store:     opts.Store,
		sink:      opts.Sink,
		modes:     opts.Modes,
		previewID: opts.PreviewThemeID,
	}
}

func (r *Runtime) ticket() uint64 {
	return r.issued.Add(1)
}

// stale reports whether a newer pick than t has committed. Callers hold
// r.mu.
func (r *Runtime) stale(t uint64) bool {
	return t < r.picked
}

// pick makes theme current under ticket t and applies it. Callers hold r.mu.
func (r *Runtime) pick(t uint64, theme *models.Theme) {
	r.picked = t
	r.current = theme
	r.state = StateReady
	r.apply(theme, "")
}

// Load fetches the themes, resolves the active one, and applies it. It
// returns the resolved theme, or nil when a newer request superseded it.
func (r *Runtime) Load(ctx context.Context) *models.Theme {
	t := r.ticket()

	themes, err := r.fetch(ctx)
	if err != nil {
		if errors.Is(err, errNoStore) {
			slog.Debug("theme store not configured, using fallback theme")
		} else {
			slog.Warn("theme load failed, using fallback theme", "error", err)
		}
		themes = nil
	}
	selected := r.resolve(themes)

	r.mu.Lock()
	defer r.mu.Unlock()

	if t > r.listTicket {
		r.themes = themes
		r.listTicket = t
	}
	if r.stale(t) {
		slog.Debug("discarding stale theme load", "ticket", t, "theme", selected.ID)
		return nil
	}

	r.pick(t, selected)
	return copyTheme(selected)
}

func (r *Runtime) fetch(ctx context.Context) ([]models.Theme, error) {
	if r.store == nil {
		return nil, errNoStore
	}
	return r.store.List(ctx)
}

// resolve picks the theme to show: the preview override, then the first
// theme flagged active, then the first theme, then the fallback.
func (r *Runtime) resolve(themes []models.Theme) *models.Theme {
	if r.previewID != "" {
		for i := range themes {
			if themes[i].ID == r.previewID {
				return copyTheme(&themes[i])
			}
		}
		slog.Debug("preview theme not found", "id", r.previewID)
	}
	for i := range themes {
		if themes[i].IsActive {
			return copyTheme(&themes[i])
		}
	}
	if len(themes) > 0 {
		return copyTheme(&themes[0])
	}
	return Fallback()
}

// ApplyTheme injects the CSS of theme into the sink without making it
// current. An empty forced mode uses the persisted mode. It reports whether
// anything was written.
func (r *Runtime) ApplyTheme(theme *models.Theme, forced models.Mode) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.apply(theme, forced)
}

// apply writes to the sink. Callers hold r.mu.
func (r *Runtime) apply(theme *models.Theme, forced models.Mode) bool {
	if theme == nil {
		return false
	}
	mode := forced
	if mode == "" {
		mode = r.modes.Mode()
	}

	css, ok := selectCSS(theme, mode)
	if !ok {
		slog.Warn("theme has no compiled css, skipping apply", "id", theme.ID, "name", theme.ThemeName)
		return false
	}

	r.sink.Replace(compose(css, theme.ComponentCSS))
	if marker, ok := r.sink.(ModeMarker); ok {
		marker.MarkMode(mode)
	}
	slog.Debug("theme applied", "id", theme.ID, "mode", mode)
	return true
}

// SwitchTheme makes the loaded theme with the given id current and applies
// it. It never re-fetches; the built-in theme is always switchable by its
// id.
func (r *Runtime) SwitchTheme(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var next *models.Theme
	for i := range r.themes {
		if r.themes[i].ID == id {
			next = copyTheme(&r.themes[i])
			break
		}
	}
	if next == nil && id == models.DefaultThemeID {
		next = Fallback()
	}
	if next == nil {
		return ErrThemeNotFound
	}

	// Under r.mu no pick can commit between issuing and using the ticket.
	r.pick(r.ticket(), next)
	return nil
}

// ToggleMode persists mode and re-applies the current theme in it. The
// current theme itself does not change. Before the first pick it only
// persists; the pending load applies the new mode.
func (r *Runtime) ToggleMode(mode models.Mode) {
	r.modes.SetMode(mode)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return
	}
	r.apply(r.current, mode)
}

// CurrentMode returns the persisted mode, defaulting to light.
func (r *Runtime) CurrentMode() models.Mode {
	return r.modes.Mode()
}

// Current returns a copy of the current theme, or nil while loading.
func (r *Runtime) Current() *models.Theme {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyTheme(r.current)
}

// Themes returns the themes of the last completed load.
func (r *Runtime) Themes() []models.Theme {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Theme, len(r.themes))
	copy(out, r.themes)
	return out
}

// State returns the lifecycle state.
func (r *Runtime) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func copyTheme(t *models.Theme) *models.Theme {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
