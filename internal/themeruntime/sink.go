// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package themeruntime

import (
	"sync"

	"bakeshop/internal/models"
)

// StyleElementID identifies the single document-wide style element that
// receives compiled theme CSS.
const StyleElementID = "dynamic-theme-styles"

// StyleSink receives the full stylesheet of every apply. Replace must swap
// the whole content in one step; the runtime is the sink's only writer.
type StyleSink interface {
	Replace(css string)
}

// ModeMarker is implemented by sinks that own a document root and can flag
// the active mode on it (data-theme attribute, dark class).
type ModeMarker interface {
	MarkMode(mode models.Mode)
}

// ModeStore persists the visitor's mode choice between page loads.
type ModeStore interface {
	Mode() models.Mode
	SetMode(mode models.Mode)
}

// ModeStorageKey is the client-side key the mode choice is stored under.
const ModeStorageKey = "theme-mode"

// MemorySink is an in-process StyleSink. It also records the last marked
// mode so a rendered page can replay both onto its document.
type MemorySink struct {
	mu     sync.Mutex
	css    string
	mode   models.Mode
	writes int
}

// Replace swaps the stored stylesheet.
func (s *MemorySink) Replace(css string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.css = css
	s.writes++
}

// CSS returns the current stylesheet.
func (s *MemorySink) CSS() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.css
}

// MarkMode records mode.
func (s *MemorySink) MarkMode(mode models.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

// Mode returns the last marked mode, or "" if none was marked.
func (s *MemorySink) Mode() models.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Writes returns how many times Replace was called.
func (s *MemorySink) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// MemoryModes is an in-process ModeStore. The zero value reports light.
type MemoryModes struct {
	mu   sync.Mutex
	mode models.Mode
}

// Mode returns the stored mode, defaulting to light.
func (m *MemoryModes) Mode() models.Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.ParseMode(string(m.mode))
}

// SetMode stores mode.
func (m *MemoryModes) SetMode(mode models.Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = mode
}
