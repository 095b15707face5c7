// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package editor is the write path for themes. Every save recompiles the
// theme before it is persisted, then drops the cached theme list and tells
// open showcase pages about the change.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"bakeshop/internal/compiler"
	"bakeshop/internal/live"
	"bakeshop/internal/models"
	"bakeshop/internal/store"
	"bakeshop/internal/themepack"
)

// ErrNotFound is returned when the target theme does not exist.
var ErrNotFound = errors.New("theme not found")

// Store is the persistence the editor writes through.
type Store interface {
	List(ctx context.Context) ([]models.Theme, error)
	FindByID(ctx context.Context, id string) (*models.Theme, error)
	Create(ctx context.Context, t *models.Theme) (*models.Theme, error)
	Update(ctx context.Context, t *models.Theme) (*models.Theme, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

// Invalidator drops cached theme reads.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// Publisher announces theme changes.
type Publisher interface {
	Publish(ev live.Event)
}

// Service implements theme CRUD and pack import.
type Service struct {
	store  Store
	cache  Invalidator
	events Publisher
}

// New creates a Service. cache and events may be nil.
func New(s Store, cache Invalidator, events Publisher) *Service {
	return &Service{store: s, cache: cache, events: events}
}

// List returns every stored theme in list order.
func (s *Service) List(ctx context.Context) ([]models.Theme, error) {
	themes, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	return themes, nil
}

// Get returns one theme or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (*models.Theme, error) {
	t, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get theme: %w", err)
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

// Create compiles and stores a new theme in a single insert. The id is
// assigned first because recipes compile against it.
func (s *Service) Create(ctx context.Context, t *models.Theme) (*models.Theme, error) {
	if t.Category == "" {
		t.Category = models.DefaultCategory
	}
	t.ID = uuid.NewString()
	compiler.Compile(t)

	created, err := s.store.Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("create theme: %w", err)
	}

	slog.Info("theme created", "id", created.ID, "name", created.ThemeName)
	s.changed(ctx, live.EventThemeUpdated, created.ID)
	return created, nil
}

// Update compiles and stores t over the record with the same id.
func (s *Service) Update(ctx context.Context, t *models.Theme) (*models.Theme, error) {
	compiler.Compile(t)
	updated, err := s.store.Update(ctx, t)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update theme: %w", err)
	}

	slog.Info("theme updated", "id", updated.ID, "name", updated.ThemeName)
	s.changed(ctx, live.EventThemeUpdated, updated.ID)
	return updated, nil
}

// SetActive flags or unflags a theme as active.
func (s *Service) SetActive(ctx context.Context, id string, active bool) error {
	err := s.store.SetActive(ctx, id, active)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("set theme active: %w", err)
	}

	slog.Info("theme active flag changed", "id", id, "active", active)
	s.changed(ctx, live.EventThemeUpdated, id)
	return nil
}

// Delete removes a theme.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}

	slog.Info("theme deleted", "id", id)
	s.changed(ctx, live.EventThemeDeleted, id)
	return nil
}

// Import parses a pasted theme pack and merges it over a base theme: the
// stored theme baseID when given, otherwise the built-in default tree. An
// import onto a stored theme updates it; otherwise a new theme is created.
// Parser errors are returned unchanged.
func (s *Service) Import(ctx context.Context, text, baseID string) (*models.Theme, error) {
	pack, err := themepack.Parse(text)
	if err != nil {
		return nil, err
	}

	if baseID == "" {
		base := models.DefaultTheme()
		base.ID = ""
		pack.Apply(base)
		slog.Info("theme pack imported", "format", pack.Format, "name", base.ThemeName)
		return s.Create(ctx, base)
	}

	base, err := s.Get(ctx, baseID)
	if err != nil {
		return nil, err
	}
	pack.Apply(base)
	slog.Info("theme pack imported", "format", pack.Format, "name", base.ThemeName, "base", baseID)
	return s.Update(ctx, base)
}

// Preview compiles t without persisting it.
func (s *Service) Preview(t models.Theme) *models.Theme {
	if t.ID == "" {
		t.ID = "preview"
	}
	return compiler.Compiled(t)
}

func (s *Service) changed(ctx context.Context, kind, id string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	if s.events != nil {
		s.events.Publish(live.Event{Type: kind, ID: id})
	}
}
