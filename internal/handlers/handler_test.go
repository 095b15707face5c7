// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests:
// an in-memory theme store and a router wired like the real one.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"bakeshop/internal/compiler"
	"bakeshop/internal/editor"
	"bakeshop/internal/models"
	"bakeshop/internal/render"
	"bakeshop/internal/store"
	"bakeshop/internal/themeruntime"
)

// memStore is an in-memory theme store shared by public and admin tests.
type memStore struct {
	mu      sync.Mutex
	themes  []models.Theme
	seq     int
	listErr error
}

func (m *memStore) List(ctx context.Context) ([]models.Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]models.Theme(nil), m.themes...), nil
}

func (m *memStore) FindByID(ctx context.Context, id string) (*models.Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.themes {
		if m.themes[i].ID == id {
			t := m.themes[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (m *memStore) Create(ctx context.Context, t *models.Theme) (*models.Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	c := *t
	if c.ID == "" {
		c.ID = "theme-" + strconv.Itoa(m.seq)
	}
	m.themes = append(m.themes, c)
	return &c, nil
}

func (m *memStore) Update(ctx context.Context, t *models.Theme) (*models.Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.themes {
		if m.themes[i].ID == t.ID {
			m.themes[i] = *t
			c := *t
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) SetActive(ctx context.Context, id string, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.themes {
		if m.themes[i].ID == id {
			m.themes[i].IsActive = active
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.themes {
		if m.themes[i].ID == id {
			m.themes = append(m.themes[:i], m.themes[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

var errStoreDown = errors.New("connection refused")

// seedTheme adds a compiled theme to the store and returns it.
func seedTheme(m *memStore, name string, active bool, primary string) models.Theme {
	t := models.DefaultTheme()
	t.ThemeName = name
	t.IsActive = active
	t.LightModeTokens.BrandColors.PrimaryHSL = primary
	created, _ := m.Create(context.Background(), t)
	compiler.Compile(created)
	m.Update(context.Background(), created)
	return *created
}

// testRouter mounts the public and admin handlers without auth.
func testRouter(t *testing.T, ms *memStore) http.Handler {
	t.Helper()

	rn, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	var themes themeruntime.Store
	if ms != nil {
		themes = ms
	}
	public := NewPublic(themes, rn, nil)

	r := chi.NewRouter()
	r.Get("/", public.Showcase)
	r.Get("/theme.css", public.ThemeCSS)
	r.Post("/mode", public.SetMode)
	r.Post("/theme", public.SelectTheme)
	r.Get("/themes", public.Themes)
	r.Get("/live", public.Live)

	if ms != nil {
		admin := NewAdmin(editor.New(ms, nil, nil))
		r.Route("/admin/themes", func(r chi.Router) {
			r.Get("/", admin.ListThemes)
			r.Post("/", admin.CreateTheme)
			r.Post("/import", admin.ImportPack)
			r.Post("/preview", admin.PreviewTheme)
			r.Get("/{id}", admin.GetTheme)
			r.Put("/{id}", admin.UpdateTheme)
			r.Delete("/{id}", admin.DeleteTheme)
			r.Post("/{id}/activate", admin.ActivateTheme)
			r.Post("/{id}/deactivate", admin.DeactivateTheme)
		})
	}
	return r
}
