// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists theme records in PostgreSQL. Token trees and
// component recipes live in JSONB columns; compiled CSS lives in text
// columns next to them.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"bakeshop/internal/models"
)

// ErrNotFound is returned by writes that target a missing theme.
var ErrNotFound = errors.New("theme not found")

// ThemeStore handles all theme database operations.
type ThemeStore struct {
	db *sql.DB
}

// NewThemeStore creates a new ThemeStore.
func NewThemeStore(db *sql.DB) *ThemeStore {
	return &ThemeStore{db: db}
}

// themeColumns lists the columns selected in theme queries.
const themeColumns = `id, theme_name, category, description, preview_image_url, texture_url,
	is_active, light_mode_tokens, dark_mode_tokens, typography, motion, component_recipes,
	css_variables, light_mode_variables, dark_mode_variables, component_css,
	created_at, updated_at`

// scanTheme scans a theme row from the result set.
func scanTheme(scanner interface{ Scan(...any) error }) (*models.Theme, error) {
	var (
		t                                    models.Theme
		light, dark, typo, motion, recipeDoc []byte
	)
	err := scanner.Scan(
		&t.ID, &t.ThemeName, &t.Category, &t.Description, &t.PreviewImageURL, &t.TextureURL,
		&t.IsActive, &light, &dark, &typo, &motion, &recipeDoc,
		&t.CSSVariables, &t.LightModeVariables, &t.DarkModeVariables, &t.ComponentCSS,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	docs := []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"light_mode_tokens", light, &t.LightModeTokens},
		{"dark_mode_tokens", dark, &t.DarkModeTokens},
		{"typography", typo, &t.Typography},
		{"motion", motion, &t.Motion},
		{"component_recipes", recipeDoc, &t.ComponentRecipes},
	}
	for _, d := range docs {
		if len(d.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(d.raw, d.dst); err != nil {
			return nil, fmt.Errorf("decode %s: %w", d.name, err)
		}
	}
	return &t, nil
}

// encodeDocs marshals the JSONB columns of t in column order.
func encodeDocs(t *models.Theme) ([]any, error) {
	src := []any{t.LightModeTokens, t.DarkModeTokens, t.Typography, t.Motion, t.ComponentRecipes}
	out := make([]any, len(src))
	for i, v := range src {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode theme document: %w", err)
		}
		out[i] = string(b)
	}
	return out, nil
}

// List returns all themes in list order (oldest first).
func (s *ThemeStore) List(ctx context.Context) ([]models.Theme, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+themeColumns+`
		FROM themes
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	var items []models.Theme
	for rows.Next() {
		t, err := scanTheme(rows)
		if err != nil {
			return nil, fmt.Errorf("scan theme: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// FindByID retrieves a theme by its UUID. Returns nil if not found.
func (s *ThemeStore) FindByID(ctx context.Context, id string) (*models.Theme, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	row := s.db.QueryRowContext(ctx, `SELECT `+themeColumns+` FROM themes WHERE id = $1`, uid)
	t, err := scanTheme(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find theme by id: %w", err)
	}
	return t, nil
}

// Create inserts a new theme and returns it with its timestamps. A valid
// UUID in t.ID is kept so compiled recipes match the stored id; otherwise
// a new one is generated. Compiled fields are stored as given.
func (s *ThemeStore) Create(ctx context.Context, t *models.Theme) (*models.Theme, error) {
	uid, err := uuid.Parse(t.ID)
	if err != nil {
		uid = uuid.New()
	}
	docs, err := encodeDocs(t)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO themes (id, theme_name, category, description, preview_image_url, texture_url,
			is_active, light_mode_tokens, dark_mode_tokens, typography, motion, component_recipes,
			css_variables, light_mode_variables, dark_mode_variables, component_css)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+themeColumns,
		uid, t.ThemeName, t.Category, t.Description, t.PreviewImageURL, t.TextureURL,
		t.IsActive, docs[0], docs[1], docs[2], docs[3], docs[4],
		t.CSSVariables, t.LightModeVariables, t.DarkModeVariables, t.ComponentCSS,
	)
	created, err := scanTheme(row)
	if err != nil {
		return nil, fmt.Errorf("create theme: %w", err)
	}
	return created, nil
}

// Update replaces every mutable column of the theme with id t.ID.
func (s *ThemeStore) Update(ctx context.Context, t *models.Theme) (*models.Theme, error) {
	uid, err := uuid.Parse(t.ID)
	if err != nil {
		return nil, ErrNotFound
	}
	docs, err := encodeDocs(t)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		UPDATE themes SET theme_name = $1, category = $2, description = $3,
			preview_image_url = $4, texture_url = $5, is_active = $6,
			light_mode_tokens = $7, dark_mode_tokens = $8, typography = $9, motion = $10,
			component_recipes = $11, css_variables = $12, light_mode_variables = $13,
			dark_mode_variables = $14, component_css = $15, updated_at = NOW()
		WHERE id = $16
		RETURNING `+themeColumns,
		t.ThemeName, t.Category, t.Description, t.PreviewImageURL, t.TextureURL,
		t.IsActive, docs[0], docs[1], docs[2], docs[3], docs[4],
		t.CSSVariables, t.LightModeVariables, t.DarkModeVariables, t.ComponentCSS,
		uid,
	)
	updated, err := scanTheme(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update theme: %w", err)
	}
	return updated, nil
}

// SetActive flags or unflags a single theme. Other themes are untouched:
// the flag is advisory and several themes may carry it.
func (s *ThemeStore) SetActive(ctx context.Context, id string, active bool) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.db.ExecContext(ctx,
		`UPDATE themes SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, uid)
	if err != nil {
		return fmt.Errorf("set theme active: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a theme.
func (s *ThemeStore) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.db.ExecContext(ctx, `DELETE FROM themes WHERE id = $1`, uid)
	if err != nil {
		return fmt.Errorf("delete theme: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
