package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"bakeshop/internal/compiler"
	"bakeshop/internal/models"
)

// ThemeSeeder is the part of the theme store Seed writes through.
type ThemeSeeder interface {
	List(ctx context.Context) ([]models.Theme, error)
	Create(ctx context.Context, t *models.Theme) (*models.Theme, error)
}

// Seed populates an empty theme table with the compiled built-in theme,
// flagged active, so a fresh development database renders the same
// storefront as the fallback path.
func Seed(ctx context.Context, themes ThemeSeeder) error {
	existing, err := themes.List(ctx)
	if err != nil {
		return fmt.Errorf("seed check themes: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	t := models.DefaultTheme()
	t.ID = uuid.NewString()
	t.IsActive = true
	compiler.Compile(t)

	created, err := themes.Create(ctx, t)
	if err != nil {
		return fmt.Errorf("seed insert default theme: %w", err)
	}

	slog.Info("database seeded with default theme", "id", created.ID, "name", created.ThemeName)
	return nil
}
