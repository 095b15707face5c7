package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"bakeshop/internal/models"
	"bakeshop/internal/tokens"
)

// Validation limits for theme fields.
const (
	maxThemeNameLen   = 200
	maxCategoryLen    = 100
	maxDescriptionLen = 2_000
	maxPackBytes      = 1 << 20
	maxThemeBodyBytes = 1 << 20
)

// validateTheme checks a theme submitted through the admin API and
// returns the first error found.
func validateTheme(t *models.Theme) string {
	name := strings.TrimSpace(t.ThemeName)
	if name == "" {
		return "Theme name is required."
	}
	if utf8.RuneCountInString(name) > maxThemeNameLen {
		return "Theme name is too long (max 200 characters)."
	}
	if utf8.RuneCountInString(t.Category) > maxCategoryLen {
		return "Category is too long (max 100 characters)."
	}
	if utf8.RuneCountInString(t.Description) > maxDescriptionLen {
		return "Description is too long (max 2,000 characters)."
	}
	return validateTokens(t)
}

// validateTokens checks that every colour leaf present in either mode is
// an "H S% L%" triplet. Absent leaves are valid.
func validateTokens(t *models.Theme) string {
	modes := []struct {
		name string
		set  models.ModeTokenSet
	}{
		{"light_mode_tokens", t.LightModeTokens},
		{"dark_mode_tokens", t.DarkModeTokens},
	}
	for _, m := range modes {
		leaves := []struct {
			path, value string
		}{
			{"brand_colors.primary_hsl", m.set.BrandColors.PrimaryHSL},
			{"brand_colors.secondary_hsl", m.set.BrandColors.SecondaryHSL},
			{"brand_colors.accent_hsl", m.set.BrandColors.AccentHSL},
			{"surface_colors.background_hsl", m.set.SurfaceColors.BackgroundHSL},
			{"surface_colors.card_hsl", m.set.SurfaceColors.CardHSL},
			{"surface_colors.muted_hsl", m.set.SurfaceColors.MutedHSL},
		}
		for _, l := range leaves {
			if l.value != "" && !tokens.ValidHSL(l.value) {
				return fmt.Sprintf("%s.%s must look like \"210 40%% 96%%\", got %q.", m.name, l.path, l.value)
			}
		}
	}
	return ""
}
