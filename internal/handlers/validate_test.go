package handlers

import (
	"strings"
	"testing"

	"bakeshop/internal/models"
)

func TestValidateTheme(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.Theme)
		wantError bool
	}{
		{"valid", func(*models.Theme) {}, false},
		{"empty name", func(th *models.Theme) { th.ThemeName = "" }, true},
		{"whitespace name", func(th *models.Theme) { th.ThemeName = "   " }, true},
		{"name too long", func(th *models.Theme) { th.ThemeName = strings.Repeat("a", 201) }, true},
		{"category too long", func(th *models.Theme) { th.Category = strings.Repeat("c", 101) }, true},
		{"description too long", func(th *models.Theme) { th.Description = strings.Repeat("d", 2_001) }, true},
		{"bad light colour", func(th *models.Theme) { th.LightModeTokens.BrandColors.PrimaryHSL = "#ff0000" }, true},
		{"bad dark colour", func(th *models.Theme) { th.DarkModeTokens.SurfaceColors.CardHSL = "hsl(1,2,3)" }, true},
		{"empty colour allowed", func(th *models.Theme) { th.LightModeTokens.BrandColors.AccentHSL = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := models.DefaultTheme()
			tt.mutate(th)
			result := validateTheme(th)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateTokens_NamesTheLeaf(t *testing.T) {
	th := &models.Theme{}
	th.DarkModeTokens.SurfaceColors.MutedHSL = "grey"

	msg := validateTokens(th)
	if !strings.Contains(msg, "dark_mode_tokens.surface_colors.muted_hsl") {
		t.Errorf("message does not name the leaf: %s", msg)
	}
}
