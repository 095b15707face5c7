// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package themepack

import (
	"strings"

	"bakeshop/internal/models"
)

// variableTargets maps pack CSS variable names onto light-mode token leaves.
// Names missing from the table are dropped.
var variableTargets = map[string]func(*models.ModeTokenSet) *string{
	"--primary":    func(m *models.ModeTokenSet) *string { return &m.BrandColors.PrimaryHSL },
	"--secondary":  func(m *models.ModeTokenSet) *string { return &m.BrandColors.SecondaryHSL },
	"--accent":     func(m *models.ModeTokenSet) *string { return &m.BrandColors.AccentHSL },
	"--background": func(m *models.ModeTokenSet) *string { return &m.SurfaceColors.BackgroundHSL },
	"--card":       func(m *models.ModeTokenSet) *string { return &m.SurfaceColors.CardHSL },
	"--muted":      func(m *models.ModeTokenSet) *string { return &m.SurfaceColors.MutedHSL },

	"--bg-gradient-hero":   func(m *models.ModeTokenSet) *string { return &m.Gradients.HeroGradient },
	"--gradient-hero":      func(m *models.ModeTokenSet) *string { return &m.Gradients.HeroGradient },
	"--bg-gradient-card":   func(m *models.ModeTokenSet) *string { return &m.Gradients.CardGradient },
	"--gradient-card":      func(m *models.ModeTokenSet) *string { return &m.Gradients.CardGradient },
	"--bg-gradient-accent": func(m *models.ModeTokenSet) *string { return &m.Gradients.AccentGradient },
	"--gradient-accent":    func(m *models.ModeTokenSet) *string { return &m.Gradients.AccentGradient },

	"--glass-tint":           func(m *models.ModeTokenSet) *string { return &m.GlassEffects.TintColor },
	"--glass-blur":           func(m *models.ModeTokenSet) *string { return &m.GlassEffects.BlurStrength },
	"--glass-border-opacity": func(m *models.ModeTokenSet) *string { return &m.GlassEffects.BorderOpacity },

	"--shadow-subtle": func(m *models.ModeTokenSet) *string { return &m.Shadows.Subtle },
	"--shadow-medium": func(m *models.ModeTokenSet) *string { return &m.Shadows.Medium },
	"--shadow-large":  func(m *models.ModeTokenSet) *string { return &m.Shadows.Large },
	"--shadow-luxury": func(m *models.ModeTokenSet) *string { return &m.Shadows.Luxury },
}

// mapVariables scans ';'-delimited "--name: value" declarations and stores
// the recognised ones on m. Selector wrappers such as ":root {" are ignored.
func mapVariables(src string, m *models.ModeTokenSet) {
	for _, chunk := range strings.Split(src, ";") {
		start := strings.Index(chunk, "--")
		if start == -1 {
			continue
		}
		decl := chunk[start:]
		colon := strings.Index(decl, ":")
		if colon == -1 {
			continue
		}
		name := strings.TrimSpace(decl[:colon])
		value := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(decl[colon+1:]), "}"))
		if value == "" {
			continue
		}
		if target, ok := variableTargets[name]; ok {
			*target(m) = unquote(value)
		}
	}
}
