// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package tokens compiles a theme's design-token tree into CSS custom
// property text. Every function here is pure and total: missing or
// malformed values degrade to fixed defaults instead of returning errors.
package tokens

import (
	"strconv"
	"strings"

	"bakeshop/internal/models"
)

// Fixed values used when a mode does not define them.
const (
	DestructiveHSL           = "0 84% 60%"
	DestructiveForegroundHSL = "210 40% 98%"
	RingFallbackHSL          = "222 84% 5%"

	// Border tones are picked with borderThreshold, which deliberately
	// differs from contrastThreshold. Shipped themes depend on both.
	LightBorderHSL = "214 32% 91%"
	DarkBorderHSL  = "217 33% 17%"
)

const borderThreshold = 50

// Selectors of the two variable blocks.
const (
	RootSelector = ":root"
	DarkSelector = `[data-theme="dark"]`
)

// chartFallbacks seed chart-1 and chart-2 when the light mode has no
// primary or accent colour.
var chartFallbacks = [2]string{"12 76% 61%", "173 58% 39%"}

// fixedChartHSL are chart-3 through chart-8.
var fixedChartHSL = [6]string{
	"197 37% 24%",
	"43 74% 66%",
	"27 87% 67%",
	"340 75% 55%",
	"262 83% 58%",
	"142 71% 45%",
}

// baseRules follow the variable blocks in the compiled theme.
const baseRules = `body {
  background-color: hsl(var(--background));
  color: hsl(var(--foreground));
  font-family: var(--font-body, system-ui, sans-serif);
  transition: background-color var(--duration-medium, 300ms) var(--easing-standard, ease), color var(--duration-medium, 300ms) var(--easing-standard, ease);
}
h1, h2, h3, h4, h5, h6 {
  font-family: var(--font-display, var(--font-body, serif));
}
`

// GenerateModeTokens builds the custom properties of one colour mode.
func GenerateModeTokens(m models.ModeTokenSet) Declarations {
	var d Declarations

	colorPair(&d, "--primary", "--primary-foreground", m.BrandColors.PrimaryHSL)
	colorPair(&d, "--secondary", "--secondary-foreground", m.BrandColors.SecondaryHSL)
	colorPair(&d, "--accent", "--accent-foreground", m.BrandColors.AccentHSL)
	colorPair(&d, "--background", "--foreground", m.SurfaceColors.BackgroundHSL)
	colorPair(&d, "--card", "--card-foreground", m.SurfaceColors.CardHSL)
	colorPair(&d, "--muted", "--muted-foreground", m.SurfaceColors.MutedHSL)

	d.Set("--destructive", DestructiveHSL)
	d.Set("--destructive-foreground", DestructiveForegroundHSL)

	border := DarkBorderHSL
	if ParseHSL(m.SurfaceColors.BackgroundHSL).L > borderThreshold {
		border = LightBorderHSL
	}
	d.Set("--border", border)
	d.Set("--input", border)

	ring := RingFallbackHSL
	if m.BrandColors.PrimaryHSL != "" {
		ring = m.BrandColors.PrimaryHSL
	}
	d.Set("--ring", ring)

	d.SetPresent("--bg-gradient-hero", m.Gradients.HeroGradient)
	d.SetPresent("--bg-gradient-card", m.Gradients.CardGradient)
	d.SetPresent("--bg-gradient-accent", m.Gradients.AccentGradient)

	d.SetPresent("--glass-tint", m.GlassEffects.TintColor)
	d.SetPresent("--glass-blur", m.GlassEffects.BlurStrength)
	d.SetPresent("--glass-border-opacity", m.GlassEffects.BorderOpacity)

	d.SetPresent("--shadow-subtle", m.Shadows.Subtle)
	d.SetPresent("--shadow-medium", m.Shadows.Medium)
	d.SetPresent("--shadow-large", m.Shadows.Large)
	d.SetPresent("--shadow-luxury", m.Shadows.Luxury)

	return d
}

func colorPair(d *Declarations, name, foreground, hsl string) {
	if hsl == "" {
		return
	}
	d.Set(name, hsl)
	d.Set(foreground, ContrastForeground(hsl))
}

// GlobalTokens builds the mode-independent typography and motion properties.
func GlobalTokens(ty models.Typography, mo models.Motion) Declarations {
	var d Declarations
	d.SetPresent("--font-display", ty.FontDisplay)
	d.SetPresent("--font-body", ty.FontBody)
	d.SetPresent("--font-mono", ty.FontMono)
	d.SetPresent("--type-scale-ratio", ty.ScaleRatio)
	d.SetPresent("--duration-fast", mo.DurationFast)
	d.SetPresent("--duration-medium", mo.DurationMedium)
	d.SetPresent("--duration-slow", mo.DurationSlow)
	d.SetPresent("--easing-standard", mo.EasingStandard)
	d.SetPresent("--easing-emphasized", mo.EasingEmphasized)
	return d
}

// ChartPalette returns exactly eight chart colours. The first two follow
// the light mode's primary and accent.
func ChartPalette(light Declarations) Declarations {
	d := make(Declarations, 0, 8)

	first := chartFallbacks[0]
	if v, ok := light.Get("--primary"); ok {
		first = v
	}
	second := chartFallbacks[1]
	if v, ok := light.Get("--accent"); ok {
		second = v
	}
	d = append(d, Declaration{"--chart-1", first}, Declaration{"--chart-2", second})
	for i, v := range fixedChartHSL {
		d = append(d, Declaration{Name: chartName(i + 3), Value: v})
	}
	return d
}

func chartName(n int) string {
	return "--chart-" + strconv.Itoa(n)
}

// CompileThemeTokens compiles the full token tree of a theme. The output
// always holds a :root block and a [data-theme="dark"] block, even when the
// dark block is empty, followed by the fixed base rules. A theme with no
// dark leaves at all gets that empty dark block on purpose: the derived
// defaults such as --border and --ring are skipped so the light values
// show through in dark mode. One set dark leaf brings them all in.
// Identical input produces byte-identical output.
func CompileThemeTokens(t *models.Theme) string {
	if t == nil {
		t = &models.Theme{}
	}

	light := GenerateModeTokens(t.LightModeTokens)
	dark := GenerateModeTokens(t.DarkModeTokens)
	if isZeroModeSet(t.DarkModeTokens) {
		dark = nil
	}

	root := GlobalTokens(t.Typography, t.Motion)
	root.Merge(light)
	root.Merge(ChartPalette(light))

	var b strings.Builder
	writeBlock(&b, RootSelector, root)
	b.WriteString("\n")
	writeBlock(&b, DarkSelector, dark)
	b.WriteString("\n")
	b.WriteString(baseRules)
	return b.String()
}

// CompileModeVariables compiles a single :root block for one mode. Dark
// mode layers the dark tokens over the light ones, so leaves a theme only
// defines for light mode still resolve. The chart palette always follows
// the light mode.
func CompileModeVariables(t *models.Theme, mode models.Mode) string {
	if t == nil {
		t = &models.Theme{}
	}

	light := GenerateModeTokens(t.LightModeTokens)

	root := GlobalTokens(t.Typography, t.Motion)
	if mode == models.ModeDark {
		merged := t.LightModeTokens
		merged.Merge(t.DarkModeTokens)
		root.Merge(GenerateModeTokens(merged))
	} else {
		root.Merge(light)
	}
	root.Merge(ChartPalette(light))

	var b strings.Builder
	writeBlock(&b, RootSelector, root)
	return b.String()
}

// isZeroModeSet reports whether a mode defines no leaves at all. Such a
// mode contributes nothing, not even the derived defaults, so light-only
// themes keep their light border and ring in dark mode.
func isZeroModeSet(m models.ModeTokenSet) bool {
	return m == models.ModeTokenSet{}
}
