// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package tokens

import (
	"strings"
	"testing"

	"bakeshop/internal/models"
)

func TestParseHSL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want HSL
	}{
		{name: "valid", in: "210 80% 40%", want: HSL{210, 80, 40}},
		{name: "surrounding space", in: "  0 0% 100% ", want: HSL{0, 0, 100}},
		{name: "garbage", in: "garbage", want: HSL{0, 0, 50}},
		{name: "empty", in: "", want: HSL{0, 0, 50}},
		{name: "missing percent", in: "210 80 40", want: HSL{0, 0, 50}},
		{name: "decimal", in: "222.2 84% 4.9%", want: HSL{0, 0, 50}},
		{name: "hex", in: "#ffffff", want: HSL{0, 0, 50}},
		{name: "overflowing digits", in: "99999999999999999999 1% 1%", want: HSL{0, 0, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseHSL(tt.in); got != tt.want {
				t.Errorf("ParseHSL(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

// TestContrastForegroundBoundary verifies the threshold is strictly greater
// than 55.
func TestContrastForegroundBoundary(t *testing.T) {
	tests := []struct {
		bg   string
		want string
	}{
		{"0 0% 56%", DarkForeground},
		{"0 0% 55%", LightForeground},
		{"0 0% 100%", DarkForeground},
		{"222 47% 11%", LightForeground},
		{"not a colour", LightForeground},
	}
	for _, tt := range tests {
		if got := ContrastForeground(tt.bg); got != tt.want {
			t.Errorf("ContrastForeground(%q) = %q, want %q", tt.bg, got, tt.want)
		}
	}
}

func TestGenerateModeTokens_PresentLeavesOnly(t *testing.T) {
	d := GenerateModeTokens(models.ModeTokenSet{
		BrandColors: models.BrandColors{PrimaryHSL: "210 80% 40%"},
	})

	if v, _ := d.Get("--primary"); v != "210 80% 40%" {
		t.Errorf("--primary = %q", v)
	}
	if v, _ := d.Get("--primary-foreground"); v != LightForeground {
		t.Errorf("--primary-foreground = %q, want %q", v, LightForeground)
	}
	for _, absent := range []string{"--secondary", "--accent", "--background", "--foreground", "--card", "--muted", "--bg-gradient-hero", "--glass-tint", "--shadow-luxury"} {
		if _, ok := d.Get(absent); ok {
			t.Errorf("%s should not be emitted for an absent leaf", absent)
		}
	}
	if v, _ := d.Get("--ring"); v != "210 80% 40%" {
		t.Errorf("--ring = %q, want primary", v)
	}
}

func TestGenerateModeTokens_Defaults(t *testing.T) {
	d := GenerateModeTokens(models.ModeTokenSet{})

	want := map[string]string{
		"--destructive":            DestructiveHSL,
		"--destructive-foreground": DestructiveForegroundHSL,
		"--border":                 DarkBorderHSL,
		"--input":                  DarkBorderHSL,
		"--ring":                   RingFallbackHSL,
	}
	for name, v := range want {
		if got, _ := d.Get(name); got != v {
			t.Errorf("%s = %q, want %q", name, got, v)
		}
	}
}

// TestBorderThresholdDiffersFromContrast pins the 50/55 split: a background
// at 53% lightness gets the light border tone but light foreground text.
func TestBorderThresholdDiffersFromContrast(t *testing.T) {
	tests := []struct {
		bg         string
		border     string
		foreground string
	}{
		{"30 20% 50%", DarkBorderHSL, LightForeground},
		{"30 20% 51%", LightBorderHSL, LightForeground},
		{"30 20% 53%", LightBorderHSL, LightForeground},
		{"30 20% 56%", LightBorderHSL, DarkForeground},
	}
	for _, tt := range tests {
		d := GenerateModeTokens(models.ModeTokenSet{
			SurfaceColors: models.SurfaceColors{BackgroundHSL: tt.bg},
		})
		if got, _ := d.Get("--border"); got != tt.border {
			t.Errorf("bg %q: --border = %q, want %q", tt.bg, got, tt.border)
		}
		if got, _ := d.Get("--input"); got != tt.border {
			t.Errorf("bg %q: --input = %q, want %q", tt.bg, got, tt.border)
		}
		if got, _ := d.Get("--foreground"); got != tt.foreground {
			t.Errorf("bg %q: --foreground = %q, want %q", tt.bg, got, tt.foreground)
		}
	}
}

func TestGenerateModeTokens_PassThrough(t *testing.T) {
	m := models.ModeTokenSet{
		Gradients:    models.Gradients{HeroGradient: "linear-gradient(135deg, #f6d365, #fda085)"},
		GlassEffects: models.GlassEffects{TintColor: "255 255 255", BlurStrength: "12px", BorderOpacity: "0.2"},
		Shadows:      models.Shadows{Luxury: "0 30px 60px -12px rgba(50,50,93,.25)"},
	}
	d := GenerateModeTokens(m)

	checks := map[string]string{
		"--bg-gradient-hero":     m.Gradients.HeroGradient,
		"--glass-tint":           "255 255 255",
		"--glass-blur":           "12px",
		"--glass-border-opacity": "0.2",
		"--shadow-luxury":        m.Shadows.Luxury,
	}
	for name, want := range checks {
		if got, _ := d.Get(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
	if _, ok := d.Get("--bg-gradient-card"); ok {
		t.Error("--bg-gradient-card should be omitted")
	}
}

func TestChartPalette(t *testing.T) {
	t.Run("fallbacks", func(t *testing.T) {
		p := ChartPalette(nil)
		if len(p) != 8 {
			t.Fatalf("len = %d, want 8", len(p))
		}
		if p[0].Value != chartFallbacks[0] || p[1].Value != chartFallbacks[1] {
			t.Errorf("chart-1/2 = %q/%q, want fallbacks", p[0].Value, p[1].Value)
		}
		for i, d := range p {
			if want := chartName(i + 1); d.Name != want {
				t.Errorf("p[%d].Name = %q, want %q", i, d.Name, want)
			}
		}
	})

	t.Run("follows light primary and accent", func(t *testing.T) {
		var light Declarations
		light.Set("--primary", "10 10% 10%")
		light.Set("--accent", "20 20% 20%")
		p := ChartPalette(light)
		if p[0].Value != "10 10% 10%" || p[1].Value != "20 20% 20%" {
			t.Errorf("chart-1/2 = %q/%q", p[0].Value, p[1].Value)
		}
		if p[7].Name != "--chart-8" {
			t.Errorf("last chart = %q, want --chart-8", p[7].Name)
		}
	})
}

func TestCompileThemeTokens_EmptyTheme(t *testing.T) {
	for _, in := range []*models.Theme{nil, {}} {
		css := CompileThemeTokens(in)
		if !strings.Contains(css, ":root {") {
			t.Errorf("missing :root block:\n%s", css)
		}
		if !strings.Contains(css, `[data-theme="dark"] {`) {
			t.Errorf("missing dark block:\n%s", css)
		}
		if !strings.Contains(css, "[data-theme=\"dark\"] {\n}\n") {
			t.Errorf("dark block should be empty for a theme without dark tokens:\n%s", css)
		}
		if strings.Count(css, "--chart-") != 8 {
			t.Errorf("want exactly 8 chart colours:\n%s", css)
		}
	}
}

func TestCompileThemeTokens_OneDarkLeafBringsDefaults(t *testing.T) {
	th := &models.Theme{}
	th.DarkModeTokens.BrandColors.PrimaryHSL = "38 92% 60%"

	css := CompileThemeTokens(th)
	darkStart := strings.Index(css, DarkSelector)
	dark := css[darkStart : darkStart+strings.Index(css[darkStart:], "}")]

	if !strings.Contains(dark, "--primary: 38 92% 60%;") {
		t.Errorf("dark block missing primary:\n%s", dark)
	}
	for _, want := range []string{"--destructive:", "--border:", "--ring: 38 92% 60%;"} {
		if !strings.Contains(dark, want) {
			t.Errorf("dark block missing derived %q:\n%s", want, dark)
		}
	}
}

func TestCompileThemeTokens_PrimaryInRoot(t *testing.T) {
	th := &models.Theme{}
	th.LightModeTokens.BrandColors.PrimaryHSL = "210 80% 40%"

	css := CompileThemeTokens(th)
	root := css[:strings.Index(css, DarkSelector)]

	if !strings.Contains(root, "--primary: 210 80% 40%;") {
		t.Errorf("root block missing primary:\n%s", root)
	}
	if !strings.Contains(root, "--primary-foreground: 210 40% 98%;") {
		t.Errorf("root block missing primary foreground:\n%s", root)
	}
	if !strings.Contains(root, "--chart-1: 210 80% 40%;") {
		t.Errorf("chart-1 should follow primary:\n%s", root)
	}
}

func TestCompileThemeTokens_DarkBlockHoldsDarkTokensOnly(t *testing.T) {
	th := &models.Theme{}
	th.Typography.FontBody = "Lora, serif"
	th.LightModeTokens.SurfaceColors.BackgroundHSL = "0 0% 100%"
	th.DarkModeTokens.SurfaceColors.BackgroundHSL = "222 47% 11%"

	css := CompileThemeTokens(th)
	darkStart := strings.Index(css, DarkSelector)
	dark := css[darkStart : darkStart+strings.Index(css[darkStart:], "}")]

	if !strings.Contains(dark, "--background: 222 47% 11%;") {
		t.Errorf("dark block missing dark background:\n%s", dark)
	}
	if strings.Contains(dark, "0 0% 100%") {
		t.Errorf("dark block leaked a light token:\n%s", dark)
	}
	if strings.Contains(dark, "--font-body") || strings.Contains(dark, "--chart-") {
		t.Errorf("dark block must not hold global or chart tokens:\n%s", dark)
	}
	if !strings.Contains(css[:darkStart], "--font-body: Lora, serif;") {
		t.Error("global tokens belong to the root block")
	}
}

func TestCompileThemeTokens_Deterministic(t *testing.T) {
	th := models.DefaultTheme()
	first := CompileThemeTokens(th)
	for i := 0; i < 10; i++ {
		if got := CompileThemeTokens(th); got != first {
			t.Fatal("compilation is not deterministic")
		}
	}
	if !strings.HasSuffix(first, baseRules) {
		t.Error("base rules should close the compiled output")
	}
}

func TestCompileModeVariables(t *testing.T) {
	th := &models.Theme{}
	th.LightModeTokens.BrandColors.PrimaryHSL = "210 80% 40%"
	th.LightModeTokens.SurfaceColors.BackgroundHSL = "0 0% 100%"
	th.DarkModeTokens.SurfaceColors.BackgroundHSL = "222 47% 11%"

	light := CompileModeVariables(th, models.ModeLight)
	dark := CompileModeVariables(th, models.ModeDark)

	if !strings.HasPrefix(light, ":root {") || !strings.HasPrefix(dark, ":root {") {
		t.Fatal("mode variables should be a single :root block")
	}
	if !strings.Contains(light, "--background: 0 0% 100%;") {
		t.Errorf("light variables:\n%s", light)
	}
	if !strings.Contains(dark, "--background: 222 47% 11%;") || strings.Contains(dark, "0 0% 100%") {
		t.Errorf("dark variables:\n%s", dark)
	}
	if !strings.Contains(dark, "--primary: 210 80% 40%;") {
		t.Errorf("dark mode should inherit light-only leaves:\n%s", dark)
	}
	if !strings.Contains(dark, "--border: "+DarkBorderHSL+";") {
		t.Errorf("dark border should derive from the dark background:\n%s", dark)
	}
}

func TestSwatch(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0 0% 100%", "#ffffff"},
		{"0 0% 0%", "#000000"},
		{"0 100% 50%", "#ff0000"},
		{"garbage", "#808080"},
	}
	for _, tt := range tests {
		if got := Swatch(tt.in); got != tt.want {
			t.Errorf("Swatch(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
