package render

import (
	"strings"
	"testing"

	"bakeshop/internal/models"
)

func TestNew(t *testing.T) {
	rn, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if rn.showcase == nil {
		t.Fatal("showcase template not parsed")
	}
}

func TestShowcase(t *testing.T) {
	rn, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	current := models.DefaultTheme()
	other := models.Theme{ID: "rye", ThemeName: "Rye & Honey", IsActive: true}
	other.LightModeTokens.BrandColors.PrimaryHSL = "0 100% 50%"

	out, err := rn.Showcase(&ShowcaseData{
		Current: current,
		Themes:  []models.Theme{*current, other},
		Mode:    models.ModeDark,
	})
	if err != nil {
		t.Fatalf("Showcase: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`class="theme-default"`,
		`<title>Default · Bakeshop</title>`,
		`value="light"`,
		`Rye &amp; Honey (active)`,
		`/?preview_theme=rye`,
		`name="theme_id" value="rye"`,
		`#ff0000`,
		`Country Sourdough`,
		`class="card-elevated"`,
		`class="input"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("showcase missing %q", want)
		}
	}
	if strings.Contains(html, "dynamic-theme-styles") {
		t.Error("template must not carry the theme style element")
	}
}

func TestShowcase_LightModeOffersDark(t *testing.T) {
	rn, _ := New()
	out, err := rn.Showcase(&ShowcaseData{Mode: models.ModeLight})
	if err != nil {
		t.Fatalf("Showcase: %v", err)
	}
	if !strings.Contains(string(out), `value="dark"`) {
		t.Error("light page should offer the dark toggle")
	}
}

func TestShowcase_DescriptionMarkdown(t *testing.T) {
	rn, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	current := &models.Theme{ID: "honey", ThemeName: "Honey", Description: "Golden **crust** <b>raw</b>"}

	out, err := rn.Showcase(&ShowcaseData{Current: current, Themes: []models.Theme{*current}})
	if err != nil {
		t.Fatalf("Showcase: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<strong>crust</strong>") {
		t.Error("description markdown not rendered")
	}
	if strings.Contains(html, "<b>raw</b>") {
		t.Error("raw html in description passed through")
	}
}
