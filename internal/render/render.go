// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the storefront
// showcase. Templates are embedded at compile time; the theme stylesheet
// is not part of the template and is injected afterwards through the
// document style sink.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"

	"bakeshop/internal/markdown"
	"bakeshop/internal/models"
	"bakeshop/internal/tokens"
)

//go:embed templates/*.html
var templateFS embed.FS

// ShowcaseData holds everything the showcase template renders.
type ShowcaseData struct {
	Current   *models.Theme
	Themes    []models.Theme
	Mode      models.Mode
	PreviewID string
	Products  []Product
}

// Product is a sample storefront item.
type Product struct {
	Name        string
	Description string
	Price       string
	Featured    bool
}

// SampleProducts is the catalogue shown on the showcase page.
var SampleProducts = []Product{
	{Name: "Country Sourdough", Description: "48-hour fermented loaf with a blistered crust.", Price: "$9.00", Featured: true},
	{Name: "Butter Croissant", Description: "Laminated with cultured butter, baked every morning.", Price: "$4.50"},
	{Name: "Cardamom Bun", Description: "Swedish knot, pearl sugar, fresh cardamom.", Price: "$5.00"},
	{Name: "Celebration Cake", Description: "Made to order. Ask us about flavours.", Price: "from $48", Featured: true},
}

// Renderer executes the embedded templates.
type Renderer struct {
	showcase *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"swatch":   tokens.Swatch,
		"isDark":   func(m models.Mode) bool { return m == models.ModeDark },
		"markdown": renderMarkdown,
	}

	tmpl, err := template.New("showcase.html").Funcs(funcs).ParseFS(templateFS, "templates/showcase.html")
	if err != nil {
		return nil, fmt.Errorf("parse template showcase.html: %w", err)
	}
	return &Renderer{showcase: tmpl}, nil
}

// renderMarkdown renders a theme description. goldmark escapes raw HTML,
// so the output is trusted.
func renderMarkdown(src string) template.HTML {
	out, err := markdown.ToHTML(src)
	if err != nil {
		slog.Warn("render theme description failed", "error", err)
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(out)
}

// Showcase renders the storefront page without theme styles.
func (rn *Renderer) Showcase(data *ShowcaseData) ([]byte, error) {
	if data.Products == nil {
		data.Products = SampleProducts
	}
	var buf bytes.Buffer
	if err := rn.showcase.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute showcase: %w", err)
	}
	return buf.Bytes(), nil
}
