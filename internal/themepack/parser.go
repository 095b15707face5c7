// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package themepack parses theme packs pasted by operators. A pack is a
// loosely structured YAML-like or JSON document; the parser lifts the
// fields it recognises into a partial theme and leaves everything else to
// the caller's existing values.
//
// Neither format yields dark-mode tokens or component recipes.
package themepack

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"bakeshop/internal/models"
)

var (
	// ErrUnsupportedFormat is returned for text that is neither the block
	// format nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported theme pack format: expected YAML starting with '---' or 'meta:', or a JSON object")

	// ErrInvalidJSON is returned when a pack looks like JSON but does not
	// parse.
	ErrInvalidJSON = errors.New("invalid theme pack JSON")
)

// Format is the detected syntax of a pack.
type Format int

const (
	FormatUnsupported Format = iota
	FormatYAML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	}
	return "unsupported"
}

// Detect sniffs the format from the start of the trimmed text.
func Detect(text string) Format {
	s := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(s, "---"), strings.HasPrefix(s, "meta:"):
		return FormatYAML
	case strings.HasPrefix(s, "{"):
		return FormatJSON
	}
	return FormatUnsupported
}

// Pack is the partial theme extracted from a pasted document. Empty fields
// were not present in the source.
type Pack struct {
	Format          Format
	ThemeName       string
	Category        string
	Description     string
	PreviewImageURL string
	TextureURL      string
	Typography      models.Typography
	Motion          models.Motion
	LightModeTokens models.ModeTokenSet
}

// Parse extracts a Pack from raw text.
func Parse(text string) (*Pack, error) {
	switch Detect(text) {
	case FormatYAML:
		return parseBlocks(text), nil
	case FormatJSON:
		return parseJSON(text)
	}
	return nil, ErrUnsupportedFormat
}

// Apply merges the extracted fields over t. Fields the pack did not carry
// keep their current values.
func (p *Pack) Apply(t *models.Theme) {
	setIf(&t.ThemeName, p.ThemeName)
	setIf(&t.Category, p.Category)
	setIf(&t.Description, p.Description)
	setIf(&t.PreviewImageURL, p.PreviewImageURL)
	setIf(&t.TextureURL, p.TextureURL)
	t.Typography.Merge(p.Typography)
	t.Motion.Merge(p.Motion)
	t.LightModeTokens.Merge(p.LightModeTokens)
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func parseBlocks(text string) *Pack {
	root := scanBlocks(text)
	p := &Pack{Format: FormatYAML}

	meta := root.child("meta")
	p.ThemeName = meta.child("name").scalar()
	p.Category = normalizeCategory(meta.child("category").scalar())
	p.Description = meta.child("description").scalar()

	assets := root.child("assets")
	p.PreviewImageURL = assets.child("preview").scalar()
	p.TextureURL = assets.child("texture").scalar()

	ty := root.child("typography")
	p.Typography = models.Typography{
		FontDisplay: ty.child("font_display").scalar(),
		FontBody:    ty.child("font_body").scalar(),
		FontMono:    ty.child("font_mono").scalar(),
		ScaleRatio:  ty.child("scale_ratio").scalar(),
	}

	mo := root.child("motion")
	p.Motion = models.Motion{
		DurationFast:     mo.child("duration_fast").scalar(),
		DurationMedium:   mo.child("duration_medium").scalar(),
		DurationSlow:     mo.child("duration_slow").scalar(),
		EasingStandard:   mo.child("easing_standard").scalar(),
		EasingEmphasized: mo.child("easing_emphasized").scalar(),
	}

	if vars := root.find("css_variables"); vars != nil {
		mapVariables(vars.text(), &p.LightModeTokens)
	}
	return p
}

func parseJSON(text string) (*Pack, error) {
	if !gjson.Valid(text) {
		return nil, ErrInvalidJSON
	}
	doc := gjson.Parse(text)
	get := func(path string) string {
		return strings.TrimSpace(doc.Get(path).String())
	}

	return &Pack{
		Format:          FormatJSON,
		ThemeName:       get("meta.name"),
		Category:        normalizeCategory(get("meta.category")),
		Description:     get("meta.description"),
		PreviewImageURL: get("assets.preview"),
		TextureURL:      get("assets.texture"),
	}, nil
}

func normalizeCategory(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" {
		return models.DefaultCategory
	}
	return c
}
