// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// DefaultThemeID is the synthetic id of the built-in fallback theme. It is
// never stored in the database.
const DefaultThemeID = "default"

// DefaultCategory is assigned to imported themes that carry no category.
const DefaultCategory = "modern"

// Theme is the persisted design unit of a storefront. The token trees and
// recipes are the source of truth; CSSVariables, LightModeVariables,
// DarkModeVariables and ComponentCSS are build artifacts regenerated by the
// compiler on every save and never edited by hand.
//
// A legacy theme carries only a flat CSSVariables string with no mode split.
type Theme struct {
	ID              string `json:"id"`
	ThemeName       string `json:"theme_name"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	PreviewImageURL string `json:"preview_image_url"`
	TextureURL      string `json:"texture_url"`
	IsActive        bool   `json:"is_active"`

	LightModeTokens  ModeTokenSet     `json:"light_mode_tokens"`
	DarkModeTokens   ModeTokenSet     `json:"dark_mode_tokens"`
	Typography       Typography       `json:"typography"`
	Motion           Motion           `json:"motion"`
	ComponentRecipes ComponentRecipes `json:"component_recipes"`

	CSSVariables       string `json:"css_variables"`
	LightModeVariables string `json:"light_mode_variables"`
	DarkModeVariables  string `json:"dark_mode_variables"`
	ComponentCSS       string `json:"component_css"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsDualMode reports whether the theme carries precompiled CSS for both
// light and dark mode.
func (t *Theme) IsDualMode() bool {
	return t.LightModeVariables != "" && t.DarkModeVariables != ""
}

// IsLegacy reports whether the theme only carries a single flat CSS
// variable string used for every mode.
func (t *Theme) IsLegacy() bool {
	return !t.IsDualMode() && t.CSSVariables != ""
}

// ModeTokenSet holds the design tokens of one colour mode. Every leaf is a
// string; colour leaves are HSL triplets ("210 80% 40%"). An empty leaf is
// absent and must stay absent here. Defaulting belongs to the compiler.
type ModeTokenSet struct {
	BrandColors   BrandColors   `json:"brand_colors"`
	SurfaceColors SurfaceColors `json:"surface_colors"`
	Gradients     Gradients     `json:"gradients"`
	GlassEffects  GlassEffects  `json:"glass_effects"`
	Shadows       Shadows       `json:"shadows"`
}

// BrandColors are the accent colours of a storefront.
type BrandColors struct {
	PrimaryHSL   string `json:"primary_hsl,omitempty"`
	SecondaryHSL string `json:"secondary_hsl,omitempty"`
	AccentHSL    string `json:"accent_hsl,omitempty"`
}

// SurfaceColors are the page, card, and muted surface colours.
type SurfaceColors struct {
	BackgroundHSL string `json:"background_hsl,omitempty"`
	CardHSL       string `json:"card_hsl,omitempty"`
	MutedHSL      string `json:"muted_hsl,omitempty"`
}

// Gradients are raw CSS gradient expressions.
type Gradients struct {
	HeroGradient   string `json:"hero_gradient,omitempty"`
	CardGradient   string `json:"card_gradient,omitempty"`
	AccentGradient string `json:"accent_gradient,omitempty"`
}

// GlassEffects configure frosted-glass panels.
type GlassEffects struct {
	TintColor     string `json:"tint_color,omitempty"`
	BlurStrength  string `json:"blur_strength,omitempty"`
	BorderOpacity string `json:"border_opacity,omitempty"`
}

// Shadows are raw box-shadow expressions.
type Shadows struct {
	Subtle string `json:"subtle,omitempty"`
	Medium string `json:"medium,omitempty"`
	Large  string `json:"large,omitempty"`
	Luxury string `json:"luxury,omitempty"`
}

// Typography is global and not mode-scoped.
type Typography struct {
	FontDisplay string `json:"font_display,omitempty"`
	FontBody    string `json:"font_body,omitempty"`
	FontMono    string `json:"font_mono,omitempty"`
	ScaleRatio  string `json:"scale_ratio,omitempty"`
}

// Motion is global and not mode-scoped.
type Motion struct {
	DurationFast     string `json:"duration_fast,omitempty"`
	DurationMedium   string `json:"duration_medium,omitempty"`
	DurationSlow     string `json:"duration_slow,omitempty"`
	EasingStandard   string `json:"easing_standard,omitempty"`
	EasingEmphasized string `json:"easing_emphasized,omitempty"`
}

// Merge overwrites the receiver's leaves with every non-empty leaf of o.
func (m *ModeTokenSet) Merge(o ModeTokenSet) {
	mergeLeaf(&m.BrandColors.PrimaryHSL, o.BrandColors.PrimaryHSL)
	mergeLeaf(&m.BrandColors.SecondaryHSL, o.BrandColors.SecondaryHSL)
	mergeLeaf(&m.BrandColors.AccentHSL, o.BrandColors.AccentHSL)
	mergeLeaf(&m.SurfaceColors.BackgroundHSL, o.SurfaceColors.BackgroundHSL)
	mergeLeaf(&m.SurfaceColors.CardHSL, o.SurfaceColors.CardHSL)
	mergeLeaf(&m.SurfaceColors.MutedHSL, o.SurfaceColors.MutedHSL)
	mergeLeaf(&m.Gradients.HeroGradient, o.Gradients.HeroGradient)
	mergeLeaf(&m.Gradients.CardGradient, o.Gradients.CardGradient)
	mergeLeaf(&m.Gradients.AccentGradient, o.Gradients.AccentGradient)
	mergeLeaf(&m.GlassEffects.TintColor, o.GlassEffects.TintColor)
	mergeLeaf(&m.GlassEffects.BlurStrength, o.GlassEffects.BlurStrength)
	mergeLeaf(&m.GlassEffects.BorderOpacity, o.GlassEffects.BorderOpacity)
	mergeLeaf(&m.Shadows.Subtle, o.Shadows.Subtle)
	mergeLeaf(&m.Shadows.Medium, o.Shadows.Medium)
	mergeLeaf(&m.Shadows.Large, o.Shadows.Large)
	mergeLeaf(&m.Shadows.Luxury, o.Shadows.Luxury)
}

// Merge overwrites the receiver's leaves with every non-empty leaf of o.
func (t *Typography) Merge(o Typography) {
	mergeLeaf(&t.FontDisplay, o.FontDisplay)
	mergeLeaf(&t.FontBody, o.FontBody)
	mergeLeaf(&t.FontMono, o.FontMono)
	mergeLeaf(&t.ScaleRatio, o.ScaleRatio)
}

// Merge overwrites the receiver's leaves with every non-empty leaf of o.
func (m *Motion) Merge(o Motion) {
	mergeLeaf(&m.DurationFast, o.DurationFast)
	mergeLeaf(&m.DurationMedium, o.DurationMedium)
	mergeLeaf(&m.DurationSlow, o.DurationSlow)
	mergeLeaf(&m.EasingStandard, o.EasingStandard)
	mergeLeaf(&m.EasingEmphasized, o.EasingEmphasized)
}

func mergeLeaf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Mode is the colour mode a theme is rendered in.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode maps a persisted value onto a Mode. Anything other than "dark"
// is treated as light.
func ParseMode(s string) Mode {
	if s == string(ModeDark) {
		return ModeDark
	}
	return ModeLight
}
