// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// ComponentRecipes holds the per-component style overrides of a theme.
// Only the four known components exist; unknown keys in stored JSON are
// dropped on decode. A nil entry means the recipe is absent.
type ComponentRecipes struct {
	Button *ButtonRecipes `json:"button,omitempty"`
	Card   *CardRecipes   `json:"card,omitempty"`
	Input  *InputRecipes  `json:"input,omitempty"`
	Dialog *DialogRecipes `json:"dialog,omitempty"`
}

// ButtonRecipes are the button variants.
type ButtonRecipes struct {
	Primary   *ButtonRecipe `json:"primary,omitempty"`
	Secondary *ButtonRecipe `json:"secondary,omitempty"`
}

// CardRecipes are the card variants.
type CardRecipes struct {
	Default  *CardRecipe `json:"default,omitempty"`
	Elevated *CardRecipe `json:"elevated,omitempty"`
}

// InputRecipes are the input variants.
type InputRecipes struct {
	Default *InputRecipe `json:"default,omitempty"`
}

// DialogRecipes are the dialog variants.
type DialogRecipes struct {
	Default *DialogRecipe `json:"default,omitempty"`
}

// ButtonRecipe styles one button variant. Hover* fields go into a :hover rule.
type ButtonRecipe struct {
	BorderRadius    string `json:"border_radius,omitempty"`
	Padding         string `json:"padding,omitempty"`
	FontWeight      string `json:"font_weight,omitempty"`
	Background      string `json:"background,omitempty"`
	Color           string `json:"color,omitempty"`
	Border          string `json:"border,omitempty"`
	Shadow          string `json:"shadow,omitempty"`
	Transition      string `json:"transition,omitempty"`
	HoverTransform  string `json:"hover_transform,omitempty"`
	HoverShadow     string `json:"hover_shadow,omitempty"`
	HoverBackground string `json:"hover_background,omitempty"`
}

// CardRecipe styles one card variant. Hover* fields go into a :hover rule.
type CardRecipe struct {
	BorderRadius   string `json:"border_radius,omitempty"`
	Padding        string `json:"padding,omitempty"`
	Background     string `json:"background,omitempty"`
	Border         string `json:"border,omitempty"`
	Shadow         string `json:"shadow,omitempty"`
	BackdropFilter string `json:"backdrop_filter,omitempty"`
	Transition     string `json:"transition,omitempty"`
	HoverTransform string `json:"hover_transform,omitempty"`
	HoverShadow    string `json:"hover_shadow,omitempty"`
}

// InputRecipe styles the input. Focus* fields go into a :focus rule.
type InputRecipe struct {
	BorderRadius string `json:"border_radius,omitempty"`
	Padding      string `json:"padding,omitempty"`
	Background   string `json:"background,omitempty"`
	Border       string `json:"border,omitempty"`
	FontSize     string `json:"font_size,omitempty"`
	FocusRing    string `json:"focus_ring,omitempty"`
	FocusBorder  string `json:"focus_border,omitempty"`
}

// DialogRecipe styles the dialog.
type DialogRecipe struct {
	BorderRadius   string `json:"border_radius,omitempty"`
	Padding        string `json:"padding,omitempty"`
	Background     string `json:"background,omitempty"`
	Border         string `json:"border,omitempty"`
	Shadow         string `json:"shadow,omitempty"`
	BackdropFilter string `json:"backdrop_filter,omitempty"`
}
