// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package recipes compiles per-component style recipes into CSS rules
// scoped to a single theme. Output order follows a fixed list of component
// variants, never the order of the input.
package recipes

import (
	"strings"

	"bakeshop/internal/models"
)

// property maps a recipe field onto a CSS property.
type property struct {
	css   string
	value string
}

// rule is one component variant: its class, the properties of the base
// rule, and the properties of its interaction-state rule.
type rule struct {
	class  string
	pseudo string
	base   []property
	state  []property
}

// Compile renders the recipes of a theme under the .theme-<id> prefix.
// Absent variants emit nothing, so an empty recipe set yields "".
func Compile(r models.ComponentRecipes, themeID string) string {
	prefix := ".theme-" + themeID + " "

	var out []string
	for _, ru := range collect(r) {
		if line := format(prefix+ru.class, ru.base); line != "" {
			out = append(out, line)
		}
		if line := format(prefix+ru.class+ru.pseudo, ru.state); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// collect walks the fixed variant list: button.primary, button.secondary,
// card.default, card.elevated, input.default, dialog.default.
func collect(r models.ComponentRecipes) []rule {
	var rules []rule
	if r.Button != nil {
		if b := r.Button.Primary; b != nil {
			rules = append(rules, buttonRule(".btn-primary", b))
		}
		if b := r.Button.Secondary; b != nil {
			rules = append(rules, buttonRule(".btn-secondary", b))
		}
	}
	if r.Card != nil {
		if c := r.Card.Default; c != nil {
			rules = append(rules, cardRule(".card", c))
		}
		if c := r.Card.Elevated; c != nil {
			rules = append(rules, cardRule(".card-elevated", c))
		}
	}
	if r.Input != nil && r.Input.Default != nil {
		rules = append(rules, inputRule(".input", r.Input.Default))
	}
	if r.Dialog != nil && r.Dialog.Default != nil {
		rules = append(rules, dialogRule(".dialog", r.Dialog.Default))
	}
	return rules
}

func buttonRule(class string, b *models.ButtonRecipe) rule {
	return rule{
		class:  class,
		pseudo: ":hover",
		base: []property{
			{"border-radius", b.BorderRadius},
			{"padding", b.Padding},
			{"font-weight", b.FontWeight},
			{"background", b.Background},
			{"color", b.Color},
			{"border", b.Border},
			{"box-shadow", b.Shadow},
			{"transition", b.Transition},
		},
		state: []property{
			{"transform", b.HoverTransform},
			{"box-shadow", b.HoverShadow},
			{"background", b.HoverBackground},
		},
	}
}

func cardRule(class string, c *models.CardRecipe) rule {
	return rule{
		class:  class,
		pseudo: ":hover",
		base: []property{
			{"border-radius", c.BorderRadius},
			{"padding", c.Padding},
			{"background", c.Background},
			{"border", c.Border},
			{"box-shadow", c.Shadow},
			{"backdrop-filter", c.BackdropFilter},
			{"transition", c.Transition},
		},
		state: []property{
			{"transform", c.HoverTransform},
			{"box-shadow", c.HoverShadow},
		},
	}
}

func inputRule(class string, in *models.InputRecipe) rule {
	return rule{
		class:  class,
		pseudo: ":focus",
		base: []property{
			{"border-radius", in.BorderRadius},
			{"padding", in.Padding},
			{"background", in.Background},
			{"border", in.Border},
			{"font-size", in.FontSize},
		},
		state: []property{
			{"box-shadow", in.FocusRing},
			{"border-color", in.FocusBorder},
		},
	}
}

func dialogRule(class string, d *models.DialogRecipe) rule {
	return rule{
		class: class,
		base: []property{
			{"border-radius", d.BorderRadius},
			{"padding", d.Padding},
			{"background", d.Background},
			{"border", d.Border},
			{"box-shadow", d.Shadow},
			{"backdrop-filter", d.BackdropFilter},
		},
	}
}

// format renders "selector { a: b; c: d; }" from the present properties,
// or "" when none are present.
func format(selector string, props []property) string {
	var b strings.Builder
	for _, p := range props {
		if p.value == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(selector)
			b.WriteString(" {")
		}
		b.WriteString(" ")
		b.WriteString(p.css)
		b.WriteString(": ")
		b.WriteString(p.value)
		b.WriteString(";")
	}
	if b.Len() == 0 {
		return ""
	}
	b.WriteString(" }")
	return b.String()
}
