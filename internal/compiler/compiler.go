// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package compiler regenerates the build artifacts stored on a theme from
// its token tree and component recipes.
package compiler

import (
	"bakeshop/internal/models"
	"bakeshop/internal/recipes"
	"bakeshop/internal/tokens"
)

// Compile overwrites every compiled field of t. It never fails; callers
// run it before each persist so stored CSS always matches the source tree.
func Compile(t *models.Theme) {
	t.CSSVariables = tokens.CompileThemeTokens(t)
	t.LightModeVariables = tokens.CompileModeVariables(t, models.ModeLight)
	t.DarkModeVariables = tokens.CompileModeVariables(t, models.ModeDark)
	t.ComponentCSS = recipes.Compile(t.ComponentRecipes, t.ID)
}

// Compiled returns a compiled copy of t, leaving t untouched.
func Compiled(t models.Theme) *models.Theme {
	Compile(&t)
	return &t
}
