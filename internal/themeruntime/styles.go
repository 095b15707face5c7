// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package themeruntime

import (
	"strings"
	"sync"

	"bakeshop/internal/compiler"
	"bakeshop/internal/models"
)

// structuralRules size the page and bind the base colours to variables.
const structuralRules = `html, body {
  height: 100%;
  margin: 0;
}
body {
  background-color: hsl(var(--background));
  color: hsl(var(--foreground));
  overscroll-behavior: none;
}
#root {
  min-height: 100%;
  display: flex;
  flex-direction: column;
  overscroll-behavior: contain;
}
`

// darkUtilityRules keep utility classes readable in dark mode.
const darkUtilityRules = `.dark .bg-background, [data-theme="dark"] .bg-background { background-color: hsl(var(--background)); }
.dark .bg-card, [data-theme="dark"] .bg-card { background-color: hsl(var(--card)); color: hsl(var(--card-foreground)); }
.dark .text-foreground, [data-theme="dark"] .text-foreground { color: hsl(var(--foreground)); }
.dark .text-muted-foreground, [data-theme="dark"] .text-muted-foreground { color: hsl(var(--muted-foreground)); }
.dark .border-border, [data-theme="dark"] .border-border { border-color: hsl(var(--border)); }
`

// adminSidebarRules style the dashboard navigation.
const adminSidebarRules = `.admin-sidebar {
  background-color: hsl(var(--card));
  color: hsl(var(--card-foreground));
  border-right: 1px solid hsl(var(--border));
}
.admin-sidebar a.active {
  background-color: hsl(var(--primary));
  color: hsl(var(--primary-foreground));
}
`

// fallbackGradientRules define a hero gradient for themes without one.
const fallbackGradientRules = `:root {
  --bg-gradient-fallback: linear-gradient(135deg, hsl(var(--primary)) 0%, hsl(var(--accent, var(--primary))) 100%);
}
`

// compose assembles the stylesheet injected into the sink.
func compose(variables, componentCSS string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(variables, "\n"))
	b.WriteString("\n\n")
	b.WriteString(structuralRules)
	b.WriteString(darkUtilityRules)
	b.WriteString(adminSidebarRules)
	b.WriteString(fallbackGradientRules)
	if componentCSS != "" {
		b.WriteString(componentCSS)
		b.WriteString("\n")
	}
	return b.String()
}

// selectCSS picks the variable text for mode. Dual-mode themes carry one
// string per mode; legacy themes use their flat string for both.
func selectCSS(t *models.Theme, mode models.Mode) (string, bool) {
	switch {
	case t.IsDualMode():
		if mode == models.ModeDark {
			return t.DarkModeVariables, true
		}
		return t.LightModeVariables, true
	case t.CSSVariables != "":
		return t.CSSVariables, true
	}
	return "", false
}

var fallbackTheme = sync.OnceValue(func() *models.Theme {
	return compiler.Compiled(*models.DefaultTheme())
})

// Fallback returns a compiled copy of the built-in theme.
func Fallback() *models.Theme {
	t := *fallbackTheme()
	return &t
}
