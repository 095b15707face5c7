// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// DefaultTheme returns the built-in source token tree used when no theme
// store is reachable and as the base that pasted theme packs merge over.
// It returns a fresh value on every call so callers may mutate it.
func DefaultTheme() *Theme {
	return &Theme{
		ID:          DefaultThemeID,
		ThemeName:   "Default",
		Category:    DefaultCategory,
		Description: "Neutral slate theme used when no storefront theme is available.",
		LightModeTokens: ModeTokenSet{
			BrandColors: BrandColors{
				PrimaryHSL:   "222 47% 11%",
				SecondaryHSL: "210 40% 96%",
				AccentHSL:    "210 40% 96%",
			},
			SurfaceColors: SurfaceColors{
				BackgroundHSL: "0 0% 100%",
				CardHSL:       "0 0% 100%",
				MutedHSL:      "210 40% 96%",
			},
		},
		DarkModeTokens: ModeTokenSet{
			BrandColors: BrandColors{
				PrimaryHSL:   "210 40% 98%",
				SecondaryHSL: "217 33% 17%",
				AccentHSL:    "217 33% 17%",
			},
			SurfaceColors: SurfaceColors{
				BackgroundHSL: "222 47% 11%",
				CardHSL:       "222 47% 11%",
				MutedHSL:      "217 33% 17%",
			},
		},
		Typography: Typography{
			FontDisplay: "'Inter', system-ui, sans-serif",
			FontBody:    "'Inter', system-ui, sans-serif",
			FontMono:    "'JetBrains Mono', ui-monospace, monospace",
			ScaleRatio:  "1.25",
		},
		Motion: Motion{
			DurationFast:     "150ms",
			DurationMedium:   "300ms",
			DurationSlow:     "500ms",
			EasingStandard:   "cubic-bezier(0.4, 0, 0.2, 1)",
			EasingEmphasized: "cubic-bezier(0.2, 0, 0, 1)",
		},
	}
}
