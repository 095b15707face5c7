// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package tokens

import (
	"regexp"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Foreground constants picked by ContrastForeground.
const (
	DarkForeground  = "222 47% 11%"
	LightForeground = "210 40% 98%"
)

// contrastThreshold is the lightness above which a surface gets dark text.
const contrastThreshold = 55

// hslPattern matches "H S% L%" with integer components.
var hslPattern = regexp.MustCompile(`^\s*(\d+)\s+(\d+)%\s+(\d+)%\s*$`)

// HSL is a parsed colour triplet.
type HSL struct {
	H int
	S int
	L int
}

// neutralHSL is returned for anything that does not parse.
var neutralHSL = HSL{H: 0, S: 0, L: 50}

// ParseHSL extracts the integer components of an "H S% L%" triplet.
// Malformed or empty input yields the neutral mid-lightness value.
func ParseHSL(s string) HSL {
	m := hslPattern.FindStringSubmatch(s)
	if m == nil {
		return neutralHSL
	}
	h, errH := strconv.Atoi(m[1])
	sat, errS := strconv.Atoi(m[2])
	l, errL := strconv.Atoi(m[3])
	if errH != nil || errS != nil || errL != nil {
		return neutralHSL
	}
	return HSL{H: h, S: sat, L: l}
}

// ContrastForeground returns the text colour to place on the given
// background. It is a two-bucket heuristic, not a WCAG calculation.
func ContrastForeground(background string) string {
	if ParseHSL(background).L > contrastThreshold {
		return DarkForeground
	}
	return LightForeground
}

// Swatch converts an HSL triplet into a hex colour for selector previews.
// Unparseable input renders as the neutral grey.
func Swatch(hsl string) string {
	c := ParseHSL(hsl)
	return colorful.Hsl(float64(c.H%360), clampUnit(c.S), clampUnit(c.L)).Clamped().Hex()
}

func clampUnit(pct int) float64 {
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 1
	}
	return float64(pct) / 100
}

// ValidHSL reports whether s is a well-formed "H S% L%" triplet.
func ValidHSL(s string) bool {
	return hslPattern.MatchString(s)
}
