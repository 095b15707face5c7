// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"bakeshop/internal/models"
	"bakeshop/internal/themeruntime"
)

// modeCookieMaxAge keeps the visitor's mode and theme choice for a year.
const modeCookieMaxAge = 365 * 24 * 60 * 60

// themeCookie holds the id of the theme the visitor selected.
const themeCookie = "theme-selected"

// cookieModes persists the mode choice in the theme-mode cookie.
type cookieModes struct {
	w    http.ResponseWriter
	mode models.Mode
}

func newCookieModes(w http.ResponseWriter, r *http.Request) *cookieModes {
	m := &cookieModes{w: w, mode: models.ModeLight}
	if c, err := r.Cookie(themeruntime.ModeStorageKey); err == nil {
		m.mode = models.ParseMode(c.Value)
	}
	return m
}

func (m *cookieModes) Mode() models.Mode {
	return m.mode
}

func (m *cookieModes) SetMode(mode models.Mode) {
	m.mode = models.ParseMode(string(mode))
	http.SetCookie(m.w, &http.Cookie{
		Name:     themeruntime.ModeStorageKey,
		Value:    string(m.mode),
		Path:     "/",
		MaxAge:   modeCookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

// selectedTheme returns the saved theme selection, or "".
func selectedTheme(r *http.Request) string {
	c, err := r.Cookie(themeCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

func rememberTheme(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   modeCookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}
