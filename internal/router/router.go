// Package router sets up all HTTP routes and middleware chains for the
// bakeshop server. It organizes routes into the public storefront and the
// token-protected admin theme API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bakeshop/internal/handlers"
	"bakeshop/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. limiter may be nil to disable rate limiting.
func New(public *handlers.Public, admin *handlers.Admin, adminTokenHash string, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)

	// Storefront.
	r.Get("/", public.Showcase)
	r.Get("/theme.css", public.ThemeCSS)
	r.Get("/themes", public.Themes)
	r.Get("/live", public.Live)
	r.With(limit(limiter)).Post("/mode", public.SetMode)
	r.With(limit(limiter)).Post("/theme", public.SelectTheme)

	// Admin theme API, bearer token only.
	r.Route("/admin/themes", func(r chi.Router) {
		r.Use(middleware.RequireAdminToken(adminTokenHash))

		r.Get("/", admin.ListThemes)
		r.Post("/", admin.CreateTheme)
		r.With(limit(limiter)).Post("/import", admin.ImportPack)
		r.Post("/preview", admin.PreviewTheme)
		r.Get("/{id}", admin.GetTheme)
		r.Put("/{id}", admin.UpdateTheme)
		r.Delete("/{id}", admin.DeleteTheme)
		r.Post("/{id}/activate", admin.ActivateTheme)
		r.Post("/{id}/deactivate", admin.DeactivateTheme)
	})

	return r
}

// limit returns the limiter middleware, or a pass-through when nil.
func limit(rl *middleware.RateLimiter) func(http.Handler) http.Handler {
	if rl == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return rl.Middleware
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
