// Package router sets up all HTTP routes and middleware chains for the
// API server. The AI pipeline routes sit behind a per-IP rate limiter
// because each request fans out into metered vendor calls.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"seoscribe/internal/handlers"
	"seoscribe/internal/middleware"
)

// AI pipeline rate limit: requests per client IP per window.
const (
	aiRateLimit  = 10
	aiRateWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request. CORS answers preflight
	// requests before routing, so OPTIONS succeeds on any path.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// AI pipeline, rate limited per client IP.
		r.Group(func(r chi.Router) {
			limiter := middleware.NewRateLimiter(aiRateLimit, aiRateWindow)
			r.Use(limiter.Middleware)

			r.Post("/analyze-website", api.AnalyzeWebsite)
			r.Post("/research-keywords", api.ResearchKeywords)
			r.Post("/generate-blog", api.GenerateBlog)
			r.Post("/chat-edit-blog", api.ChatEditBlog)
		})

		// Stored blogs.
		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", api.ListBlogs)
			r.Get("/{id}", api.GetBlog)
			r.Put("/{id}", api.UpdateBlog)
			r.Delete("/{id}", api.DeleteBlog)
			r.Get("/{id}/preview", api.PreviewBlog)
		})

		// Brand profile.
		r.Get("/brand-profile", api.GetBrandProfile)
		r.Put("/brand-profile", api.PutBrandProfile)

		// Tone samples.
		r.Route("/tone-samples", func(r chi.Router) {
			r.Get("/", api.ListToneSamples)
			r.Post("/", api.CreateToneSample)
			r.Delete("/{id}", api.DeleteToneSample)
		})
	})

	return r
}

// healthHandler responds to health check requests.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
