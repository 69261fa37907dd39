package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"fundrise/internal/http/handlers"
	"fundrise/internal/middleware"
)

// Options tunes the middleware chain.
type Options struct {
	// RateLimitPerMin caps requests per client IP per minute; 0 disables it.
	RateLimitPerMin int
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(app.Log),
		chimw.Recoverer,
		middleware.CORS(),
		middleware.RateLimit(opts.RateLimitPerMin, time.Minute),
	)

	r.Get("/", app.Root)
	r.Get("/test", app.Diagnostics)
	r.Get("/categories", app.Categories)

	r.Route("/campaigns", func(r chi.Router) {
		r.Get("/", app.CampaignsList)
		r.Post("/", app.CampaignsCreate)
		r.Get("/{id}", app.CampaignsGet)
	})

	r.Route("/donations", func(r chi.Router) {
		r.Get("/", app.DonationsList)
		r.Post("/", app.DonationsCreate)
	})

	return r
}
