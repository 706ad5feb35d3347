package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/todoapi/todoapi/internal/api/handler"
	"github.com/todoapi/todoapi/internal/api/middleware"
	"github.com/todoapi/todoapi/internal/store/sqlite"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	Logger zerolog.Logger
	// RateLimit is the sustained requests per second allowed. Zero disables
	// rate limiting.
	RateLimit float64
	// Burst is the limiter bucket size. Values below 1 become 1.
	Burst int
}

// NewRouter creates and configures the HTTP router.
func NewRouter(store *sqlite.Store, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware chain
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.Logging(opts.Logger))
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		r.Use(middleware.RateLimit(rate.NewLimiter(rate.Limit(opts.RateLimit), burst)))
	}

	// Initialize handlers
	systemHandler := handler.NewSystemHandler(store)
	taskHandler := handler.NewTaskHandler(store, opts.Logger)

	r.Get("/health", systemHandler.Health)

	r.Route("/todos", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Get("/{id}", taskHandler.GetTask)
		r.Put("/{id}", taskHandler.UpdateTask)
	})

	return r
}
