package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/o365ops/pkg/domain/interfaces"
)

// UseCases bundles the usecases served over HTTP
type UseCases struct {
	users      interfaces.Users
	activation interfaces.Activation
	notifier   interfaces.Notifier

	// notifyDone observes background deliveries; set by tests
	notifyDone func(<-chan struct{})
}

// NewUseCases creates the usecase bundle
func NewUseCases(users interfaces.Users, activation interfaces.Activation, notifier interfaces.Notifier) *UseCases {
	return &UseCases{
		users:      users,
		activation: activation,
		notifier:   notifier,
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, uc *UseCases) (*Server, error) {
	router := NewRouter(ctx, uc)

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}

	return server, nil
}

// NewRouter builds the route table
func NewRouter(ctx context.Context, uc *UseCases) chi.Router {
	router := chi.NewRouter()
	h := &handler{uc: uc}

	// Apply global middleware
	router.Use(middleware.RealIP)
	router.Use(RequestIDMiddleware)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Route("/subscriptions/{subscriptionID}", func(r chi.Router) {
			r.Get("/users", h.listUsers)
			r.Post("/users", h.createUser)
			r.Post("/users/{objectID}/license", h.assignLicense)
			r.Get("/activations", h.queryAllActivations)
			r.Get("/activations/{username}", h.queryUserActivation)
		})
		r.Post("/notify", h.notify)
	})

	return router
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "o365ops",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}
