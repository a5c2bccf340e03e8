package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cardbinder/cardbinder/internal/auth"
	"github.com/cardbinder/cardbinder/internal/metrics"
	"github.com/cardbinder/cardbinder/pkg/catalog"
	"github.com/cardbinder/cardbinder/pkg/database/models"
	"github.com/cardbinder/cardbinder/pkg/logging"
)

// CatalogService is the catalog query and serialization boundary
type CatalogService interface {
	Search(ctx context.Context, criteria catalog.SearchCriteria, viewerID *uint) (*catalog.CardPage, error)
	GetCard(ctx context.Context, cardID string, viewerID *uint) (*catalog.CardProjection, error)
	CollectionCards(ctx context.Context, userID uint) ([]catalog.CardProjection, error)
	GroupedCollection(ctx context.Context, userID uint) ([]catalog.GroupedEra, int, error)
	Filters(ctx context.Context) (*catalog.FilterOptions, error)
	Eras(ctx context.Context) ([]catalog.EraView, error)
}

// CollectionService mutates collection membership
type CollectionService interface {
	Add(ctx context.Context, userID uint, cardID string) error
	Remove(ctx context.Context, userID uint, cardID string) error
}

// UserStore is the user-account boundary used by registration and login
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Server owns the HTTP surface of the application
type Server struct {
	httpServer *http.Server
	catalog    CatalogService
	collection CollectionService
	users      UserStore
	tokens     *auth.TokenIssuer
	validate   *validator.Validate
	ready      func(ctx context.Context) error
	factory    logging.LoggerFactory
	logger     logging.Logger
}

// NewServer wires the router and middleware stack. ready reports store
// connectivity for the readiness probe.
func NewServer(
	addr string,
	catalogService CatalogService,
	collectionService CollectionService,
	users UserStore,
	tokens *auth.TokenIssuer,
	ready func(ctx context.Context) error,
	factory logging.LoggerFactory,
) *Server {
	s := &Server{
		catalog:    catalogService,
		collection: collectionService,
		users:      users,
		tokens:     tokens,
		validate:   validator.New(),
		ready:      ready,
		factory:    factory,
		logger:     factory.CreateLogger("server"),
	}

	r := chi.NewRouter()

	// Middleware executes in order defined (outermost to innermost)
	r.Use(RequestIDMiddleware)
	r.Use(metrics.Middleware)
	r.Use(s.loggingMiddleware)
	r.Use(auth.Identity(tokens))

	r.Get("/healthz", s.handleHealthz)
	r.Get("/readyz", s.handleReadyz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)
		r.Post("/logout", s.handleLogout)

		r.Get("/cards", s.handleSearchCards)
		r.Get("/cards/{cardID}", s.handleGetCard)
		r.Get("/filters", s.handleFilters)
		r.Get("/eras", s.handleEras)

		r.Route("/collection", func(r chi.Router) {
			r.Use(auth.RequireUser)
			r.Get("/", s.handleCollection)
			r.Get("/grouped", s.handleGroupedCollection)
			r.Post("/add/{cardID}", s.handleAddToCollection)
			r.Delete("/remove/{cardID}", s.handleRemoveFromCollection)
		})
	})

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("http server starting", map[string]interface{}{
		"addr": s.httpServer.Addr,
	})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.ready(ctx); err != nil {
		s.logger.Error("readiness check failed", err, nil)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
