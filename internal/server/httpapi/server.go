// Package httpapi exposes the content store over a JSON HTTP API: a public
// read surface for pages and townships, the authenticated content-update
// path used by inline editing, and the admin CRUD surface.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dalesbridge/chronicle/internal/common"
	"github.com/dalesbridge/chronicle/internal/logging"
	"github.com/dalesbridge/chronicle/internal/server/services"
)

type Server struct {
	address       string
	logger        logging.Logger
	users         *services.UserService
	pages         *services.PageService
	townships     *services.TownshipService
	people        *services.PersonService
	buildings     *services.BuildingService
	events        *services.EventService
	photographs   *services.PhotographService
	maps          *services.MapService
	media         *services.MediaService
	contributions *services.ContributionService
}

// Services bundles the service dependencies of the API.
type Services struct {
	Users         *services.UserService
	Pages         *services.PageService
	Townships     *services.TownshipService
	People        *services.PersonService
	Buildings     *services.BuildingService
	Events        *services.EventService
	Photographs   *services.PhotographService
	Maps          *services.MapService
	Media         *services.MediaService
	Contributions *services.ContributionService
}

func NewServer(address string, l logging.Logger, svcs Services) *Server {
	return &Server{
		address:       address,
		logger:        l.With("module", "httpapi"),
		users:         svcs.Users,
		pages:         svcs.Pages,
		townships:     svcs.Townships,
		people:        svcs.People,
		buildings:     svcs.Buildings,
		events:        svcs.Events,
		photographs:   svcs.Photographs,
		maps:          svcs.Maps,
		media:         svcs.Media,
		contributions: svcs.Contributions,
	}
}

// Handler builds the route table. Split out from Run so tests can drive the
// mux through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// auth
	mux.HandleFunc("POST /api/auth/sign-in", s.handleSignIn)
	mux.Handle("GET /api/auth/me", s.requireAuth(http.HandlerFunc(s.handleCurrentUser)))
	mux.Handle("POST /api/auth/password", s.requireAuth(http.HandlerFunc(s.handleUpdatePassword)))

	// public read surface
	mux.HandleFunc("GET /api/pages/{slug}", s.handleGetPage)
	mux.HandleFunc("GET /api/townships", s.handleListTownships)
	mux.HandleFunc("GET /api/townships/{slug}", s.handleGetTownship)
	mux.HandleFunc("POST /api/contributions", s.handleSubmitContribution)

	// inline-edit persistence
	mux.Handle("PUT /api/pages/{id}/content", s.requireAuth(http.HandlerFunc(s.handleUpdatePageContent)))
	mux.Handle("PUT /api/townships/{id}/cards", s.requireAuth(http.HandlerFunc(s.handleUpdateTownshipCards)))

	// admin CRUD
	s.registerAdminRoutes(mux)

	return mux
}

// Run starts the HTTP server and shuts it down gracefully when ctx ends.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps service errors onto HTTP statuses. The message always
// comes from the error so clients can surface it directly.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, common.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrAlreadyExists):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return common.ErrValidation
	}
	return nil
}
