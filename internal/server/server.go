// Package server implements the flowgrid HTTP API.
//
// The API exposes the layout pipeline and graph storage over JSON:
//
//	POST   /api/v1/layout        compute a layout for a posted graph
//	POST   /api/v1/render        render a posted graph to svg/png/dot/json
//	POST   /api/v1/validate      cycle-check a graph and return execution levels
//	POST   /api/v1/graphs        store a graph
//	GET    /api/v1/graphs        list stored graphs
//	GET    /api/v1/graphs/{id}   fetch a stored graph
//	PUT    /api/v1/graphs/{id}   replace a stored graph
//	DELETE /api/v1/graphs/{id}   delete a stored graph
//	GET    /healthz              liveness probe
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/ComputerConnection/flowgrid/pkg/pipeline"
	"github.com/ComputerConnection/flowgrid/pkg/store"
)

// Server wires the pipeline runner and graph store behind a chi router.
type Server struct {
	runner *pipeline.Runner
	store  store.GraphStore
	logger *log.Logger
	router chi.Router
}

// New creates a server. A nil store disables the graph CRUD endpoints
// with 503 responses; runner and logger fall back to working defaults.
func New(runner *pipeline.Runner, st store.GraphStore, logger *log.Logger) *Server {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		runner: runner,
		store:  st,
		logger: logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.logRequests)
	r.Use(recoverPanics(s.logger))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)
		r.Post("/validate", s.handleValidate)

		r.Route("/graphs", func(r chi.Router) {
			r.Post("/", s.handleCreateGraph)
			r.Get("/", s.handleListGraphs)
			r.Get("/{id}", s.handleGetGraph)
			r.Put("/{id}", s.handleUpdateGraph)
			r.Delete("/{id}", s.handleDeleteGraph)
		})
	})

	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the server until ctx is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
