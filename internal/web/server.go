// Package web serves the catalog as a server-rendered HTML page and a small
// JSON API. Every request decodes its own view state from the query string;
// the catalog is shared read-only.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petrotech/petrotech/internal/catalog"
	"github.com/petrotech/petrotech/internal/viewstate"
)

const shutdownTimeout = 5 * time.Second

// Options configure a Server.
type Options struct {
	// Defaults supplies the sort order and panel visibility used when the
	// query string does not set them.
	Defaults viewstate.State
}

// Server renders the catalog page and API.
type Server struct {
	mux      *http.ServeMux
	catalog  *catalog.Catalog
	logger   *zap.Logger
	page     *template.Template
	defaults viewstate.State
}

// NewServer creates a server over c.
func NewServer(c *catalog.Catalog, logger *zap.Logger, opts Options) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	page, err := parsePage()
	if err != nil {
		return nil, err
	}
	defaults := opts.Defaults
	if defaults.Sort == "" {
		defaults = viewstate.New()
	}
	s := &Server{
		mux:      http.NewServeMux(),
		catalog:  c,
		logger:   logger,
		page:     page,
		defaults: defaults,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /api/tools", s.handleListTools)
	s.mux.HandleFunc("GET /api/tools/{id}", s.handleGetTool)
	s.mux.HandleFunc("GET /api/categories", s.handleListCategories)
	s.mux.HandleFunc("GET /api/tags", s.handleListTags)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
}

// RequestIDHeader carries the id that ties a response to its log entry.
// A client-supplied value is kept; otherwise a new UUID is assigned.
const RequestIDHeader = "X-Request-ID"

// ServeHTTP logs each request and dispatches it to the route table.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id := r.Header.Get(RequestIDHeader)
	if id == "" {
		id = uuid.New().String()
	}
	w.Header().Set(RequestIDHeader, id)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.logger.Info("http request",
		zap.String("request_id", id),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("query", r.URL.RawQuery),
		zap.Int("status", rec.status),
		zap.Duration("duration", time.Since(start)),
	)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("serving catalog", zap.String("addr", ln.Addr().String()), zap.Int("tools", s.catalog.Len()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// stateFrom decodes the request's view state, filling unset sort and panel
// parameters from the server defaults.
func (s *Server) stateFrom(r *http.Request) viewstate.State {
	q := r.URL.Query()
	st := viewstate.FromValues(q)
	if !q.Has(viewstate.ParamSort) {
		st.Sort = s.defaults.Sort
	}
	if !q.Has(viewstate.ParamPanel) {
		st.ShowCategories = s.defaults.ShowCategories
	}
	return st
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
