package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"cxdash/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const SHUTDOWN_TIMEOUT = 10 * time.Second

type Server struct {
	renderer Renderer
	router   chi.Router
	server   *http.Server
}

func NewServer(ctx context.Context, addr string, renderer Renderer) *Server {
	s := &Server{
		renderer: renderer,
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/", s.IndexHandler)
	router.Get("/health", handleHealth)
	router.Handle("/static/*", http.FileServer(http.FS(web.Static)))

	for path, uiHandler := range renderer.Handlers() {
		router.Get(path, uiHandler)
	}

	s.router = router
	s.server = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
	}

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	logger := ctxlog.From(ctx)

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		logger.Info("listening", slog.String("addr", s.server.Addr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return goerr.Wrap(err, "http server stopped", goerr.V("addr", s.server.Addr))
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return goerr.Wrap(err, "failed to shutdown server gracefully")
	}

	logger.Info("server shutdown complete")
	return nil
}

// IndexHandler is the main entrypoint for the UI
func (s *Server) IndexHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.renderer.Templates().ExecuteTemplate(&buf, "index", s.renderer.Data()); err != nil {
		ctxlog.From(r.Context()).Error("couldn't execute template for index", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		ctxlog.From(r.Context()).Warn("failed to write index", "error", err)
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "cxdash",
	}); err != nil {
		ctxlog.From(r.Context()).Error("failed to encode health response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
	}); err != nil {
		ctxlog.From(r.Context()).Error("failed to encode error response", "error", err)
	}
}
