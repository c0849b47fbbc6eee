// Package api serves quotes over HTTP.
// The API is only responsible for decoding requests, calling the calculator and
// serializing results. It never performs cost logic.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"wrapquote/core/estimate"
	"wrapquote/core/quote"
	"wrapquote/core/reference"
	"wrapquote/internal/config"
	"wrapquote/internal/errors"
	"wrapquote/internal/logging"
)

// Server is the API server
type Server struct {
	handler   http.Handler
	cfg       config.ServerConfig
	version   string
	table     *reference.Table
	estimator *estimate.Estimator
	calc      *quote.Calculator
	defaults  quote.Job
	limiter   *rate.Limiter
}

// NewServer creates a server whose quotes start from defaults
func NewServer(cfg config.ServerConfig, defaults quote.Job, version string) *Server {
	table := reference.Default()
	s := &Server{
		cfg:       cfg,
		version:   version,
		table:     table,
		estimator: estimate.New(table),
		calc:      quote.NewCalculator(table),
		defaults:  defaults.Clone(),
		limiter:   rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(
		RequestID,
		Logger,
		Recover,
		RateLimit(s.limiter),
	)
	if t := s.cfg.RequestTimeout(); t > 0 {
		r.Use(middleware.Timeout(t))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, string(errors.TypeNotFound), "no route for "+r.URL.Path, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, "METHOD_NOT_ALLOWED", r.Method+" is not allowed on "+r.URL.Path, http.StatusMethodNotAllowed)
	})

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/quotes", s.handleQuote)
		r.Post("/material", s.handleMaterial)
		r.Post("/labor", s.handleLabor)
		r.Post("/pricing", s.handlePricing)
		r.Get("/reference", s.handleReference)
	})

	return OTel(s.cfg.ServiceName)(r)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then drains in-flight requests for up to the shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("api listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return errors.Internal("server failed", err)
	case <-ctx.Done():
	}

	logging.Info("api shutting down", zap.Duration("timeout", s.cfg.ShutdownTimeout()))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Internal("graceful shutdown failed", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Warn("failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, code, message string, status int) {
	writeJSON(w, ErrorResponse{Error: ErrorBody{Code: code, Message: message}}, status)
}

// writeFailure maps a calculator error to its status code
func writeFailure(w http.ResponseWriter, err error) {
	typ := errors.TypeOf(err)
	writeError(w, string(typ), errors.Message(err), statusFor(typ))
}

func statusFor(t errors.Type) int {
	switch t {
	case errors.TypeInput, errors.TypeInvalidCategory, errors.TypeParsing:
		return http.StatusBadRequest
	case errors.TypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
