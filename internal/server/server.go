// Package server provides the JSON HTTP API for physical name generation.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/leapstack-labs/pname/internal/config"
	"github.com/leapstack-labs/pname/pkg/dictionary/loader"
	"github.com/leapstack-labs/pname/pkg/pname"
	"golang.org/x/sync/errgroup"
)

// maxBodyBytes bounds request bodies, including uploaded dictionaries.
const maxBodyBytes = 8 << 20

// Server serves the generation API backed by a shared Generator.
type Server struct {
	generator        *pname.Generator
	addr             string
	watch            bool
	dictionaryPath   string
	dictionaryFormat loader.Format
	shutdownTimeout  time.Duration
	logger           *slog.Logger
	notifier         *notifier
}

// Config holds configuration for the server.
type Config struct {
	Generator        *pname.Generator
	Addr             string
	Watch            bool
	DictionaryPath   string // file reloaded by the watcher and the reload endpoint
	DictionaryFormat loader.Format
	ShutdownTimeout  time.Duration
	Logger           *slog.Logger
}

// NewServer creates a new server instance.
func NewServer(cfg Config) *Server {
	gen := cfg.Generator
	if gen == nil {
		gen = pname.New()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = config.DefaultShutdown
	}
	return &Server{
		generator:        gen,
		addr:             cfg.Addr,
		watch:            cfg.Watch,
		dictionaryPath:   cfg.DictionaryPath,
		dictionaryFormat: cfg.DictionaryFormat,
		shutdownTimeout:  timeout,
		logger:           logger,
		notifier:         newNotifier(),
	}
}

// Handler returns the HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		s.requestLogger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json", "text/plain", "text/csv", "text/tab-separated-values", "application/yaml", "multipart/form-data"))
		r.Post("/generate", s.handleGenerate)
		r.Get("/dictionary", s.handleDictionaryInfo)
		r.Post("/dictionary", s.handleDictionaryUpload)
		r.Post("/dictionary/reload", s.handleDictionaryReload)
		r.Get("/dictionary/events", s.handleDictionaryEvents)

		// Legacy paths.
		r.Post("/generate/dictionary", s.handleDictionaryForm)
		r.Get("/generate/dictionary/info", s.handleDictionaryInfo)
	})
	return r
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on an existing listener until ctx is cancelled.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting server", "addr", ln.Addr().String(), "dictionary_size", s.generator.DictionarySize())

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watch && s.dictionaryPath != "" {
		eg.Go(func() error {
			return s.watchDictionary(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		s.logger.Debug("shutting down server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Reload re-reads the configured dictionary file and swaps it in. On
// failure the current dictionary stays active.
func (s *Server) Reload() error {
	if s.dictionaryPath == "" {
		return errNoDictionaryFile
	}
	d, err := config.LoadDictionaryFile(s.dictionaryPath, s.format())
	if err != nil {
		return err
	}
	s.generator.SetDictionary(d)
	s.logger.Info("dictionary reloaded", "path", s.dictionaryPath, "size", d.Len())
	s.notifier.broadcast(s.dictionaryInfo())
	return nil
}

func (s *Server) format() loader.Format {
	cfg := config.Config{Dictionary: s.dictionaryPath, Format: s.dictionaryFormat}
	return cfg.DictionaryFormat()
}

// requestLogger logs each request through the server's slog logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.logger.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}
