package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/cookbook-dev/cookbook/pkg/library"
	"github.com/cookbook-dev/cookbook/pkg/recipefile"
	"github.com/cookbook-dev/cookbook/pkg/unit"
)

// Server serves a recipe library over HTTP
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter
	catalog     *unit.Catalog
	codec       *recipefile.Codec
	library     *library.Library
	mu          sync.RWMutex
	ready       bool
}

// Option configures the server
type Option func(*Server)

// WithConfig sets the server configuration
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

// WithLibrary sets the recipe library to serve
func WithLibrary(l *library.Library) Option {
	return func(s *Server) {
		s.library = l
	}
}

// WithCatalog sets the unit catalog used for decoding and listing
func WithCatalog(c *unit.Catalog) Option {
	return func(s *Server) {
		if c != nil {
			s.catalog = c
		}
	}
}

// New creates a new server instance
func New(opts ...Option) *Server {
	s := &Server{
		config:  NewConfig(),
		catalog: unit.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.rateLimiter = rate.NewLimiter(s.config.RateLimit, s.config.RateLimitBurst)
	s.codec = recipefile.NewCodec(s.catalog)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.config.Address, s.config.Port),
		Handler:           s.setupRoutes(),
		ReadTimeout:       s.config.ReadTimeout,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	return s
}

// setReady marks the server as ready to serve traffic
func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// Start starts the HTTP server and blocks until ctx is cancelled or the
// listener fails
func (s *Server) Start(ctx context.Context) error {
	if s.library == nil {
		return fmt.Errorf("server has no recipe library")
	}
	libraryRecipes.Set(float64(s.library.Len()))
	s.setReady(true)

	slog.Info("starting server", "addr", s.httpServer.Addr)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.setReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	return s.httpServer.Shutdown(shutdownCtx)
}

// Run starts the server with default configuration and graceful shutdown
// handling
func Run() error {
	return RunWithConfig(NewConfig())
}

// RunWithConfig opens the recipe library named by the configuration and
// serves it until interrupted
func RunWithConfig(config *Config) error {
	slog.Info("starting",
		slog.String("name", config.Name),
		slog.String("version", config.Version),
		slog.String("libraryDir", config.LibraryDir),
	)

	lib, err := library.Open(config.LibraryDir, recipefile.NewCodec(nil))
	if err != nil {
		return fmt.Errorf("failed to open recipe library: %w", err)
	}

	server := New(WithConfig(config), WithLibrary(lib))

	slog.Info("server config",
		slog.String("address", server.httpServer.Addr),
		slog.Int("port", config.Port),
		slog.Any("rateLimit", config.RateLimit),
		slog.Int("rateLimitBurst", config.RateLimitBurst),
		slog.Duration("readTimeout", config.ReadTimeout),
		slog.Duration("writeTimeout", config.WriteTimeout),
		slog.Duration("idleTimeout", config.IdleTimeout),
		slog.Duration("shutdownTimeout", config.ShutdownTimeout),
		slog.Int("recipes", lib.Len()),
	)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
