// Package server serves banner previews and PNG renders over HTTP.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"bannergen/internal/render"
	"bannergen/internal/templates"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	cfg        Config
	logger     logrus.FieldLogger
	version    string
	loader     templates.Loader
	rasterizer render.Rasterizer
	thumbnails render.Rasterizer
	listener   net.Listener
	httpServer *http.Server
	errCh      chan error
}

type Option func(*Server)

// WithLoader replaces the template loader derived from Config.TemplatesDir.
func WithLoader(l templates.Loader) Option {
	return func(s *Server) { s.loader = l }
}

// WithRasterizer replaces the rasterizer derived from Config.Rasterizer.
func WithRasterizer(r render.Rasterizer) Option {
	return func(s *Server) { s.rasterizer = r }
}

func New(cfg Config, logger logrus.FieldLogger, version string, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if version == "" {
		version = "dev"
	}

	srv := &Server{
		cfg:     cfg,
		logger:  logger,
		version: version,
		errCh:   make(chan error, 1),
	}
	for _, opt := range opts {
		opt(srv)
	}
	if srv.loader == nil {
		srv.loader = templates.Dir(cfg.TemplatesDir)
	}
	if srv.rasterizer == nil {
		srv.rasterizer = NewRasterizer(cfg, logger)
	}
	srv.thumbnails = &render.Thumbnail{Source: srv.rasterizer, Scale: 0.5}

	srv.httpServer = &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      srv.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: writeTimeout(cfg.RenderTimeout),
		IdleTimeout:  60 * time.Second,
	}
	return srv, nil
}

// writeTimeout leaves room to write the response after a render that used its
// whole budget. Unbounded renders get no write deadline either.
func writeTimeout(renderTimeout time.Duration) time.Duration {
	if renderTimeout <= 0 {
		return 0
	}
	return renderTimeout + 30*time.Second
}

// NewRasterizer builds the rasterizer selected by cfg.
func NewRasterizer(cfg Config, logger logrus.FieldLogger) render.Rasterizer {
	if cfg.Rasterizer == RasterizerSketch {
		return &render.Sketch{FontPath: cfg.Sketch.FontPath, FontSize: cfg.Sketch.FontSize, Logger: logger}
	}
	return render.NewChrome(render.ChromeOptions{
		ExecPath:  cfg.Chrome.ExecPath,
		NoSandbox: cfg.Chrome.NoSandbox,
	}, logger)
}

func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.ListenAddr(), err)
	}
	s.listener = ln

	s.logger.WithFields(logrus.Fields{
		"listen_addr":   ln.Addr().String(),
		"templates_dir": s.cfg.TemplatesDir,
		"rasterizer":    s.cfg.Rasterizer,
		"version":       s.version,
	}).Info("Servidor corriendo en el puerto ", s.cfg.Port)

	go func() {
		err := s.httpServer.Serve(ln)
		if err != nil && err != http.ErrServerClosed {
			s.errCh <- err
		}
		close(s.errCh)
	}()

	return nil
}

func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}

	select {
	case err := <-s.errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.listener == nil {
		return nil
	}

	s.logger.Info("bannergen shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	if err, ok := <-s.errCh; ok && err != nil {
		return fmt.Errorf("http server failed: %w", err)
	}
	s.listener = nil
	return nil
}

func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}
