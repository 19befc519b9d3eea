// Package server wires the landing site onto a chi router and runs it.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/desertaaed/landing/internal/config"
	"github.com/desertaaed/landing/internal/content"
	"github.com/desertaaed/landing/internal/logger"
	"github.com/desertaaed/landing/internal/pages"
	"github.com/desertaaed/landing/internal/reveal"
	"github.com/desertaaed/landing/internal/static"
	"github.com/desertaaed/landing/internal/structpages"
)

const assetsPath = "/assets"

const (
	writeTimeout = 15 * time.Second
	// handlerTimeout must stay below writeTimeout.
	handlerTimeout = 10 * time.Second
)

type Server struct {
	cfg   *config.Config
	lggr  logger.Logger
	store *reveal.Store
	http  *http.Server
}

// New builds the handler tree for cfg and the embedded landing content.
func New(cfg *config.Config, lggr logger.Logger) (*Server, error) {
	page, err := content.Landing()
	if err != nil {
		return nil, err
	}
	store := pages.NewStore(page, cfg.ViewTTL)
	store.OnUnmount(func(id string) {
		lggr.Debugw("view released", "view", id)
	})

	handler, err := NewHandler(page, store, cfg, lggr)
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:   cfg,
		lggr:  lggr,
		store: store,
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       60 * time.Second,
		},
	}, nil
}

// NewHandler mounts the pages and assets on a chi router.
func NewHandler(page *content.Page, store *reveal.Store, cfg *config.Config, lggr logger.Logger) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(lggr.Named("http")))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(handlerTimeout))

	r.Handle(assetsPath+"/*", http.StripPrefix(assetsPath, static.Handler(static.Assets)))

	site := &pages.Site{
		Title:       page.Hero.Title,
		HTMXSrc:     cfg.HTMXSrc,
		TailwindSrc: cfg.TailwindSrc,
		AssetsPath:  assetsPath,
	}
	pagesLggr := lggr.Named("pages")
	sp := structpages.New(structpages.WithErrorHandler(pages.ErrorHandler(pagesLggr)))
	if _, err := sp.MountPages(structpages.NewChiRouter(r), &pages.Pages{}, "/", "",
		page, store, site, pagesLggr); err != nil {
		return nil, err
	}
	return r, nil
}

// Run serves until ctx is done, then shuts down within the configured
// timeout.
func (s *Server) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.lggr.Infow("listening", "addr", s.cfg.Addr)
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.lggr.Infow("shutting down", "timeout", s.cfg.ShutdownTimeout, "views", s.store.Len())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func requestLogger(lggr logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				lggr.Infow("request",
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
}
