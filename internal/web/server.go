// Package web serves the packing-list wizard over HTTP. Each visitor gets
// an in-memory session holding their selection; exports are rendered on
// request from one checklist derivation.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/arthur-debert/packlist/pkg/errors"
	"github.com/arthur-debert/packlist/pkg/export"
	"github.com/arthur-debert/packlist/pkg/logging"
	"github.com/arthur-debert/packlist/pkg/render/html"
	"github.com/arthur-debert/packlist/pkg/render/text"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Options configure the server
type Options struct {
	Export export.Options
	Title  string
	// Now is the clock used for generation dates, time.Now when nil
	Now func() time.Time
}

// Server is the packlist web server
type Server struct {
	router   *gin.Engine
	catalogs *CatalogStore
	sessions *SessionStore
	exporter *export.Exporter
	title    string
	palette  []string
	now      func() time.Time
}

// NewServer creates a new web server
func NewServer(catalogs *CatalogStore, opts Options) (*Server, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Title == "" {
		opts.Title = "Competition Packing Checklist"
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	tmpl, err := template.New("").Funcs(template.FuncMap{
		"join":  strings.Join,
		"glyph": text.Glyph,
		"mod":   func(a, b int) int { return a % b },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to parse templates")
	}
	router.SetHTMLTemplate(tmpl)

	s := &Server{
		router:   router,
		catalogs: catalogs,
		sessions: NewSessionStore(catalogs, opts.Now),
		// exports are streamed to the client, the filesystem is never written
		exporter: export.New(afero.NewMemMapFs(), opts.Export, nil),
		title:    opts.Title,
		palette:  html.ResolvePalette(opts.Export.Render.HTML.Palette),
		now:      opts.Now,
	}

	// Wizard routes
	router.GET("/", s.handleIndex)
	router.POST("/disciplines", s.handleDisciplines)
	router.POST("/extras", s.handleExtras)
	router.POST("/items/:id/toggle", s.handleToggleItem)
	router.POST("/back", s.handleBack)
	router.POST("/reset", s.handleReset)

	// Exports
	router.GET("/export/:format", s.handleExport)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/catalog", s.handleAPICatalog)
		api.GET("/checklist", s.handleAPIChecklist)
	}

	return s, nil
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Sessions returns the session store
func (s *Server) Sessions() *SessionStore {
	return s.sessions
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	logger := logging.GetLogger("web")
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("web server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	pruner := time.NewTicker(10 * time.Minute)
	defer pruner.Stop()

	for {
		select {
		case err, ok := <-errCh:
			if ok {
				return errors.Wrapf(err, errors.ErrInternal, "web server on %s failed", addr)
			}
			return nil
		case <-pruner.C:
			if n := s.sessions.Prune(12 * time.Hour); n > 0 {
				logger.Debug().Int("removed", n).Msg("pruned idle sessions")
			}
		case <-ctx.Done():
			logger.Info().Msg("shutting down web server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "web server shutdown failed")
			}
			return nil
		}
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger := logging.GetLogger("web")
		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
