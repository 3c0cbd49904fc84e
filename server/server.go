// Package server exposes the search, ingestion and blacklist operations
// over HTTP, including the SSE ingestion stream.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newsinsight/pkg/domain"
	"github.com/umputun/newsinsight/pkg/pipeline"
	"github.com/umputun/newsinsight/pkg/search"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/searcher.go -pkg mocks -skip-ensure -fmt goimports . Searcher
//go:generate moq -out mocks/ingester.go -pkg mocks -skip-ensure -fmt goimports . Ingester
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Server is the HTTP server instance
type Server struct {
	config   ConfigProvider
	searcher Searcher
	ingester Ingester
	store    Store
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Searcher answers ranked topic queries
type Searcher interface {
	Search(ctx context.Context, req search.Request) ([]domain.Article, error)
	Explain(ctx context.Context, articleID string) (string, error)
}

// Ingester runs topic ingestion, blocking or streaming
type Ingester interface {
	Ingest(ctx context.Context, topic string, limit int) (*pipeline.Result, error)
	Stream(ctx context.Context, topic string, limit int) <-chan pipeline.Event
}

// Store is the persistence surface for direct lookups and blacklist edits
type Store interface {
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	CountArticles(ctx context.Context) (int, error)
	AddBlacklistEntry(ctx context.Context, entry domain.BlacklistEntry) error
	ListBlacklist(ctx context.Context) ([]domain.BlacklistEntry, error)
}

// New initializes a server instance
func New(cfg ConfigProvider, searcher Searcher, ingester Ingester, store Store, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		searcher: searcher,
		ingester: ingester,
		store:    store,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:        listen,
		Handler:     s.router,
		ReadTimeout: timeout,
		// no WriteTimeout, the SSE stream outlives any fixed deadline
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsinsight", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /search", s.searchHandler)
		r.HandleFunc("GET /search/stream", s.streamHandler)
		r.HandleFunc("POST /ingest", s.ingestHandler)
		r.HandleFunc("GET /articles/{id}", s.articleHandler)
		r.HandleFunc("GET /articles/{id}/explain", s.explainHandler)
		r.HandleFunc("GET /blacklist", s.listBlacklistHandler)
		r.HandleFunc("POST /blacklist", s.addBlacklistHandler)
	})
}

// renderJSON sends a JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends an error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
