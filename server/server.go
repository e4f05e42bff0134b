package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/mbwhitestone/arxivbot/pkg/archive"
	"github.com/mbwhitestone/arxivbot/pkg/config"
)

//go:generate moq -out mocks/dispatcher.go -pkg mocks -skip-ensure -fmt goimports . Dispatcher
//go:generate moq -out mocks/archive.go -pkg mocks -skip-ensure -fmt goimports . Archive

// Dispatcher handles inbound chat messages
type Dispatcher interface {
	OnMessage(ctx context.Context, channel, text string)
}

// Archive serves the announcement history
type Archive interface {
	List(ctx context.Context, limit, offset int) ([]archive.Announcement, error)
	ListByCategory(ctx context.Context, category string, limit, offset int) ([]archive.Announcement, error)
	Count(ctx context.Context) (int, error)
}

// Server is the inbound HTTP surface of the bot: the chat platform relays
// channel messages to the message webhook, the rest is read-only status
// and history.
type Server struct {
	store      *config.Store
	dispatcher Dispatcher
	archive    Archive
	listen     string
	timeout    time.Duration
	version    string
	debug      bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Params holds server dependencies and settings
type Params struct {
	Store      *config.Store
	Dispatcher Dispatcher
	Archive    Archive
	Listen     string
	Timeout    time.Duration
	Version    string
	Debug      bool
}

// New initializes a new server instance
func New(params Params) *Server {
	if params.Timeout == 0 {
		params.Timeout = 30 * time.Second
	}
	s := &Server{
		store:      params.Store,
		dispatcher: params.Dispatcher,
		archive:    params.Archive,
		listen:     params.Listen,
		timeout:    params.Timeout,
		version:    params.Version,
		debug:      params.Debug,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	log.Printf("[INFO] starting server on %s", s.listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.listen,
		Handler:      s.router,
		ReadTimeout:  s.timeout,
		WriteTimeout: s.timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("arxivbot", "mbwhitestone", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // chat messages are small
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("POST /message", s.messageHandler)
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /papers", s.papersHandler)
	})
}
