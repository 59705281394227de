// Package web serves the arcade over HTTP: game and score listings, and a
// websocket API that plays headless sessions one event per message.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/matryer/way"

	"github.com/vovakirdan/tile-arcade/internal/applog"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

// Route paths.
const (
	URIGames  = "/games"
	URIScores = "/scores/:game"
	URIPlay   = "/play/:game"
)

// Server is the HTTP front of the arcade.
type Server struct {
	addr   string
	store  *storage.Store
	router *way.Router
	http   *http.Server
	logger *log.Logger
}

// NewServer creates a server listening on addr. A nil store disables score
// listings and result recording.
func NewServer(addr string, store *storage.Store) *Server {
	s := &Server{
		addr:   addr,
		store:  store,
		logger: applog.For("arcade-web"),
	}
	s.routes()
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc(http.MethodGet, URIGames, s.handleGames)
	s.router.HandleFunc(http.MethodGet, URIScores, s.handleScores)
	s.router.HandleFunc(http.MethodGet, URIPlay, s.handlePlay)
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.addr
}

// ListenAndServe serves until ctx is done or the listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting HTTP server", "address", s.addr)

	errc := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("web: serve %s: %w", s.addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}
