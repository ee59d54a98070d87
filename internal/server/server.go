// Package server exposes the assistant over HTTP and WebSocket.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/shalconnects/balanze-go/internal/types"
)

// Assistant answers one chat message. Implementations must always return a
// non-empty string.
type Assistant interface {
	Respond(ctx context.Context, userID, message string) string
}

// Options configures a Server
type Options struct {
	Logger types.Logger
}

// Server routes chat requests to an Assistant
type Server struct {
	assistant Assistant
	logger    types.Logger
	upgrader  websocket.Upgrader
	router    chi.Router
}

// New creates a server and registers its routes
func New(assistant Assistant, opts *Options) *Server {
	if opts == nil {
		opts = &Options{}
	}

	s := &Server{
		assistant: assistant,
		logger:    types.OrNop(opts.Logger),
		upgrader: websocket.Upgrader{
			// Matches the permissive CORS policy of the JSON endpoint
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.HandleFunc("/api/ai-chat", s.handleChat)
	r.Get("/api/ai-chat/ws", s.handleChatSocket)
	r.Get("/api/health", handleHealth)

	s.router = r
	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// NewHTTPServer wraps the handler with the timeouts used in production
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
