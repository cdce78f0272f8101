// Package network serves read-only game state to spectators over HTTP and websocket
package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/on-tour/status"
)

// Server publishes game snapshots; the game loop never blocks on it
type Server struct {
	cfg      *Config
	hub      *Hub
	registry *status.Registry
	upgrader websocket.Upgrader

	mu       sync.Mutex
	http     *http.Server
	listener net.Listener
	running  atomic.Bool

	published atomic.Int64
	dropped   atomic.Int64
}

// NewServer builds a server; registry may be nil, in which case /status is empty
func NewServer(cfg *Config, registry *status.Registry) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Server{
		cfg:      cfg,
		hub:      NewHub(cfg.MaxSpectators, cfg.SendQueueSize),
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the routed HTTP handler
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	// Request lines follow the process logger; stdout belongs to the screen or event stream
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log.Default(), NoColor: true}))
	r.Use(middleware.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(s.cfg.RequestTimeout))
		r.Get("/healthz", s.handleHealth)
		r.Get("/snapshot", s.handleSnapshot)
		r.Get("/status", s.handleStatus)
	})
	r.Get("/ws", s.handleStream)

	return r
}

// Publish encodes v and hands it to every spectator
func (s *Server) Publish(v any) error {
	frame, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	s.published.Add(1)
	if n := s.hub.Publish(frame); n > 0 {
		s.dropped.Add(int64(n))
	}
	return nil
}

// Start binds the listener and serves in the background
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running.Load() {
		return nil
	}

	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("spectator listen on %s: %w", s.cfg.Address, err)
	}

	s.listener = ln
	s.http = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}
	s.running.Store(true)

	go func(srv *http.Server) {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectator server: %v", err)
		}
	}(s.http)

	log.Printf("spectator server listening on http://%s", ln.Addr())
	return nil
}

// Addr returns the bound address, empty when not running
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop closes spectator streams and shuts the HTTP server down
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running.Load() {
		return nil
	}
	s.running.Store(false)
	s.hub.Close()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("spectator shutdown: %w", err)
	}
	return nil
}

// Spectators returns the number of connected websocket streams
func (s *Server) Spectators() int {
	return s.hub.Count()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	frame := s.hub.Latest()
	if frame == nil {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(frame)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	out := map[string]any{}
	if s.registry != nil {
		out = s.registry.Snapshot()
	}
	out["spectator.count"] = s.hub.Count()
	out["spectator.published"] = s.published.Load()
	out["spectator.dropped"] = s.dropped.Load()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Printf("status encode: %v", err)
	}
}

// handleStream upgrades to websocket and forwards published frames until either side closes
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	queue, err := s.hub.Subscribe()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.hub.Unsubscribe(queue)
		log.Printf("spectator upgrade: %v", err)
		return
	}
	defer conn.Close()
	defer s.hub.Unsubscribe(queue)

	// Spectators are read-only; the read loop only notices the close
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(s.cfg.PingInterval)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case frame, ok := <-queue:
			if !ok {
				deadline := time.Now().Add(s.cfg.WriteWait)
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server stopping"), deadline)
				return
			}
			conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.cfg.WriteWait)); err != nil {
				return
			}
		}
	}
}
