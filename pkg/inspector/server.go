package inspector

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/go-drift/bindings/pkg/bind"
	"github.com/go-drift/bindings/pkg/errors"
	"github.com/go-drift/bindings/pkg/graphics"
)

// FrameSource exposes the latest painted frame. tree.Owner satisfies it.
type FrameSource interface {
	LastFrame() []graphics.DisplayOp
	RootSize() graphics.Size
}

// Server serves binding inspection endpoints.
type Server struct {
	router   chi.Router
	frames   FrameSource
	upgrader websocket.Upgrader
	interval time.Duration

	mu       sync.Mutex
	httpSrv  *http.Server
	listener net.Listener
}

// NewServer creates an inspection server over the given frame source, which
// may be nil when only host and metrics endpoints are wanted.
func NewServer(frames FrameSource) *Server {
	s := &Server{
		frames:   frames,
		interval: 250 * time.Millisecond,
	}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Get("/api/hosts", s.handleHosts)
	r.Get("/api/frame", s.handleFrame)
	r.Get("/ws/hosts", s.handleHostsFeed)
	r.Handle("/metrics", promhttp.Handler())
	s.router = r
	return s
}

// SetFeedInterval sets the websocket snapshot interval. Must be called
// before clients connect.
func (s *Server) SetFeedInterval(interval time.Duration) {
	s.interval = interval
}

// Handler returns the HTTP handler, for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start binds a TCP listener and serves in the background. Returns the
// actual port, useful when port is 0.
func (s *Server) Start(port int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().(*net.TCPAddr).Port, nil
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return 0, &errors.BindingsError{Op: "inspector.Start", Kind: errors.KindInspect, Err: err}
	}

	srv := &http.Server{Handler: s.router}
	s.httpSrv = srv
	s.listener = listener

	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			errors.Report(&errors.BindingsError{Op: "inspector.Serve", Kind: errors.KindInspect, Err: err})
			s.mu.Lock()
			s.httpSrv = nil
			s.listener = nil
			s.mu.Unlock()
		}
	}()

	return listener.Addr().(*net.TCPAddr).Port, nil
}

// Stop shuts the server down.
func (s *Server) Stop() {
	s.mu.Lock()
	srv := s.httpSrv
	s.httpSrv = nil
	s.listener = nil
	s.mu.Unlock()

	if srv != nil {
		srv.Close()
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleHosts(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, bind.Hosts())
}

func (s *Server) handleFrame(w http.ResponseWriter, _ *http.Request) {
	if s.frames == nil {
		http.Error(w, "no frame source", http.StatusServiceUnavailable)
		return
	}
	resp := struct {
		Size graphics.Size        `json:"size"`
		Ops  []graphics.DisplayOp `json:"ops"`
	}{
		Size: s.frames.RootSize(),
		Ops:  s.frames.LastFrame(),
	}
	writeJSON(w, resp)
}

func (s *Server) handleHostsFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// Send one snapshot immediately, then on every tick until the client
	// goes away.
	if err := conn.WriteJSON(bind.Hosts()); err != nil {
		return
	}
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for range ticker.C {
		if err := conn.WriteJSON(bind.Hosts()); err != nil {
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
