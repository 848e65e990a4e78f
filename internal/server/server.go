// Package server exposes the showdown evaluator over HTTP and websocket.
// The server is the input/output collaborator around the poker core: it
// parses and validates incoming hands, invokes the resolver, and renders the
// outcome back to the caller.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/cardroom/showdown/internal/protocol"
)

// Config controls runtime behavior of the server.
type Config struct {
	// MaxPlayers caps entrants per evaluation request. At most ten five-card
	// hands fit in a single 52-card deck.
	MaxPlayers int

	// SummaryInterval is how often the monitor logs rolling counters.
	// Zero disables the summary.
	SummaryInterval time.Duration
}

// DefaultConfig returns the default runtime configuration.
func DefaultConfig() Config {
	return Config{
		MaxPlayers:      10,
		SummaryInterval: time.Minute,
	}
}

// Option configures the server.
type Option func(*Server)

// WithConfig sets the runtime configuration.
func WithConfig(cfg Config) Option {
	return func(s *Server) { s.cfg = cfg }
}

// WithClock sets the clock driving the stats monitor. Tests inject a mock.
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) { s.clock = clock }
}

// Server evaluates poker showdowns over HTTP and websocket.
type Server struct {
	logger     zerolog.Logger
	cfg        Config
	clock      quartz.Clock
	upgrader   websocket.Upgrader
	monitor    *Monitor
	httpServer *http.Server

	mu          sync.RWMutex
	connections map[*Connection]bool
	register    chan *Connection
	unregister  chan *Connection

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new showdown server.
func NewServer(logger zerolog.Logger, opts ...Option) *Server {
	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		logger: logger,
		cfg:    DefaultConfig(),
		clock:  quartz.NewReal(),
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		connections: make(map[*Connection]bool),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		ctx:         ctx,
		cancel:      cancel,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.monitor = NewMonitor(logger, s.clock, s.cfg.SummaryInterval)
	return s
}

// Monitor returns the server's stats monitor.
func (s *Server) Monitor() *Monitor {
	return s.monitor
}

// Handler returns the HTTP handler serving all endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/evaluate", s.handleEvaluate)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// Start starts the server and blocks until it stops.
func (s *Server) Start(addr string) error {
	go s.run()
	s.monitor.Start(s.ctx)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info().Str("addr", addr).Msg("Starting showdown server")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()

	s.mu.Lock()
	for conn := range s.connections {
		_ = conn.Close() // Ignore close errors during shutdown
	}
	s.mu.Unlock()

	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// run handles websocket connection lifecycle
func (s *Server) run() {
	for {
		select {
		case conn := <-s.register:
			s.mu.Lock()
			s.connections[conn] = true
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info().Int("total", total).Msg("Client connected")

		case conn := <-s.unregister:
			s.mu.Lock()
			if _, ok := s.connections[conn]; ok {
				delete(s.connections, conn)
				_ = conn.Close() // Ignore close errors during unregistration
			}
			total := len(s.connections)
			s.mu.Unlock()
			s.logger.Info().Int("total", total).Msg("Client disconnected")

		case <-s.ctx.Done():
			return
		}
	}
}

// handleWebSocket upgrades the connection and hands it to the pumps
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to upgrade connection")
		return
	}

	client := NewConnection(conn, s.logger, s)
	s.register <- client
	client.Start()

	go func() {
		<-client.ctx.Done()
		select {
		case s.unregister <- client:
		case <-s.ctx.Done():
		}
	}()
}

// handleEvaluate serves one-shot JSON evaluations
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req protocol.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.monitor.RecordRejected()
		writeJSON(w, http.StatusBadRequest, &protocol.Error{
			Code:    "invalid_json",
			Message: "failed to parse request body: " + err.Error(),
		})
		return
	}

	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	resp, evalErr := s.evaluate(&req)
	if evalErr != nil {
		s.logger.Debug().
			Str("request_id", req.RequestID).
			Str("code", evalErr.Code).
			Str("reason", evalErr.Message).
			Msg("Evaluation rejected")
		writeJSON(w, http.StatusBadRequest, evalErr)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK")) // Ignore write errors for health check
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
