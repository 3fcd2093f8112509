package overlay

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/kperrault/ganksense/internal/config"
)

// The overlay binds to loopback only, so cross-origin checks add nothing.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server hosts the overlay page and the WebSocket frame feed. It
// implements the lifecycle Service interface.
type Server struct {
	logger *zap.Logger
	hub    *Hub
	http   *http.Server
}

// NewServer creates an overlay Server bound per configuration.
//
// Precondition: cfg must have been validated; hub and logger must be non-nil.
func NewServer(cfg config.OverlayConfig, hub *Hub, logger *zap.Logger) *Server {
	s := &Server{
		logger: logger,
		hub:    hub,
	}

	r := mux.NewRouter()
	r.HandleFunc("/ws", s.handleWS)
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)

	s.http = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the route table so the overlay can be mounted on an
// existing listener.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start begins serving and blocks until Stop is called or the listener
// fails.
func (s *Server) Start() error {
	s.logger.Info("overlay server listening",
		zap.String("addr", s.http.Addr),
	)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully shuts down the HTTP server and disconnects all
// overlay clients.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Warn("overlay server shutdown", zap.Error(err))
	}
	s.hub.Close()
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	s.logger.Info("overlay client connected",
		zap.String("remote", r.RemoteAddr),
	)
	s.hub.Register(conn)

	// The feed is one-directional. Reading drains pings and detects the
	// disconnect.
	go func() {
		defer s.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

// indexHTML is the overlay page: a monospace panel that recolors per
// verdict and reconnects when the server restarts.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>GankSense</title>
<style>
  body { margin: 0; background: transparent; }
  #panel {
    font-family: "Consolas", "Menlo", monospace;
    font-size: 14px;
    white-space: pre;
    color: #e0e0e0;
    background: rgba(10, 10, 14, 0.82);
    border-left: 4px solid #666;
    padding: 10px 14px;
    display: inline-block;
    min-width: 320px;
  }
  #panel.go    { border-left-color: #3fb950; }
  #panel.risky { border-left-color: #d29922; }
  #panel.nogo  { border-left-color: #f85149; }
</style>
</head>
<body>
<div id="panel">waiting for game...</div>
<script>
  const panel = document.getElementById('panel');
  function connect() {
    const ws = new WebSocket('ws://' + location.host + '/ws');
    ws.onmessage = (ev) => {
      const frame = JSON.parse(ev.data);
      panel.textContent = frame.text;
      panel.className = frame.paused ? '' :
        frame.verdict === 'GO' ? 'go' :
        frame.verdict === 'RISKY' ? 'risky' :
        frame.verdict === 'NO GO' ? 'nogo' : '';
    };
    ws.onclose = () => {
      panel.textContent = 'reconnecting...';
      panel.className = '';
      setTimeout(connect, 1000);
    };
  }
  connect();
</script>
</body>
</html>
`
