package ws

import (
	"log/slog"
	"net/http"
	"time"

	"chat-relay/services"
	"chat-relay/sink"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Server upgrades HTTP requests into chat sessions.
type Server struct {
	log             *slog.Logger
	svc             services.IChatService
	upgrader        websocket.Upgrader
	bufferSize      int
	deliveryTimeout time.Duration
}

func NewServer(log *slog.Logger, svc services.IChatService,
	bufferSize int, deliveryTimeout time.Duration) *Server {
	return &Server{
		log: log,
		svc: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin policy belongs to the deployment front, not the core.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		bufferSize:      bufferSize,
		deliveryTimeout: deliveryTimeout,
	}
}

// Handle accepts one websocket session and blocks in its read pump until
// the peer disconnects. Cleanup runs through the read pump's defer path.
func (s *Server) Handle(w http.ResponseWriter, r *http.Request) {
	wsConn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("Websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	connID := uuid.NewString()
	connSink := sink.NewConnSink(s.log, s.bufferSize, s.deliveryTimeout)

	c := &connection{
		connID: connID,
		conn:   wsConn,
		sink:   connSink,
		svc:    s.svc,
		log:    s.log,
	}

	s.log.Info("Client connected", "conn_id", connID, "remote", r.RemoteAddr)
	s.svc.Connect(r.Context(), connID, connSink)

	go c.writePump()
	c.readPump(r.Context())
	s.log.Info("Client disconnected", "conn_id", connID)
}
