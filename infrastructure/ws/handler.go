package ws

import (
	"candidate-notes/auth"
	"candidate-notes/contract"
	"candidate-notes/errors"
	"candidate-notes/sink"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type Config struct {
	AllowedOrigins  []string
	ReadLimit       int64
	BufferSize      int
	DeliveryTimeout time.Duration
}

// Handler upgrades authenticated requests into live connections driven by the hub.
type Handler struct {
	log      *slog.Logger
	hub      contract.IHub
	config   Config
	upgrader websocket.Upgrader
}

func NewHandler(log *slog.Logger, hub contract.IHub, config Config) *Handler {
	h := &Handler{log: log, hub: hub, config: config}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// checkOrigin accepts non-browser clients (no Origin header) and the configured origins.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.config.AllowedOrigins {
		allowed = strings.TrimSpace(allowed)
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	h.log.Warn("WebSocket origin refused", "origin", origin)
	return false
}

// ServeHTTP admits the connection before upgrading: a rejected credential
// gets a plain 401 and never reaches the socket protocol.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	credential := auth.CredentialFromRequest(r, true)
	connSink := sink.NewConnectionSink(h.log, h.config.BufferSize, h.config.DeliveryTimeout)

	connID, user, err := h.hub.OnConnect(r.Context(), credential, r.UserAgent(), connSink)
	if err != nil {
		refuse(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already answered the client
		h.log.Warn("WebSocket upgrade failed", "connection_id", connID, "error", err)
		h.hub.OnDisconnect(connID)
		return
	}

	c := &client{
		log:     h.log.With("connection_id", connID, "user_id", user.ID),
		hub:     h.hub,
		conn:    conn,
		connID:  connID,
		sink:    connSink,
		replies: make(chan frame, replyBufferSize),
	}
	go c.writePump()
	c.readPump(h.config.ReadLimit)
}

// refuse answers a failed admission. Internal failures are not detailed to the client.
func refuse(w http.ResponseWriter, err error) {
	status := errors.MapToHTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Server error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"msg": msg})
}
