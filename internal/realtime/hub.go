package realtime

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/avikm/job-board/internal/auth"
	"github.com/avikm/job-board/internal/entities"
	"github.com/avikm/job-board/internal/events"
	"github.com/avikm/job-board/internal/logger"
	"github.com/avikm/job-board/internal/metrics"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const NewApplicationEvent = "new_application"

type joinRequest struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

type notification struct {
	Event       string               `json:"event"`
	Application entities.Application `json:"application"`
	JobID       uint                 `json:"jobId"`
}

// Hub keeps one room per employer and pushes application events into them.
// Joining a room requires the same employer token the HTTP guard accepts; the
// room is taken from the token subject, never from a client-supplied id.
// Delivery is best effort, at most once: nothing is queued for employers that
// are not connected when the event fires.
type Hub struct {
	bus      EventBus.Bus
	tokens   *auth.TokenService
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	rooms map[uint]map[*client]struct{}
}

func NewHub(bus EventBus.Bus, tokens *auth.TokenService, allowedOrigin string) (*Hub, error) {

	if bus == nil {
		return nil, errors.New("bus is nil")
	}
	if tokens == nil {
		return nil, errors.New("token service is nil")
	}

	h := &Hub{
		bus:    bus,
		tokens: tokens,
		rooms:  make(map[uint]map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" || allowedOrigin == "*" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
	}

	err := bus.Subscribe(events.ApplicationReceivedTopic, h.onApplicationReceived)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Serve upgrades the request and runs the connection until it closes.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) {

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeWs).Errorf("failed to upgrade connection: %v", err)
		return
	}

	c := newClient(conn)
	metrics.WsConnectionsGauge.Inc()

	go c.writePump()
	h.readPump(c)
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.leave(c)
		close(c.send)
		metrics.WsConnectionsGauge.Dec()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var req joinRequest
		if err := json.Unmarshal(message, &req); err != nil || req.Type != "join" {
			continue
		}
		h.join(c, req.Token)
	}
}

func (h *Hub) join(c *client, token string) {

	claims, err := h.tokens.Verify(token)
	if err != nil || claims.Role != auth.RoleEmployer {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeWs).Warn("rejected room join with invalid token")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if c.joined {
		delete(h.rooms[c.employerID], c)
	}
	c.joined = true
	c.employerID = claims.SubjectID

	if h.rooms[c.employerID] == nil {
		h.rooms[c.employerID] = make(map[*client]struct{})
	}
	h.rooms[c.employerID][c] = struct{}{}
}

func (h *Hub) leave(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !c.joined {
		return
	}
	delete(h.rooms[c.employerID], c)
	if len(h.rooms[c.employerID]) == 0 {
		delete(h.rooms, c.employerID)
	}
	c.joined = false
}

func (h *Hub) onApplicationReceived(event events.ApplicationReceived) {

	message, err := json.Marshal(notification{
		Event:       NewApplicationEvent,
		Application: event.Application,
		JobID:       event.JobID,
	})
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeWs).Errorf("failed to marshal notification: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.rooms[event.EmployerID] {
		if c.enqueue(message) {
			metrics.NotificationsCounter.Inc()
		} else {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeWs).
				Warnf("dropped notification for employer %v: send buffer full", event.EmployerID)
		}
	}
}

// RoomSize reports how many connections are joined to an employer's room.
func (h *Hub) RoomSize(employerID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[employerID])
}

// Close force-closes every connection.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, room := range h.rooms {
		for c := range room {
			_ = c.conn.Close()
		}
	}
	h.rooms = make(map[uint]map[*client]struct{})
}
