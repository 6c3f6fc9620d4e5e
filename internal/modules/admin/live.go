package admin

import (
	"net/http"
	"sync"
	"time"

	"venuebook/internal/domain"
	"venuebook/internal/pkg/money"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins (configure in prod)
}

// LiveEvent is a real-time booking event pushed to connected admin clients.
type LiveEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

type liveBooking struct {
	ID         int64       `json:"id"`
	BookingRef string      `json:"booking_ref"`
	HallID     int64       `json:"hall_id"`
	StartTime  time.Time   `json:"start_time"`
	EndTime    time.Time   `json:"end_time"`
	Guests     int         `json:"guests"`
	Status     string      `json:"status"`
	Total      money.Money `json:"total"`
}

// LiveHub fans booking lifecycle events out to every connected admin
// dashboard. It satisfies the sink interfaces of both the booking service
// and the moderation service.
type LiveHub struct {
	connections map[*websocket.Conn]struct{}
	mutex       sync.RWMutex
}

func NewLiveHub() *LiveHub {
	return &LiveHub{connections: make(map[*websocket.Conn]struct{})}
}

func (h *LiveHub) register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.connections[conn] = struct{}{}
}

func (h *LiveHub) unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, exists := h.connections[conn]; exists {
		_ = conn.Close()
		delete(h.connections, conn)
	}
}

// Broadcast writes the event to all connections. Dead connections are
// dropped along the way.
func (h *LiveHub) Broadcast(ev LiveEvent) {
	h.mutex.RLock()
	conns := make([]*websocket.Conn, 0, len(h.connections))
	for c := range h.connections {
		conns = append(conns, c)
	}
	h.mutex.RUnlock()

	for _, c := range conns {
		if err := c.WriteJSON(ev); err != nil {
			h.unregister(c)
		}
	}
}

func (h *LiveHub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.connections)
}

func (h *LiveHub) BookingCreated(b *domain.Booking) {
	h.Broadcast(LiveEvent{Type: "booking_created", Payload: toLiveBooking(b)})
}

func (h *LiveHub) BookingCancelled(b *domain.Booking) {
	h.Broadcast(LiveEvent{Type: "booking_cancelled", Payload: toLiveBooking(b)})
}

func toLiveBooking(b *domain.Booking) liveBooking {
	return liveBooking{
		ID:         b.ID,
		BookingRef: b.BookingRef,
		HallID:     b.HallID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Guests:     b.Guests,
		Status:     string(b.Status),
		Total:      b.Total,
	}
}

// Serve upgrades the request and keeps the connection registered until the
// client goes away. The feed is push-only; inbound frames are discarded.
func (h *LiveHub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	h.register(conn)
	defer h.unregister(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *LiveHub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for c := range h.connections {
		_ = c.Close()
	}
	h.connections = make(map[*websocket.Conn]struct{})
}
