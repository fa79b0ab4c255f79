package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/satyasudipta98-dot/Foodie-we/entity"
)

// OrderFeedHub pushes ledger changes to connected admin dashboards, so the
// orders tab updates without polling.
type OrderFeedHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan FeedEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

type FeedEvent struct {
	Type   string        `json:"type"` // order_placed | status_changed
	Order  *entity.Order `json:"order,omitempty"`
	ID     uint          `json:"id,omitempty"`
	Status string        `json:"status,omitempty"`
}

func NewOrderFeedHub() *OrderFeedHub {
	return &OrderFeedHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan FeedEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *OrderFeedHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// OrderPlaced and StatusChanged satisfy services.OrderEvents. The buffered
// channel keeps checkout from blocking on slow dashboards.
func (h *OrderFeedHub) OrderPlaced(o *entity.Order) {
	select {
	case h.broadcast <- FeedEvent{Type: "order_placed", Order: o}:
	default:
		log.Println("order feed full, dropping order_placed event")
	}
}

func (h *OrderFeedHub) StatusChanged(orderID uint, status entity.OrderStatus) {
	select {
	case h.broadcast <- FeedEvent{Type: "status_changed", ID: orderID, Status: string(status)}:
	default:
		log.Println("order feed full, dropping status_changed event")
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/admin/orders (admin role enforced by middleware).
func (h *OrderFeedHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn
	go h.drain(conn)
}

// drain discards client frames; the feed is one-way. A read error means the
// dashboard went away.
func (h *OrderFeedHub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
