package ws

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/pkg/resp"
	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/utils"
)

// Event is one real-time notification, routed to a single branch room.
type Event struct {
	Type          string `json:"type"`
	OrderID       uint   `json:"orderId,omitempty"`
	OrderNumber   string `json:"orderNumber,omitempty"`
	Status        string `json:"status,omitempty"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	BranchID      uint   `json:"branchId"`
	Total         string `json:"total,omitempty"`
}

// NotificationHub keeps a set of connections per branch and fans order
// events out to them.
type NotificationHub struct {
	clients    map[uint]map[*websocket.Conn]bool // branchID -> connections
	broadcast  chan Event
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	log        *logrus.Logger
}

type subscription struct {
	conn     *websocket.Conn
	branchID uint
}

func NewNotificationHub(log *logrus.Logger) *NotificationHub {
	return &NotificationHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan Event, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		log:        log,
	}
}

func (h *NotificationHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.branchID] == nil {
				h.clients[sub.branchID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.branchID][sub.conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.branchID][sub.conn]; ok {
				delete(h.clients[sub.branchID], sub.conn)
				sub.conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.BranchID] {
				if err := conn.WriteJSON(ev); err != nil {
					h.log.Warnf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.BranchID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// publish never blocks the caller; if the hub is saturated the event is
// dropped and logged.
func (h *NotificationHub) publish(ev Event) {
	select {
	case h.broadcast <- ev:
	default:
		h.log.WithFields(logrus.Fields{"type": ev.Type, "branch": ev.BranchID}).
			Warn("notification dropped: hub saturated")
	}
}

// ----- services.OrderNotifier -----

func (h *NotificationHub) NewOrder(branchID uint, order *entity.Order) {
	h.publish(Event{
		Type:        "new-order",
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		BranchID:    branchID,
		Total:       order.Total.StringFixed(2),
	})
}

func (h *NotificationHub) OrderStatusUpdated(branchID, orderID uint, orderNumber, status string) {
	h.publish(Event{
		Type:        "order-status-updated",
		OrderID:     orderID,
		OrderNumber: orderNumber,
		Status:      status,
		BranchID:    branchID,
	})
}

func (h *NotificationHub) PaymentStatusUpdated(branchID, orderID uint, orderNumber, paymentStatus, method string) {
	h.publish(Event{
		Type:          "payment-status-updated",
		OrderID:       orderID,
		OrderNumber:   orderNumber,
		PaymentStatus: paymentStatus,
		PaymentMethod: method,
		BranchID:      branchID,
	})
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket subscribes the caller to their branch's event room.
// Admins may subscribe to any branch via ?branchId=.
func (h *NotificationHub) HandleWebSocket(c *gin.Context) {
	actor := utils.CurrentActor(c)

	branchID := actor.BranchID
	if q := c.Query("branchId"); q != "" {
		id, err := strconv.ParseUint(q, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid branchId")
			return
		}
		branchID = uint(id)
	}
	if !actor.CanAccessBranch(branchID) {
		resp.Forbidden(c, "no access to this branch")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warnf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{conn: conn, branchID: branchID}
	h.register <- sub

	// drain until the client goes away
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
