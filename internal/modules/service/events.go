package service

import (
	"context"
	"time"
)

// EventPublisher is the slice of the queue publisher the services need.
// *mq.Publisher satisfies it.
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, body any) error
}

// Routing keys on the coffeecard exchange.
const (
	EventPurchaseCompleted = "purchase.completed"
	EventPurchaseRefunded  = "purchase.refunded"
	EventTicketUsed        = "ticket.used"
)

type PurchaseEvent struct {
	PurchaseID int       `json:"purchase_id"`
	OrderID    string    `json:"order_id"`
	UserID     int       `json:"user_id"`
	ProductID  int       `json:"product_id"`
	Timestamp  time.Time `json:"timestamp"`
}

type TicketEvent struct {
	TicketID   int       `json:"ticket_id"`
	OwnerID    int       `json:"owner_id"`
	ProductID  int       `json:"product_id"`
	MenuItemID *int      `json:"menu_item_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
