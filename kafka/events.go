package kafka

import "time"

// InventoryEvent announces a write against the product or order
// collections. Events are a best-effort side channel: a failed publish is
// logged and never fails the originating request.
type InventoryEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	ProductID   string    `json:"product_id,omitempty"`
	OrderID     string    `json:"order_id,omitempty"`
	WarehouseID string    `json:"warehouse_id,omitempty"`
	Quantity    int       `json:"quantity,omitempty"`
	TotalAmount float64   `json:"total_amount,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeProductCreated = "product.created"
	EventTypeProductUpdated = "product.updated"
	EventTypeProductDeleted = "product.deleted"
	EventTypeOrderCreated   = "order.created"
)

// Kafka topics
const (
	TopicInventoryEvents = "inventory-events"
)
