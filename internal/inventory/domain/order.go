package domain

import (
	"context"
	"time"
)

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ShippingAddress is the structured delivery address on an order.
type ShippingAddress struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zipCode" bson:"zipCode"`
	Country string `json:"country" bson:"country"`
}

// OrderItem is one product line within an order. Product name and unit
// price are snapshots taken at order time; later product mutation does not
// change past orders.
type OrderItem struct {
	ProductID   string  `json:"productId" bson:"productId"`
	ProductName string  `json:"productName" bson:"productName"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	UnitPrice   float64 `json:"unitPrice" bson:"unitPrice"`
	Subtotal    float64 `json:"subtotal" bson:"subtotal"`
}

// Order represents a customer order. Identity is orderId plus creation
// time. TotalAmount must equal the sum of line-item subtotals rounded to
// two decimals.
type Order struct {
	OrderID         string          `json:"orderId" bson:"orderId"`
	CustomerName    string          `json:"customerName" bson:"customerName"`
	CustomerEmail   string          `json:"customerEmail" bson:"customerEmail"`
	ShippingAddress ShippingAddress `json:"shippingAddress" bson:"shippingAddress"`
	Items           []OrderItem     `json:"items" bson:"items"`
	Status          string          `json:"status" bson:"status"`
	TotalAmount     float64         `json:"totalAmount" bson:"totalAmount"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt" bson:"updatedAt"`
	TrackingNumber  string          `json:"trackingNumber,omitempty" bson:"trackingNumber,omitempty"`
	Notes           string          `json:"notes,omitempty" bson:"notes,omitempty"`
	WarehouseID     string          `json:"warehouseId" bson:"warehouseId"`
}

// OrderKeyField is the identity attribute of an order record.
const OrderKeyField = "orderId"

// OrderRepository defines the contract for order data access. Orders have
// no update path; they are written once and read back whole.
type OrderRepository interface {
	Add(ctx context.Context, order *Order) error
	List(ctx context.Context) ([]Order, error)
}
