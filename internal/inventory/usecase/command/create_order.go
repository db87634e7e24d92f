package command

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/irbansin/warehouse/internal/inventory/domain"
	"github.com/irbansin/warehouse/kafka"
	"github.com/irbansin/warehouse/pkg/logger"
)

// CreateOrderCommand represents the command to record an order
type CreateOrderCommand struct {
	OrderID         string
	CustomerName    string
	CustomerEmail   string
	ShippingAddress domain.ShippingAddress
	Items           []domain.OrderItem
	Status          string
	TrackingNumber  string
	Notes           string
	WarehouseID     string
}

// CreateOrderHandler handles create order commands
type CreateOrderHandler struct {
	repo      domain.OrderRepository
	publisher *kafka.Publisher
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(repo domain.OrderRepository, publisher *kafka.Publisher) *CreateOrderHandler {
	return &CreateOrderHandler{repo: repo, publisher: publisher}
}

// Handle executes the create order command. Line subtotals and the order
// total are computed server-side so the stored record always satisfies
// totalAmount = sum of subtotals rounded to two decimals.
func (h *CreateOrderHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*domain.Order, error) {
	if len(cmd.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item")
	}

	total := 0.0
	items := make([]domain.OrderItem, len(cmd.Items))
	for i, item := range cmd.Items {
		if item.ProductID == "" {
			return nil, fmt.Errorf("item %d: productId is required", i)
		}
		if item.Quantity < 1 {
			return nil, fmt.Errorf("item %d: quantity must be at least 1", i)
		}
		item.Subtotal = round2(float64(item.Quantity) * item.UnitPrice)
		total += item.Subtotal
		items[i] = item
	}

	if cmd.OrderID == "" {
		cmd.OrderID = uuid.NewString()
	}
	if cmd.Status == "" {
		cmd.Status = domain.OrderStatusPending
	}

	now := time.Now().UTC()
	order := &domain.Order{
		OrderID:         cmd.OrderID,
		CustomerName:    cmd.CustomerName,
		CustomerEmail:   cmd.CustomerEmail,
		ShippingAddress: cmd.ShippingAddress,
		Items:           items,
		Status:          cmd.Status,
		TotalAmount:     round2(total),
		CreatedAt:       now,
		UpdatedAt:       now,
		TrackingNumber:  cmd.TrackingNumber,
		Notes:           cmd.Notes,
		WarehouseID:     cmd.WarehouseID,
	}

	if err := h.repo.Add(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to add order: %w", err)
	}

	if err := h.publisher.PublishInventoryEvent(ctx, kafka.InventoryEvent{
		EventType:   kafka.EventTypeOrderCreated,
		OrderID:     order.OrderID,
		WarehouseID: order.WarehouseID,
		TotalAmount: order.TotalAmount,
		Timestamp:   now,
	}); err != nil {
		logger.Error(ctx).Err(err).Str("order_id", order.OrderID).Msg("Failed to publish order created event")
	}

	return order, nil
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
