package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/irbansin/warehouse/internal/inventory/domain"
	"github.com/irbansin/warehouse/kafka"
	"github.com/irbansin/warehouse/pkg/logger"
)

// CreateProductCommand represents the command to add a product
type CreateProductCommand struct {
	ProductID   string
	Name        string
	Description string
	Category    string
	Quantity    int
	UnitPrice   float64
	WarehouseID string
	Location    string
	SKU         string
}

// CreateProductHandler handles create product commands
type CreateProductHandler struct {
	repo      domain.ProductRepository
	publisher *kafka.Publisher
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository, publisher *kafka.Publisher) *CreateProductHandler {
	return &CreateProductHandler{repo: repo, publisher: publisher}
}

// Handle executes the create product command. A caller-supplied productId
// is accepted as-is; one is assigned when absent.
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if cmd.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}
	if cmd.UnitPrice <= 0 {
		return nil, fmt.Errorf("unitPrice must be positive")
	}

	if cmd.ProductID == "" {
		cmd.ProductID = uuid.NewString()
	}

	product := &domain.Product{
		ProductID:   cmd.ProductID,
		Name:        cmd.Name,
		Description: cmd.Description,
		Category:    cmd.Category,
		Quantity:    cmd.Quantity,
		UnitPrice:   cmd.UnitPrice,
		WarehouseID: cmd.WarehouseID,
		Location:    cmd.Location,
		SKU:         cmd.SKU,
	}

	if err := h.repo.Add(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	if err := h.publisher.PublishInventoryEvent(ctx, kafka.InventoryEvent{
		EventType:   kafka.EventTypeProductCreated,
		ProductID:   product.ProductID,
		WarehouseID: product.WarehouseID,
		Quantity:    product.Quantity,
		Timestamp:   time.Now().UTC(),
	}); err != nil {
		logger.Error(ctx).Err(err).Str("product_id", product.ProductID).Msg("Failed to publish product created event")
	}

	return product, nil
}
