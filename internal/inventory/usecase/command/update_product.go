package command

import (
	"context"
	"fmt"
	"time"

	"github.com/irbansin/warehouse/internal/inventory/domain"
	"github.com/irbansin/warehouse/kafka"
	"github.com/irbansin/warehouse/pkg/logger"
)

// UpdateProductCommand represents a partial update to a product. Fields
// holds attribute name to new value; the identity field is ignored when
// present so a payload echoing the key never rewrites it.
type UpdateProductCommand struct {
	ProductID string
	Fields    map[string]any
}

// UpdateProductHandler handles update product commands
type UpdateProductHandler struct {
	repo      domain.ProductRepository
	publisher *kafka.Publisher
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository, publisher *kafka.Publisher) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo, publisher: publisher}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
	if cmd.ProductID == "" {
		return fmt.Errorf("productId is required")
	}

	if err := h.repo.Update(ctx, cmd.ProductID, cmd.Fields); err != nil {
		return err
	}

	if err := h.publisher.PublishInventoryEvent(ctx, kafka.InventoryEvent{
		EventType: kafka.EventTypeProductUpdated,
		ProductID: cmd.ProductID,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		logger.Error(ctx).Err(err).Str("product_id", cmd.ProductID).Msg("Failed to publish product updated event")
	}

	return nil
}
