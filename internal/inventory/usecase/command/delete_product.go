package command

import (
	"context"
	"fmt"
	"time"

	"github.com/irbansin/warehouse/internal/inventory/domain"
	"github.com/irbansin/warehouse/kafka"
	"github.com/irbansin/warehouse/pkg/logger"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ProductID string
}

// DeleteProductHandler handles delete product commands
type DeleteProductHandler struct {
	repo      domain.ProductRepository
	publisher *kafka.Publisher
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository, publisher *kafka.Publisher) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo, publisher: publisher}
}

// Handle executes the delete product command. Deleting a missing id is a
// successful no-op, so deleting twice is not an error.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if cmd.ProductID == "" {
		return fmt.Errorf("productId is required")
	}

	if err := h.repo.Delete(ctx, cmd.ProductID); err != nil {
		return err
	}

	if err := h.publisher.PublishInventoryEvent(ctx, kafka.InventoryEvent{
		EventType: kafka.EventTypeProductDeleted,
		ProductID: cmd.ProductID,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		logger.Error(ctx).Err(err).Str("product_id", cmd.ProductID).Msg("Failed to publish product deleted event")
	}

	return nil
}
