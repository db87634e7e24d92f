package query

import (
	"context"

	"github.com/irbansin/warehouse/internal/inventory/domain"
)

// ListOrdersQuery represents the query to list all orders
type ListOrdersQuery struct{}

// ListOrdersHandler handles list orders queries
type ListOrdersHandler struct {
	repo domain.OrderRepository
}

// NewListOrdersHandler creates a new list orders handler
func NewListOrdersHandler(repo domain.OrderRepository) *ListOrdersHandler {
	return &ListOrdersHandler{repo: repo}
}

// Handle executes the list orders query
func (h *ListOrdersHandler) Handle(ctx context.Context, _ ListOrdersQuery) ([]domain.Order, error) {
	orders, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}
