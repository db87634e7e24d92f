package query

import (
	"context"
	"fmt"

	"github.com/irbansin/warehouse/internal/inventory/domain"
)

// GetProductQuery represents the query to get a product by id
type GetProductQuery struct {
	ProductID string
}

// GetProductHandler handles get product queries
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	if q.ProductID == "" {
		return nil, fmt.Errorf("productId is required")
	}
	return h.repo.Get(ctx, q.ProductID)
}
