package domain

import (
	"context"
	"time"
)

// Product represents a warehouse inventory record. A product is scoped to
// a single warehouse row; productId is the primary identity and is
// immutable after creation.
type Product struct {
	ProductID   string    `json:"productId" bson:"productId"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Category    string    `json:"category,omitempty" bson:"category,omitempty"`
	Quantity    int       `json:"quantity" bson:"quantity"`
	UnitPrice   float64   `json:"unitPrice" bson:"unitPrice"`
	WarehouseID string    `json:"warehouseId" bson:"warehouseId"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
	SKU         string    `json:"sku,omitempty" bson:"sku,omitempty"`
	LastUpdated time.Time `json:"lastUpdated" bson:"lastUpdated"`
}

// ProductKeyField is the identity attribute of a product record.
const ProductKeyField = "productId"

// ProductUpdatableFields enumerates the attribute names a partial update
// may touch. Anything outside this set is rejected at the boundary.
var ProductUpdatableFields = map[string]bool{
	"name":        true,
	"description": true,
	"category":    true,
	"quantity":    true,
	"unitPrice":   true,
	"warehouseId": true,
	"location":    true,
	"sku":         true,
	"lastUpdated": true,
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Get(ctx context.Context, productID string) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Add(ctx context.Context, product *Product) error
	Update(ctx context.Context, productID string, fields map[string]any) error
	Delete(ctx context.Context, productID string) error
}
