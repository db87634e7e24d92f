package repository

import (
	"context"
	"time"

	"github.com/irbansin/warehouse/internal/inventory/domain"
	"github.com/irbansin/warehouse/internal/inventory/store"
)

// StoreProductRepository maps product operations onto a key-value store.
type StoreProductRepository struct {
	products store.Store[domain.Product]
}

// NewStoreProductRepository creates a product repository over the given store.
func NewStoreProductRepository(products store.Store[domain.Product]) *StoreProductRepository {
	return &StoreProductRepository{products: products}
}

func productKey(productID string) store.Key {
	return store.Key{{Name: domain.ProductKeyField, Value: productID}}
}

// Get looks a product up by id. When several warehouse rows share the id,
// the first match is returned; callers that care about a specific
// warehouse filter on warehouseId themselves.
func (r *StoreProductRepository) Get(ctx context.Context, productID string) (*domain.Product, error) {
	return r.products.Get(ctx, productKey(productID))
}

// List returns every product as one materialized, unordered sequence.
func (r *StoreProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.products.ScanAll(ctx)
}

// Add stamps the server-side write time and upserts the full record.
// There is no collision check; a duplicate id is a last-write-wins
// overwrite.
func (r *StoreProductRepository) Add(ctx context.Context, product *domain.Product) error {
	product.LastUpdated = time.Now().UTC()
	return r.products.Put(ctx, productKey(product.ProductID), *product)
}

// Update applies a partial mutation keyed by productId alone. The identity
// field is stripped from the payload and unknown attribute names are
// rejected before any store call is made.
func (r *StoreProductRepository) Update(ctx context.Context, productID string, fields map[string]any) error {
	expr, err := store.BuildUpdate(fields, domain.ProductUpdatableFields, domain.ProductKeyField)
	if err != nil {
		return err
	}
	return r.products.UpdatePartial(ctx, productKey(productID), expr)
}

// Delete removes the product. Deleting a missing id succeeds.
func (r *StoreProductRepository) Delete(ctx context.Context, productID string) error {
	return r.products.Delete(ctx, productKey(productID))
}

// StoreOrderRepository maps order operations onto a key-value store.
type StoreOrderRepository struct {
	orders store.Store[domain.Order]
}

// NewStoreOrderRepository creates an order repository over the given store.
func NewStoreOrderRepository(orders store.Store[domain.Order]) *StoreOrderRepository {
	return &StoreOrderRepository{orders: orders}
}

func orderKey(order *domain.Order) store.Key {
	return store.Key{
		{Name: domain.OrderKeyField, Value: order.OrderID},
		{Name: "createdAt", Value: order.CreatedAt},
	}
}

// Add upserts the full order keyed by orderId plus creation time.
func (r *StoreOrderRepository) Add(ctx context.Context, order *domain.Order) error {
	return r.orders.Put(ctx, orderKey(order), *order)
}

// List returns every order as one materialized, unordered sequence.
func (r *StoreOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	return r.orders.ScanAll(ctx)
}
