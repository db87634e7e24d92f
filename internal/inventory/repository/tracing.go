package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/irbansin/warehouse/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// ProductRepositoryWithTracing wraps a ProductRepository with tracing
type ProductRepositoryWithTracing struct {
	inner domain.ProductRepository
}

// NewProductRepositoryWithTracing creates a traced product repository
func NewProductRepositoryWithTracing(inner domain.ProductRepository) *ProductRepositoryWithTracing {
	return &ProductRepositoryWithTracing{inner: inner}
}

func (r *ProductRepositoryWithTracing) Get(ctx context.Context, productID string) (*domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.GetProduct",
		trace.WithAttributes(attribute.String("product.id", productID)),
	)
	defer span.End()

	product, err := r.inner.Get(ctx, productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("product.warehouse_id", product.WarehouseID),
		attribute.Int("product.quantity", product.Quantity),
	)
	return product, nil
}

func (r *ProductRepositoryWithTracing) List(ctx context.Context) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.ListProducts")
	defer span.End()

	products, err := r.inner.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(products)))
	return products, nil
}

func (r *ProductRepositoryWithTracing) Add(ctx context.Context, product *domain.Product) error {
	ctx, span := tracer.Start(ctx, "repository.AddProduct",
		trace.WithAttributes(
			attribute.String("product.id", product.ProductID),
			attribute.String("product.category", product.Category),
			attribute.String("product.warehouse_id", product.WarehouseID),
		),
	)
	defer span.End()

	if err := r.inner.Add(ctx, product); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *ProductRepositoryWithTracing) Update(ctx context.Context, productID string, fields map[string]any) error {
	ctx, span := tracer.Start(ctx, "repository.UpdateProduct",
		trace.WithAttributes(
			attribute.String("product.id", productID),
			attribute.Int("update.field_count", len(fields)),
		),
	)
	defer span.End()

	if err := r.inner.Update(ctx, productID, fields); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *ProductRepositoryWithTracing) Delete(ctx context.Context, productID string) error {
	ctx, span := tracer.Start(ctx, "repository.DeleteProduct",
		trace.WithAttributes(attribute.String("product.id", productID)),
	)
	defer span.End()

	if err := r.inner.Delete(ctx, productID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// OrderRepositoryWithTracing wraps an OrderRepository with tracing
type OrderRepositoryWithTracing struct {
	inner domain.OrderRepository
}

// NewOrderRepositoryWithTracing creates a traced order repository
func NewOrderRepositoryWithTracing(inner domain.OrderRepository) *OrderRepositoryWithTracing {
	return &OrderRepositoryWithTracing{inner: inner}
}

func (r *OrderRepositoryWithTracing) Add(ctx context.Context, order *domain.Order) error {
	ctx, span := tracer.Start(ctx, "repository.AddOrder",
		trace.WithAttributes(
			attribute.String("order.id", order.OrderID),
			attribute.Int("order.item_count", len(order.Items)),
			attribute.Float64("order.total_amount", order.TotalAmount),
		),
	)
	defer span.End()

	if err := r.inner.Add(ctx, order); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (r *OrderRepositoryWithTracing) List(ctx context.Context) ([]domain.Order, error) {
	ctx, span := tracer.Start(ctx, "repository.ListOrders")
	defer span.End()

	orders, err := r.inner.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(orders)))
	return orders, nil
}
