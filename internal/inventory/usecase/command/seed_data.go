package command

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/irbansin/warehouse/internal/inventory/domain"
	"github.com/irbansin/warehouse/pkg/logger"
)

// Defaults applied when the caller omits the counts.
const (
	DefaultNumProducts = 50
	DefaultNumOrders   = 100

	maxItemsPerOrder = 5
	maxBackdateDays  = 30
)

// Sample data pools for generating realistic records.
var (
	productCategories = []string{"Electronics", "Clothing", "Food", "Furniture", "Books"}
	warehouseIDs      = []string{"WH001", "WH002", "WH003"}
	productNames      = map[string][]string{
		"Electronics": {"Smartphone", "Laptop", "Tablet", "Headphones", "Smart Watch"},
		"Clothing":    {"T-Shirt", "Jeans", "Jacket", "Dress", "Shoes"},
		"Food":        {"Coffee", "Tea", "Snacks", "Pasta", "Cereal"},
		"Furniture":   {"Chair", "Table", "Desk", "Sofa", "Bed"},
		"Books":       {"Novel", "Textbook", "Comic", "Magazine", "Dictionary"},
	}
)

// SeedDataCommand requests a synthetic dataset. Zero or negative counts
// fall back to the defaults.
type SeedDataCommand struct {
	NumProducts int
	NumOrders   int
}

// SeedDataResult reports attempted writes and their outcomes. Seeding is
// best-effort: failures are counted, never aborted on.
type SeedDataResult struct {
	ProductsSeeded  int `json:"productsSeeded"`
	OrdersSeeded    int `json:"ordersSeeded"`
	ProductFailures int `json:"productFailures"`
	OrderFailures   int `json:"orderFailures"`
}

// SeedDataHandler generates cross-referenced sample products and orders
// and writes them through the repositories.
type SeedDataHandler struct {
	products domain.ProductRepository
	orders   domain.OrderRepository
}

// NewSeedDataHandler creates a new seed data handler
func NewSeedDataHandler(products domain.ProductRepository, orders domain.OrderRepository) *SeedDataHandler {
	return &SeedDataHandler{
		products: products,
		orders:   orders,
	}
}

// Handle runs the two-phase generation. All products are generated and
// written first, and only products that were actually stored are eligible
// for order line items, so every generated order references records that
// exist in the target store.
func (h *SeedDataHandler) Handle(ctx context.Context, cmd SeedDataCommand) (*SeedDataResult, error) {
	if cmd.NumProducts <= 0 {
		cmd.NumProducts = DefaultNumProducts
	}
	if cmd.NumOrders <= 0 {
		cmd.NumOrders = DefaultNumOrders
	}

	result := &SeedDataResult{}

	// The handler is shared across requests and rand.Rand is not safe for
	// concurrent use, so each invocation gets its own generator.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	logger.Info(ctx).Int("count", cmd.NumProducts).Msg("Generating products")
	stored := make([]domain.Product, 0, cmd.NumProducts)
	for i := 0; i < cmd.NumProducts; i++ {
		product := generateProduct(rng)
		if err := h.products.Add(ctx, &product); err != nil {
			logger.Error(ctx).Err(err).Str("name", product.Name).Msg("Error adding product")
			result.ProductFailures++
			continue
		}
		stored = append(stored, product)
		result.ProductsSeeded++
	}

	logger.Info(ctx).Int("count", cmd.NumOrders).Msg("Generating orders")
	for i := 0; i < cmd.NumOrders; i++ {
		if len(stored) == 0 {
			logger.Error(ctx).Msg("No stored products to build an order from")
			result.OrderFailures++
			continue
		}
		order := generateOrder(rng, stored)
		if err := h.orders.Add(ctx, &order); err != nil {
			logger.Error(ctx).Err(err).Str("order_id", order.OrderID).Msg("Error adding order")
			result.OrderFailures++
			continue
		}
		result.OrdersSeeded++
	}

	logger.Info(ctx).
		Int("products_seeded", result.ProductsSeeded).
		Int("orders_seeded", result.OrdersSeeded).
		Int("product_failures", result.ProductFailures).
		Int("order_failures", result.OrderFailures).
		Msg("Seeding finished")
	return result, nil
}

func generateProduct(rng *rand.Rand) domain.Product {
	category := productCategories[rng.Intn(len(productCategories))]
	names := productNames[category]
	name := names[rng.Intn(len(names))]

	return domain.Product{
		ProductID:   uuid.NewString(),
		Name:        fmt.Sprintf("%s %d", name, 1000+rng.Intn(9000)),
		Description: fmt.Sprintf("Description for %s", name),
		Category:    category,
		Quantity:    rng.Intn(1001),
		UnitPrice:   round2(10 + rng.Float64()*990),
		WarehouseID: warehouseIDs[rng.Intn(len(warehouseIDs))],
		Location:    fmt.Sprintf("Aisle %d-Shelf %d", 1+rng.Intn(20), 1+rng.Intn(50)),
		SKU:         fmt.Sprintf("SKU%d", 10000+rng.Intn(90000)),
	}
}

func generateOrder(rng *rand.Rand, products []domain.Product) domain.Order {
	numItems := 1 + rng.Intn(maxItemsPerOrder)
	if numItems > len(products) {
		numItems = len(products)
	}

	// Uniform random sample without replacement.
	perm := rng.Perm(len(products))[:numItems]

	total := 0.0
	items := make([]domain.OrderItem, 0, numItems)
	for _, idx := range perm {
		product := products[idx]
		quantity := 1 + rng.Intn(5)
		subtotal := round2(float64(quantity) * product.UnitPrice)
		total += subtotal

		items = append(items, domain.OrderItem{
			ProductID:   product.ProductID,
			ProductName: product.Name,
			Quantity:    quantity,
			UnitPrice:   product.UnitPrice,
			Subtotal:    subtotal,
		})
	}

	orderDate := time.Now().UTC().AddDate(0, 0, -rng.Intn(maxBackdateDays+1))

	return domain.Order{
		OrderID:       uuid.NewString(),
		CustomerName:  fmt.Sprintf("Customer %d", 1000+rng.Intn(9000)),
		CustomerEmail: fmt.Sprintf("customer%d@example.com", 1000+rng.Intn(9000)),
		ShippingAddress: domain.ShippingAddress{
			Street:  fmt.Sprintf("%d Main St", 100+rng.Intn(900)),
			City:    "Sample City",
			State:   "ST",
			ZipCode: fmt.Sprintf("%d", 10000+rng.Intn(90000)),
			Country: "USA",
		},
		Items:          items,
		Status:         domain.OrderStatuses[rng.Intn(len(domain.OrderStatuses))],
		TotalAmount:    round2(total),
		CreatedAt:      orderDate,
		UpdatedAt:      orderDate,
		TrackingNumber: fmt.Sprintf("TRK%d", 1000000+rng.Intn(9000000)),
		Notes:          "Sample order notes",
		WarehouseID:    warehouseIDs[rng.Intn(len(warehouseIDs))],
	}
}
