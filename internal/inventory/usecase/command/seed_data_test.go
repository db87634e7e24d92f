package command

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irbansin/warehouse/internal/inventory/domain"
)

type fakeProductRepo struct {
	mu         sync.Mutex
	products   map[string]domain.Product
	addCalls   int
	failEvery  int
	updateArgs map[string]any
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]domain.Product{}}
}

func (f *fakeProductRepo) Get(_ context.Context, productID string) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.products[productID]; ok {
		return &p, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeProductRepo) List(_ context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var list []domain.Product
	for _, p := range f.products {
		list = append(list, p)
	}
	return list, nil
}

func (f *fakeProductRepo) Add(_ context.Context, p *domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addCalls++
	if f.failEvery > 0 && f.addCalls%f.failEvery == 0 {
		return errors.New("injected write failure")
	}
	f.products[p.ProductID] = *p
	return nil
}

func (f *fakeProductRepo) Update(_ context.Context, productID string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateArgs = fields
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, productID)
	return nil
}

type fakeOrderRepo struct {
	mu        sync.Mutex
	orders    []domain.Order
	addCalls  int
	failEvery int
}

func (f *fakeOrderRepo) Add(_ context.Context, o *domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addCalls++
	if f.failEvery > 0 && f.addCalls%f.failEvery == 0 {
		return errors.New("injected write failure")
	}
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orders, nil
}

func TestSeedData_GenerationCounts(t *testing.T) {
	products := newFakeProductRepo()
	orders := &fakeOrderRepo{}
	h := NewSeedDataHandler(products, orders)

	result, err := h.Handle(context.Background(), SeedDataCommand{NumProducts: 10, NumOrders: 20})
	require.NoError(t, err)

	require.Equal(t, 10, products.addCalls, "exactly 10 product writes attempted")
	require.Equal(t, 20, orders.addCalls, "exactly 20 order writes attempted")
	require.Equal(t, 10, result.ProductsSeeded)
	require.Equal(t, 20, result.OrdersSeeded)
	require.Zero(t, result.ProductFailures)
	require.Zero(t, result.OrderFailures)
}

func TestSeedData_Defaults(t *testing.T) {
	products := newFakeProductRepo()
	orders := &fakeOrderRepo{}
	h := NewSeedDataHandler(products, orders)

	result, err := h.Handle(context.Background(), SeedDataCommand{})
	require.NoError(t, err)
	require.Equal(t, DefaultNumProducts, products.addCalls)
	require.Equal(t, DefaultNumOrders, orders.addCalls)
	require.Equal(t, DefaultNumProducts, result.ProductsSeeded)
}

func TestSeedData_ReferentialIntegrity(t *testing.T) {
	products := newFakeProductRepo()
	orders := &fakeOrderRepo{}
	h := NewSeedDataHandler(products, orders)

	_, err := h.Handle(context.Background(), SeedDataCommand{NumProducts: 15, NumOrders: 40})
	require.NoError(t, err)

	for _, order := range orders.orders {
		require.NotEmpty(t, order.Items)
		require.LessOrEqual(t, len(order.Items), maxItemsPerOrder)

		seen := map[string]bool{}
		total := 0.0
		for _, item := range order.Items {
			stored, ok := products.products[item.ProductID]
			require.True(t, ok, "line item must reference a stored product")
			require.Equal(t, stored.Name, item.ProductName)
			require.Equal(t, stored.UnitPrice, item.UnitPrice)
			require.GreaterOrEqual(t, item.Quantity, 1)
			require.LessOrEqual(t, item.Quantity, 5)
			require.InDelta(t, float64(item.Quantity)*item.UnitPrice, item.Subtotal, 0.01)
			require.False(t, seen[item.ProductID], "items sampled without replacement")
			seen[item.ProductID] = true
			total += item.Subtotal
		}
		require.InDelta(t, total, order.TotalAmount, 0.01)
	}
}

func TestSeedData_ProductInvariants(t *testing.T) {
	products := newFakeProductRepo()
	h := NewSeedDataHandler(products, &fakeOrderRepo{})

	_, err := h.Handle(context.Background(), SeedDataCommand{NumProducts: 30, NumOrders: 1})
	require.NoError(t, err)

	for _, p := range products.products {
		require.NotEmpty(t, p.ProductID)
		require.Contains(t, productCategories, p.Category)
		require.Contains(t, warehouseIDs, p.WarehouseID)
		require.GreaterOrEqual(t, p.Quantity, 0)
		require.LessOrEqual(t, p.Quantity, 1000)
		require.GreaterOrEqual(t, p.UnitPrice, 10.0)
		require.LessOrEqual(t, p.UnitPrice, 1000.0)
		require.Equal(t, round2(p.UnitPrice), p.UnitPrice, "price rounded to two decimals")
	}
}

func TestSeedData_BestEffortOnWriteFailures(t *testing.T) {
	products := newFakeProductRepo()
	products.failEvery = 3 // every third product write fails
	orders := &fakeOrderRepo{failEvery: 4}
	h := NewSeedDataHandler(products, orders)

	result, err := h.Handle(context.Background(), SeedDataCommand{NumProducts: 9, NumOrders: 8})
	require.NoError(t, err)

	require.Equal(t, 9, products.addCalls)
	require.Equal(t, 8, orders.addCalls)
	require.Equal(t, 6, result.ProductsSeeded)
	require.Equal(t, 3, result.ProductFailures)
	require.Equal(t, 6, result.OrdersSeeded)
	require.Equal(t, 2, result.OrderFailures)

	// Orders built after failures must still only reference stored products.
	for _, order := range orders.orders {
		for _, item := range order.Items {
			_, ok := products.products[item.ProductID]
			require.True(t, ok)
		}
	}
}

func TestSeedData_NoProductsStored(t *testing.T) {
	products := newFakeProductRepo()
	products.failEvery = 1 // every product write fails
	orders := &fakeOrderRepo{}
	h := NewSeedDataHandler(products, orders)

	result, err := h.Handle(context.Background(), SeedDataCommand{NumProducts: 3, NumOrders: 5})
	require.NoError(t, err)

	require.Equal(t, 3, result.ProductFailures)
	require.Zero(t, orders.addCalls, "no order can be built without stored products")
	require.Equal(t, 5, result.OrderFailures)
}

// The handler is built once and shared by every request, so concurrent
// invocations must not share generator state. Run under -race.
func TestSeedData_ConcurrentInvocations(t *testing.T) {
	products := newFakeProductRepo()
	orders := &fakeOrderRepo{}
	h := NewSeedDataHandler(products, orders)

	const workers = 4
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := h.Handle(context.Background(), SeedDataCommand{NumProducts: 5, NumOrders: 10})
			if err == nil && result.ProductsSeeded != 5 {
				err = errors.New("incomplete seed result")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, workers*5, products.addCalls)
	require.Equal(t, workers*10, orders.addCalls)
}

func TestRound2(t *testing.T) {
	require.Equal(t, 10.56, round2(10.556))
	require.Equal(t, 10.0, round2(10.0))
	require.True(t, math.Abs(round2(0.1+0.2)-0.3) < 0.001)
}
