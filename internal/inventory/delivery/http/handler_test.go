package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/irbansin/warehouse/internal/inventory/domain"
	"github.com/irbansin/warehouse/internal/inventory/repository"
	"github.com/irbansin/warehouse/internal/inventory/store"
	"github.com/irbansin/warehouse/internal/inventory/usecase/command"
	"github.com/irbansin/warehouse/internal/inventory/usecase/query"
)

func newTestRouter(t *testing.T) (*mux.Router, *prometheus.Registry) {
	t.Helper()

	products := repository.NewStoreProductRepository(store.NewMemoryStore[domain.Product]())
	orders := repository.NewStoreOrderRepository(store.NewMemoryStore[domain.Order]())
	registry := prometheus.NewRegistry()

	h := NewInventoryHandler(
		command.NewCreateProductHandler(products, nil),
		command.NewUpdateProductHandler(products, nil),
		command.NewDeleteProductHandler(products, nil),
		command.NewCreateOrderHandler(orders, nil),
		command.NewSeedDataHandler(products, orders),
		query.NewGetProductHandler(products),
		query.NewListProductsHandler(products),
		query.NewListOrdersHandler(orders),
		registry,
	)

	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router, registry
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}

func TestGetProduct_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/inventory/product/nonexistent", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	require.Equal(t, "Product not found", body["error"])
}

func TestAddThenGetProduct(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/inventory", map[string]any{
		"productId":   "p-1",
		"name":        "Laptop 4242",
		"category":    "Electronics",
		"quantity":    12,
		"unitPrice":   999.99,
		"warehouseId": "WH001",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	decodeBody(t, rec, &created)
	require.Equal(t, "Product added successfully", created["message"])

	rec = doJSON(t, router, http.MethodGet, "/inventory/product/p-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var product domain.Product
	decodeBody(t, rec, &product)
	require.Equal(t, "p-1", product.ProductID)
	require.Equal(t, "Laptop 4242", product.Name)
	require.Equal(t, 12, product.Quantity)
	require.False(t, product.LastUpdated.IsZero())
}

func TestAddProduct_InvalidBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/inventory", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListProducts_EmptyIsArray(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/inventory", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestUpdateProduct_PartialUpdate(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/inventory", map[string]any{
		"productId": "p-1",
		"name":      "Widget",
		"quantity":  3,
		"unitPrice": 10.0,
		"location":  "Aisle 1-Shelf 2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/inventory/p-1", map[string]any{"quantity": 5})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	decodeBody(t, rec, &body)
	require.Equal(t, "Product updated successfully", body["message"])

	rec = doJSON(t, router, http.MethodGet, "/inventory/product/p-1", nil)
	var product domain.Product
	decodeBody(t, rec, &product)
	require.Equal(t, 5, product.Quantity)
	require.Equal(t, "Widget", product.Name)
	require.Equal(t, "Aisle 1-Shelf 2", product.Location)
}

func TestUpdateProduct_IdentityOnlyRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/inventory/p-1", map[string]any{"productId": "p-1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	require.NotEmpty(t, body["error"])
}

func TestUpdateProduct_UnknownFieldRejected(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/inventory/p-1", map[string]any{"isAdmin": true})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteProduct_Idempotent(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/inventory", map[string]any{
		"productId": "p-1",
		"name":      "Widget",
		"quantity":  1,
		"unitPrice": 1.0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	for i := 0; i < 2; i++ {
		rec = doJSON(t, router, http.MethodDelete, "/inventory/p-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		decodeBody(t, rec, &body)
		require.Equal(t, "Product deleted successfully", body["message"])
	}

	rec = doJSON(t, router, http.MethodDelete, "/inventory/never-existed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUnroutableRequest(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPatch, "/inventory/p-1", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	require.Equal(t, "unroutable request", body["error"])

	rec = doJSON(t, router, http.MethodGet, "/no/such/path", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/orders", map[string]any{
		"customerName":  "Customer 42",
		"customerEmail": "customer42@example.com",
		"items": []map[string]any{
			{"productId": "p-1", "productName": "Widget", "quantity": 2, "unitPrice": 10.10},
			{"productId": "p-2", "productName": "Gadget", "quantity": 1, "unitPrice": 5.55},
		},
		"warehouseId": "WH001",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var order domain.Order
	decodeBody(t, rec, &order)
	require.NotEmpty(t, order.OrderID)
	require.Equal(t, domain.OrderStatusPending, order.Status)
	require.InDelta(t, 25.75, order.TotalAmount, 0.001)

	rec = doJSON(t, router, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []domain.Order
	decodeBody(t, rec, &orders)
	require.Len(t, orders, 1)
	require.Equal(t, order.OrderID, orders[0].OrderID)
}

func TestCreateOrder_RejectsEmptyItems(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/orders", map[string]any{
		"customerName": "Customer 1",
		"items":        []map[string]any{},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSeedEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/seed", map[string]any{
		"numProducts": 3,
		"numOrders":   4,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string                  `json:"message"`
		Result  *command.SeedDataResult `json:"result"`
	}
	decodeBody(t, rec, &body)
	require.Equal(t, "Successfully seeded 3 products and 4 orders", body.Message)
	require.NotNil(t, body.Result)
	require.Equal(t, 3, body.Result.ProductsSeeded)
	require.Equal(t, 4, body.Result.OrdersSeeded)

	rec = doJSON(t, router, http.MethodGet, "/inventory", nil)
	var products []domain.Product
	decodeBody(t, rec, &products)
	require.Len(t, products, 3)

	rec = doJSON(t, router, http.MethodGet, "/orders", nil)
	var orders []domain.Order
	decodeBody(t, rec, &orders)
	require.Len(t, orders, 4)

	for _, order := range orders {
		require.NotEmpty(t, order.Items)
	}
}

func TestRequestMetricsRecorded(t *testing.T) {
	router, registry := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/inventory", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	require.True(t, names["inventory_service_requests_total"])
	require.True(t, names["inventory_service_request_duration_seconds"])
	require.True(t, names["inventory_service_request_duration_summary_seconds"])
	require.True(t, names["inventory_service_total_products"])
}

func TestSeedEndpoint_EmptyBodyUsesDefaults(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/seed", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	decodeBody(t, rec, &body)
	require.Equal(t, "Successfully seeded 50 products and 100 orders", body["message"])
}
