package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/irbansin/warehouse/internal/inventory/domain"
	"github.com/irbansin/warehouse/internal/inventory/store"
	"github.com/irbansin/warehouse/internal/inventory/usecase/command"
	"github.com/irbansin/warehouse/internal/inventory/usecase/query"
	"github.com/irbansin/warehouse/pkg/logger"
)

// InventoryHandler handles HTTP requests for the inventory API using the
// CQRS pattern
type InventoryHandler struct {
	// Command handlers
	createHandler      *command.CreateProductHandler
	updateHandler      *command.UpdateProductHandler
	deleteHandler      *command.DeleteProductHandler
	createOrderHandler *command.CreateOrderHandler
	seedHandler        *command.SeedDataHandler

	// Query handlers
	getProductHandler *query.GetProductHandler
	listHandler       *query.ListProductsHandler
	listOrdersHandler *query.ListOrdersHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	latencySummary *prometheus.SummaryVec
	totalProducts  prometheus.Gauge
}

// NewInventoryHandler creates a new inventory handler. Metrics register
// against the given registerer so tests can use an isolated registry.
func NewInventoryHandler(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	createOrderHandler *command.CreateOrderHandler,
	seedHandler *command.SeedDataHandler,
	getProductHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
	listOrdersHandler *query.ListOrdersHandler,
	registerer prometheus.Registerer,
) *InventoryHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_service_requests_total",
			Help: "Total number of requests to the inventory service",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "inventory_service_request_duration_seconds",
			Help:    "Duration of inventory service requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	latencySummary := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "inventory_service_request_duration_summary_seconds",
			Help:       "Summary of inventory service request durations in seconds",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"method", "endpoint"},
	)

	totalProducts := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "inventory_service_total_products",
			Help: "Total number of products in the system",
		},
	)

	registerer.MustRegister(requestCounter)
	registerer.MustRegister(requestLatency)
	registerer.MustRegister(latencySummary)
	registerer.MustRegister(totalProducts)

	return &InventoryHandler{
		createHandler:      createHandler,
		updateHandler:      updateHandler,
		deleteHandler:      deleteHandler,
		createOrderHandler: createOrderHandler,
		seedHandler:        seedHandler,
		getProductHandler:  getProductHandler,
		listHandler:        listHandler,
		listOrdersHandler:  listOrdersHandler,
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
		latencySummary:     latencySummary,
		totalProducts:      totalProducts,
	}
}

type messageResponse struct {
	Message string                  `json:"message"`
	Result  *command.SeedDataResult `json:"result,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *InventoryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.latencySummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// RegisterRoutes registers the inventory API routes. Requests matching no
// route or method respond 400 rather than falling through silently.
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/inventory", h.metricsMiddleware("/inventory", h.ListProducts)).Methods("GET")
	router.HandleFunc("/inventory", h.metricsMiddleware("/inventory", h.AddProduct)).Methods("POST")
	router.HandleFunc("/inventory/product/{productId}", h.metricsMiddleware("/inventory/product/{productId}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/inventory/{productId}", h.metricsMiddleware("/inventory/{productId}", h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/inventory/{productId}", h.metricsMiddleware("/inventory/{productId}", h.DeleteProduct)).Methods("DELETE")
	router.HandleFunc("/orders", h.metricsMiddleware("/orders", h.ListOrders)).Methods("GET")
	router.HandleFunc("/orders", h.metricsMiddleware("/orders", h.CreateOrder)).Methods("POST")
	router.HandleFunc("/seed", h.metricsMiddleware("/seed", h.SeedData)).Methods("POST")

	router.NotFoundHandler = http.HandlerFunc(h.unroutable)
	router.MethodNotAllowedHandler = http.HandlerFunc(h.unroutable)
}

func (h *InventoryHandler) unroutable(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: "unroutable request"})
}

// ListProducts handles GET /inventory
func (h *InventoryHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.listHandler.Handle(r.Context(), query.ListProductsQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	h.totalProducts.Set(float64(len(products)))
	respondJSON(w, http.StatusOK, products)
}

// GetProduct handles GET /inventory/product/{productId}
func (h *InventoryHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	product, err := h.getProductHandler.Handle(r.Context(), query.GetProductQuery{ProductID: vars["productId"]})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, errorResponse{Error: "Product not found"})
			return
		}
		logger.Error(r.Context()).Err(err).Str("product_id", vars["productId"]).Msg("Failed to get product")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// AddProduct handles POST /inventory
func (h *InventoryHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID   string  `json:"productId"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
		Quantity    int     `json:"quantity"`
		UnitPrice   float64 `json:"unitPrice"`
		WarehouseID string  `json:"warehouseId"`
		Location    string  `json:"location"`
		SKU         string  `json:"sku"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	cmd := command.CreateProductCommand{
		ProductID:   req.ProductID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		WarehouseID: req.WarehouseID,
		Location:    req.Location,
		SKU:         req.SKU,
	}

	if _, err := h.createHandler.Handle(r.Context(), cmd); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to add product")
		respondJSON(w, statusForError(err, http.StatusBadRequest), errorResponse{Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, messageResponse{Message: "Product added successfully"})
}

// UpdateProduct handles PUT /inventory/{productId}
func (h *InventoryHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	cmd := command.UpdateProductCommand{
		ProductID: vars["productId"],
		Fields:    fields,
	}

	if err := h.updateHandler.Handle(r.Context(), cmd); err != nil {
		logger.Error(r.Context()).Err(err).Str("product_id", cmd.ProductID).Msg("Failed to update product")
		respondJSON(w, statusForError(err, http.StatusBadRequest), errorResponse{Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "Product updated successfully"})
}

// DeleteProduct handles DELETE /inventory/{productId}
func (h *InventoryHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cmd := command.DeleteProductCommand{ProductID: vars["productId"]}
	if err := h.deleteHandler.Handle(r.Context(), cmd); err != nil {
		logger.Error(r.Context()).Err(err).Str("product_id", cmd.ProductID).Msg("Failed to delete product")
		respondJSON(w, statusForError(err, http.StatusInternalServerError), errorResponse{Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{Message: "Product deleted successfully"})
}

// CreateOrder handles POST /orders
func (h *InventoryHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID         string                 `json:"orderId"`
		CustomerName    string                 `json:"customerName"`
		CustomerEmail   string                 `json:"customerEmail"`
		ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
		Items           []domain.OrderItem     `json:"items"`
		Status          string                 `json:"status"`
		TrackingNumber  string                 `json:"trackingNumber"`
		Notes           string                 `json:"notes"`
		WarehouseID     string                 `json:"warehouseId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	cmd := command.CreateOrderCommand{
		OrderID:         req.OrderID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
		Items:           req.Items,
		Status:          req.Status,
		TrackingNumber:  req.TrackingNumber,
		Notes:           req.Notes,
		WarehouseID:     req.WarehouseID,
	}

	order, err := h.createOrderHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to create order")
		respondJSON(w, statusForError(err, http.StatusBadRequest), errorResponse{Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

// ListOrders handles GET /orders
func (h *InventoryHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.listOrdersHandler.Handle(r.Context(), query.ListOrdersQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list orders")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// SeedData handles POST /seed. The body is optional; omitted counts fall
// back to the defaults.
func (h *InventoryHandler) SeedData(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NumProducts int `json:"numProducts"`
		NumOrders   int `json:"numOrders"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	cmd := command.SeedDataCommand{
		NumProducts: req.NumProducts,
		NumOrders:   req.NumOrders,
	}
	if cmd.NumProducts <= 0 {
		cmd.NumProducts = command.DefaultNumProducts
	}
	if cmd.NumOrders <= 0 {
		cmd.NumOrders = command.DefaultNumOrders
	}

	result, err := h.seedHandler.Handle(r.Context(), cmd)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to seed data")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Successfully seeded %d products and %d orders", cmd.NumProducts, cmd.NumOrders),
		Result:  result,
	})
}

// RegisterHealthCheck registers the health check endpoint
func (h *InventoryHandler) RegisterHealthCheck(router *mux.Router, db *mongo.Database) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Client().Ping(r.Context(), nil); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "Database unavailable"})
			return
		}
		respondJSON(w, http.StatusOK, messageResponse{Message: "Inventory service is healthy"})
	}).Methods("GET")
}

// statusForError maps the error taxonomy onto HTTP status codes. Errors
// outside the taxonomy use the given fallback.
func statusForError(err error, fallback int) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrEmptyUpdate), errors.Is(err, store.ErrUnknownField):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrUnavailable):
		return http.StatusInternalServerError
	default:
		return fallback
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
