//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"

	httpDelivery "github.com/irbansin/warehouse/internal/inventory/delivery/http"
	"github.com/irbansin/warehouse/internal/inventory/usecase/command"
	"github.com/irbansin/warehouse/internal/inventory/usecase/query"
	"github.com/irbansin/warehouse/kafka"
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *mongo.Database, collections Collections, publisher *kafka.Publisher, registerer prometheus.Registerer) (*httpDelivery.InventoryHandler, error) {
	wire.Build(
		RepositorySet,
		command.NewCreateProductHandler,
		command.NewUpdateProductHandler,
		command.NewDeleteProductHandler,
		command.NewCreateOrderHandler,
		command.NewSeedDataHandler,
		query.NewGetProductHandler,
		query.NewListProductsHandler,
		query.NewListOrdersHandler,
		httpDelivery.NewInventoryHandler,
	)
	return nil, nil
}
