package inventory

import (
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/irbansin/warehouse/internal/inventory/domain"
	"github.com/irbansin/warehouse/internal/inventory/repository"
	"github.com/irbansin/warehouse/internal/inventory/store"
)

// Collections names the backing collections. Both come from the
// environment; nothing is hardcoded to a particular table name.
type Collections struct {
	Inventory string
	Orders    string
}

// ProvideProductRepository provides the traced product repository over a
// Mongo-backed store
func ProvideProductRepository(db *mongo.Database, collections Collections) domain.ProductRepository {
	s := store.NewMongoStore[domain.Product](db.Collection(collections.Inventory))
	return repository.NewProductRepositoryWithTracing(repository.NewStoreProductRepository(s))
}

// ProvideOrderRepository provides the traced order repository over a
// Mongo-backed store
func ProvideOrderRepository(db *mongo.Database, collections Collections) domain.OrderRepository {
	s := store.NewMongoStore[domain.Order](db.Collection(collections.Orders))
	return repository.NewOrderRepositoryWithTracing(repository.NewStoreOrderRepository(s))
}

// RepositorySet groups the repository providers for Wire
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideOrderRepository,
)
