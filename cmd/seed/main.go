package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/irbansin/warehouse/internal/inventory"
	"github.com/irbansin/warehouse/internal/inventory/usecase/command"
	"github.com/irbansin/warehouse/pkg/database"
	"github.com/irbansin/warehouse/pkg/logger"
)

// Seeds the inventory and orders collections with synthetic sample data.
// Seeding is best-effort: individual write failures are counted, not
// fatal; the run fails only when nothing could be written at all.
func main() {
	numProducts := flag.Int("products", command.DefaultNumProducts, "number of products to generate")
	numOrders := flag.Int("orders", command.DefaultNumOrders, "number of orders to generate")
	flag.Parse()

	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	logger.Init("seed", getEnv("ENVIRONMENT", "development") == "development")
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	db, err := database.NewMongoConnection(database.Config{
		URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Database: getEnv("MONGO_DB", "warehouse"),
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = database.Disconnect(ctx, db)
	}()

	collections := inventory.Collections{
		Inventory: getEnv("INVENTORY_TABLE", "inventory"),
		Orders:    getEnv("ORDERS_TABLE", "orders"),
	}

	products := inventory.ProvideProductRepository(db, collections)
	orders := inventory.ProvideOrderRepository(db, collections)
	seeder := command.NewSeedDataHandler(products, orders)

	result, err := seeder.Handle(context.Background(), command.SeedDataCommand{
		NumProducts: *numProducts,
		NumOrders:   *numOrders,
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Seeding failed")
	}

	logger.Logger.Info().
		Int("products_seeded", result.ProductsSeeded).
		Int("orders_seeded", result.OrdersSeeded).
		Int("product_failures", result.ProductFailures).
		Int("order_failures", result.OrderFailures).
		Msg("Seeding complete")

	if result.ProductsSeeded == 0 && result.OrdersSeeded == 0 {
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
