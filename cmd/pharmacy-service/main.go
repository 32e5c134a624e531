package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"kriyatec.com/medicare-api/pkg/pharmacy-service/authentication"
	"kriyatec.com/medicare-api/pkg/pharmacy-service/cart"
	"kriyatec.com/medicare-api/pkg/pharmacy-service/clients"
	"kriyatec.com/medicare-api/pkg/pharmacy-service/expenses"
	"kriyatec.com/medicare-api/pkg/pharmacy-service/inventory"
	"kriyatec.com/medicare-api/pkg/pharmacy-service/invoices"
	"kriyatec.com/medicare-api/pkg/pharmacy-service/payments"
	"kriyatec.com/medicare-api/pkg/pharmacy-service/requests"
	"kriyatec.com/medicare-api/pkg/shared/database"
	"kriyatec.com/medicare-api/pkg/shared/helper"
	"kriyatec.com/medicare-api/pkg/shared/info"
	"kriyatec.com/medicare-api/server"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}
	flags := server.ParseFlags("pharmacy-service", "5000")
	closer, err := server.InitLogging(flags)
	if err != nil {
		log.Fatal(err)
	}
	if closer != nil {
		defer closer.Close()
	}

	//By Default try to connect shared db
	if err := database.Init(); err != nil {
		helper.Logger.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer database.Disconnect(context.Background())
	db := database.SharedDB

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	var specs []database.IndexSpec
	for _, s := range [][]database.IndexSpec{
		clients.Indexes, inventory.Indexes, requests.Indexes, invoices.Indexes, expenses.Indexes,
		cart.Indexes, payments.Indexes, authentication.Indexes,
	} {
		specs = append(specs, s...)
	}
	if err := database.EnsureIndexes(ctx, db, specs...); err != nil {
		helper.Logger.Warn().Err(err).Msg("index creation failed")
	}
	cancel()

	authRequired := helper.GetenvBool("AUTH_REQUIRED", false)
	if err := helper.CheckJWTSecret(authRequired); err != nil {
		helper.Logger.Fatal().Err(err).Msg("auth config")
	}
	helper.RequireAuth(authRequired)

	var images inventory.ImageStore
	var docs invoices.DocumentStore
	if helper.GetenvStr("S3_API_KEY", "") != "" {
		store, err := helper.NewS3StoreFromEnv()
		if err != nil {
			helper.Logger.Warn().Err(err).Msg("s3 disabled")
		} else {
			images, docs = store, store
		}
	}

	seq := database.NewSequence(db)
	inventoryService := inventory.NewService(inventory.NewRepository(db), images)
	expenseService := expenses.NewService(expenses.NewRepository(db))
	cartService := cart.NewService(cart.NewRepository(db), inventoryService)

	paymentConfig := payments.ConfigFromEnv()
	gateway, err := payments.NewGateway(paymentConfig)
	if err != nil {
		helper.Logger.Fatal().Err(err).Msg("payment gateway")
	}

	// Server initialization
	app := server.Create(server.Config{
		AppName:     flags.AppName,
		Description: "MediCare pharmacy API",
		Prefork:     flags.Prod,
		Dashboard:   !flags.Prod,
	})
	info.SetupRoutes(app, flags.AppName, version, database.Ping)
	authentication.SetupRoutes(app, authentication.NewService(authentication.NewRepository(db)), helper.DefaultRateLimiter())

	clients.SetupRoutes(app, clients.NewService(clients.NewRepository(db)))
	inventory.SetupRoutes(app, inventoryService)
	requests.SetupRoutes(app, requests.NewService(requests.NewRepository(db), seq))
	invoices.SetupRoutes(app, invoices.NewService(invoices.NewRepository(db), seq, docs))
	expenses.SetupRoutes(app, expenseService)
	cart.SetupRoutes(app, cartService)
	payments.SetupRoutes(app, payments.NewService(payments.NewRepository(db), gateway, paymentConfig, expenseService, cartService))

	helper.Logger.Info().Str("addr", flags.Addr()).Str("gateway", gateway.Name()).Msg("starting")
	if err := server.Listen(app, flags.Addr()); err != nil {
		helper.Logger.Fatal().Err(err).Msg("server stopped")
	}
}
