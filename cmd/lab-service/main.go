package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"kriyatec.com/medicare-api/pkg/lab-service/appointments"
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
	flags := server.ParseFlags("lab-service", "5001")
	closer, err := server.InitLogging(flags)
	if err != nil {
		log.Fatal(err)
	}
	if closer != nil {
		defer closer.Close()
	}

	if err := database.Init(); err != nil {
		helper.Logger.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer database.Disconnect(context.Background())
	db := database.SharedDB

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(ctx, db, appointments.Indexes...); err != nil {
		helper.Logger.Warn().Err(err).Msg("index creation failed")
	}
	cancel()

	authRequired := helper.GetenvBool("AUTH_REQUIRED", false)
	if err := helper.CheckJWTSecret(authRequired); err != nil {
		helper.Logger.Fatal().Err(err).Msg("auth config")
	}
	helper.RequireAuth(authRequired)

	var sms appointments.Notifier
	if client := helper.NewSMSClientFromEnv(); client != nil {
		sms = client
	}

	app := server.Create(server.Config{
		AppName:     flags.AppName,
		Description: "MediCare lab API",
		Prefork:     flags.Prod,
		Dashboard:   !flags.Prod,
	})
	info.SetupRoutes(app, flags.AppName, version, database.Ping)
	appointments.SetupRoutes(app, appointments.NewService(appointments.NewRepository(db), sms))

	helper.Logger.Info().Str("addr", flags.Addr()).Bool("sms", sms != nil).Msg("starting")
	if err := server.Listen(app, flags.Addr()); err != nil {
		helper.Logger.Fatal().Err(err).Msg("server stopped")
	}
}
