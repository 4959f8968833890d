package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cornerstore-backend/internal/api"
	"cornerstore-backend/internal/applog"
	"cornerstore-backend/internal/config"
	"cornerstore-backend/internal/database"
	"cornerstore-backend/internal/store"
	"cornerstore-backend/internal/telemetry"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := database.Init(cfg); err != nil {
		log.Fatalf("database: %v", err)
	}

	shutdownTracing, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.ServiceName,
		ErrorHandler: api.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(helmet.New())

	// CORS origins come in as a comma separated list
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Use(telemetry.Middleware())

	svc := store.New(database.DB, store.WithStrictProductUpdates(cfg.StrictProductUpdates))
	api.Register(app, svc, database.DB)

	go func() {
		applog.Info(nil, "server_start", map[string]any{"port": cfg.HTTPPort, "driver": cfg.DatabaseDriver})
		if err := app.Listen(":" + cfg.HTTPPort); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		applog.Error(nil, "server_shutdown", err, nil)
	}
	if err := shutdownTracing(ctx); err != nil {
		applog.Error(nil, "tracer_shutdown", err, nil)
	}
	applog.Info(nil, "server_stopped", nil)
}
