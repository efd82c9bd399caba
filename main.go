package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salesdesk/cache"
	"salesdesk/condb"
	"salesdesk/config"
	"salesdesk/events"
	"salesdesk/routes"
	"salesdesk/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	utils.SecretKey = cfg.JWTSecret

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := condb.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if cfg.RedisAddr != "" {
		rdb := cache.Init(cfg.RedisAddr)
		defer rdb.Close()
	}

	if len(cfg.KafkaBrokers) > 0 {
		prod := events.NewProducer(cfg.KafkaBrokers, events.TopicBillCreated, 1024)
		prod.Start(ctx)
		events.Default = prod
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Set-Cookie",
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(app)

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	_ = app.ShutdownWithTimeout(5 * time.Second)
	if events.Default != nil {
		events.Default.Close() // stop intake, flush buffered events
		events.Default.WaitClosed()
	}
}
