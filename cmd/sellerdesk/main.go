package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"sellerdesk/internal/config"
	"sellerdesk/internal/graph"
	applog "sellerdesk/internal/log"
	"sellerdesk/internal/repos"
	"sellerdesk/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Repos & services
	userRepo := repos.NewUserRepo(db)
	clientRepo := repos.NewClientRepo(db)
	productRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	authSvc := services.NewAuthService(userRepo, cfg.Secret, cfg.TokenTTL)
	invSvc := services.NewInventoryService(productRepo)
	resolver := &graph.Resolver{
		Auth:    authSvc,
		Catalog: services.NewCatalogService(productRepo),
		Clients: services.NewClientService(clientRepo),
		Orders:  services.NewOrderService(orderRepo, clientRepo, invSvc),
		Reports: services.NewReportService(orderRepo),
	}

	schema, err := graph.NewSchema(resolver)
	if err != nil {
		log.Fatal(err)
	}
	gh := &graph.Handler{Schema: schema}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong, please try again",
			})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.graphql.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))
	app.Use(graph.AuthMiddleware(authSvc))

	// ---------- Routes ----------
	app.Post("/graphql", graph.LoginLimiter(), gh.Serve)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	log.Fatal(app.Listen(":" + cfg.Port))
}
