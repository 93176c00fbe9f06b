package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfolioapi/docs"
	"portfolioapi/internal/config"
	"portfolioapi/internal/database"
	"portfolioapi/internal/database/migration"
	handlers "portfolioapi/internal/http/handler"
	"portfolioapi/internal/http/middleware"
	"portfolioapi/internal/otel"
	"portfolioapi/internal/repository/postgres"
	"portfolioapi/internal/service"
	"portfolioapi/internal/storage"
)

// @title Portfolio Content API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC
	ctx := context.Background()

	// Tracing first so DB and HTTP instrumentation attach to a real provider
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// PostgreSQL connection with pooling via database/sql
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	files, err := newFileStore(cfg)
	if err != nil {
		log.Fatalf("failed to initialize file storage: %v", err)
	}

	docRepo := postgres.NewDocumentPostgres(db)
	contentRepo := postgres.NewContentPostgres(db)
	docSvc := service.NewDocumentService(files, docRepo)
	contentSvc := service.NewContentService(files, contentRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, db, docSvc, contentSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// newFileStore picks the storage backend from configuration. Local disk is
// the default; MinIO serves deployments with S3-compatible object storage.
func newFileStore(cfg *config.AppConfig) (storage.FileStore, error) {
	if cfg.Storage.Driver == "minio" {
		return storage.NewMinIO(cfg.MinIO)
	}
	return storage.NewLocal(cfg.Storage)
}
