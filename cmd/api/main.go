package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/inventory-command/docs"
	"github.com/jhoicas/inventory-command/internal/application/inventory"
	"github.com/jhoicas/inventory-command/internal/application/session"
	"github.com/jhoicas/inventory-command/internal/domain/projection"
	"github.com/jhoicas/inventory-command/internal/domain/repository"
	"github.com/jhoicas/inventory-command/internal/infrastructure/cache"
	"github.com/jhoicas/inventory-command/internal/infrastructure/csvsource"
	infrapdf "github.com/jhoicas/inventory-command/internal/infrastructure/pdf"
	"github.com/jhoicas/inventory-command/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-command/internal/infrastructure/sheets"
	"github.com/jhoicas/inventory-command/internal/infrastructure/spreadsheetml"
	httpRouter "github.com/jhoicas/inventory-command/internal/interfaces/http"
	"github.com/jhoicas/inventory-command/pkg/config"
	"github.com/jhoicas/inventory-command/pkg/logger"
)

// @title                       Inventory Command API
// @version                     1.0
// @description                 Proyección diaria de stock por SKU con bandas RED/AMBER/GREEN.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("source", cfg.Source.Kind).
		Str("cache", cfg.Cache.Kind).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Fuente de las tres tablas
	var source repository.SourceRepository
	switch cfg.Source.Kind {
	case config.SourceSheets:
		source = sheets.NewSource(cfg.Source.SheetsBaseURL, cfg.Source.SpreadsheetID, cfg.Source.Timeout)
	case config.SourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		source = postgres.NewSourceRepository(pool)
	default:
		source = csvsource.NewSource(cfg.Source.CSVDir, cfg.Source.CSVCharset)
	}

	// Caché de tablas crudas
	var tableCache interface {
		repository.TableCache
		repository.StatsReporter
	}
	switch cfg.Cache.Kind {
	case config.CacheRedis:
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		tableCache = cache.NewRedis(rdb, cfg.Cache.Key, cfg.Cache.TTL)
	default:
		tableCache = cache.NewMemory(cfg.Cache.TTL)
	}

	loader := inventory.NewTableLoader(source, tableCache, log)
	projectionUC := inventory.NewProjectionUseCase(loader, inventory.ProjectionConfig{
		DefaultDays: cfg.Projection.DefaultDays,
		MaxDays:     cfg.Projection.MaxDays,
		Workers:     cfg.Projection.Workers,
		SummaryKey:  projection.ParseSummaryKey(cfg.Projection.SummaryKey),
	})
	drillDownUC := inventory.NewDrillDownUseCase(projectionUC, loader)
	reportUC := inventory.NewReportUseCase(projectionUC, infrapdf.NewMarotoReportGenerator(), spreadsheetml.NewExporter(), cfg.App.Name)

	sessionUC, err := session.NewUseCase(session.Config{
		PasswordHash: cfg.Auth.PasswordHash,
		Password:     cfg.Auth.Password,
		Secret:       cfg.JWT.Secret,
		ExpMinutes:   cfg.JWT.Expiration,
		Issuer:       cfg.JWT.Issuer,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("configuración de sesión")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventory Command API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC:    sessionUC,
		ProjectionUC: projectionUC,
		DrillDownUC:  drillDownUC,
		ReportUC:     reportUC,
		Loader:       loader,
		CacheStats:   tableCache,
		AppName:      cfg.App.Name,
	})

	// Precarga: si la fuente no responde se sigue arrancando; las rutas devuelven 502 hasta que responda.
	if _, err := loader.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("precarga de tablas")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
