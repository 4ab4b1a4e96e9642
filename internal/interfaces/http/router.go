package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-command/internal/application/inventory"
	"github.com/jhoicas/inventory-command/internal/application/session"
	"github.com/jhoicas/inventory-command/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC    *session.UseCase
	ProjectionUC *inventory.ProjectionUseCase
	DrillDownUC  *inventory.DrillDownUseCase
	ReportUC     *inventory.ReportUseCase
	Loader       *inventory.TableLoader
	CacheStats   repository.StatsReporter
	AppName      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	dataHandler := NewDataHandler(deps.Loader, deps.CacheStats, deps.AppName)
	app.Get("/health", dataHandler.Health)

	api := app.Group("/api")

	// Sesión (público)
	sessionHandler := NewSessionHandler(deps.SessionUC)
	api.Post("/session", sessionHandler.Open)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.SessionUC))

	projection := protected.Group("/projection")
	projectionHandler := NewProjectionHandler(deps.ProjectionUC, deps.ReportUC)
	projection.Get("/", projectionHandler.Project)
	projection.Get("/summary", projectionHandler.Summary)
	projection.Get("/board", projectionHandler.Board)
	projection.Get("/months", projectionHandler.Months)
	projection.Get("/matrix", projectionHandler.Matrix)
	projection.Get("/report.pdf", projectionHandler.ReportPDF)
	projection.Get("/export.xml", projectionHandler.ExportXML)

	drillHandler := NewDrillDownHandler(deps.DrillDownUC)
	protected.Get("/items/:sku_id", drillHandler.Item)
	protected.Get("/purchase-orders", drillHandler.PurchaseOrders)
	protected.Get("/purchase-orders/:po_number", drillHandler.PurchaseOrder)
	protected.Get("/orders", drillHandler.Orders)
	protected.Get("/orders/:order_number", drillHandler.Order)

	protected.Post("/data/refresh", dataHandler.Refresh)
}
