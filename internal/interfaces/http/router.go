package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-console/internal/infrastructure/notify"
)

// RouterDeps dependencias para el router. Los handlers llegan construidos:
// cada uno es dueño de su vista y de su flujo de mutaciones.
type RouterDeps struct {
	Session    *SessionHandler
	Dashboard  *DashboardHandler
	Categories *CategoryHandler
	Products   *ProductHandler
	Suppliers  *SupplierHandler
	Customers  *CustomerHandler
	Users      *UserHandler
	Alerts     *StockAlertHandler
	Reports    *ReportHandler
	Feed       *notify.Feed
}

// Router registra las rutas de la consola.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Sesión
	session := api.Group("/session")
	session.Post("/login", deps.Session.Login)
	session.Post("/logout", deps.Session.Logout)
	session.Get("/", deps.Session.Info)

	// Dashboard
	dash := api.Group("/dashboard")
	dash.Get("/summary", deps.Dashboard.Summary)
	dash.Post("/predict-stock", deps.Dashboard.Predict)

	// Categorías
	categories := api.Group("/categories")
	categories.Get("/", deps.Categories.List)
	categories.Post("/", deps.Categories.Create)
	categories.Put("/:id", deps.Categories.Update)
	categories.Delete("/:id", deps.Categories.Delete)

	// Productos
	products := api.Group("/products")
	products.Get("/", deps.Products.List)
	products.Post("/", deps.Products.Create)
	products.Put("/:id", deps.Products.Update)
	products.Delete("/:id", deps.Products.Delete)

	// Proveedores
	suppliers := api.Group("/suppliers")
	suppliers.Get("/", deps.Suppliers.List)
	suppliers.Post("/", deps.Suppliers.Create)
	suppliers.Put("/:id", deps.Suppliers.Update)
	suppliers.Delete("/:id", deps.Suppliers.Delete)

	// Clientes
	customers := api.Group("/customers")
	customers.Get("/", deps.Customers.List)
	customers.Post("/", deps.Customers.Create)
	customers.Put("/:id", deps.Customers.Update)
	customers.Delete("/:id", deps.Customers.Delete)

	// Usuarios
	users := api.Group("/users")
	users.Get("/", deps.Users.List)
	users.Post("/register", deps.Users.Register)

	// Alertas de stock
	alerts := api.Group("/stock-alerts")
	alerts.Get("/", deps.Alerts.List)
	alerts.Get("/badge", deps.Alerts.Badge)
	alerts.Patch("/:productId/restock", deps.Alerts.Restock)

	// Reportes
	reports := api.Group("/reports")
	reports.Get("/", deps.Reports.Get)
	reports.Get("/export", deps.Reports.Export)

	// Notificaciones recientes (los toasts de la consola)
	api.Get("/notifications", func(c *fiber.Ctx) error {
		return c.JSON(deps.Feed.Recent())
	})
}
