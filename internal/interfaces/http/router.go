package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/futmais/futmantos-api/internal/application/finance"
	"github.com/futmais/futmantos-api/internal/application/pos"
	"github.com/futmais/futmantos-api/internal/application/session"
	"github.com/futmais/futmantos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CustomerUC *usecase.CustomerUseCase
	SupplierUC *usecase.SupplierUseCase
	ShipmentUC *usecase.ShipmentUseCase
	OrderUC    *usecase.OrderUseCase
	FinanceUC  *finance.UseCase
	Cart       *pos.Cart
	CheckoutUC *pos.CheckoutUseCase
	State      *session.State
	Receipts   ReceiptGenerator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/stock", productHandler.UpdateStock)
	products.Delete("/:id", productHandler.Delete)

	// Clientes
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/export", customerHandler.Export)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Proveedores
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/export", supplierHandler.Export)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Envíos
	shipments := api.Group("/shipments")
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC)
	shipments.Post("/", shipmentHandler.Create)
	shipments.Get("/", shipmentHandler.List)
	shipments.Get("/export", shipmentHandler.Export)
	shipments.Get("/:id", shipmentHandler.GetByID)
	shipments.Put("/:id", shipmentHandler.Update)
	shipments.Delete("/:id", shipmentHandler.Delete)

	// Pedidos
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.Receipts)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Get("/:id/receipt", orderHandler.Receipt)

	// Punto de venta
	posGroup := api.Group("/pos")
	posHandler := NewPOSHandler(deps.Cart, deps.CheckoutUC, deps.State)
	posGroup.Get("/cart", posHandler.GetCart)
	posGroup.Delete("/cart", posHandler.ClearCart)
	posGroup.Post("/cart/items", posHandler.AddItem)
	posGroup.Delete("/cart/items/:productId", posHandler.RemoveItem)
	posGroup.Patch("/cart/items/:productId", posHandler.ChangeQuantity)
	posGroup.Post("/checkout", posHandler.Checkout)

	// Financiero
	financial := api.Group("/financial")
	financialHandler := NewFinancialHandler(deps.FinanceUC)
	financial.Get("/summary", financialHandler.Summary)
	financial.Get("/chart", financialHandler.Chart)
	financial.Get("/transactions", financialHandler.ListTransactions)
	financial.Post("/transactions", financialHandler.CreateTransaction)
	financial.Get("/transactions/export", financialHandler.Export)
}
