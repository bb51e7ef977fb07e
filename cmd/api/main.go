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

	"github.com/futmais/futmantos-api/internal/application/finance"
	"github.com/futmais/futmantos-api/internal/application/pos"
	"github.com/futmais/futmantos-api/internal/application/session"
	"github.com/futmais/futmantos-api/internal/application/usecase"
	"github.com/futmais/futmantos-api/internal/infrastructure/cartfile"
	infrapdf "github.com/futmais/futmantos-api/internal/infrastructure/pdf"
	"github.com/futmais/futmantos-api/internal/infrastructure/postgres"
	httpRouter "github.com/futmais/futmantos-api/internal/interfaces/http"
	"github.com/futmais/futmantos-api/pkg/config"
	"github.com/futmais/futmantos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Espejo de sesión: se carga completo una vez al arranque.
	state := session.New()
	if err := state.Load(session.Repos{
		Products:     productRepo,
		Customers:    customerRepo,
		Orders:       orderRepo,
		Suppliers:    supplierRepo,
		Shipments:    shipmentRepo,
		Transactions: transactionRepo,
	}); err != nil {
		log.Fatal().Err(err).Msg("carga inicial del estado")
	}

	// Carrito: snapshot local que sobrevive reinicios de la terminal.
	cartStore := cartfile.NewStore(cfg.POS.CartFile)
	cart := pos.NewCart(cartStore, log)

	productUC := usecase.NewProductUseCase(productRepo, txRunner, state, log)
	customerUC := usecase.NewCustomerUseCase(customerRepo, state, log)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, state, log)
	shipmentUC := usecase.NewShipmentUseCase(shipmentRepo, state, log)
	orderUC := usecase.NewOrderUseCase(orderRepo, state, log)
	checkoutUC := pos.NewCheckoutUseCase(txRunner, state, cart, log)
	financeUC := finance.NewUseCase(transactionRepo, state, log)
	receipts := infrapdf.NewReceiptGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FutMantos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		CustomerUC: customerUC,
		SupplierUC: supplierUC,
		ShipmentUC: shipmentUC,
		OrderUC:    orderUC,
		FinanceUC:  financeUC,
		Cart:       cart,
		CheckoutUC: checkoutUC,
		State:      state,
		Receipts:   receipts,
	})

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
