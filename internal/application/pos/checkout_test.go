package pos_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futmais/futmantos-api/internal/application/pos"
	"github.com/futmais/futmantos-api/internal/application/session"
	"github.com/futmais/futmantos-api/internal/domain/entity"
	"github.com/futmais/futmantos-api/internal/domain/repository"
	"github.com/futmais/futmantos-api/pkg/logger"
)

// ── Fakes de repositorios (memoria, registran escrituras) ─────────────────────

type fakeProductRepo struct {
	products     []*entity.Product
	stockWrites  map[string]int
	statusWrites map[string]entity.StockStatus
}

func (r *fakeProductRepo) Create(*entity.Product) error              { return nil }
func (r *fakeProductRepo) GetByID(string) (*entity.Product, error)   { return nil, nil }
func (r *fakeProductRepo) List() ([]*entity.Product, error)          { return r.products, nil }
func (r *fakeProductRepo) Update(*entity.Product) error              { return nil }
func (r *fakeProductRepo) Delete(string) error                       { return nil }
func (r *fakeProductRepo) UpdateStock(id string, stock int, status entity.StockStatus) error {
	if r.stockWrites == nil {
		r.stockWrites = map[string]int{}
		r.statusWrites = map[string]entity.StockStatus{}
	}
	r.stockWrites[id] = stock
	r.statusWrites[id] = status
	return nil
}

type fakeCustomerRepo struct {
	customers   []*entity.Customer
	spentWrites map[string]decimal.Decimal
}

func (r *fakeCustomerRepo) Create(*entity.Customer) error            { return nil }
func (r *fakeCustomerRepo) GetByID(string) (*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) List() ([]*entity.Customer, error)        { return r.customers, nil }
func (r *fakeCustomerRepo) Update(*entity.Customer) error            { return nil }
func (r *fakeCustomerRepo) Delete(string) error                      { return nil }
func (r *fakeCustomerRepo) UpdateTotalSpent(id string, total decimal.Decimal) error {
	if r.spentWrites == nil {
		r.spentWrites = map[string]decimal.Decimal{}
	}
	r.spentWrites[id] = total
	return nil
}

type fakeOrderRepo struct {
	created []*entity.Order
	items   map[string][]entity.OrderItem
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.created = append(r.created, o)
	return nil
}
func (r *fakeOrderRepo) CreateItem(orderID string, item *entity.OrderItem) error {
	if r.items == nil {
		r.items = map[string][]entity.OrderItem{}
	}
	r.items[orderID] = append(r.items[orderID], *item)
	return nil
}
func (r *fakeOrderRepo) GetByID(string) (*entity.Order, error)              { return nil, nil }
func (r *fakeOrderRepo) List() ([]*entity.Order, error)                     { return nil, nil }
func (r *fakeOrderRepo) UpdateStatus(string, entity.OrderStatus) error      { return nil }

type fakeTransactionRepo struct {
	created []*entity.FinancialTransaction
}

func (r *fakeTransactionRepo) Create(t *entity.FinancialTransaction) error {
	r.created = append(r.created, t)
	return nil
}
func (r *fakeTransactionRepo) List() ([]*entity.FinancialTransaction, error) { return nil, nil }

type fakeSupplierRepo struct{}

func (fakeSupplierRepo) Create(*entity.Supplier) error            { return nil }
func (fakeSupplierRepo) GetByID(string) (*entity.Supplier, error) { return nil, nil }
func (fakeSupplierRepo) List() ([]*entity.Supplier, error)        { return nil, nil }
func (fakeSupplierRepo) Update(*entity.Supplier) error            { return nil }
func (fakeSupplierRepo) Delete(string) error                      { return nil }

type fakeShipmentRepo struct{}

func (fakeShipmentRepo) Create(*entity.Shipment) error            { return nil }
func (fakeShipmentRepo) GetByID(string) (*entity.Shipment, error) { return nil, nil }
func (fakeShipmentRepo) List() ([]*entity.Shipment, error)        { return nil, nil }
func (fakeShipmentRepo) Update(*entity.Shipment) error            { return nil }
func (fakeShipmentRepo) Delete(string) error                      { return nil }

// fakeTxRunner ejecuta el callback con los fakes, o simula un rollback
// devolviendo err sin efecto alguno.
type fakeTxRunner struct {
	customers *fakeCustomerRepo
	orders    *fakeOrderRepo
	products  *fakeProductRepo
	ledger    *fakeTransactionRepo
	err       error
}

func (r *fakeTxRunner) RunCheckout(_ context.Context, fn func(
	repository.CustomerRepository,
	repository.OrderRepository,
	repository.ProductRepository,
	repository.TransactionRepository,
) error) error {
	if r.err != nil {
		return r.err
	}
	return fn(r.customers, r.orders, r.products, r.ledger)
}

// ── Armado del escenario ──────────────────────────────────────────────────────

type checkoutFixture struct {
	state    *session.State
	cart     *pos.Cart
	runner   *fakeTxRunner
	checkout *pos.CheckoutUseCase
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	products := []*entity.Product{
		{ID: "p1", Name: "Camisa Titular", Price: decimal.NewFromInt(200), Cost: decimal.NewFromInt(80), Stock: 12, Status: entity.StockStatusInStock},
		{ID: "p2", Name: "Bola Oficial", Price: decimal.NewFromInt(150), Cost: decimal.NewFromInt(60), Stock: 3, Status: entity.StockStatusLowStock},
	}
	customers := []*entity.Customer{
		{ID: "c1", Name: "João Silva", Phone: "11 99999-0000", TotalSpent: decimal.NewFromInt(500), Status: entity.CustomerStatusActive},
	}

	productRepo := &fakeProductRepo{products: products}
	customerRepo := &fakeCustomerRepo{customers: customers}

	state := session.New()
	require.NoError(t, state.Load(session.Repos{
		Products:     productRepo,
		Customers:    customerRepo,
		Orders:       &fakeOrderRepo{},
		Suppliers:    fakeSupplierRepo{},
		Shipments:    fakeShipmentRepo{},
		Transactions: &fakeTransactionRepo{},
	}), "la carga inicial no debe fallar")

	cart := pos.NewCart(&memStore{}, logger.Nop())
	runner := &fakeTxRunner{
		customers: customerRepo,
		orders:    &fakeOrderRepo{},
		products:  productRepo,
		ledger:    &fakeTransactionRepo{},
	}
	checkout := pos.NewCheckoutUseCase(runner, state, cart, logger.Nop())
	return &checkoutFixture{state: state, cart: cart, runner: runner, checkout: checkout}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCheckout_VentaCompleta(t *testing.T) {
	f := newCheckoutFixture(t)

	p1, _ := f.state.Product("p1")
	p2, _ := f.state.Product("p2")
	f.cart.Add(p1)
	f.cart.Add(p1)
	f.cart.Add(p2) // total: 2×200 + 1×150 = 550

	order, err := f.checkout.Checkout(context.Background(), entity.PaymentPix, "c1")
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.True(t, strings.HasPrefix(order.ID, "#PED-"), "el ID de pedido debe llevar el prefijo #PED-")
	assert.Equal(t, "João Silva", order.CustomerName)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(550)), "total congelado del carrito, fue %s", order.Total)

	// Pedido y líneas persistidos, en el orden del carrito.
	require.Len(t, f.runner.orders.created, 1)
	lines := f.runner.orders.items[order.ID]
	require.Len(t, lines, 2)
	assert.Equal(t, "p1", lines[0].Product.ID, "las líneas se escriben en el orden del carrito")
	assert.Equal(t, "p2", lines[1].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)

	// Asiento de ingreso por el total.
	require.Len(t, f.runner.ledger.created, 1)
	ledger := f.runner.ledger.created[0]
	assert.Equal(t, entity.TransactionIncome, ledger.Type)
	assert.Equal(t, entity.CategorySales, ledger.Category)
	assert.True(t, ledger.Amount.Equal(decimal.NewFromInt(550)))
	assert.Contains(t, ledger.Description, order.ID)
	assert.Contains(t, ledger.Description, "2 itens")

	// Stock decrementado y reclasificado.
	assert.Equal(t, 10, f.runner.products.stockWrites["p1"])
	assert.Equal(t, 2, f.runner.products.stockWrites["p2"])
	assert.Equal(t, entity.StockStatusInStock, f.runner.products.statusWrites["p1"])
	assert.Equal(t, entity.StockStatusLowStock, f.runner.products.statusWrites["p2"])

	// Acumulado del cliente: 500 + 550.
	assert.True(t, f.runner.customers.spentWrites["c1"].Equal(decimal.NewFromInt(1050)))

	// Espejo de sesión actualizado y carrito vacío.
	updated, _ := f.state.Product("p1")
	assert.Equal(t, 10, updated.Stock)
	c, _ := f.state.Customer("c1")
	assert.True(t, c.TotalSpent.Equal(decimal.NewFromInt(1050)))
	assert.Equal(t, 0, f.cart.Len(), "el carrito debe quedar vacío tras el commit")
	assert.Len(t, f.state.Orders(), 1)
	assert.Len(t, f.state.Transactions(), 1)
}

func TestCheckout_ClienteDesconocidoDegradaAMostrador(t *testing.T) {
	f := newCheckoutFixture(t)
	p1, _ := f.state.Product("p1")
	f.cart.Add(p1)

	order, err := f.checkout.Checkout(context.Background(), entity.PaymentCash, "no-existe")
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, pos.WalkInCustomer, order.CustomerName)
	assert.Empty(t, order.CustomerID)
	assert.Empty(t, f.runner.customers.spentWrites, "sin cliente vinculado no hay escritura de gasto")
}

func TestCheckout_DecrementoConPisoEnCero(t *testing.T) {
	f := newCheckoutFixture(t)
	p2, _ := f.state.Product("p2") // stock 3
	for i := 0; i < 5; i++ {
		f.cart.Add(p2)
	}

	order, err := f.checkout.Checkout(context.Background(), entity.PaymentDebit, "")
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, 0, f.runner.products.stockWrites["p2"], "el decremento nunca baja de cero")
	assert.Equal(t, entity.StockStatusOutOfStock, f.runner.products.statusWrites["p2"])
}

func TestCheckout_CarritoVacioEsNoOp(t *testing.T) {
	f := newCheckoutFixture(t)

	order, err := f.checkout.Checkout(context.Background(), entity.PaymentPix, "c1")
	assert.NoError(t, err)
	assert.Nil(t, order, "carrito vacío debe ser no-op silencioso")
	assert.Empty(t, f.runner.orders.created)
	assert.Empty(t, f.runner.ledger.created)
}

func TestCheckout_MedioDePagoInvalido(t *testing.T) {
	f := newCheckoutFixture(t)
	p1, _ := f.state.Product("p1")
	f.cart.Add(p1)

	_, err := f.checkout.Checkout(context.Background(), "Cheque", "c1")
	assert.Error(t, err, "medio de pago desconocido debe rechazarse")
	assert.Equal(t, 1, f.cart.Len(), "el carrito no debe tocarse")
}

func TestCheckout_FalloDeTransaccionNoDejaEfectos(t *testing.T) {
	f := newCheckoutFixture(t)
	f.runner.err = errors.New("conexión perdida")

	p1, _ := f.state.Product("p1")
	f.cart.Add(p1)

	order, err := f.checkout.Checkout(context.Background(), entity.PaymentCredit, "c1")
	require.Error(t, err)
	assert.Nil(t, order)

	// Nada cambió: ni espejo, ni carrito, ni colecciones.
	current, _ := f.state.Product("p1")
	assert.Equal(t, 12, current.Stock, "el stock del espejo debe quedar intacto tras el rollback")
	c, _ := f.state.Customer("c1")
	assert.True(t, c.TotalSpent.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 1, f.cart.Len(), "el carrito debe conservar la venta en curso")
	assert.Empty(t, f.state.Orders())
	assert.Empty(t, f.state.Transactions())
}
