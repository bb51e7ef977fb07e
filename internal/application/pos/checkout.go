package pos

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/futmais/futmantos-api/internal/application/session"
	"github.com/futmais/futmantos-api/internal/domain"
	"github.com/futmais/futmantos-api/internal/domain/entity"
	"github.com/futmais/futmantos-api/internal/domain/repository"
	"github.com/futmais/futmantos-api/pkg/logger"
)

// WalkInCustomer etiqueta para ventas de mostrador sin cliente vinculado.
const WalkInCustomer = "Cliente Avulso"

// CheckoutUseCase convierte el carrito en un pedido persistido con sus
// efectos: acumulado de gasto del cliente, asiento de ingreso en el libro y
// decremento de stock por línea.
//
// Toda la secuencia de escrituras corre dentro de una sola transacción del
// almacén (TxRunner): un fallo en cualquier paso revierte el conjunto, de
// modo que nunca queda un pedido sin asiento ni un decremento huérfano. El
// espejo de sesión y el carrito se tocan únicamente tras el commit.
type CheckoutUseCase struct {
	txRunner TxRunner
	state    *session.State
	cart     *Cart
	log      *logger.Logger

	// inyectables para tests deterministas
	now      func() time.Time
	orderID  func() string
	ledgerID func() string
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(txRunner TxRunner, state *session.State, cart *Cart, log *logger.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		txRunner: txRunner,
		state:    state,
		cart:     cart,
		log:      log,
		now:      time.Now,
		orderID:  NewOrderID,
		ledgerID: NewTransactionID,
	}
}

// NewOrderID genera un identificador legible de pedido, ej: #PED-0042.
func NewOrderID() string {
	return fmt.Sprintf("#PED-%04d", rand.Intn(10000))
}

// NewTransactionID genera un identificador legible de asiento, ej: TR-00317.
func NewTransactionID() string {
	return fmt.Sprintf("TR-%05d", rand.Intn(100000))
}

// Checkout cierra la venta en curso. Con el carrito vacío es un no-op
// silencioso (nil, nil): no hay ninguna escritura al almacén. customerID
// vacío o desconocido atribuye el pedido al cliente de mostrador.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, method entity.PaymentMethod, customerID string) (*entity.Order, error) {
	if !entity.ValidPaymentMethod(method) {
		return nil, domain.ErrInvalidInput
	}

	items := uc.cart.Items()
	if len(items) == 0 {
		return nil, nil
	}
	total := uc.cart.Total()

	// 1) Resolver cliente. ID dado pero inexistente degrada a mostrador.
	customerName := WalkInCustomer
	var customer *entity.Customer
	var newTotalSpent decimal.Decimal
	if customerID != "" {
		if c, ok := uc.state.Customer(customerID); ok {
			customerName = c.Name
			newTotalSpent = c.TotalSpent.Add(total)
			customer = &c
		}
	}

	now := uc.now()
	date := entity.FormatDate(now)

	// 2) Construir el pedido: total congelado al valor del carrito y líneas
	// copiadas como valores, no referencias al catálogo vivo.
	order := &entity.Order{
		ID:            uc.orderID(),
		CustomerName:  customerName,
		Date:          date,
		Total:         total,
		Status:        entity.OrderStatusProcessing,
		PaymentMethod: method,
		Items:         make([]entity.OrderItem, 0, len(items)),
	}
	if customer != nil {
		order.CustomerID = customer.ID
	}
	for _, item := range items {
		order.Items = append(order.Items, entity.OrderItem{
			Product:  item.Product,
			Quantity: item.Quantity,
		})
	}

	// 3) Asiento de ingreso por el total de la venta.
	ledgerEntry := &entity.FinancialTransaction{
		ID:          uc.ledgerID(),
		Date:        date,
		Description: fmt.Sprintf("Venda %s - %d itens", order.ID, len(items)),
		Category:    entity.CategorySales,
		Type:        entity.TransactionIncome,
		Amount:      total,
		Status:      entity.TransactionCompleted,
	}

	// 4) Decrementos de stock por línea, calculados sobre el stock actual del
	// espejo de sesión y con piso en 0. Líneas cuyo producto ya no existe en
	// el catálogo no generan decremento.
	type stockChange struct {
		productID string
		stock     int
		status    entity.StockStatus
	}
	changes := make([]stockChange, 0, len(items))
	for _, item := range items {
		current, ok := uc.state.Product(item.Product.ID)
		if !ok {
			continue
		}
		newStock := current.Stock - item.Quantity
		if newStock < 0 {
			newStock = 0
		}
		changes = append(changes, stockChange{
			productID: item.Product.ID,
			stock:     newStock,
			status:    entity.StockStatusFor(newStock),
		})
	}

	// 5) Secuencia de escrituras en una sola transacción, en el orden
	// cliente → pedido → asiento → stock.
	err := uc.txRunner.RunCheckout(ctx, func(
		customerRepo repository.CustomerRepository,
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
	) error {
		if customer != nil {
			if err := customerRepo.UpdateTotalSpent(customer.ID, newTotalSpent); err != nil {
				return err
			}
		}
		if err := orderRepo.Create(order); err != nil {
			return err
		}
		for i := range order.Items {
			if err := orderRepo.CreateItem(order.ID, &order.Items[i]); err != nil {
				return err
			}
		}
		if err := txRepo.Create(ledgerEntry); err != nil {
			return err
		}
		for _, ch := range changes {
			if err := productRepo.UpdateStock(ch.productID, ch.stock, ch.status); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// Nada quedó escrito; el carrito y el espejo siguen intactos.
		return nil, fmt.Errorf("checkout: %w", err)
	}

	// 6) Commit confirmado: actualizar el espejo y vaciar el carrito.
	if customer != nil {
		uc.state.ApplyTotalSpent(customer.ID, newTotalSpent)
	}
	uc.state.ApplyOrderAdded(*order)
	uc.state.ApplyTransactionAdded(*ledgerEntry)
	for _, ch := range changes {
		uc.state.ApplyStockChanged(ch.productID, ch.stock, ch.status)
	}
	uc.cart.Clear()

	uc.log.Info().
		Str("order_id", order.ID).
		Str("customer", customerName).
		Str("total", total.StringFixed(2)).
		Msg("venta cerrada")

	return order, nil
}
