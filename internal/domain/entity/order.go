package entity

import "github.com/shopspring/decimal"

// OrderStatus estado del pedido.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// ValidOrderStatus indica si el valor es un estado de pedido conocido.
func ValidOrderStatus(s OrderStatus) bool {
	return s == OrderStatusProcessing || s == OrderStatusDelivered || s == OrderStatusCancelled
}

// PaymentMethod medio de pago aceptado en el punto de venta.
type PaymentMethod string

const (
	PaymentPix    PaymentMethod = "Pix"
	PaymentCredit PaymentMethod = "Credit"
	PaymentDebit  PaymentMethod = "Debit"
	PaymentCash   PaymentMethod = "Cash"
)

// ValidPaymentMethod indica si el medio de pago es aceptado.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentPix, PaymentCredit, PaymentDebit, PaymentCash:
		return true
	}
	return false
}

// OrderItem línea histórica de un pedido: copia inmutable del producto
// tomada al momento de la venta, no una referencia al registro vivo del
// catálogo. Cambios de precio posteriores no alteran pedidos históricos.
type OrderItem struct {
	Product  Product
	Quantity int
}

// Subtotal precio unitario al momento de la venta por la cantidad.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order pedido persistido, creado atómicamente por el checkout.
// Inmutable tras la creación salvo transiciones de Status.
type Order struct {
	ID            string // identificador legible tipo secuencia, ej: #PED-0042
	CustomerID    string // vacío en ventas de mostrador
	CustomerName  string
	Date          string // dd/mm/yyyy
	Total         decimal.Decimal
	Status        OrderStatus
	PaymentMethod PaymentMethod
	Items         []OrderItem
}
