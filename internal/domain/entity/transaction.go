package entity

import "github.com/shopspring/decimal"

// TransactionType sentido del movimiento en el libro financiero.
type TransactionType string

const (
	TransactionIncome  TransactionType = "Income"
	TransactionExpense TransactionType = "Expense"
)

// TransactionCategory categoría del movimiento.
type TransactionCategory string

const (
	CategorySales       TransactionCategory = "Vendas"
	CategorySuppliers   TransactionCategory = "Fornecedores"
	CategoryMarketing   TransactionCategory = "Marketing"
	CategoryOperational TransactionCategory = "Operacional"
	CategoryOther       TransactionCategory = "Outros"
)

// ValidTransactionCategory indica si la categoría pertenece al libro.
func ValidTransactionCategory(c TransactionCategory) bool {
	switch c {
	case CategorySales, CategorySuppliers, CategoryMarketing, CategoryOperational, CategoryOther:
		return true
	}
	return false
}

// TransactionStatus estado de liquidación del movimiento.
type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "Concluído"
	TransactionPending   TransactionStatus = "Pendente"
	TransactionPaid      TransactionStatus = "Pago"
	TransactionCancelled TransactionStatus = "Cancelado"
)

// FinancialTransaction asiento del libro financiero (append-only).
// Amount es no negativo; el signo lo implica Type. Nunca se modifica después
// de creado.
//
// Dos disparadores lo crean automáticamente: la creación de un producto con
// stock×costo positivo (Expense/Operacional, inversión en inventario) y el
// checkout de una venta (Income/Vendas).
type FinancialTransaction struct {
	ID          string // identificador legible, ej: TR-00317
	Date        string // dd/mm/yyyy
	Description string
	Category    TransactionCategory
	Type        TransactionType
	Amount      decimal.Decimal
	Status      TransactionStatus
	Image       string // opcional: producto o logo del proveedor asociado
}
