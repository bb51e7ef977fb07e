package entity

import "github.com/shopspring/decimal"

// CustomerStatus estado de la relación con el cliente.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "Active"
	CustomerStatusInactive CustomerStatus = "Inactive"
)

// Customer representa un cliente de la tienda.
// TotalSpent es un acumulador monótono: solo lo incrementa el checkout y
// nunca se decrementa (no hay flujo de devoluciones).
type Customer struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Image       string
	Address     string
	TotalSpent  decimal.Decimal
	Status      CustomerStatus
	MemberSince string // fecha de alta en formato dd/mm/yyyy
}
