package repository

import (
	"github.com/shopspring/decimal"

	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List() ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	// UpdateTotalSpent fija el acumulado de gasto (lo usa solo el checkout).
	UpdateTotalSpent(id string, totalSpent decimal.Decimal) error
	Delete(id string) error
}
