package repository

import (
	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia del libro financiero.
// El libro es append-only: no hay update ni delete.
type TransactionRepository interface {
	Create(transaction *entity.FinancialTransaction) error
	// List devuelve los movimientos más recientes primero.
	List() ([]*entity.FinancialTransaction, error)
}
