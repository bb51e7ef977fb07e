package postgres

import (
	"context"
	"fmt"

	"github.com/futmais/futmantos-api/internal/domain"
	"github.com/futmais/futmantos-api/internal/domain/entity"
	"github.com/futmais/futmantos-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository (usable con pool o tx).
// El libro es append-only: solo INSERT y SELECT.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste un asiento del libro financiero.
func (r *TransactionRepo) Create(transaction *entity.FinancialTransaction) error {
	query := `
		INSERT INTO transactions (id, date, description, category, type, amount, status, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		transaction.ID, transaction.Date, transaction.Description,
		string(transaction.Category), string(transaction.Type),
		transaction.Amount, string(transaction.Status), transaction.Image,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// List devuelve los asientos más recientes primero.
func (r *TransactionRepo) List() ([]*entity.FinancialTransaction, error) {
	query := `
		SELECT id, date, description, category, type, amount, status, image
		FROM transactions ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.FinancialTransaction
	for rows.Next() {
		var t entity.FinancialTransaction
		if err := rows.Scan(
			&t.ID, &t.Date, &t.Description, &t.Category, &t.Type, &t.Amount, &t.Status, &t.Image,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
