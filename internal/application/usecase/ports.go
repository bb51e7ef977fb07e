package usecase

import (
	"context"

	"github.com/futmais/futmantos-api/internal/domain/repository"
)

// InvestmentTxRunner ejecuta el alta de producto y su asiento de inversión en
// inventario dentro de una transacción del almacén: o quedan ambos o ninguno.
type InvestmentTxRunner interface {
	RunInvestment(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
