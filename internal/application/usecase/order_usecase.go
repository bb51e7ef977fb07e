package usecase

import (
	"fmt"

	"github.com/futmais/futmantos-api/internal/application/session"
	"github.com/futmais/futmantos-api/internal/domain"
	"github.com/futmais/futmantos-api/internal/domain/entity"
	"github.com/futmais/futmantos-api/internal/domain/repository"
	"github.com/futmais/futmantos-api/pkg/logger"
)

// OrderUseCase consulta y transiciona pedidos. La creación no pasa por aquí:
// un pedido solo nace del checkout del punto de venta.
type OrderUseCase struct {
	repo  repository.OrderRepository
	state *session.State
	log   *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository, state *session.State, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{repo: repo, state: state, log: log}
}

// List devuelve los pedidos desde el espejo de sesión, más recientes primero.
func (uc *OrderUseCase) List() []entity.Order {
	return uc.state.Orders()
}

// Get busca un pedido por ID.
func (uc *OrderUseCase) Get(id string) (*entity.Order, error) {
	o, ok := uc.state.Order(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

// UpdateStatus fija el estado del pedido. Cualquier transición entre estados
// conocidos es válida, incluida la reversión de una cancelación.
func (uc *OrderUseCase) UpdateStatus(id string, status entity.OrderStatus) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, ok := uc.state.Order(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	if err := uc.repo.UpdateStatus(id, status); err != nil {
		return nil, fmt.Errorf("actualizar estado del pedido: %w", err)
	}
	uc.state.ApplyOrderStatus(id, status)
	order.Status = status

	uc.log.Info().
		Str("order_id", id).
		Str("status", string(status)).
		Msg("estado del pedido actualizado")
	return &order, nil
}
