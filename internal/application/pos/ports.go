package pos

import (
	"context"

	"github.com/futmais/futmantos-api/internal/domain/entity"
	"github.com/futmais/futmantos-api/internal/domain/repository"
)

// CartStore puerto de persistencia local del carrito. Es el único dato que
// no viaja al almacén remoto: un snapshot plano en el dispositivo para que
// un reinicio no pierda la venta en curso.
type CartStore interface {
	Save(items []entity.CartItem) error
	Load() ([]entity.CartItem, error)
}

// TxRunner ejecuta la secuencia de escrituras del checkout dentro de una
// transacción del almacén: o se confirma todo (cliente, pedido, asiento,
// decrementos de stock) o no queda nada escrito.
type TxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
