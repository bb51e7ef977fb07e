package repository

import (
	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para pedidos y sus líneas.
// La cabecera y las líneas se persisten como unidad lógica; cada línea lleva
// el precio unitario vigente al momento de la venta.
type OrderRepository interface {
	Create(order *entity.Order) error
	CreateItem(orderID string, item *entity.OrderItem) error
	GetByID(id string) (*entity.Order, error)
	// List devuelve los pedidos más recientes primero, con sus líneas.
	List() ([]*entity.Order, error)
	UpdateStatus(id string, status entity.OrderStatus) error
}
