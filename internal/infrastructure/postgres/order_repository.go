package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/futmais/futmantos-api/internal/domain"
	"github.com/futmais/futmantos-api/internal/domain/entity"
	"github.com/futmais/futmantos-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
// Las líneas viven en order_items con snapshot del producto al momento de la
// venta: la fila del catálogo puede cambiar o desaparecer sin afectar el
// histórico.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la cabecera del pedido. Las líneas van por CreateItem
// dentro de la misma transacción.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, customer_name, date, total, status, payment_method)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerID, order.CustomerName, order.Date,
		order.Total, string(order.Status), string(order.PaymentMethod),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea con el snapshot del producto vendido. El
// ordinal line se calcula sobre las líneas ya insertadas del pedido; las
// inserciones del checkout son secuenciales dentro de su transacción, así
// que conserva el orden del carrito.
func (r *OrderRepo) CreateItem(orderID string, item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, product_name, product_image, unit_price, unit_cost, quantity, line)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
			(SELECT COALESCE(MAX(line), 0) + 1 FROM order_items WHERE order_id = $1))`
	_, err := r.q.Exec(context.Background(), query,
		orderID, item.Product.ID, item.Product.Name, item.Product.Image,
		item.Product.Price, item.Product.Cost, item.Quantity,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido con sus líneas.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, COALESCE(customer_id, ''), customer_name, date, total, status, payment_method
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerID, &o.CustomerName, &o.Date, &o.Total, &o.Status, &o.PaymentMethod,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.itemsFor(id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// List devuelve los pedidos más recientes primero, con sus líneas.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	query := `
		SELECT id, COALESCE(customer_id, ''), customer_name, date, total, status, payment_method
		FROM orders ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.CustomerName, &o.Date, &o.Total, &o.Status, &o.PaymentMethod,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.itemsFor(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}

// UpdateStatus fija el estado del pedido.
func (r *OrderRepo) UpdateStatus(id string, status entity.OrderStatus) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// itemsFor lee las líneas de un pedido reconstruyendo el snapshot del producto.
func (r *OrderRepo) itemsFor(orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT product_id, product_name, product_image, unit_price, unit_cost, quantity
		FROM order_items WHERE order_id = $1 ORDER BY line`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(
			&item.Product.ID, &item.Product.Name, &item.Product.Image,
			&item.Product.Price, &item.Product.Cost, &item.Quantity,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
