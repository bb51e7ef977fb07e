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

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementación de ShipmentRepository (usable con pool o tx).
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

// Create persiste un nuevo envío.
func (r *ShipmentRepo) Create(shipment *entity.Shipment) error {
	query := `
		INSERT INTO shipments (id, order_id, customer_name, customer_phone, product_description,
			purchase_date, carrier, tracking_code, estimated_delivery, last_status, status, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		shipment.ID, shipment.OrderID, shipment.CustomerName, shipment.CustomerPhone,
		shipment.ProductDescription, shipment.PurchaseDate, shipment.Carrier,
		shipment.TrackingCode, shipment.EstimatedDelivery, shipment.LastStatus,
		string(shipment.Status), shipment.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// GetByID obtiene un envío por ID.
func (r *ShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	query := `
		SELECT id, order_id, customer_name, customer_phone, product_description,
			purchase_date, carrier, tracking_code, estimated_delivery, last_status, status, registered_at
		FROM shipments WHERE id = $1`
	var s entity.Shipment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.OrderID, &s.CustomerName, &s.CustomerPhone, &s.ProductDescription,
		&s.PurchaseDate, &s.Carrier, &s.TrackingCode, &s.EstimatedDelivery,
		&s.LastStatus, &s.Status, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return &s, nil
}

// List devuelve los envíos, registros más recientes primero.
func (r *ShipmentRepo) List() ([]*entity.Shipment, error) {
	query := `
		SELECT id, order_id, customer_name, customer_phone, product_description,
			purchase_date, carrier, tracking_code, estimated_delivery, last_status, status, registered_at
		FROM shipments ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		var s entity.Shipment
		if err := rows.Scan(
			&s.ID, &s.OrderID, &s.CustomerName, &s.CustomerPhone, &s.ProductDescription,
			&s.PurchaseDate, &s.Carrier, &s.TrackingCode, &s.EstimatedDelivery,
			&s.LastStatus, &s.Status, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un envío completo.
func (r *ShipmentRepo) Update(shipment *entity.Shipment) error {
	query := `
		UPDATE shipments
		SET order_id = $2, customer_name = $3, customer_phone = $4, product_description = $5,
		    purchase_date = $6, carrier = $7, tracking_code = $8, estimated_delivery = $9,
		    last_status = $10, status = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		shipment.ID, shipment.OrderID, shipment.CustomerName, shipment.CustomerPhone,
		shipment.ProductDescription, shipment.PurchaseDate, shipment.Carrier,
		shipment.TrackingCode, shipment.EstimatedDelivery, shipment.LastStatus,
		string(shipment.Status),
	)
	if err != nil {
		return fmt.Errorf("update shipment: %w", err)
	}
	return nil
}

// Delete elimina un envío por ID.
func (r *ShipmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shipments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	return nil
}
