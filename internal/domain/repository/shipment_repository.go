package repository

import (
	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// ShipmentRepository define el puerto de persistencia para envíos.
type ShipmentRepository interface {
	Create(shipment *entity.Shipment) error
	GetByID(id string) (*entity.Shipment, error)
	List() ([]*entity.Shipment, error)
	Update(shipment *entity.Shipment) error
	Delete(id string) error
}
