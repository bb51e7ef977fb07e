package repository

import (
	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para el catálogo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija stock y status derivado en una sola escritura.
	// El status viene siempre de entity.StockStatusFor(stock).
	UpdateStock(id string, stock int, status entity.StockStatus) error
	Delete(id string) error
}
