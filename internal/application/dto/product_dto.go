package dto

import (
	"github.com/shopspring/decimal"

	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto. Status no se acepta:
// siempre se deriva del stock.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image"`
	Team        string          `json:"team"`
	League      string          `json:"league"`
	Size        string          `json:"size"`
	SKU         string          `json:"sku" validate:"required,min=1,max=100"`
	Type        string          `json:"type" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock: el
// stock se cambia por la operación dedicada para que el status se derive).
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	Image       *string          `json:"image"`
	Team        *string          `json:"team"`
	League      *string          `json:"league"`
	Size        *string          `json:"size"`
	Type        *string          `json:"type"`
}

// UpdateStockRequest entrada para fijar el stock de un producto.
type UpdateStockRequest struct {
	Stock int `json:"stock" validate:"min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image"`
	Team        string          `json:"team"`
	League      string          `json:"league"`
	Size        string          `json:"size"`
	SKU         string          `json:"sku"`
	Status      string          `json:"status"`
	Type        string          `json:"type"`
}

// ToProductResponse convierte la entidad a su DTO.
func ToProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		Image:       p.Image,
		Team:        p.Team,
		League:      p.League,
		Size:        p.Size,
		SKU:         p.SKU,
		Status:      string(p.Status),
		Type:        string(p.Type),
	}
}
