package dto

import (
	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name     string   `json:"name" validate:"required"`
	Contact  string   `json:"contact"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone" validate:"required"`
	Category []string `json:"category"`
	Rating   int      `json:"rating" validate:"min=1,max=5"`
	Image    string   `json:"image"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor.
type UpdateSupplierRequest struct {
	Name     *string   `json:"name"`
	Contact  *string   `json:"contact"`
	Email    *string   `json:"email"`
	Phone    *string   `json:"phone"`
	Category *[]string `json:"category"`
	Rating   *int      `json:"rating"`
	Status   *string   `json:"status"`
	Image    *string   `json:"image"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Contact  string   `json:"contact"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Category []string `json:"category"`
	Rating   int      `json:"rating"`
	Status   string   `json:"status"`
	Image    string   `json:"image"`
}

// ToSupplierResponse convierte la entidad a su DTO.
func ToSupplierResponse(s entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:       s.ID,
		Name:     s.Name,
		Contact:  s.Contact,
		Email:    s.Email,
		Phone:    s.Phone,
		Category: s.Category,
		Rating:   s.Rating,
		Status:   string(s.Status),
		Image:    s.Image,
	}
}
