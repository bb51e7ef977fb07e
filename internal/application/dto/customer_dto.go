package dto

import (
	"github.com/shopspring/decimal"

	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// CreateCustomerRequest entrada para crear un cliente. Nombre y teléfono son
// obligatorios; se validan antes de cualquier llamada al almacén.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone" validate:"required"`
	Image   string `json:"image"`
	Address string `json:"address"`
}

// UpdateCustomerRequest entrada para actualizar un cliente. TotalSpent no se
// acepta: solo lo muta el checkout.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Image   *string `json:"image"`
	Address *string `json:"address"`
	Status  *string `json:"status"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	Image       string          `json:"image"`
	Address     string          `json:"address"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	Status      string          `json:"status"`
	MemberSince string          `json:"member_since"`
}

// ToCustomerResponse convierte la entidad a su DTO.
func ToCustomerResponse(c entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Image:       c.Image,
		Address:     c.Address,
		TotalSpent:  c.TotalSpent,
		Status:      string(c.Status),
		MemberSince: c.MemberSince,
	}
}
