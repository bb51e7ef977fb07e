package dto

import (
	"github.com/shopspring/decimal"

	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// OrderItemResponse línea histórica de un pedido (snapshot, no referencia).
type OrderItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerID    string              `json:"customer_id,omitempty"`
	CustomerName  string              `json:"customer_name"`
	Date          string              `json:"date"`
	Total         decimal.Decimal     `json:"total"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method"`
	Items         []OrderItemResponse `json:"items"`
}

// UpdateOrderStatusRequest entrada para la transición de estado del pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ToOrderResponse convierte la entidad a su DTO.
func ToOrderResponse(o entity.Order) OrderResponse {
	resp := OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		Date:          o.Date,
		Total:         o.Total,
		Status:        string(o.Status),
		PaymentMethod: string(o.PaymentMethod),
		Items:         make([]OrderItemResponse, 0, len(o.Items)),
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			Product:  ToProductResponse(item.Product),
			Quantity: item.Quantity,
			Subtotal: item.Subtotal(),
		})
	}
	return resp
}
