package dto

import (
	"github.com/shopspring/decimal"

	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// AddCartItemRequest entrada para agregar un producto al carrito.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// ChangeQuantityRequest entrada para sumar o restar unidades de una línea.
// Delta negativo descuenta; un resultado en cero o menos se descarta y la
// línea conserva su cantidad.
type ChangeQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// CartItemResponse línea del carrito.
type CartItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CartResponse estado actual del carrito.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

// CheckoutRequest entrada para cerrar la venta. CustomerID vacío o desconocido
// registra la venta como cliente de mostrador.
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
	CustomerID    string `json:"customer_id"`
}

// ToCartResponse convierte las líneas del carrito a su DTO.
func ToCartResponse(items []entity.CartItem, total decimal.Decimal) CartResponse {
	resp := CartResponse{
		Items: make([]CartItemResponse, 0, len(items)),
		Total: total,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, CartItemResponse{
			Product:  ToProductResponse(item.Product),
			Quantity: item.Quantity,
			Subtotal: item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	return resp
}
