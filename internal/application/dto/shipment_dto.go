package dto

import (
	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// CreateShipmentRequest entrada para registrar un envío.
type CreateShipmentRequest struct {
	OrderID            string `json:"order_id" validate:"required"`
	CustomerName       string `json:"customer_name" validate:"required"`
	CustomerPhone      string `json:"customer_phone"`
	ProductDescription string `json:"product_description"`
	PurchaseDate       string `json:"purchase_date"`
	Carrier            string `json:"carrier"`
	TrackingCode       string `json:"tracking_code"`
	EstimatedDelivery  string `json:"estimated_delivery"`
	Status             string `json:"status"`
}

// UpdateShipmentRequest entrada para actualizar un envío. El estado puede
// fijarse en cualquier etapa del pipeline, sin validación de transición.
type UpdateShipmentRequest struct {
	OrderID            *string `json:"order_id"`
	CustomerName       *string `json:"customer_name"`
	CustomerPhone      *string `json:"customer_phone"`
	ProductDescription *string `json:"product_description"`
	PurchaseDate       *string `json:"purchase_date"`
	Carrier            *string `json:"carrier"`
	TrackingCode       *string `json:"tracking_code"`
	EstimatedDelivery  *string `json:"estimated_delivery"`
	Status             *string `json:"status"`
}

// ShipmentResponse salida de un envío. StatusIndex es la posición 0..3 en el
// pipeline (Preparação → Entregue).
type ShipmentResponse struct {
	ID                 string `json:"id"`
	OrderID            string `json:"order_id"`
	CustomerName       string `json:"customer_name"`
	CustomerPhone      string `json:"customer_phone"`
	ProductDescription string `json:"product_description"`
	PurchaseDate       string `json:"purchase_date"`
	Carrier            string `json:"carrier"`
	TrackingCode       string `json:"tracking_code"`
	EstimatedDelivery  string `json:"estimated_delivery"`
	LastStatus         string `json:"last_status,omitempty"`
	Status             string `json:"status"`
	StatusIndex        int    `json:"status_index"`
	CreatedAt          string `json:"created_at"`
}

// ToShipmentResponse convierte la entidad a su DTO.
func ToShipmentResponse(s entity.Shipment) ShipmentResponse {
	return ShipmentResponse{
		ID:                 s.ID,
		OrderID:            s.OrderID,
		CustomerName:       s.CustomerName,
		CustomerPhone:      s.CustomerPhone,
		ProductDescription: s.ProductDescription,
		PurchaseDate:       s.PurchaseDate,
		Carrier:            s.Carrier,
		TrackingCode:       s.TrackingCode,
		EstimatedDelivery:  s.EstimatedDelivery,
		LastStatus:         s.LastStatus,
		Status:             string(s.Status),
		StatusIndex:        s.Status.StatusIndex(),
		CreatedAt:          s.CreatedAt,
	}
}
