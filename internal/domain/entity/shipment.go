package entity

// ShipmentStatus etapa del envío dentro del pipeline logístico.
type ShipmentStatus string

// Etapas del pipeline, en orden (índice 0..3). El estado puede fijarse en
// cualquier etapa directamente; no se exige avance secuencial.
const (
	ShipmentStatusPreparing  ShipmentStatus = "Preparação"
	ShipmentStatusDispatched ShipmentStatus = "Despachado"
	ShipmentStatusInTransit  ShipmentStatus = "Em Trânsito"
	ShipmentStatusDelivered  ShipmentStatus = "Entregue"
)

// ShipmentPipeline etapas ordenadas del envío.
var ShipmentPipeline = [4]ShipmentStatus{
	ShipmentStatusPreparing,
	ShipmentStatusDispatched,
	ShipmentStatusInTransit,
	ShipmentStatusDelivered,
}

// StatusIndex posición de la etapa dentro del pipeline (-1 si no es válida).
func (s ShipmentStatus) StatusIndex() int {
	for i, st := range ShipmentPipeline {
		if st == s {
			return i
		}
	}
	return -1
}

// Shipment envío asociado a un pedido.
type Shipment struct {
	ID                 string
	OrderID            string
	CustomerName       string
	CustomerPhone      string
	ProductDescription string
	PurchaseDate       string
	Carrier            string
	TrackingCode       string
	EstimatedDelivery  string
	LastStatus         string
	Status             ShipmentStatus
	CreatedAt          string
}
