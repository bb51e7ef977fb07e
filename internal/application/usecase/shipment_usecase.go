package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/futmais/futmantos-api/internal/application/dto"
	"github.com/futmais/futmantos-api/internal/application/session"
	"github.com/futmais/futmantos-api/internal/domain"
	"github.com/futmais/futmantos-api/internal/domain/entity"
	"github.com/futmais/futmantos-api/internal/domain/repository"
	"github.com/futmais/futmantos-api/pkg/logger"
)

// ShipmentUseCase orquesta el seguimiento logístico de los pedidos.
type ShipmentUseCase struct {
	repo  repository.ShipmentRepository
	state *session.State
	log   *logger.Logger

	now   func() time.Time
	newID func() string
}

// NewShipmentUseCase construye el caso de uso.
func NewShipmentUseCase(repo repository.ShipmentRepository, state *session.State, log *logger.Logger) *ShipmentUseCase {
	return &ShipmentUseCase{
		repo:  repo,
		state: state,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create registra un envío. Sin status explícito arranca en Preparação.
func (uc *ShipmentUseCase) Create(req dto.CreateShipmentRequest) (*entity.Shipment, error) {
	if req.OrderID == "" || req.CustomerName == "" {
		return nil, domain.ErrInvalidInput
	}

	status := entity.ShipmentStatusPreparing
	if req.Status != "" {
		status = entity.ShipmentStatus(req.Status)
		if status.StatusIndex() < 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	shipment := &entity.Shipment{
		ID:                 uc.newID(),
		OrderID:            req.OrderID,
		CustomerName:       req.CustomerName,
		CustomerPhone:      req.CustomerPhone,
		ProductDescription: req.ProductDescription,
		PurchaseDate:       req.PurchaseDate,
		Carrier:            req.Carrier,
		TrackingCode:       req.TrackingCode,
		EstimatedDelivery:  req.EstimatedDelivery,
		Status:             status,
		CreatedAt:          entity.FormatDate(uc.now()),
	}
	if err := uc.repo.Create(shipment); err != nil {
		return nil, fmt.Errorf("crear envío: %w", err)
	}
	uc.state.ApplyShipmentAdded(*shipment)

	uc.log.Info().
		Str("shipment_id", shipment.ID).
		Str("order_id", shipment.OrderID).
		Msg("envío registrado")
	return shipment, nil
}

// List devuelve los envíos desde el espejo de sesión.
func (uc *ShipmentUseCase) List() []entity.Shipment {
	return uc.state.Shipments()
}

// Get busca un envío por ID.
func (uc *ShipmentUseCase) Get(id string) (*entity.Shipment, error) {
	s, ok := uc.state.Shipment(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

// Update modifica un envío. Al cambiar el status, la etapa anterior queda
// registrada en LastStatus; el pipeline no exige avance secuencial.
func (uc *ShipmentUseCase) Update(id string, req dto.UpdateShipmentRequest) (*entity.Shipment, error) {
	shipment, ok := uc.state.Shipment(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	if req.OrderID != nil {
		if *req.OrderID == "" {
			return nil, domain.ErrInvalidInput
		}
		shipment.OrderID = *req.OrderID
	}
	if req.CustomerName != nil {
		shipment.CustomerName = *req.CustomerName
	}
	if req.CustomerPhone != nil {
		shipment.CustomerPhone = *req.CustomerPhone
	}
	if req.ProductDescription != nil {
		shipment.ProductDescription = *req.ProductDescription
	}
	if req.PurchaseDate != nil {
		shipment.PurchaseDate = *req.PurchaseDate
	}
	if req.Carrier != nil {
		shipment.Carrier = *req.Carrier
	}
	if req.TrackingCode != nil {
		shipment.TrackingCode = *req.TrackingCode
	}
	if req.EstimatedDelivery != nil {
		shipment.EstimatedDelivery = *req.EstimatedDelivery
	}
	if req.Status != nil {
		status := entity.ShipmentStatus(*req.Status)
		if status.StatusIndex() < 0 {
			return nil, domain.ErrInvalidInput
		}
		if status != shipment.Status {
			shipment.LastStatus = string(shipment.Status)
		}
		shipment.Status = status
	}

	if err := uc.repo.Update(&shipment); err != nil {
		return nil, fmt.Errorf("actualizar envío: %w", err)
	}
	uc.state.ApplyShipmentUpdated(shipment)
	return &shipment, nil
}

// Delete retira un envío del seguimiento.
func (uc *ShipmentUseCase) Delete(id string) error {
	if _, ok := uc.state.Shipment(id); !ok {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return fmt.Errorf("eliminar envío: %w", err)
	}
	uc.state.ApplyShipmentDeleted(id)
	uc.log.Info().Str("shipment_id", id).Msg("envío eliminado")
	return nil
}
