package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/futmais/futmantos-api/internal/application/dto"
	"github.com/futmais/futmantos-api/internal/application/session"
	"github.com/futmais/futmantos-api/internal/domain"
	"github.com/futmais/futmantos-api/internal/domain/entity"
	"github.com/futmais/futmantos-api/internal/domain/repository"
	"github.com/futmais/futmantos-api/pkg/logger"
)

// SupplierUseCase orquesta el directorio de proveedores.
type SupplierUseCase struct {
	repo  repository.SupplierRepository
	state *session.State
	log   *logger.Logger

	newID func() string
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, state *session.State, log *logger.Logger) *SupplierUseCase {
	return &SupplierUseCase{
		repo:  repo,
		state: state,
		log:   log,
		newID: uuid.NewString,
	}
}

// Create da de alta un proveedor. Rating va de 1 a 5; arranca activo.
func (uc *SupplierUseCase) Create(req dto.CreateSupplierRequest) (*entity.Supplier, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, domain.ErrInvalidInput
	}

	supplier := &entity.Supplier{
		ID:       uc.newID(),
		Name:     req.Name,
		Contact:  req.Contact,
		Email:    req.Email,
		Phone:    req.Phone,
		Category: req.Category,
		Rating:   req.Rating,
		Status:   entity.SupplierStatusActive,
		Image:    req.Image,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, fmt.Errorf("crear proveedor: %w", err)
	}
	uc.state.ApplySupplierAdded(*supplier)

	uc.log.Info().Str("supplier_id", supplier.ID).Msg("proveedor creado")
	return supplier, nil
}

// List devuelve el directorio desde el espejo de sesión.
func (uc *SupplierUseCase) List() []entity.Supplier {
	return uc.state.Suppliers()
}

// Get busca un proveedor por ID.
func (uc *SupplierUseCase) Get(id string) (*entity.Supplier, error) {
	s, ok := uc.state.Supplier(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

// Update modifica los campos editables de un proveedor.
func (uc *SupplierUseCase) Update(id string, req dto.UpdateSupplierRequest) (*entity.Supplier, error) {
	supplier, ok := uc.state.Supplier(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		supplier.Name = *req.Name
	}
	if req.Contact != nil {
		supplier.Contact = *req.Contact
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			return nil, domain.ErrInvalidInput
		}
		supplier.Phone = *req.Phone
	}
	if req.Category != nil {
		supplier.Category = *req.Category
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, domain.ErrInvalidInput
		}
		supplier.Rating = *req.Rating
	}
	if req.Status != nil {
		status := entity.SupplierStatus(*req.Status)
		if status != entity.SupplierStatusActive && status != entity.SupplierStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		supplier.Status = status
	}
	if req.Image != nil {
		supplier.Image = *req.Image
	}

	if err := uc.repo.Update(&supplier); err != nil {
		return nil, fmt.Errorf("actualizar proveedor: %w", err)
	}
	uc.state.ApplySupplierUpdated(supplier)
	return &supplier, nil
}

// Delete retira un proveedor del directorio.
func (uc *SupplierUseCase) Delete(id string) error {
	if _, ok := uc.state.Supplier(id); !ok {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return fmt.Errorf("eliminar proveedor: %w", err)
	}
	uc.state.ApplySupplierDeleted(id)
	uc.log.Info().Str("supplier_id", id).Msg("proveedor eliminado")
	return nil
}
