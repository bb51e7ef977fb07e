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

// CustomerUseCase orquesta la cartera de clientes.
type CustomerUseCase struct {
	repo  repository.CustomerRepository
	state *session.State
	log   *logger.Logger

	now   func() time.Time
	newID func() string
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, state *session.State, log *logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{
		repo:  repo,
		state: state,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create da de alta un cliente. Nombre y teléfono son obligatorios; arranca
// activo, con gasto acumulado en cero y miembro desde la fecha actual.
func (uc *CustomerUseCase) Create(req dto.CreateCustomerRequest) (*entity.Customer, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, domain.ErrInvalidInput
	}

	customer := &entity.Customer{
		ID:          uc.newID(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Image:       req.Image,
		Address:     req.Address,
		Status:      entity.CustomerStatusActive,
		MemberSince: entity.FormatDate(uc.now()),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	uc.state.ApplyCustomerAdded(*customer)

	uc.log.Info().Str("customer_id", customer.ID).Msg("cliente creado")
	return customer, nil
}

// List devuelve la cartera desde el espejo de sesión.
func (uc *CustomerUseCase) List() []entity.Customer {
	return uc.state.Customers()
}

// Get busca un cliente por ID.
func (uc *CustomerUseCase) Get(id string) (*entity.Customer, error) {
	c, ok := uc.state.Customer(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

// Update modifica los campos editables de un cliente. El gasto acumulado no
// se acepta: solo lo muta el checkout.
func (uc *CustomerUseCase) Update(id string, req dto.UpdateCustomerRequest) (*entity.Customer, error) {
	customer, ok := uc.state.Customer(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Phone = *req.Phone
	}
	if req.Image != nil {
		customer.Image = *req.Image
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Status != nil {
		status := entity.CustomerStatus(*req.Status)
		if status != entity.CustomerStatusActive && status != entity.CustomerStatusInactive {
			return nil, domain.ErrInvalidInput
		}
		customer.Status = status
	}

	if err := uc.repo.Update(&customer); err != nil {
		return nil, fmt.Errorf("actualizar cliente: %w", err)
	}
	uc.state.ApplyCustomerUpdated(customer)
	return &customer, nil
}

// Delete retira un cliente. Los pedidos históricos conservan el nombre
// desnormalizado, así que siguen legibles.
func (uc *CustomerUseCase) Delete(id string) error {
	if _, ok := uc.state.Customer(id); !ok {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return fmt.Errorf("eliminar cliente: %w", err)
	}
	uc.state.ApplyCustomerDeleted(id)
	uc.log.Info().Str("customer_id", id).Msg("cliente eliminado")
	return nil
}
