package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/futmais/futmantos-api/internal/application/dto"
	"github.com/futmais/futmantos-api/internal/application/pos"
	"github.com/futmais/futmantos-api/internal/application/session"
	"github.com/futmais/futmantos-api/internal/domain"
	"github.com/futmais/futmantos-api/internal/domain/entity"
	"github.com/futmais/futmantos-api/internal/domain/repository"
	"github.com/futmais/futmantos-api/pkg/logger"
)

// ProductUseCase orquesta el catálogo de productos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner InvestmentTxRunner
	state    *session.State
	log      *logger.Logger

	now      func() time.Time
	newID    func() string
	ledgerID func() string
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner InvestmentTxRunner, state *session.State, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		repo:     repo,
		txRunner: txRunner,
		state:    state,
		log:      log,
		now:      time.Now,
		newID:    uuid.NewString,
		ledgerID: pos.NewTransactionID,
	}
}

// Create da de alta un producto. El status se deriva del stock inicial; si
// costo×stock es positivo, registra además el asiento de inversión en
// inventario (Expense/Operacional) en la misma transacción que el producto.
func (uc *ProductUseCase) Create(ctx context.Context, req dto.CreateProductRequest) (*entity.Product, error) {
	if req.Name == "" || req.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidProductType(entity.ProductType(req.Type)) {
		return nil, domain.ErrInvalidInput
	}
	if req.Stock < 0 || req.Price.IsNegative() || req.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	product := &entity.Product{
		ID:          uc.newID(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		Image:       req.Image,
		Team:        req.Team,
		League:      req.League,
		Size:        req.Size,
		SKU:         req.SKU,
		Status:      entity.StockStatusFor(req.Stock),
		Type:        entity.ProductType(req.Type),
	}

	investment := req.Cost.Mul(decimal.NewFromInt(int64(req.Stock)))
	var ledgerEntry *entity.FinancialTransaction
	if investment.IsPositive() {
		ledgerEntry = &entity.FinancialTransaction{
			ID:          uc.ledgerID(),
			Date:        entity.FormatDate(uc.now()),
			Description: fmt.Sprintf("Investimento Estoque - %s (%d un)", product.Name, product.Stock),
			Category:    entity.CategoryOperational,
			Type:        entity.TransactionExpense,
			Amount:      investment,
			Status:      entity.TransactionCompleted,
			Image:       product.Image,
		}
	}

	if ledgerEntry != nil {
		err := uc.txRunner.RunInvestment(ctx, func(
			productRepo repository.ProductRepository,
			txRepo repository.TransactionRepository,
		) error {
			if err := productRepo.Create(product); err != nil {
				return err
			}
			return txRepo.Create(ledgerEntry)
		})
		if err != nil {
			return nil, fmt.Errorf("crear producto: %w", err)
		}
	} else if err := uc.repo.Create(product); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}

	uc.state.ApplyProductAdded(*product)
	if ledgerEntry != nil {
		uc.state.ApplyTransactionAdded(*ledgerEntry)
	}

	uc.log.Info().
		Str("product_id", product.ID).
		Str("sku", product.SKU).
		Int("stock", product.Stock).
		Msg("producto creado")
	return product, nil
}

// List devuelve el catálogo desde el espejo de sesión.
func (uc *ProductUseCase) List() []entity.Product {
	return uc.state.Products()
}

// Get busca un producto por ID.
func (uc *ProductUseCase) Get(id string) (*entity.Product, error) {
	p, ok := uc.state.Product(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// Update modifica los campos editables de un producto. El stock no se toca
// aquí: tiene su operación dedicada para que el status siempre se derive.
func (uc *ProductUseCase) Update(id string, req dto.UpdateProductRequest) (*entity.Product, error) {
	product, ok := uc.state.Product(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *req.Price
	}
	if req.Cost != nil {
		if req.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = *req.Cost
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Team != nil {
		product.Team = *req.Team
	}
	if req.League != nil {
		product.League = *req.League
	}
	if req.Size != nil {
		product.Size = *req.Size
	}
	if req.Type != nil {
		if !entity.ValidProductType(entity.ProductType(*req.Type)) {
			return nil, domain.ErrInvalidInput
		}
		product.Type = entity.ProductType(*req.Type)
	}

	if err := uc.repo.Update(&product); err != nil {
		return nil, fmt.Errorf("actualizar producto: %w", err)
	}
	uc.state.ApplyProductUpdated(product)
	return &product, nil
}

// UpdateStock fija el stock de un producto y deriva su status.
func (uc *ProductUseCase) UpdateStock(id string, stock int) (*entity.Product, error) {
	if stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, ok := uc.state.Product(id)
	if !ok {
		return nil, domain.ErrNotFound
	}

	status := entity.StockStatusFor(stock)
	if err := uc.repo.UpdateStock(id, stock, status); err != nil {
		return nil, fmt.Errorf("actualizar stock: %w", err)
	}
	uc.state.ApplyStockChanged(id, stock, status)

	product.Stock = stock
	product.Status = status
	return &product, nil
}

// Delete retira un producto del catálogo. Los pedidos históricos conservan su
// snapshot de la línea, así que la eliminación no los afecta.
func (uc *ProductUseCase) Delete(id string) error {
	if _, ok := uc.state.Product(id); !ok {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return fmt.Errorf("eliminar producto: %w", err)
	}
	uc.state.ApplyProductDeleted(id)
	uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	return nil
}
