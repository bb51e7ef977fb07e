package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futmais/futmantos-api/internal/application/dto"
	"github.com/futmais/futmantos-api/internal/application/session"
	"github.com/futmais/futmantos-api/internal/application/usecase"
	"github.com/futmais/futmantos-api/internal/domain"
	"github.com/futmais/futmantos-api/internal/domain/entity"
	"github.com/futmais/futmantos-api/internal/domain/repository"
	"github.com/futmais/futmantos-api/pkg/logger"
)

// catalogRepo fake del catálogo que registra escrituras.
type catalogRepo struct {
	created      []*entity.Product
	stockWrites  map[string]int
	statusWrites map[string]entity.StockStatus
}

func (r *catalogRepo) Create(p *entity.Product) error {
	r.created = append(r.created, p)
	return nil
}
func (r *catalogRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (r *catalogRepo) List() ([]*entity.Product, error)        { return nil, nil }
func (r *catalogRepo) Update(*entity.Product) error            { return nil }
func (r *catalogRepo) Delete(string) error                     { return nil }
func (r *catalogRepo) UpdateStock(id string, stock int, status entity.StockStatus) error {
	if r.stockWrites == nil {
		r.stockWrites = map[string]int{}
		r.statusWrites = map[string]entity.StockStatus{}
	}
	r.stockWrites[id] = stock
	r.statusWrites[id] = status
	return nil
}

// bookRepo fake append-only del libro.
type bookRepo struct {
	created []*entity.FinancialTransaction
}

func (r *bookRepo) Create(t *entity.FinancialTransaction) error {
	r.created = append(r.created, t)
	return nil
}
func (r *bookRepo) List() ([]*entity.FinancialTransaction, error) { return nil, nil }

// investmentRunner fake del corredor transaccional de alta + asiento.
type investmentRunner struct {
	catalog *catalogRepo
	book    *bookRepo
	calls   int
}

func (r *investmentRunner) RunInvestment(_ context.Context, fn func(
	repository.ProductRepository,
	repository.TransactionRepository,
) error) error {
	r.calls++
	return fn(r.catalog, r.book)
}

func newProductFixture() (*usecase.ProductUseCase, *catalogRepo, *investmentRunner, *session.State) {
	catalog := &catalogRepo{}
	runner := &investmentRunner{catalog: catalog, book: &bookRepo{}}
	state := session.New()
	uc := usecase.NewProductUseCase(catalog, runner, state, logger.Nop())
	return uc, catalog, runner, state
}

func altaValida() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:  "Camisa Titular 24/25",
		Price: decimal.NewFromFloat(199.90),
		Cost:  decimal.NewFromInt(80),
		Stock: 15,
		Team:  "Flamengo",
		SKU:   "FLA-24-M",
		Type:  string(entity.ProductTypeJersey),
	}
}

func TestProductCreate_ConInversionDeInventario(t *testing.T) {
	uc, catalog, runner, state := newProductFixture()

	p, err := uc.Create(context.Background(), altaValida())
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, entity.StockStatusInStock, p.Status, "status derivado del stock inicial")

	// Alta y asiento dentro del corredor transaccional.
	assert.Equal(t, 1, runner.calls)
	require.Len(t, catalog.created, 1)
	require.Len(t, runner.book.created, 1)

	entry := runner.book.created[0]
	assert.Equal(t, entity.TransactionExpense, entry.Type)
	assert.Equal(t, entity.CategoryOperational, entry.Category)
	assert.True(t, entry.Amount.Equal(decimal.NewFromInt(1200)), "inversión = costo × stock, fue %s", entry.Amount)
	assert.Equal(t, "Investimento Estoque - Camisa Titular 24/25 (15 un)", entry.Description)

	// Espejo actualizado con ambos efectos.
	assert.Len(t, state.Products(), 1)
	assert.Len(t, state.Transactions(), 1)
}

func TestProductCreate_SinInversionNoAbreTransaccion(t *testing.T) {
	uc, catalog, runner, state := newProductFixture()

	req := altaValida()
	req.Stock = 0
	p, err := uc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, entity.StockStatusOutOfStock, p.Status)
	assert.Equal(t, 0, runner.calls, "costo×stock en cero va por el alta simple")
	assert.Len(t, catalog.created, 1)
	assert.Empty(t, state.Transactions(), "sin inversión no hay asiento")
}

func TestProductCreate_Validaciones(t *testing.T) {
	uc, _, _, _ := newProductFixture()

	req := altaValida()
	req.Name = ""
	_, err := uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = altaValida()
	req.SKU = ""
	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = altaValida()
	req.Type = "Sticker"
	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = altaValida()
	req.Stock = -1
	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = altaValida()
	req.Price = decimal.NewFromInt(-10)
	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_NoTocaElStock(t *testing.T) {
	uc, _, _, state := newProductFixture()
	state.ApplyProductAdded(entity.Product{
		ID:     "p1",
		Name:   "Camisa",
		Price:  decimal.NewFromInt(100),
		Stock:  12,
		Status: entity.StockStatusInStock,
		Type:   entity.ProductTypeJersey,
	})

	nuevoNombre := "Camisa Visitante"
	p, err := uc.Update("p1", dto.UpdateProductRequest{Name: &nuevoNombre})
	require.NoError(t, err)

	assert.Equal(t, "Camisa Visitante", p.Name)
	assert.Equal(t, 12, p.Stock, "el stock solo cambia por su operación dedicada")
}

func TestProductUpdateStock_DerivaStatus(t *testing.T) {
	uc, catalog, _, state := newProductFixture()
	state.ApplyProductAdded(entity.Product{ID: "p1", Stock: 12, Status: entity.StockStatusInStock})

	p, err := uc.UpdateStock("p1", 4)
	require.NoError(t, err)

	assert.Equal(t, 4, p.Stock)
	assert.Equal(t, entity.StockStatusLowStock, p.Status)
	assert.Equal(t, entity.StockStatusLowStock, catalog.statusWrites["p1"], "el status persistido viene derivado")

	_, err = uc.UpdateStock("p1", -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateStock("no-existe", 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	uc, _, _, state := newProductFixture()
	state.ApplyProductAdded(entity.Product{ID: "p1"})

	require.NoError(t, uc.Delete("p1"))
	assert.Empty(t, state.Products())

	assert.ErrorIs(t, uc.Delete("p1"), domain.ErrNotFound)
}
