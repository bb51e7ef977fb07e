package finance_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futmais/futmantos-api/internal/application/dto"
	"github.com/futmais/futmantos-api/internal/application/finance"
	"github.com/futmais/futmantos-api/internal/application/session"
	"github.com/futmais/futmantos-api/internal/domain"
	"github.com/futmais/futmantos-api/internal/domain/entity"
	"github.com/futmais/futmantos-api/pkg/logger"
)

// ledgerRepo fake append-only del libro.
type ledgerRepo struct {
	created []*entity.FinancialTransaction
	err     error
}

func (r *ledgerRepo) Create(t *entity.FinancialTransaction) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, t)
	return nil
}

func (r *ledgerRepo) List() ([]*entity.FinancialTransaction, error) { return nil, nil }

// estadoConVenta espejo con una venta cerrada: asiento de 550 y pedido con
// dos líneas (costo total 220).
func estadoConVenta() *session.State {
	state := session.New()
	state.ApplyTransactionAdded(asiento(entity.TransactionIncome, entity.CategorySales, 550, "15/08/2024"))
	state.ApplyTransactionAdded(asiento(entity.TransactionExpense, entity.CategoryOperational, 100, "15/08/2024"))
	state.ApplyOrderAdded(entity.Order{
		ID:    "#PED-0042",
		Date:  "15/08/2024",
		Total: decimal.NewFromInt(550),
		Items: []entity.OrderItem{
			{Product: entity.Product{ID: "p1", Cost: decimal.NewFromInt(80)}, Quantity: 2},
			{Product: entity.Product{ID: "p2", Cost: decimal.NewFromInt(60)}, Quantity: 1},
		},
	})
	return state
}

func TestSummary_KPIs(t *testing.T) {
	uc := finance.NewUseCase(&ledgerRepo{}, estadoConVenta(), logger.Nop())

	got := uc.Summary(finance.AllTime())

	assert.True(t, got.TotalIncome.Equal(decimal.NewFromInt(550)))
	assert.True(t, got.TotalExpenses.Equal(decimal.NewFromInt(100)))
	assert.True(t, got.NetProfit.Equal(decimal.NewFromInt(450)))
	assert.True(t, got.OperationalCosts.Equal(decimal.NewFromInt(100)))

	assert.Equal(t, 1, got.OrdersCount)
	assert.True(t, got.OrdersRevenue.Equal(decimal.NewFromInt(550)))
	assert.True(t, got.AverageTicket.Equal(decimal.NewFromInt(550)))
	// margen = (550 - 220) / 550 × 100 = 60.0
	assert.True(t, got.ProfitMargin.Equal(decimal.NewFromInt(60)),
		"margen sobre el costo de las líneas vendidas, fue %s", got.ProfitMargin)

	require.Len(t, got.WeeklyFlow, 7)
	assert.True(t, got.MaxFlow.Equal(decimal.NewFromInt(550)))
	assert.True(t, strings.HasPrefix(got.Performance, "Receita de"), "resumen: %q", got.Performance)
	assert.Contains(t, got.Performance, "1 vendas")
}

func TestSummary_SinMovimiento(t *testing.T) {
	uc := finance.NewUseCase(&ledgerRepo{}, session.New(), logger.Nop())

	got := uc.Summary(finance.AllTime())

	assert.Equal(t, "Sem movimentações no período selecionado.", got.Performance)
	assert.True(t, got.MaxFlow.Equal(decimal.NewFromInt(1)), "denominador de respaldo sin datos")
	assert.True(t, got.AverageTicket.IsZero())
	assert.True(t, got.ProfitMargin.IsZero())
}

func TestSummary_PrejuicioAdvierte(t *testing.T) {
	state := session.New()
	state.ApplyTransactionAdded(asiento(entity.TransactionExpense, entity.CategoryMarketing, 300, "15/08/2024"))
	uc := finance.NewUseCase(&ledgerRepo{}, state, logger.Nop())

	got := uc.Summary(finance.AllTime())

	assert.True(t, strings.HasPrefix(got.Performance, "Atenção"), "resumen: %q", got.Performance)
}

func TestChart(t *testing.T) {
	uc := finance.NewUseCase(&ledgerRepo{}, estadoConVenta(), logger.Nop())

	got := uc.Chart(finance.AllTime())
	assert.False(t, got.Placeholder)
	require.Len(t, got.Series, 1)
	assert.Equal(t, "8/2024", got.Series[0].Name)

	// Sin pedidos en el período: andamiaje visual marcado como tal.
	vacio := finance.NewUseCase(&ledgerRepo{}, session.New(), logger.Nop())
	got = vacio.Chart(finance.AllTime())
	assert.True(t, got.Placeholder)
	assert.Len(t, got.Series, 8)
}

func TestTransactions_Filtros(t *testing.T) {
	uc := finance.NewUseCase(&ledgerRepo{}, estadoConVenta(), logger.Nop())

	todos, err := uc.Transactions(finance.AllTime(), finance.FilterAll)
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	entradas, err := uc.Transactions(finance.AllTime(), finance.FilterIncomes)
	require.NoError(t, err)
	require.Len(t, entradas, 1)
	assert.Equal(t, entity.TransactionIncome, entradas[0].Type)

	salidas, err := uc.Transactions(finance.AllTime(), finance.FilterExpenses)
	require.NoError(t, err)
	require.Len(t, salidas, 1)
	assert.Equal(t, entity.TransactionExpense, salidas[0].Type)

	_, err = uc.Transactions(finance.AllTime(), "Transferências")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "filtro desconocido debe rechazarse")
}

func TestAddTransaction(t *testing.T) {
	repo := &ledgerRepo{}
	state := session.New()
	uc := finance.NewUseCase(repo, state, logger.Nop())

	tx, err := uc.AddTransaction(dto.CreateTransactionRequest{
		Description: "Anúncio Instagram",
		Category:    string(entity.CategoryMarketing),
		Type:        string(entity.TransactionExpense),
		Amount:      decimal.NewFromInt(120),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(tx.ID, "TR-"), "el ID de asiento debe llevar el prefijo TR-")
	assert.Equal(t, entity.TransactionCompleted, tx.Status, "sin status explícito se asume Concluído")
	require.Len(t, repo.created, 1)
	require.Len(t, state.Transactions(), 1, "el espejo debe reflejar el asiento tras el commit")
	assert.Equal(t, tx.ID, state.Transactions()[0].ID)
}

func TestAddTransaction_Validaciones(t *testing.T) {
	uc := finance.NewUseCase(&ledgerRepo{}, session.New(), logger.Nop())

	base := dto.CreateTransactionRequest{
		Description: "Ajuste",
		Category:    string(entity.CategoryOther),
		Type:        string(entity.TransactionExpense),
		Amount:      decimal.NewFromInt(10),
	}

	caso := base
	caso.Description = ""
	_, err := uc.AddTransaction(caso)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	caso = base
	caso.Category = "Impuestos"
	_, err = uc.AddTransaction(caso)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	caso = base
	caso.Type = "Transfer"
	_, err = uc.AddTransaction(caso)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	caso = base
	caso.Amount = decimal.Zero
	_, err = uc.AddTransaction(caso)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el monto debe ser positivo")

	caso = base
	caso.Status = "En Tránsito"
	_, err = uc.AddTransaction(caso)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddTransaction_ErrorDelAlmacen(t *testing.T) {
	state := session.New()
	uc := finance.NewUseCase(&ledgerRepo{err: errors.New("timeout")}, state, logger.Nop())

	_, err := uc.AddTransaction(dto.CreateTransactionRequest{
		Description: "Ajuste",
		Category:    string(entity.CategoryOther),
		Type:        string(entity.TransactionIncome),
		Amount:      decimal.NewFromInt(10),
	})

	require.Error(t, err)
	assert.Empty(t, state.Transactions(), "un fallo de escritura no debe tocar el espejo")
}
