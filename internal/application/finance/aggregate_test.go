package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futmais/futmantos-api/internal/application/finance"
	"github.com/futmais/futmantos-api/internal/domain/entity"
)

func asiento(typ entity.TransactionType, cat entity.TransactionCategory, amount int64, date string) entity.FinancialTransaction {
	return entity.FinancialTransaction{
		Type:     typ,
		Category: cat,
		Amount:   decimal.NewFromInt(amount),
		Date:     date,
		Status:   entity.TransactionCompleted,
	}
}

func TestComputeTotals(t *testing.T) {
	txs := []entity.FinancialTransaction{
		asiento(entity.TransactionIncome, entity.CategorySales, 100, "15/08/2024"),
		asiento(entity.TransactionExpense, entity.CategoryOperational, 30, "15/08/2024"),
		asiento(entity.TransactionExpense, entity.CategoryOther, 20, "15/08/2024"),
	}

	totals := finance.ComputeTotals(txs)

	assert.True(t, totals.TotalIncome.Equal(decimal.NewFromInt(100)))
	assert.True(t, totals.TotalExpenses.Equal(decimal.NewFromInt(50)))
	assert.True(t, totals.NetProfit.Equal(decimal.NewFromInt(50)))
	assert.True(t, totals.OperationalCosts.Equal(decimal.NewFromInt(30)),
		"solo los egresos Operacional cuentan como costo operativo, fue %s", totals.OperationalCosts)
}

func TestComputeTotals_LibroVacio(t *testing.T) {
	totals := finance.ComputeTotals(nil)

	assert.True(t, totals.TotalIncome.IsZero())
	assert.True(t, totals.NetProfit.IsZero())
}

func TestWeeklyFlow(t *testing.T) {
	txs := []entity.FinancialTransaction{
		// 15/08/2024 es jueves (índice 4); 11/08/2024 es domingo (índice 0).
		asiento(entity.TransactionIncome, entity.CategorySales, 100, "15/08/2024"),
		asiento(entity.TransactionIncome, entity.CategorySales, 50, "15/08/2024"),
		asiento(entity.TransactionExpense, entity.CategoryOperational, 40, "15/08/2024"),
		asiento(entity.TransactionExpense, entity.CategoryOther, 25, "11/08/2024"),
		asiento(entity.TransactionIncome, entity.CategorySales, 999, "fecha rota"),
	}

	flow := finance.WeeklyFlow(txs)

	require.Len(t, flow, 7)
	assert.Equal(t, "Dom", flow[0].Day)
	assert.Equal(t, "Sáb", flow[6].Day)

	assert.True(t, flow[4].Income.Equal(decimal.NewFromInt(150)), "jueves acumula ambos ingresos")
	assert.True(t, flow[4].Expense.Equal(decimal.NewFromInt(40)))
	assert.True(t, flow[0].Expense.Equal(decimal.NewFromInt(25)))
	assert.True(t, flow[1].Income.IsZero(), "un asiento con fecha ilegible no se bucketiza")
}

func TestMaxFlow(t *testing.T) {
	flow := finance.WeeklyFlow([]entity.FinancialTransaction{
		asiento(entity.TransactionIncome, entity.CategorySales, 150, "15/08/2024"),
		asiento(entity.TransactionExpense, entity.CategoryOther, 300, "11/08/2024"),
	})

	assert.True(t, finance.MaxFlow(flow).Equal(decimal.NewFromInt(300)),
		"el máximo considera ingresos y egresos por igual")
}

func TestMaxFlow_SinMovimientoDevuelveUno(t *testing.T) {
	flow := finance.WeeklyFlow(nil)

	assert.True(t, finance.MaxFlow(flow).Equal(decimal.NewFromInt(1)),
		"sin movimiento el denominador debe ser 1, nunca 0")
}

func TestMonthlySeries_OrdenCronologico(t *testing.T) {
	orders := []entity.Order{
		{ID: "#PED-0003", Date: "05/01/2024", Total: decimal.NewFromInt(300)},
		{ID: "#PED-0001", Date: "10/12/2023", Total: decimal.NewFromInt(100)},
		{ID: "#PED-0002", Date: "20/12/2023", Total: decimal.NewFromInt(150)},
		{ID: "#PED-0004", Date: "fecha rota", Total: decimal.NewFromInt(999)},
	}

	series := finance.MonthlySeries(orders)

	require.Len(t, series, 2)
	assert.Equal(t, "12/2023", series[0].Name)
	assert.True(t, series[0].Value.Equal(decimal.NewFromInt(250)))
	assert.Equal(t, "1/2024", series[1].Name)
	assert.True(t, series[1].Value.Equal(decimal.NewFromInt(300)))
}

func TestPlaceholderSeries(t *testing.T) {
	series := finance.PlaceholderSeries()

	require.Len(t, series, 8)
	assert.Equal(t, "Jan", series[0].Name)
	assert.Equal(t, "Ago", series[7].Name)
}
