package finance

import (
	"github.com/shopspring/decimal"

	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// Totals resumen del libro: ingresos, egresos, utilidad neta y el subtotal
// de egresos Operacional (proxy de la inversión en inventario).
type Totals struct {
	TotalIncome      decimal.Decimal
	TotalExpenses    decimal.Decimal
	NetProfit        decimal.Decimal
	OperationalCosts decimal.Decimal
}

// ComputeTotals pliega el libro completo. NetProfit = ingresos - egresos.
func ComputeTotals(transactions []entity.FinancialTransaction) Totals {
	var t Totals
	t.TotalIncome = decimal.Zero
	t.TotalExpenses = decimal.Zero
	t.OperationalCosts = decimal.Zero
	for _, tr := range transactions {
		if tr.Type == entity.TransactionIncome {
			t.TotalIncome = t.TotalIncome.Add(tr.Amount)
			continue
		}
		t.TotalExpenses = t.TotalExpenses.Add(tr.Amount)
		if tr.Category == entity.CategoryOperational {
			t.OperationalCosts = t.OperationalCosts.Add(tr.Amount)
		}
	}
	t.NetProfit = t.TotalIncome.Sub(t.TotalExpenses)
	return t
}

// weekDays etiquetas pt-BR, domingo primero (índice 0..6 como time.Weekday).
var weekDays = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// DayFlow entradas y salidas acumuladas de un día de la semana.
type DayFlow struct {
	Day     string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// WeeklyFlow agrupa los asientos por día de la semana sumando ingresos y
// egresos por separado (alimenta el gráfico de barras comparativo).
// Asientos con fecha ilegible no se bucketizan.
func WeeklyFlow(transactions []entity.FinancialTransaction) []DayFlow {
	flow := make([]DayFlow, 7)
	for i := range flow {
		flow[i] = DayFlow{Day: weekDays[i], Income: decimal.Zero, Expense: decimal.Zero}
	}
	for _, t := range transactions {
		day, err := entity.ParseDate(t.Date)
		if err != nil {
			continue
		}
		idx := int(day.Weekday())
		if t.Type == entity.TransactionIncome {
			flow[idx].Income = flow[idx].Income.Add(t.Amount)
		} else {
			flow[idx].Expense = flow[idx].Expense.Add(t.Amount)
		}
	}
	return flow
}

// MaxFlow mayor valor individual entre todos los buckets, usado como
// denominador de normalización del gráfico. Con todos los buckets en cero
// devuelve 1 para evitar la división por cero.
func MaxFlow(flow []DayFlow) decimal.Decimal {
	max := decimal.Zero
	for _, f := range flow {
		if f.Income.GreaterThan(max) {
			max = f.Income
		}
		if f.Expense.GreaterThan(max) {
			max = f.Expense
		}
	}
	if max.IsZero() {
		return decimal.NewFromInt(1)
	}
	return max
}
