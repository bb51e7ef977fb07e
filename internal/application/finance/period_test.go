package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futmais/futmantos-api/internal/application/finance"
	"github.com/futmais/futmantos-api/internal/domain"
	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// ref jueves 15/08/2024, usado como "hoy" en todos los períodos relativos.
var ref = time.Date(2024, time.August, 15, 14, 30, 0, 0, time.UTC)

func fecha(d string) time.Time {
	t, err := entity.ParseDate(d)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPeriod_HoyExcluyeAyer(t *testing.T) {
	p := finance.Today(ref)

	assert.True(t, p.Contains(fecha("15/08/2024")))
	assert.False(t, p.Contains(fecha("14/08/2024")), "ayer no pertenece a hoy")
	assert.False(t, p.Contains(fecha("16/08/2024")))
}

func TestPeriod_Ayer(t *testing.T) {
	p := finance.Yesterday(ref)

	assert.True(t, p.Contains(fecha("14/08/2024")))
	assert.False(t, p.Contains(fecha("15/08/2024")))
}

func TestPeriod_Ultimos7Dias(t *testing.T) {
	p := finance.Last7Days(ref)

	assert.True(t, p.Contains(fecha("15/08/2024")), "hoy entra en la ventana")
	assert.True(t, p.Contains(fecha("08/08/2024")), "el borde inferior es inclusivo")
	assert.False(t, p.Contains(fecha("07/08/2024")), "ocho días atrás queda fuera")
	assert.False(t, p.Contains(fecha("16/08/2024")))
}

func TestPeriod_MesCalendario(t *testing.T) {
	p := finance.MonthOf(2024, time.August)

	assert.True(t, p.Contains(fecha("01/08/2024")))
	assert.True(t, p.Contains(fecha("31/08/2024")))
	assert.False(t, p.Contains(fecha("31/07/2024")))
	assert.False(t, p.Contains(fecha("01/09/2024")))
}

func TestPeriod_RangoPersonalizadoInclusivo(t *testing.T) {
	p := finance.Between(fecha("10/08/2024"), fecha("12/08/2024"))

	assert.True(t, p.Contains(fecha("10/08/2024")))
	assert.True(t, p.Contains(fecha("12/08/2024")))
	assert.False(t, p.Contains(fecha("13/08/2024")))
}

func TestPeriod_TotalNoFiltra(t *testing.T) {
	p := finance.AllTime()
	assert.True(t, p.Contains(fecha("01/01/1999")))
}

func TestParse(t *testing.T) {
	p, err := finance.Parse("month", "2024-08", "", "", ref)
	require.NoError(t, err)
	assert.True(t, p.Contains(fecha("20/08/2024")))

	p, err = finance.Parse("custom", "", "2024-08-10", "2024-08-12", ref)
	require.NoError(t, err)
	assert.True(t, p.Contains(fecha("11/08/2024")))

	// Sin selector se asume el histórico completo.
	p, err = finance.Parse("", "", "", "", ref)
	require.NoError(t, err)
	assert.Equal(t, finance.PeriodTotal, p.Kind())

	_, err = finance.Parse("quarter", "", "", "", ref)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "selector desconocido debe rechazarse")

	_, err = finance.Parse("month", "agosto", "", "", ref)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = finance.Parse("custom", "", "2024-08-10", "", ref)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "rango incompleto debe rechazarse")
}

func TestFilterTransactions_ConservaFechasIlegibles(t *testing.T) {
	txs := []entity.FinancialTransaction{
		{ID: "TR-1", Date: "15/08/2024", Amount: decimal.NewFromInt(100)},
		{ID: "TR-2", Date: "01/01/2020", Amount: decimal.NewFromInt(50)},
		{ID: "TR-3", Date: "sin fecha", Amount: decimal.NewFromInt(10)},
	}

	got := finance.FilterTransactions(txs, finance.Today(ref))

	require.Len(t, got, 2)
	assert.Equal(t, "TR-1", got[0].ID)
	assert.Equal(t, "TR-3", got[1].ID, "un asiento con fecha ilegible se conserva en el flujo")
}

func TestFilterOrders_DescartaFechasIlegibles(t *testing.T) {
	orders := []entity.Order{
		{ID: "#PED-0001", Date: "15/08/2024"},
		{ID: "#PED-0002", Date: "???"},
	}

	got := finance.FilterOrders(orders, finance.Today(ref))

	require.Len(t, got, 1)
	assert.Equal(t, "#PED-0001", got[0].ID, "un pedido con fecha ilegible queda fuera de las métricas")
}
