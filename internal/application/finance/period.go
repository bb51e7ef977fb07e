// Package finance deriva resúmenes y series del libro financiero y de los
// pedidos. Todo se recalcula recorriendo la colección completa en cada
// consulta; no hay mantenimiento incremental.
package finance

import (
	"time"

	"github.com/futmais/futmantos-api/internal/domain"
	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// PeriodKind selector de período soportado por los paneles.
type PeriodKind string

const (
	PeriodToday     PeriodKind = "today"
	PeriodYesterday PeriodKind = "yesterday"
	PeriodLast7Days PeriodKind = "7days"
	PeriodMonth     PeriodKind = "month"
	PeriodCustom    PeriodKind = "custom"
	PeriodTotal     PeriodKind = "total"
)

// Period ventana de fechas contra la que se filtran asientos y pedidos.
// Los límites son inclusivos; hoy/ayer comparan por igualdad exacta de día
// calendario, independiente de la hora.
type Period struct {
	kind  PeriodKind
	ref   time.Time // "hoy" de referencia para los períodos relativos
	year  int
	month time.Month
	start time.Time
	end   time.Time
}

// AllTime período sin filtro.
func AllTime() Period {
	return Period{kind: PeriodTotal}
}

// Today período de un solo día: hoy.
func Today(now time.Time) Period {
	return Period{kind: PeriodToday, ref: dayOf(now)}
}

// Yesterday período de un solo día: ayer.
func Yesterday(now time.Time) Period {
	return Period{kind: PeriodYesterday, ref: dayOf(now)}
}

// Last7Days ventana rodante de 7 días hacia atrás, incluyendo hoy.
func Last7Days(now time.Time) Period {
	return Period{kind: PeriodLast7Days, ref: dayOf(now)}
}

// MonthOf un mes calendario completo.
func MonthOf(year int, month time.Month) Period {
	return Period{kind: PeriodMonth, year: year, month: month}
}

// Between rango explícito [start, end], ambos inclusivos.
func Between(start, end time.Time) Period {
	return Period{kind: PeriodCustom, start: dayOf(start), end: dayOf(end)}
}

// Parse construye el período desde los parámetros de consulta de la API:
// period=today|yesterday|7days|month|custom|total, month=yyyy-mm,
// start/end=yyyy-mm-dd. Valores desconocidos o rangos incompletos → error.
func Parse(kind, monthStr, startStr, endStr string, now time.Time) (Period, error) {
	switch PeriodKind(kind) {
	case PeriodToday:
		return Today(now), nil
	case PeriodYesterday:
		return Yesterday(now), nil
	case PeriodLast7Days:
		return Last7Days(now), nil
	case PeriodMonth:
		m, err := time.Parse("2006-01", monthStr)
		if err != nil {
			return Period{}, domain.ErrInvalidInput
		}
		return MonthOf(m.Year(), m.Month()), nil
	case PeriodCustom:
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return Period{}, domain.ErrInvalidInput
		}
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return Period{}, domain.ErrInvalidInput
		}
		return Between(start, end), nil
	case PeriodTotal, "":
		return AllTime(), nil
	}
	return Period{}, domain.ErrInvalidInput
}

// Kind tipo del período.
func (p Period) Kind() PeriodKind { return p.kind }

// Contains indica si el día calendario cae dentro del período.
func (p Period) Contains(t time.Time) bool {
	day := dayOf(t)
	switch p.kind {
	case PeriodToday:
		return day.Equal(p.ref)
	case PeriodYesterday:
		return day.Equal(p.ref.AddDate(0, 0, -1))
	case PeriodLast7Days:
		sevenDaysAgo := p.ref.AddDate(0, 0, -7)
		return !day.Before(sevenDaysAgo) && !day.After(p.ref)
	case PeriodMonth:
		return day.Year() == p.year && day.Month() == p.month
	case PeriodCustom:
		return !day.Before(p.start) && !day.After(p.end)
	default: // PeriodTotal
		return true
	}
}

// FilterTransactions filtra asientos por fecha. Un asiento con fecha que no
// se puede interpretar se conserva (mejor mostrarlo que perderlo del flujo
// de caja).
func FilterTransactions(transactions []entity.FinancialTransaction, p Period) []entity.FinancialTransaction {
	out := make([]entity.FinancialTransaction, 0, len(transactions))
	for _, t := range transactions {
		day, err := entity.ParseDate(t.Date)
		if err != nil {
			out = append(out, t)
			continue
		}
		if p.Contains(day) {
			out = append(out, t)
		}
	}
	return out
}

// FilterOrders filtra pedidos por fecha. Un pedido con fecha ilegible queda
// fuera de las métricas.
func FilterOrders(orders []entity.Order, p Period) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		day, err := entity.ParseDate(o.Date)
		if err != nil {
			continue
		}
		if p.Contains(day) {
			out = append(out, o)
		}
	}
	return out
}

// dayOf trunca a día calendario (00:00 hora local).
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
