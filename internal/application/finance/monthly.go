package finance

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// MonthPoint punto de la serie mensual de ventas.
type MonthPoint struct {
	Name  string // clave m/yyyy, ej: "8/2024"
	Value decimal.Decimal
}

// MonthlySeries agrupa los pedidos por mes calendario sumando sus totales,
// en orden cronológico. Pedidos con fecha ilegible no aportan.
func MonthlySeries(orders []entity.Order) []MonthPoint {
	type key struct {
		year  int
		month int
	}
	totals := make(map[key]decimal.Decimal)
	for _, o := range orders {
		day, err := entity.ParseDate(o.Date)
		if err != nil {
			continue
		}
		k := key{year: day.Year(), month: int(day.Month())}
		totals[k] = totals[k].Add(o.Total)
	}

	keys := make([]key, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	series := make([]MonthPoint, 0, len(keys))
	for _, k := range keys {
		series = append(series, MonthPoint{
			Name:  fmt.Sprintf("%d/%d", k.month, k.year),
			Value: totals[k],
		})
	}
	return series
}

// PlaceholderSeries serie fija de andamiaje visual para cuando la selección
// no tiene datos reales. Nunca se mezcla con valores agregados ni termina en
// un reporte persistido/exportado: la respuesta que la usa va marcada con el
// flag placeholder.
func PlaceholderSeries() []MonthPoint {
	months := []struct {
		name  string
		value int64
	}{
		{"Jan", 4000}, {"Fev", 3000}, {"Mar", 5000}, {"Abr", 2780},
		{"Mai", 1890}, {"Jun", 2390}, {"Jul", 3490}, {"Ago", 4200},
	}
	series := make([]MonthPoint, 0, len(months))
	for _, m := range months {
		series = append(series, MonthPoint{Name: m.name, Value: decimal.NewFromInt(m.value)})
	}
	return series
}
