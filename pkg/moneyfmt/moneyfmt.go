// Package moneyfmt formatea montos en reales brasileños (pt-BR).
// La tienda opera en una sola moneda con formato fijo; no hay abstracción
// de moneda/locale más allá de esto.
package moneyfmt

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// BRL formatea un decimal como moneda pt-BR, ej: "R$ 1.234,56".
// El redondeo a dos decimales es solo de presentación; los cálculos
// conservan la precisión nativa del decimal.
func BRL(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("R$ %.2f", f)
}
