package entity

import "time"

// DateLayout formato de fecha visible de la tienda (pt-BR, dd/mm/yyyy).
// Es el mismo string que se persiste; no se guarda ISO.
const DateLayout = "02/01/2006"

// FormatDate formatea una fecha al layout de la tienda.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate interpreta una fecha dd/mm/yyyy.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
