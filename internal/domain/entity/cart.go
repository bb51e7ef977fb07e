package entity

// CartItem línea transitoria de una venta en curso: snapshot del producto
// más la cantidad (siempre ≥ 1). Vive solo durante la sesión de venta y se
// respalda en almacenamiento local para sobrevivir reinicios.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}
