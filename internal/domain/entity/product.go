package entity

import "github.com/shopspring/decimal"

// StockStatus clasificación derivada del nivel de stock de un producto.
type StockStatus string

const (
	StockStatusInStock    StockStatus = "IN_STOCK"
	StockStatusLowStock   StockStatus = "LOW_STOCK"
	StockStatusOutOfStock StockStatus = "OUT_OF_STOCK"
)

// lowStockThreshold por debajo de este nivel (y stock > 0) el producto queda en LOW_STOCK.
const lowStockThreshold = 10

// StockStatusFor deriva la clasificación a partir del stock. Es función pura:
// el status nunca se asigna de forma independiente del stock.
func StockStatusFor(stock int) StockStatus {
	switch {
	case stock == 0:
		return StockStatusOutOfStock
	case stock < lowStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// ProductType tipo de artículo del catálogo.
type ProductType string

const (
	ProductTypeJersey    ProductType = "Jersey"
	ProductTypeAccessory ProductType = "Accessory"
	ProductTypeBall      ProductType = "Ball"
)

// ValidProductType indica si el tipo corresponde al catálogo.
func ValidProductType(t ProductType) bool {
	return t == ProductTypeJersey || t == ProductTypeAccessory || t == ProductTypeBall
}

// Product representa un artículo del catálogo de la tienda.
// Status se deriva siempre de Stock con StockStatusFor; Price y Cost son
// decimales no negativos.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	Cost        decimal.Decimal // costo unitario de adquisición
	Stock       int
	Image       string
	Team        string
	League      string
	Size        string
	SKU         string
	Status      StockStatus
	Type        ProductType
}
