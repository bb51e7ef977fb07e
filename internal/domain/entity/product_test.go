package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/futmais/futmantos-api/internal/domain/entity"
)

func TestStockStatusFor_Umbrales(t *testing.T) {
	cases := []struct {
		stock    int
		expected entity.StockStatus
	}{
		{0, entity.StockStatusOutOfStock},
		{1, entity.StockStatusLowStock},
		{9, entity.StockStatusLowStock},
		{10, entity.StockStatusInStock},
		{500, entity.StockStatusInStock},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, entity.StockStatusFor(tc.stock),
			"stock %d debe clasificar como %s", tc.stock, tc.expected)
	}
}

func TestValidProductType(t *testing.T) {
	assert.True(t, entity.ValidProductType(entity.ProductTypeJersey))
	assert.True(t, entity.ValidProductType(entity.ProductTypeAccessory))
	assert.True(t, entity.ValidProductType(entity.ProductTypeBall))
	assert.False(t, entity.ValidProductType("Sticker"), "tipo desconocido debe rechazarse")
}

func TestShipmentStatusIndex(t *testing.T) {
	assert.Equal(t, 0, entity.ShipmentStatusPreparing.StatusIndex())
	assert.Equal(t, 3, entity.ShipmentStatusDelivered.StatusIndex())
	assert.Equal(t, -1, entity.ShipmentStatus("Perdido").StatusIndex(),
		"etapa desconocida debe dar índice -1")
}
