package pos_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futmais/futmantos-api/internal/application/pos"
	"github.com/futmais/futmantos-api/internal/domain/entity"
	"github.com/futmais/futmantos-api/pkg/logger"
)

// memStore CartStore en memoria que cuenta los respaldos.
type memStore struct {
	items []entity.CartItem
	saves int
	fail  bool
}

func (s *memStore) Save(items []entity.CartItem) error {
	if s.fail {
		return errors.New("disco lleno")
	}
	s.items = append([]entity.CartItem(nil), items...)
	s.saves++
	return nil
}

func (s *memStore) Load() ([]entity.CartItem, error) {
	return append([]entity.CartItem(nil), s.items...), nil
}

func producto(id string, price float64, stock int) entity.Product {
	return entity.Product{
		ID:     id,
		Name:   "Camisa " + id,
		Price:  decimal.NewFromFloat(price),
		Stock:  stock,
		Status: entity.StockStatusFor(stock),
	}
}

func TestCart_AddIncrementaLineaExistente(t *testing.T) {
	cart := pos.NewCart(&memStore{}, logger.Nop())

	p := producto("p1", 199.90, 15)
	cart.Add(p)
	cart.Add(p)

	items := cart.Items()
	require.Len(t, items, 1, "dos Add del mismo producto deben quedar en una sola línea")
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, cart.Total().Equal(decimal.NewFromFloat(399.80)),
		"total debe ser precio × cantidad, fue %s", cart.Total())
}

func TestCart_AddSinStockEsNoOp(t *testing.T) {
	store := &memStore{}
	cart := pos.NewCart(store, logger.Nop())

	cart.Add(producto("agotado", 99.90, 0))

	assert.Equal(t, 0, cart.Len(), "producto sin stock no debe entrar al carrito")
	assert.Equal(t, 0, store.saves, "un no-op no debe respaldar el snapshot")
}

func TestCart_ChangeQuantityDescartaResultadoNoPositivo(t *testing.T) {
	cart := pos.NewCart(&memStore{}, logger.Nop())
	cart.Add(producto("p1", 50, 20))
	cart.ChangeQuantity("p1", 2) // 1 -> 3

	cart.ChangeQuantity("p1", -3) // quedaría en 0: se descarta
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity, "un resultado ≤ 0 debe conservar la cantidad previa")

	cart.ChangeQuantity("p1", -1)
	assert.Equal(t, 2, cart.Items()[0].Quantity)
}

func TestCart_RemoveEliminaLineaCompleta(t *testing.T) {
	cart := pos.NewCart(&memStore{}, logger.Nop())
	p := producto("p1", 50, 20)
	cart.Add(p)
	cart.Add(p)
	cart.Add(producto("p2", 30, 5))

	cart.Remove("p1")

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].Product.ID)
}

func TestCart_SnapshotSobreviveReinicio(t *testing.T) {
	store := &memStore{}
	cart := pos.NewCart(store, logger.Nop())
	cart.Add(producto("p1", 120, 8))
	cart.Add(producto("p2", 80, 12))

	// "Reinicio": un carrito nuevo sobre el mismo store recupera las líneas.
	reloaded := pos.NewCart(store, logger.Nop())
	assert.Equal(t, 2, reloaded.Len())
	assert.True(t, reloaded.Total().Equal(cart.Total()))
}

func TestCart_PersistenciaFallidaNoSePropaga(t *testing.T) {
	cart := pos.NewCart(&memStore{fail: true}, logger.Nop())

	cart.Add(producto("p1", 120, 8))

	assert.Equal(t, 1, cart.Len(), "el carrito en memoria debe mutar aunque el respaldo falle")
}
