// Package pos implementa el punto de venta: el carrito de la venta en curso
// y el pipeline de checkout que lo convierte en registros durables.
package pos

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/futmais/futmantos-api/internal/domain/entity"
	"github.com/futmais/futmantos-api/pkg/logger"
)

// Cart multiconjunto (producto, cantidad) de la venta en curso. Independiente
// del almacén remoto hasta el checkout. Cada mutación respalda el snapshot
// completo en el CartStore; esa persistencia es best-effort: un fallo se
// registra en el log y se traga, nunca se propaga al llamador.
type Cart struct {
	mu    sync.Mutex
	items []entity.CartItem
	store CartStore
	log   *logger.Logger
}

// NewCart crea el carrito y recarga el snapshot local si existe, para que
// una sesión interrumpida se reanude donde quedó.
func NewCart(store CartStore, log *logger.Logger) *Cart {
	c := &Cart{store: store, log: log}
	if store != nil {
		items, err := store.Load()
		if err != nil {
			log.Warn().Err(err).Msg("no se pudo recargar el carrito local")
		} else {
			c.items = items
		}
	}
	return c
}

// Add agrega una unidad del producto. Sin stock es un no-op silencioso; si la
// línea ya existe, incrementa su cantidad en 1.
func (c *Cart) Add(product entity.Product) {
	if product.Stock == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity++
			c.persistLocked()
			return
		}
	}
	c.items = append(c.items, entity.CartItem{Product: product, Quantity: 1})
	c.persistLocked()
}

// Remove elimina la línea completa sin importar la cantidad.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persistLocked()
			return
		}
	}
}

// ChangeQuantity suma delta a la cantidad de la línea. Si el resultado
// quedaría en 0 o negativo, se descarta y la línea conserva su cantidad:
// la única forma de vaciar una línea es Remove.
func (c *Cart) ChangeQuantity(productID string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			newQty := c.items[i].Quantity + delta
			if newQty <= 0 {
				return
			}
			c.items[i].Quantity = newQty
			c.persistLocked()
			return
		}
	}
}

// Total Σ precio×cantidad, recalculado en cada llamada, nunca almacenado.
// Sin redondeo más allá de la precisión nativa del decimal; el formateo a
// dos decimales es asunto de la capa de presentación.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// Items copia de las líneas actuales.
func (c *Cart) Items() []entity.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.CartItem(nil), c.items...)
}

// Len cantidad de líneas (productos distintos).
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persistLocked()
}

// persistLocked respalda el snapshot completo. Requiere c.mu tomado.
func (c *Cart) persistLocked() {
	if c.store == nil {
		return
	}
	snapshot := append([]entity.CartItem(nil), c.items...)
	if err := c.store.Save(snapshot); err != nil {
		c.log.Warn().Err(err).Msg("no se pudo respaldar el carrito local")
	}
}
