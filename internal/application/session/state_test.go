package session_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futmais/futmantos-api/internal/application/session"
	"github.com/futmais/futmantos-api/internal/domain/entity"
)

func TestState_ProductoAgregarActualizarBorrar(t *testing.T) {
	s := session.New()

	s.ApplyProductAdded(entity.Product{ID: "p1", Name: "Camisa", Stock: 12})
	s.ApplyProductAdded(entity.Product{ID: "p2", Name: "Bola", Stock: 3})

	p, ok := s.Product("p1")
	require.True(t, ok)
	assert.Equal(t, "Camisa", p.Name)

	s.ApplyProductUpdated(entity.Product{ID: "p1", Name: "Camisa Titular", Stock: 12})
	p, _ = s.Product("p1")
	assert.Equal(t, "Camisa Titular", p.Name)

	s.ApplyProductDeleted("p1")
	_, ok = s.Product("p1")
	assert.False(t, ok)
	assert.Len(t, s.Products(), 1)
}

func TestState_StockYStatusDerivado(t *testing.T) {
	s := session.New()
	s.ApplyProductAdded(entity.Product{ID: "p1", Stock: 12, Status: entity.StockStatusInStock})

	s.ApplyStockChanged("p1", 4, entity.StockStatusFor(4))

	p, _ := s.Product("p1")
	assert.Equal(t, 4, p.Stock)
	assert.Equal(t, entity.StockStatusLowStock, p.Status)
}

func TestState_PedidosMasRecientesPrimero(t *testing.T) {
	s := session.New()

	s.ApplyOrderAdded(entity.Order{ID: "#PED-0001"})
	s.ApplyOrderAdded(entity.Order{ID: "#PED-0002"})

	orders := s.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, "#PED-0002", orders[0].ID, "el pedido nuevo se antepone")

	s.ApplyOrderStatus("#PED-0001", entity.OrderStatusDelivered)
	o, ok := s.Order("#PED-0001")
	require.True(t, ok)
	assert.Equal(t, entity.OrderStatusDelivered, o.Status)
}

func TestState_LibroAntepone(t *testing.T) {
	s := session.New()

	s.ApplyTransactionAdded(entity.FinancialTransaction{ID: "TR-00001"})
	s.ApplyTransactionAdded(entity.FinancialTransaction{ID: "TR-00002"})

	txs := s.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, "TR-00002", txs[0].ID)
}

func TestState_TotalSpent(t *testing.T) {
	s := session.New()
	s.ApplyCustomerAdded(entity.Customer{ID: "c1", Name: "João", TotalSpent: decimal.NewFromInt(500)})

	s.ApplyTotalSpent("c1", decimal.NewFromInt(1050))

	c, ok := s.Customer("c1")
	require.True(t, ok)
	assert.True(t, c.TotalSpent.Equal(decimal.NewFromInt(1050)))
}

func TestState_LasLecturasSonCopias(t *testing.T) {
	s := session.New()
	s.ApplyProductAdded(entity.Product{ID: "p1", Name: "Camisa"})

	snapshot := s.Products()
	snapshot[0].Name = "mutado"

	p, _ := s.Product("p1")
	assert.Equal(t, "Camisa", p.Name, "mutar el slice devuelto no debe tocar el estado")
}
