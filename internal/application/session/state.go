// Package session mantiene el espejo en memoria de las colecciones del
// almacén remoto. Se carga una vez al arranque y se muta de forma optimista
// solo después de cada escritura confirmada: toda mutación pasa por los
// métodos Apply* con nombre, nunca por setters ad hoc.
package session

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/futmais/futmantos-api/internal/domain/entity"
	"github.com/futmais/futmantos-api/internal/domain/repository"
)

// Repos puertos de lectura necesarios para la carga inicial.
type Repos struct {
	Products     repository.ProductRepository
	Customers    repository.CustomerRepository
	Orders       repository.OrderRepository
	Suppliers    repository.SupplierRepository
	Shipments    repository.ShipmentRepository
	Transactions repository.TransactionRepository
}

// State estado de sesión de la terminal. Un solo escritor lógico (las
// acciones de usuario se serializan por el lock); los lectores obtienen
// copias de los slices.
type State struct {
	mu           sync.RWMutex
	products     []entity.Product
	customers    []entity.Customer
	orders       []entity.Order // más recientes primero
	suppliers    []entity.Supplier
	shipments    []entity.Shipment
	transactions []entity.FinancialTransaction // más recientes primero
}

// New crea un estado vacío.
func New() *State {
	return &State{}
}

// Load carga todas las colecciones desde los repositorios. Se llama una vez
// al arranque; un error deja el estado sin tocar.
func (s *State) Load(repos Repos) error {
	products, err := repos.Products.List()
	if err != nil {
		return err
	}
	customers, err := repos.Customers.List()
	if err != nil {
		return err
	}
	orders, err := repos.Orders.List()
	if err != nil {
		return err
	}
	suppliers, err := repos.Suppliers.List()
	if err != nil {
		return err
	}
	shipments, err := repos.Shipments.List()
	if err != nil {
		return err
	}
	transactions, err := repos.Transactions.List()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = deref(products)
	s.customers = deref(customers)
	s.orders = deref(orders)
	s.suppliers = deref(suppliers)
	s.shipments = deref(shipments)
	s.transactions = deref(transactions)
	return nil
}

func deref[T any](in []*T) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}
	return out
}

// ── Lecturas (devuelven copias) ───────────────────────────────────────────────

// Products copia del catálogo.
func (s *State) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Product(nil), s.products...)
}

// Product busca un producto por ID.
func (s *State) Product(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// Customers copia de la cartera de clientes.
func (s *State) Customers() []entity.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Customer(nil), s.customers...)
}

// Customer busca un cliente por ID.
func (s *State) Customer(id string) (entity.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Customer{}, false
}

// Orders copia de los pedidos, más recientes primero.
func (s *State) Orders() []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Order(nil), s.orders...)
}

// Order busca un pedido por ID.
func (s *State) Order(id string) (entity.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return entity.Order{}, false
}

// Suppliers copia del directorio de proveedores.
func (s *State) Suppliers() []entity.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Supplier(nil), s.suppliers...)
}

// Supplier busca un proveedor por ID.
func (s *State) Supplier(id string) (entity.Supplier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sp := range s.suppliers {
		if sp.ID == id {
			return sp, true
		}
	}
	return entity.Supplier{}, false
}

// Shipments copia de los envíos.
func (s *State) Shipments() []entity.Shipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Shipment(nil), s.shipments...)
}

// Shipment busca un envío por ID.
func (s *State) Shipment(id string) (entity.Shipment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sh := range s.shipments {
		if sh.ID == id {
			return sh, true
		}
	}
	return entity.Shipment{}, false
}

// Transactions copia del libro financiero, más recientes primero.
func (s *State) Transactions() []entity.FinancialTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.FinancialTransaction(nil), s.transactions...)
}

// ── Mutaciones (solo tras escritura confirmada en el almacén) ────────────────

// ApplyProductAdded agrega un producto al catálogo en memoria.
func (s *State) ApplyProductAdded(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
}

// ApplyProductUpdated reemplaza el producto con el mismo ID.
func (s *State) ApplyProductUpdated(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return
		}
	}
}

// ApplyProductDeleted retira el producto del catálogo en memoria.
func (s *State) ApplyProductDeleted(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// ApplyStockChanged fija stock y status derivado del producto.
func (s *State) ApplyStockChanged(id string, stock int, status entity.StockStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Stock = stock
			s.products[i].Status = status
			return
		}
	}
}

// ApplyCustomerAdded agrega un cliente (al frente, como lo muestra la UI).
func (s *State) ApplyCustomerAdded(c entity.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append([]entity.Customer{c}, s.customers...)
}

// ApplyCustomerUpdated reemplaza el cliente con el mismo ID.
func (s *State) ApplyCustomerUpdated(c entity.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			s.customers[i] = c
			return
		}
	}
}

// ApplyCustomerDeleted retira el cliente.
func (s *State) ApplyCustomerDeleted(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return
		}
	}
}

// ApplyTotalSpent fija el acumulado de gasto del cliente.
func (s *State) ApplyTotalSpent(id string, totalSpent decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers[i].TotalSpent = totalSpent
			return
		}
	}
}

// ApplyOrderAdded antepone el pedido (más reciente primero).
func (s *State) ApplyOrderAdded(o entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]entity.Order{o}, s.orders...)
}

// ApplyOrderStatus fija el estado del pedido.
func (s *State) ApplyOrderStatus(id string, status entity.OrderStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return
		}
	}
}

// ApplySupplierAdded antepone el proveedor.
func (s *State) ApplySupplierAdded(sp entity.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppliers = append([]entity.Supplier{sp}, s.suppliers...)
}

// ApplySupplierUpdated reemplaza el proveedor con el mismo ID.
func (s *State) ApplySupplierUpdated(sp entity.Supplier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.suppliers {
		if s.suppliers[i].ID == sp.ID {
			s.suppliers[i] = sp
			return
		}
	}
}

// ApplySupplierDeleted retira el proveedor.
func (s *State) ApplySupplierDeleted(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.suppliers {
		if s.suppliers[i].ID == id {
			s.suppliers = append(s.suppliers[:i], s.suppliers[i+1:]...)
			return
		}
	}
}

// ApplyShipmentAdded antepone el envío.
func (s *State) ApplyShipmentAdded(sh entity.Shipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shipments = append([]entity.Shipment{sh}, s.shipments...)
}

// ApplyShipmentUpdated reemplaza el envío con el mismo ID.
func (s *State) ApplyShipmentUpdated(sh entity.Shipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.shipments {
		if s.shipments[i].ID == sh.ID {
			s.shipments[i] = sh
			return
		}
	}
}

// ApplyShipmentDeleted retira el envío.
func (s *State) ApplyShipmentDeleted(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.shipments {
		if s.shipments[i].ID == id {
			s.shipments = append(s.shipments[:i], s.shipments[i+1:]...)
			return
		}
	}
}

// ApplyTransactionAdded antepone el asiento al libro (append-only).
func (s *State) ApplyTransactionAdded(t entity.FinancialTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]entity.FinancialTransaction{t}, s.transactions...)
}
