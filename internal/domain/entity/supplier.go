package entity

// SupplierStatus estado de la relación comercial con el proveedor.
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "Active"
	SupplierStatusInactive SupplierStatus = "Inactive"
)

// Supplier proveedor del directorio de la tienda. Rating va de 1 a 5.
type Supplier struct {
	ID       string
	Name     string
	Contact  string
	Email    string
	Phone    string
	Category []string // etiquetas libres, ej: "Camisas", "Importado"
	Rating   int
	Status   SupplierStatus
	Image    string
}
