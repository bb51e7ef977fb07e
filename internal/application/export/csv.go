// Package export serializa las colecciones a CSV con los encabezados en
// pt-BR que espera la planilla de la tienda.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// Filename nombre de descarga para una colección, ej:
// clientes_futmais_2026-08-31.csv.
func Filename(collection string, now time.Time) string {
	return fmt.Sprintf("%s_futmais_%s.csv", collection, now.Format("2006-01-02"))
}

// ShipmentsFilename nombre de descarga del reporte logístico. Esta descarga
// no lleva el sufijo de la tienda, ej: logistica_2026-08-31.csv.
func ShipmentsFilename(now time.Time) string {
	return fmt.Sprintf("logistica_%s.csv", now.Format("2006-01-02"))
}

// CustomersCSV serializa la cartera de clientes.
func CustomersCSV(customers []entity.Customer) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"ID", "Nome", "Email", "Telefone", "Gasto Total", "Status", "Membro Desde", "Endereço"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("exportar clientes: %w", err)
	}
	for _, c := range customers {
		record := []string{
			c.ID,
			c.Name,
			c.Email,
			c.Phone,
			c.TotalSpent.StringFixed(2),
			string(c.Status),
			c.MemberSince,
			c.Address,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("exportar clientes: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("exportar clientes: %w", err)
	}
	return buf.Bytes(), nil
}

// SuppliersCSV serializa el directorio de proveedores. Las categorías van
// unidas por "; " en una sola celda.
func SuppliersCSV(suppliers []entity.Supplier) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"ID", "Empresa", "Contato", "Email", "Telefone", "Categorias", "Status", "Rating"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("exportar proveedores: %w", err)
	}
	for _, s := range suppliers {
		record := []string{
			s.ID,
			s.Name,
			s.Contact,
			s.Email,
			s.Phone,
			strings.Join(s.Category, "; "),
			string(s.Status),
			fmt.Sprintf("%d", s.Rating),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("exportar proveedores: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("exportar proveedores: %w", err)
	}
	return buf.Bytes(), nil
}

// ShipmentsCSV serializa el seguimiento logístico.
func ShipmentsCSV(shipments []entity.Shipment) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"ID", "Pedido", "Cliente", "Telefone", "Produto", "Transportadora", "Rastreio", "Status", "Previsão"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("exportar envíos: %w", err)
	}
	for _, s := range shipments {
		record := []string{
			s.ID,
			s.OrderID,
			s.CustomerName,
			s.CustomerPhone,
			s.ProductDescription,
			s.Carrier,
			s.TrackingCode,
			string(s.Status),
			s.EstimatedDelivery,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("exportar envíos: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("exportar envíos: %w", err)
	}
	return buf.Bytes(), nil
}

// TransactionsCSV serializa el libro financiero.
func TransactionsCSV(transactions []entity.FinancialTransaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"ID", "Data", "Descrição", "Categoria", "Tipo", "Valor", "Status"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("exportar movimientos: %w", err)
	}
	for _, t := range transactions {
		record := []string{
			t.ID,
			t.Date,
			t.Description,
			string(t.Category),
			string(t.Type),
			t.Amount.StringFixed(2),
			string(t.Status),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("exportar movimientos: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("exportar movimientos: %w", err)
	}
	return buf.Bytes(), nil
}
