// Package cartfile persiste el carrito en un archivo JSON local. Es el único
// dato que no viaja al almacén remoto: un snapshot en el dispositivo para que
// un reinicio de la terminal no pierda la venta en curso.
package cartfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/futmais/futmantos-api/internal/application/pos"
	"github.com/futmais/futmantos-api/internal/domain/entity"
)

var _ pos.CartStore = (*Store)(nil)

// Store snapshot plano del carrito sobre un archivo de nombre fijo.
type Store struct {
	path string
}

// NewStore construye el store sobre la ruta dada.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save escribe el snapshot completo del carrito. Escritura atómica vía
// archivo temporal + rename para no dejar un snapshot a medias.
func (s *Store) Save(items []entity.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serializar carrito: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir carrito: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("guardar carrito: %w", err)
	}
	return nil
}

// Load lee el snapshot. Archivo inexistente equivale a carrito vacío.
func (s *Store) Load() ([]entity.CartItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer carrito: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var items []entity.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("interpretar carrito: %w", err)
	}
	return items, nil
}
