package cartfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futmais/futmantos-api/internal/domain/entity"
	"github.com/futmais/futmantos-api/internal/infrastructure/cartfile"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := cartfile.NewStore(path)

	items := []entity.CartItem{
		{
			Product: entity.Product{
				ID:    "p1",
				Name:  "Camisa Titular",
				Price: decimal.NewFromFloat(199.90),
				Stock: 12,
			},
			Quantity: 2,
		},
		{
			Product:  entity.Product{ID: "p2", Name: "Bola Oficial", Price: decimal.NewFromInt(150)},
			Quantity: 1,
		},
	}
	require.NoError(t, store.Save(items))

	got, err := store.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].Product.ID)
	assert.Equal(t, 2, got[0].Quantity)
	assert.True(t, got[0].Product.Price.Equal(decimal.NewFromFloat(199.90)),
		"el precio debe sobrevivir el viaje por JSON, fue %s", got[0].Product.Price)
}

func TestStore_ArchivoInexistenteEsCarritoVacio(t *testing.T) {
	store := cartfile.NewStore(filepath.Join(t.TempDir(), "no-existe.json"))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_SaveReemplazaElSnapshotAnterior(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := cartfile.NewStore(path)

	require.NoError(t, store.Save([]entity.CartItem{
		{Product: entity.Product{ID: "p1"}, Quantity: 3},
	}))
	require.NoError(t, store.Save(nil)) // carrito vaciado

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got, "el snapshot es siempre el estado completo, no un append")

	// Sin archivo temporal residual tras el rename.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestStore_SnapshotCorruptoDevuelveError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o644))

	_, err := cartfile.NewStore(path).Load()
	assert.Error(t, err)
}
