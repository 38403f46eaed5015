package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/ordering/internal/domain"
	"github.com/vladislavdragonenkov/ordering/internal/service/catalog"
)

const seedYAML = `
products:
  - id: 0b7c6a52-3f0e-4a3a-9a53-2b8f8f1c0d11
    price: "19.90"
  - price: "5"
    active: false
    supplier_id: 6f1d3c8e-1d7a-4a51-8f3e-2e9a7c5b4d22
`

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	items, err := catalog.LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "19.90", items[0].Price)
	require.Nil(t, items[0].Active)
	require.NotNil(t, items[1].Active)
	require.False(t, *items[1].Active)
}

func TestLoadSeedFile_Missing(t *testing.T) {
	_, err := catalog.LoadSeedFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestSeed(t *testing.T) {
	svc, _ := newService(t)

	items, err := catalog.ParseSeed([]byte(seedYAML))
	require.NoError(t, err)

	added, err := svc.Seed(items)
	require.NoError(t, err)
	require.Equal(t, 2, added)

	known, err := svc.GetByID(uuid.MustParse("0b7c6a52-3f0e-4a3a-9a53-2b8f8f1c0d11"))
	require.NoError(t, err)
	require.True(t, known.Active)

	views, err := svc.List()
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.False(t, views[1].Active)
	require.NotNil(t, views[1].SupplierID)

	again, err := svc.Seed(items[:1])
	require.NoError(t, err)
	require.Zero(t, again, "existing products are skipped")
}

func TestSeed_InvalidPrice(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Seed([]catalog.SeedProduct{{Price: "free"}})
	require.ErrorIs(t, err, domain.ErrInvalidValue)
}
