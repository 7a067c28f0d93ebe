package file

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cakelandia_back_end/internal/models"
	"cakelandia_back_end/internal/store"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestProductCreateAndList(t *testing.T) {
	s := NewProductStore(t.TempDir())
	ctx := context.Background()

	created, err := s.Create(ctx, models.Product{ID: "1", Name: "Chocolate Cake", Price: 25, Stock: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, "1", created.ID)

	products, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Chocolate Cake", products[0].Name)
	assert.Equal(t, 5, *products[0].Stock)
}

func TestProductCreateGeneratesID(t *testing.T) {
	s := NewProductStore(t.TempDir())

	created, err := s.Create(context.Background(), models.Product{ID: "   ", Name: "Croissant"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Regexp(t, `^prod_\d+$`, created.ID)
}

func TestProductUpdate(t *testing.T) {
	s := NewProductStore(t.TempDir())
	ctx := context.Background()

	_, err := s.Create(ctx, models.Product{ID: "1", Name: "Croissant", Price: 3})
	require.NoError(t, err)

	updated, err := s.Update(ctx, " 1 ", models.ProductPatch{Name: strPtr("Croissant au beurre"), Stock: intPtr(12)})
	require.NoError(t, err)
	assert.Equal(t, "Croissant au beurre", updated.Name)
	assert.Equal(t, 3.0, updated.Price)
	assert.Equal(t, 12, *updated.Stock)

	_, err = s.Update(ctx, "missing", models.ProductPatch{})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Update(ctx, "  ", models.ProductPatch{})
	assert.ErrorIs(t, err, store.ErrEmptyID)
}

func TestProductDelete(t *testing.T) {
	s := NewProductStore(t.TempDir())
	ctx := context.Background()

	_, err := s.Create(ctx, models.Product{ID: "1", Name: "Croissant"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "1"))

	products, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	assert.ErrorIs(t, s.Delete(ctx, "1"), store.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, ""), store.ErrEmptyID)
}

func TestProductDeleteEmptyIDs(t *testing.T) {
	dir := t.TempDir()
	s := NewProductStore(dir)
	ctx := context.Background()

	// Fichier hérité contenant des produits sans identifiant.
	seed := []models.Product{
		{ID: "", Name: "Legacy A"},
		{ID: "1", Name: "Chocolate Cake"},
		{ID: "", Name: "Legacy B"},
	}
	require.NoError(t, writeJSON(s.path, seed))

	count, err := s.DeleteEmptyIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	products, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0].ID)

	_, err = s.DeleteEmptyIDs(ctx)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestProductCorruptFileSurfacesError(t *testing.T) {
	s := NewProductStore(t.TempDir())
	ctx := context.Background()

	// Contenu illisible : erreur remontée telle quelle, jamais une
	// collection vide silencieuse.
	require.NoError(t, os.WriteFile(s.path, []byte("not json {"), 0o644))

	_, err := s.List(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")

	issues, err := s.Reserve(ctx, []models.ReservationLine{{ProductID: "1", Quantity: 1}})
	require.Error(t, err)
	assert.Nil(t, issues)

	// Le fichier n'est pas réparé ni écrasé en chemin.
	data, readErr := os.ReadFile(s.path)
	require.NoError(t, readErr)
	assert.Equal(t, "not json {", string(data))
}

func TestProductReserveCommitsOnSuccess(t *testing.T) {
	s := NewProductStore(t.TempDir())
	ctx := context.Background()

	_, err := s.Create(ctx, models.Product{ID: "1", Name: "Chocolate Cake", Stock: intPtr(5)})
	require.NoError(t, err)

	issues, err := s.Reserve(ctx, []models.ReservationLine{
		{ProductID: "1", Name: "Chocolate Cake", Quantity: 2},
	})
	require.NoError(t, err)
	assert.Empty(t, issues)

	products, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, *products[0].Stock)
}

func TestProductReserveLeavesFileOnRefusal(t *testing.T) {
	s := NewProductStore(t.TempDir())
	ctx := context.Background()

	_, err := s.Create(ctx, models.Product{ID: "1", Name: "Chocolate Cake", Stock: intPtr(5)})
	require.NoError(t, err)

	issues, err := s.Reserve(ctx, []models.ReservationLine{
		{ProductID: "1", Name: "Chocolate Cake", Quantity: 10},
	})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, models.StockIssue{ProductID: "1", Name: "Chocolate Cake", Requested: 10, Available: 5}, issues[0])

	products, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, *products[0].Stock)
}
