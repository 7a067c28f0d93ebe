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

func sampleOrder(id, tracking string) models.Order {
	return models.Order{
		ID:             id,
		TrackingNumber: tracking,
		CustomerName:   "Alice Martin",
		CustomerEmail:  "alice@example.com",
		Address:        "12 rue des Lilas",
		Total:          31,
		Status:         models.StatusPending,
		CreatedAt:      "2025-06-15T12:30:00Z",
		UpdatedAt:      "2025-06-15T12:30:00Z",
	}
}

func TestOrderAppendAndGet(t *testing.T) {
	s := NewOrderStore(t.TempDir())
	ctx := context.Background()

	o := sampleOrder("order-1", "CKL12345678001")
	require.NoError(t, s.Append(ctx, o))

	// Résolution par identifiant interne comme par numéro de suivi.
	byID, err := s.Get(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, o.TrackingNumber, byID.TrackingNumber)

	byTracking, err := s.Get(ctx, "CKL12345678001")
	require.NoError(t, err)
	assert.Equal(t, "order-1", byTracking.ID)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestOrderUpdateStatus(t *testing.T) {
	s := NewOrderStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, sampleOrder("order-1", "CKL12345678001")))

	updated, err := s.UpdateStatus(ctx, "order-1", models.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, updated.Status)
	assert.NotEqual(t, "2025-06-15T12:30:00Z", updated.UpdatedAt)

	_, err = s.UpdateStatus(ctx, "order-1", "teleported")
	assert.ErrorIs(t, err, store.ErrInvalidStatus)

	_, err = s.UpdateStatus(ctx, "missing", models.StatusShipped)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestOrderListEmpty(t *testing.T) {
	s := NewOrderStore(t.TempDir())

	orders, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderCorruptFileSurfacesError(t *testing.T) {
	s := NewOrderStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, os.WriteFile(s.path, []byte("<html>"), 0o644))

	_, err := s.List(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")

	_, err = s.Get(ctx, "order-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}
