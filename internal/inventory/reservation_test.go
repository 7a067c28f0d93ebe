package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cakelandia_back_end/internal/models"
)

func intPtr(v int) *int { return &v }

func catalog() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Chocolate Cake", Price: 25, Stock: intPtr(5)},
		{ID: "2", Name: "Croissant", Price: 3, Stock: intPtr(0)},
		{ID: "3", Name: "Gift Card", Price: 50}, // stock illimité
	}
}

func TestReserveDecrementsStock(t *testing.T) {
	products := catalog()

	updated, issues := Reserve(products, []models.ReservationLine{
		{ProductID: "1", Name: "Chocolate Cake", Quantity: 2},
	})

	assert.Empty(t, issues)
	assert.Len(t, updated, 3)
	assert.Equal(t, 3, *updated[0].Stock)

	// L'instantané d'origine n'est jamais modifié.
	assert.Equal(t, 5, *products[0].Stock)
}

func TestReserveAllOrNothing(t *testing.T) {
	products := catalog()

	updated, issues := Reserve(products, []models.ReservationLine{
		{ProductID: "1", Name: "Chocolate Cake", Quantity: 10},
		{ProductID: "2", Name: "Croissant", Quantity: 1},
		{ProductID: "missing", Name: "Ghost", Quantity: 1},
	})

	assert.Nil(t, updated)
	assert.Len(t, issues, 3)

	assert.Equal(t, models.StockIssue{ProductID: "1", Name: "Chocolate Cake", Requested: 10, Available: 5}, issues[0])
	assert.Equal(t, models.StockIssue{ProductID: "2", Name: "Croissant", Requested: 1, Available: 0}, issues[1])
	assert.Equal(t, models.StockIssue{ProductID: "missing", Name: "Ghost", Requested: 1, Available: 0}, issues[2])

	assert.Equal(t, 5, *products[0].Stock)
	assert.Equal(t, 0, *products[1].Stock)
}

func TestReserveUnlimitedStock(t *testing.T) {
	updated, issues := Reserve(catalog(), []models.ReservationLine{
		{ProductID: "3", Name: "Gift Card", Quantity: 100},
	})

	assert.Empty(t, issues)
	assert.Nil(t, updated[2].Stock)
}

func TestReserveSameProductTwice(t *testing.T) {
	updated, issues := Reserve(catalog(), []models.ReservationLine{
		{ProductID: "1", Quantity: 2},
		{ProductID: "1", Quantity: 3},
	})

	assert.Empty(t, issues)
	assert.Equal(t, 0, *updated[0].Stock)
}

func TestReserveQuantityFloor(t *testing.T) {
	// Une quantité absente ou négative vaut 1, jamais 0.
	updated, issues := Reserve(catalog(), []models.ReservationLine{
		{ProductID: "1", Quantity: 0},
	})

	assert.Empty(t, issues)
	assert.Equal(t, 4, *updated[0].Stock)
}

func TestReserveTrimsIdentifiers(t *testing.T) {
	products := []models.Product{
		{ID: " 1 ", Name: "Chocolate Cake", Stock: intPtr(5)},
	}

	updated, issues := Reserve(products, []models.ReservationLine{
		{ProductID: "1", Quantity: 1},
	})

	assert.Empty(t, issues)
	assert.Equal(t, 4, *updated[0].Stock)
}
