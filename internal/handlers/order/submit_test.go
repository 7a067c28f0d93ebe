package order

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cakelandia_back_end/internal/models"
	"cakelandia_back_end/internal/store"
	filestore "cakelandia_back_end/internal/store/file"
)

func intPtr(v int) *int { return &v }

func setupStores(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	store.Use(store.Stores{
		Products: filestore.NewProductStore(dir),
		Orders:   filestore.NewOrderStore(dir),
		Homepage: filestore.NewHomepageStore(dir),
	})
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/submit-order", SubmitOrder)
	r.GET("/api/orders/track", TrackOrder)
	return r
}

func seedProduct(t *testing.T, p models.Product) {
	t.Helper()
	_, err := store.Products.Create(context.Background(), p)
	require.NoError(t, err)
}

func submitBody(items []models.CartItem, total float64) []byte {
	payload := map[string]interface{}{
		"orderData": map[string]interface{}{
			"customerName":  "Alice Martin",
			"customerEmail": "alice@example.com",
			"address":       "12 rue des Lilas",
			"items":         items,
			"total":         total,
		},
	}
	body, _ := json.Marshal(payload)
	return body
}

func TestSubmitOrderSuccess(t *testing.T) {
	setupStores(t)
	r := newRouter()

	seedProduct(t, models.Product{ID: "1", Name: "Chocolate Cake", Price: 25, Stock: intPtr(5)})

	items := []models.CartItem{
		{Product: models.Product{ID: "1", Name: "Chocolate Cake", Price: 25}, Quantity: 2},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submit-order", bytes.NewReader(submitBody(items, 50)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message        string `json:"message"`
		TrackingNumber string `json:"trackingNumber"`
		OrderID        string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Order submitted successfully", resp.Message)
	assert.Regexp(t, regexp.MustCompile(`^CKL\d{11}$`), resp.TrackingNumber)
	assert.NotEmpty(t, resp.OrderID)

	// Le stock a été décrémenté.
	products, err := store.Products.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, *products[0].Stock)

	// La commande est persistée en pending, avec les champs par défaut
	// comblés dans l'instantané.
	o, err := store.Orders.Get(context.Background(), resp.TrackingNumber)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, o.Status)
	assert.Equal(t, "Alice Martin", o.CustomerName)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "/images/placeholder.jpg", o.Items[0].Product.Image)
	assert.Equal(t, "other", o.Items[0].Product.Category)
	assert.Equal(t, 2, o.Items[0].Quantity)
}

func TestSubmitOrderInsufficientStock(t *testing.T) {
	setupStores(t)
	r := newRouter()

	seedProduct(t, models.Product{ID: "1", Name: "Chocolate Cake", Price: 25, Stock: intPtr(5)})

	items := []models.CartItem{
		{Product: models.Product{ID: "1", Name: "Chocolate Cake", Price: 25}, Quantity: 10},
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submit-order", bytes.NewReader(submitBody(items, 250)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message     string              `json:"message"`
		StockIssues []models.StockIssue `json:"stockIssues"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Inventory validation failed", resp.Message)
	require.Len(t, resp.StockIssues, 1)
	assert.Equal(t, models.StockIssue{ProductID: "1", Name: "Chocolate Cake", Requested: 10, Available: 5}, resp.StockIssues[0])

	// Rien n'a été écrit : stock intact, aucune commande.
	products, err := store.Products.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, *products[0].Stock)

	orders, err := store.Orders.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestSubmitOrderMissingFields(t *testing.T) {
	setupStores(t)
	r := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submit-order", bytes.NewReader([]byte(`{"orderData":{"customerName":"Alice Martin"}}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrackOrderEmailSecondFactor(t *testing.T) {
	setupStores(t)
	r := newRouter()

	require.NoError(t, store.Orders.Append(context.Background(), models.Order{
		ID:             "order-1",
		TrackingNumber: "CKL12345678001",
		CustomerName:   "Alice Martin",
		CustomerEmail:  "alice@example.com",
		Address:        "12 rue des Lilas",
		Status:         models.StatusPending,
		CreatedAt:      "2025-06-15T12:30:00Z",
		UpdatedAt:      "2025-06-15T12:30:00Z",
	}))

	// Sans email : le numéro de suivi suffit, et la vue est minimale.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders/track?trackingNumber=CKL12345678001", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var info map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "Alice", info["customerName"])
	assert.NotContains(t, info, "address")
	assert.NotContains(t, info, "customerEmail")

	// Email fourni mais différent : refus.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders/track?trackingNumber=CKL12345678001&email=bob@example.com", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// L'identifiant interne ne passe jamais par le suivi public.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders/track?trackingNumber=order-1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
