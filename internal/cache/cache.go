package cache

import (
	"context"
	"encoding/json"
	"time"

	"cakelandia_back_end/internal/database"
	"cakelandia_back_end/internal/models"
)

const (
	ProductCacheTTL  = 10 * time.Minute
	HomepageCacheTTL = time.Hour

	productsKey = "products:all"
	homepageKey = "homepage:active"
)

// GetProducts récupère l'instantané complet du catalogue depuis Redis.
// Cache absent ou Redis non configuré → (nil, false).
func GetProducts() ([]models.Product, bool) {
	if database.Redis == nil {
		return nil, false
	}
	data, err := database.Redis.Get(context.Background(), productsKey).Result()
	if err != nil || data == "" {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(data), &products); err != nil {
		return nil, false
	}
	return products, true
}

func SetProducts(products []models.Product) {
	if database.Redis == nil {
		return
	}
	if data, err := json.Marshal(products); err == nil {
		database.Redis.Set(context.Background(), productsKey, data, ProductCacheTTL)
	}
}

// InvalidateProducts est appelé sur chaque écriture catalogue, y compris le
// décrément de stock au checkout.
func InvalidateProducts() {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(context.Background(), productsKey)
}

// GetActiveHomepage récupère la bannière active depuis Redis.
func GetActiveHomepage() (models.HomepageContent, bool) {
	if database.Redis == nil {
		return models.HomepageContent{}, false
	}
	data, err := database.Redis.Get(context.Background(), homepageKey).Result()
	if err != nil || data == "" {
		return models.HomepageContent{}, false
	}
	var content models.HomepageContent
	if err := json.Unmarshal([]byte(data), &content); err != nil {
		return models.HomepageContent{}, false
	}
	return content, true
}

func SetActiveHomepage(content models.HomepageContent) {
	if database.Redis == nil {
		return
	}
	if data, err := json.Marshal(content); err == nil {
		database.Redis.Set(context.Background(), homepageKey, data, HomepageCacheTTL)
	}
}

func InvalidateHomepage() {
	if database.Redis == nil {
		return
	}
	database.Redis.Del(context.Background(), homepageKey)
}
