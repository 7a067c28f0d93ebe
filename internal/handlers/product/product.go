package product

import (
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"cakelandia_back_end/internal/cache"
	"cakelandia_back_end/internal/models"
	services "cakelandia_back_end/internal/service"
	"cakelandia_back_end/internal/store"
)

// GetProducts liste le catalogue : filtres, tri, pagination, et la facette
// des catégories calculée sur l'ensemble NON filtré (pour l'affichage des
// filtres côté vitrine).
func GetProducts(c *gin.Context) {
	products, ok := cache.GetProducts()
	if !ok {
		var err error
		products, err = store.Products.List(c.Request.Context())
		if err != nil {
			log.Println("❌ Erreur lecture produits:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read products"})
			return
		}
		cache.SetProducts(products)
	}

	categories := distinctCategories(products)

	filtered := products

	if c.Query("featured") == "true" {
		filtered = filterProducts(filtered, func(p models.Product) bool { return p.Featured })
	}

	if category := c.Query("category"); category != "" && category != "all" {
		filtered = filterProducts(filtered, func(p models.Product) bool {
			return strings.EqualFold(p.Category, category)
		})
	}

	switch c.Query("stockStatus") {
	case "in-stock":
		// Stock indéfini = illimité, donc disponible.
		filtered = filterProducts(filtered, func(p models.Product) bool {
			return p.Stock == nil || *p.Stock > 0
		})
	case "out-of-stock":
		filtered = filterProducts(filtered, func(p models.Product) bool {
			return p.Stock != nil && *p.Stock == 0
		})
	case "low-stock":
		filtered = filterProducts(filtered, func(p models.Product) bool {
			return p.Stock != nil && *p.Stock > 0 && *p.Stock <= 5
		})
	}

	switch c.Query("sortBy") {
	case "stock-asc":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].StockValue() < filtered[j].StockValue()
		})
	case "stock-desc":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].StockValue() > filtered[j].StockValue()
		})
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"products":   filtered[start:end],
		"categories": categories,
		"pagination": gin.H{
			"totalProducts": total,
			"totalPages":    totalPages,
			"currentPage":   page,
			"limit":         limit,
		},
	})
}

func CreateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := store.Products.Create(c.Request.Context(), p)
	if err != nil {
		log.Println("❌ Erreur création produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		return
	}

	cache.InvalidateProducts()
	// 🔄 Indexation Elasticsearch
	go services.IndexProduct(created)

	c.JSON(http.StatusCreated, created)
}

func UpdateProduct(c *gin.Context) {
	var body struct {
		ID string `json:"id"`
		models.ProductPatch
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// L'id peut venir de la query (?id=) ou du corps, selon l'âge du front.
	id := c.Query("id")
	if id == "" {
		id = body.ID
	}

	updated, err := store.Products.Update(c.Request.Context(), id, body.ProductPatch)
	switch {
	case err == nil:
	case err == store.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	case err == store.ErrEmptyID:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product id is required"})
		return
	default:
		log.Println("❌ Erreur mise à jour produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	cache.InvalidateProducts()
	go services.IndexProduct(updated)

	c.JSON(http.StatusOK, updated)
}

func DeleteProduct(c *gin.Context) {
	var body struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := store.Products.Delete(c.Request.Context(), body.ID)
	switch {
	case err == nil:
	case err == store.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	case err == store.ErrEmptyID:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product id is required"})
		return
	default:
		log.Println("❌ Erreur suppression produit:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	cache.InvalidateProducts()
	go services.RemoveProduct(body.ID)

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// DeleteEmptyIDProducts purge en masse les lignes héritées dont l'id est la
// chaîne vide. Affordance de nettoyage : la création n'en produit plus.
func DeleteEmptyIDProducts(c *gin.Context) {
	count, err := store.Products.DeleteEmptyIDs(c.Request.Context())
	switch {
	case err == nil:
	case err == store.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "No products with empty IDs found"})
		return
	default:
		log.Println("❌ Erreur purge produits sans id:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete products"})
		return
	}

	cache.InvalidateProducts()

	c.JSON(http.StatusOK, gin.H{
		"message":      "Deleted products with empty IDs",
		"deletedCount": count,
	})
}

// SearchProducts interroge Elasticsearch, avec repli sur un scan en mémoire
// du store quand l'index est absent ou vide.
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'q' parameter"})
		return
	}

	// 🔎 1️⃣ Recherche dans Elasticsearch (prioritaire)
	if results, err := services.SearchProducts(query); err == nil && len(results) > 0 {
		c.JSON(http.StatusOK, gin.H{"products": results})
		return
	}

	// 🔁 2️⃣ Repli : scan du store et filtre en mémoire
	products, err := store.Products.List(c.Request.Context())
	if err != nil {
		log.Println("❌ Erreur recherche produits:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	var matched []models.Product
	for _, p := range products {
		if containsIgnoreCase(p.Name, query) || containsIgnoreCase(p.Description, query) || containsIgnoreCase(p.Category, query) {
			matched = append(matched, p)
		}
	}
	if matched == nil {
		matched = []models.Product{}
	}

	c.JSON(http.StatusOK, gin.H{"products": matched})
}

// Helper pour recherche insensible à la casse
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func filterProducts(products []models.Product, keep func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// distinctCategories conserve l'ordre de première apparition.
func distinctCategories(products []models.Product) []string {
	seen := make(map[string]bool)
	categories := []string{}
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
