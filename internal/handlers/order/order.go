package order

import (
	"log"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"cakelandia_back_end/internal/models"
	"cakelandia_back_end/internal/store"
	"cakelandia_back_end/internal/utils"
)

// GetOrders liste les commandes pour l'admin, les plus récentes d'abord,
// avec filtre de statut optionnel et pagination.
func GetOrders(c *gin.Context) {
	orders, err := store.Orders.List(c.Request.Context())
	if err != nil {
		log.Println("❌ Erreur lecture commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	if status := c.Query("status"); status != "" && status != "all" {
		filtered := make([]models.Order, 0, len(orders))
		for _, o := range orders {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	// Les timestamps sont en RFC3339 : l'ordre lexicographique est l'ordre
	// chronologique.
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt > orders[j].CreatedAt
	})

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}

	total := len(orders)
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
		"orders": orders[start:end],
		"pagination": gin.H{
			"totalOrders": total,
			"totalPages":  totalPages,
			"currentPage": page,
			"limit":       limit,
		},
	})
}

// GetOrder retourne une commande par identifiant interne ou numéro de suivi.
func GetOrder(c *gin.Context) {
	o, err := store.Orders.Get(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
	case err == store.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	default:
		log.Println("❌ Erreur lecture commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}
	c.JSON(http.StatusOK, o)
}

// UpdateOrder change le statut d'une commande. Toute transition est
// permise, seule la valeur est validée contre l'énumération.
func UpdateOrder(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := store.Orders.UpdateStatus(c.Request.Context(), c.Param("id"), body.Status)
	switch {
	case err == nil:
	case err == store.ErrInvalidStatus:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	case err == store.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	default:
		log.Println("❌ Erreur mise à jour statut:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	// Notification client en fire-and-forget : la commande est déjà à jour,
	// un échec d'envoi ne doit rien annuler.
	go func(o models.Order) {
		if err := utils.SendOrderStatusEmail(o); err != nil {
			log.Printf("⚠️ Erreur envoi email statut pour %s: %v", o.ID, err)
		}
	}(updated)

	c.JSON(http.StatusOK, updated)
}
