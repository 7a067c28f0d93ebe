package order

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cakelandia_back_end/internal/cache"
	"cakelandia_back_end/internal/models"
	"cakelandia_back_end/internal/store"
	"cakelandia_back_end/internal/utils"
)

type orderData struct {
	CustomerName  string            `json:"customerName"`
	CustomerEmail string            `json:"customerEmail"`
	CustomerPhone string            `json:"customerPhone"`
	Address       string            `json:"address"`
	Items         []models.CartItem `json:"items"`
	Total         float64           `json:"total"`
	Notes         string            `json:"notes"`
}

// SubmitOrder est le checkout complet : réservation d'inventaire, numéro de
// suivi, persistance de la commande, puis notifications en fire-and-forget.
func SubmitOrder(c *gin.Context) {
	var body struct {
		OrderData orderData `json:"orderData"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data := body.OrderData

	if data.CustomerName == "" || data.CustomerEmail == "" || data.Address == "" || len(data.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required order fields"})
		return
	}

	// 1️⃣ Réservation d'inventaire : tout ou rien. Des refus → aucune
	// écriture, la liste complète part au client.
	lines := make([]models.ReservationLine, 0, len(data.Items))
	for _, item := range data.Items {
		lines = append(lines, models.ReservationLine{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
		})
	}

	issues, err := store.Products.Reserve(c.Request.Context(), lines)
	if err != nil {
		log.Println("❌ Erreur réservation stock:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit order"})
		return
	}
	if len(issues) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":     "Inventory validation failed",
			"stockIssues": issues,
		})
		return
	}
	cache.InvalidateProducts()

	// 2️⃣ Construction de la commande : instantanés de produits figés,
	// avec valeurs par défaut pour les champs optionnels absents.
	now := time.Now().UTC()
	nowISO := now.Format(time.RFC3339)

	newOrder := models.Order{
		ID:             utils.GenerateOrderID(now),
		TrackingNumber: utils.GenerateTrackingNumber(),
		CustomerName:   data.CustomerName,
		CustomerEmail:  data.CustomerEmail,
		CustomerPhone:  data.CustomerPhone,
		Address:        data.Address,
		Items:          snapshotItems(data.Items),
		Total:          data.Total,
		Status:         models.StatusPending,
		CreatedAt:      nowISO,
		UpdatedAt:      nowISO,
		Notes:          data.Notes,
	}

	if err := store.Orders.Append(c.Request.Context(), newOrder); err != nil {
		// Le stock est déjà décrémenté : la commande doit être rejouée
		// manuellement. Loggé comme incident, pas de rollback automatique.
		log.Printf("❌ Commande %s non persistée après réservation: %v", newOrder.TrackingNumber, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit order"})
		return
	}

	// 3️⃣ Notifications : un échec n'annule jamais une commande déjà écrite.
	go notifyOrderPlaced(newOrder)

	c.JSON(http.StatusOK, gin.H{
		"message":        "Order submitted successfully",
		"trackingNumber": newOrder.TrackingNumber,
		"orderId":        newOrder.ID,
	})
}

// snapshotItems fige chaque ligne du panier en copie de produit complète :
// description vide, image générique et catégorie "other" comblent les
// champs optionnels manquants de l'instantané client.
func snapshotItems(items []models.CartItem) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		p := item.Product
		if p.Image == "" {
			p.Image = "/images/placeholder.jpg"
		}
		if p.Category == "" {
			p.Category = "other"
		}
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		out = append(out, models.OrderItem{Product: p, Quantity: qty})
	}
	return out
}

func notifyOrderPlaced(o models.Order) {
	if err := utils.SendOrderNotification(o); err != nil {
		log.Printf("⚠️ Erreur notification email pour %s: %v", o.TrackingNumber, err)
	}
	if err := utils.NotifyNewOrderTelegram(o); err != nil {
		log.Printf("⚠️ Erreur notification Telegram pour %s: %v", o.TrackingNumber, err)
	}
	BroadcastOrder(o)
}
