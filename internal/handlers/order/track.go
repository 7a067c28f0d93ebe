package order

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cakelandia_back_end/internal/models"
	"cakelandia_back_end/internal/store"
)

// TrackOrder est la consultation publique par numéro de suivi. L'email est
// un second facteur optionnel : absent, le numéro suffit ; présent et
// différent de celui de la commande, la requête est refusée. La vue rendue
// est minimale — ni adresse, ni email, ni téléphone, et seulement le prénom.
func TrackOrder(c *gin.Context) {
	trackingNumber := c.Query("trackingNumber")
	if trackingNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tracking number is required"})
		return
	}

	o, err := store.Orders.Get(c.Request.Context(), trackingNumber)
	if err == nil && o.TrackingNumber != trackingNumber {
		// Get accepte aussi l'identifiant interne ; le suivi public ne
		// résout que le numéro de suivi.
		err = store.ErrNotFound
	}
	switch {
	case err == nil:
	case err == store.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	default:
		log.Println("❌ Erreur suivi commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track order"})
		return
	}

	if email := c.Query("email"); email != "" && email != o.CustomerEmail {
		c.JSON(http.StatusForbidden, gin.H{"error": "Email does not match order"})
		return
	}

	c.JSON(http.StatusOK, models.TrackingInfo{
		TrackingNumber: o.TrackingNumber,
		Status:         o.Status,
		CustomerName:   firstName(o.CustomerName),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	})
}

func firstName(fullName string) string {
	if fields := strings.Fields(fullName); len(fields) > 0 {
		return fields[0]
	}
	return fullName
}
