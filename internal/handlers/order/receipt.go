package order

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cakelandia_back_end/internal/store"
	"cakelandia_back_end/internal/utils"
)

// GetOrderReceipt rend la page de confirmation du front en PDF via Chrome
// headless et la renvoie en téléchargement.
func GetOrderReceipt(c *gin.Context) {
	id := c.Param("id")

	o, err := store.Orders.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		log.Println("❌ Erreur lecture commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate receipt"})
		return
	}

	pdf, err := utils.RenderReceiptPDF(o.ID)
	if err != nil {
		log.Printf("❌ Erreur génération PDF pour %s: %v", o.TrackingNumber, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate receipt"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "receipt-"+o.TrackingNumber+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
