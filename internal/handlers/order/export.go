package order

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"cakelandia_back_end/internal/store"
)

// ExportOrders génère un classeur Excel de toutes les commandes pour le
// back-office. Le filtre status fonctionne comme sur la liste paginée.
func ExportOrders(c *gin.Context) {
	orders, err := store.Orders.List(c.Request.Context())
	if err != nil {
		log.Println("❌ Erreur lecture commandes:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to export orders"})
		return
	}

	status := c.Query("status")
	if status != "" && status != "all" {
		filtered := orders[:0]
		for _, o := range orders {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Orders"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Tracking", "Customer", "Email", "Phone", "Address", "Items", "Total", "Status", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, o := range orders {
		itemCount := 0
		for _, item := range o.Items {
			itemCount += item.Quantity
		}
		values := []interface{}{
			o.TrackingNumber,
			o.CustomerName,
			o.CustomerEmail,
			o.CustomerPhone,
			o.Address,
			itemCount,
			o.Total,
			o.Status,
			o.CreatedAt,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if _, err := f.WriteTo(c.Writer); err != nil {
		log.Println("❌ Erreur écriture export Excel:", err)
	}
}
