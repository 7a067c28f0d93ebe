package routes

import (
	"cakelandia_back_end/internal/handlers/auth"
	"cakelandia_back_end/internal/handlers/homepage"
	"cakelandia_back_end/internal/handlers/order"
	"cakelandia_back_end/internal/handlers/product"
	"cakelandia_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	// Vitrine publique
	api.GET("/products", product.GetProducts)
	api.GET("/products/search", product.SearchProducts)
	api.GET("/homepage", homepage.GetHomepage)
	api.GET("/orders/track", order.TrackOrder)
	api.POST("/submit-order", order.SubmitOrder)
	api.POST("/auth/login", auth.Login)

	// Back-office : JWT admin obligatoire
	admin := api.Group("/")
	admin.Use(middleware.AuthRequired(), middleware.RequireAdmin)
	{
		admin.POST("/products", product.CreateProduct)
		admin.PUT("/products", product.UpdateProduct)
		admin.DELETE("/products", product.DeleteProduct)
		admin.DELETE("/products/empty-id", product.DeleteEmptyIDProducts)

		admin.GET("/orders", order.GetOrders)
		admin.GET("/orders/export", order.ExportOrders)
		admin.GET("/orders/ws", order.OrdersFeed)
		admin.GET("/orders/:id", order.GetOrder)
		admin.GET("/orders/:id/receipt", order.GetOrderReceipt)
		admin.PUT("/orders/:id", order.UpdateOrder)

		admin.GET("/homepage/all", homepage.GetAllHomepage)
		admin.POST("/homepage", homepage.CreateHomepage)
		admin.PUT("/homepage/:id", homepage.UpdateHomepage)
		admin.PATCH("/homepage/:id", homepage.ActivateHomepage)
		admin.DELETE("/homepage/:id", homepage.DeleteHomepage)
	}
}
