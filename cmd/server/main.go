package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cakelandia_back_end/internal/config"
	"cakelandia_back_end/internal/database"
	"cakelandia_back_end/internal/routes"
	"cakelandia_back_end/internal/store"
	filestore "cakelandia_back_end/internal/store/file"
	"cakelandia_back_end/internal/store/scylla"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseScylla()

	initStores()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Cakelandia lancé sur le port", port)
	r.Run(":" + port)
}

// initStores sélectionne le backend de persistance : fichiers JSON par
// défaut, ScyllaDB quand STORAGE_BACKEND=scylla.
func initStores() {
	backend := os.Getenv("STORAGE_BACKEND")

	if backend == "scylla" {
		store.Use(store.Stores{
			Products: scylla.NewProductStore(),
			Orders:   scylla.NewOrderStore(),
			Homepage: scylla.NewHomepageStore(),
		})
		log.Println("✅ Backend de stockage: ScyllaDB")
		return
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}
	store.Use(store.Stores{
		Products: filestore.NewProductStore(dataDir),
		Orders:   filestore.NewOrderStore(dataDir),
		Homepage: filestore.NewHomepageStore(dataDir),
	})
	log.Println("✅ Backend de stockage: fichiers JSON dans", dataDir)
}

func allowedOrigins() []string {
	if origin := os.Getenv("FRONTEND_ORIGIN"); origin != "" {
		return []string{origin}
	}
	return []string{"http://localhost:3000"}
}
