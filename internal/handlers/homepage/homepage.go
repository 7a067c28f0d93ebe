package homepage

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cakelandia_back_end/internal/cache"
	"cakelandia_back_end/internal/models"
	"cakelandia_back_end/internal/store"
)

// GetHomepage renvoie le contenu hero actif pour la vitrine publique.
func GetHomepage(c *gin.Context) {
	if cached, ok := cache.GetActiveHomepage(); ok {
		c.JSON(http.StatusOK, gin.H{"content": cached})
		return
	}

	content, err := store.Homepage.GetActive(c.Request.Context())
	if err != nil {
		log.Println("❌ Erreur lecture homepage:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load homepage content"})
		return
	}

	cache.SetActiveHomepage(content)
	c.JSON(http.StatusOK, gin.H{"content": content})
}

// GetAllHomepage liste toutes les entrées pour le back-office.
func GetAllHomepage(c *gin.Context) {
	entries, err := store.Homepage.List(c.Request.Context())
	if err != nil {
		log.Println("❌ Erreur lecture homepage:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load homepage content"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": entries})
}

// CreateHomepage ajoute une entrée, toujours inactive à la création.
func CreateHomepage(c *gin.Context) {
	var content models.HomepageContent
	if err := c.ShouldBindJSON(&content); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := store.Homepage.Create(c.Request.Context(), content)
	if err != nil {
		log.Println("❌ Erreur création homepage:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create homepage content"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateHomepage applique une mise à jour partielle à une entrée.
func UpdateHomepage(c *gin.Context) {
	id := c.Param("id")

	var patch models.HomepagePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := store.Homepage.Update(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Homepage content not found"})
		case errors.Is(err, store.ErrEmptyID):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Content ID is required"})
		default:
			log.Println("❌ Erreur mise à jour homepage:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update homepage content"})
		}
		return
	}

	cache.InvalidateHomepage()
	c.JSON(http.StatusOK, gin.H{"content": updated})
}

// ActivateHomepage gère PATCH /:id : seule l'action setActive est admise,
// et exactement une entrée reste active après l'opération.
func ActivateHomepage(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Action != "setActive" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unsupported action"})
		return
	}

	activated, err := store.Homepage.SetActive(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Homepage content not found"})
		case errors.Is(err, store.ErrEmptyID):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Content ID is required"})
		default:
			log.Println("❌ Erreur activation homepage:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to activate homepage content"})
		}
		return
	}

	cache.InvalidateHomepage()
	c.JSON(http.StatusOK, gin.H{"content": activated})
}

// DeleteHomepage supprime une entrée. La dernière entrée est protégée, et
// supprimer l'entrée active promeut automatiquement une autre.
func DeleteHomepage(c *gin.Context) {
	id := c.Param("id")

	if err := store.Homepage.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Homepage content not found"})
		case errors.Is(err, store.ErrLastEntry):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot delete the last homepage content item"})
		case errors.Is(err, store.ErrEmptyID):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Content ID is required"})
		default:
			log.Println("❌ Erreur suppression homepage:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete homepage content"})
		}
		return
	}

	cache.InvalidateHomepage()
	c.JSON(http.StatusOK, gin.H{"message": "Homepage content deleted"})
}
