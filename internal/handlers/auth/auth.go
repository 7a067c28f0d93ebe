package auth

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"cakelandia_back_end/internal/utils"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authentifie l'opérateur du back-office et émet un JWT signé.
// En production ADMIN_PASSWORD_HASH (argon2id) est attendu ; le mot de
// passe en clair via ADMIN_PASSWORD n'est qu'un secours de développement.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminUser := os.Getenv("ADMIN_USERNAME")
	if adminUser == "" {
		adminUser = "admin"
	}

	if req.Username != adminUser || !checkPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminJWT(req.Username)
	if err != nil {
		log.Println("❌ Erreur génération JWT:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
	})
}

func checkPassword(password string) bool {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		if !utils.IsArgon2Hash(hash) {
			log.Println("⚠️ ADMIN_PASSWORD_HASH n'est pas au format argon2id — générer avec cmd/hashpass")
			return false
		}
		ok, err := utils.VerifyPassword(password, hash)
		if err != nil {
			log.Println("⚠️ Hash admin invalide:", err)
			return false
		}
		return ok
	}

	plain := os.Getenv("ADMIN_PASSWORD")
	if plain == "" {
		plain = "cakelandia2025"
	}
	return password == plain
}
