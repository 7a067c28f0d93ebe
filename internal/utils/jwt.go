package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateAdminJWT émet le jeton de session admin, signé côté serveur.
// Plus aucun drapeau « logged in » posé par le client : le rôle vit dans
// les claims et le middleware le vérifie à chaque requête.
func GenerateAdminJWT(username string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super_secret"
	}

	claims := jwt.MapClaims{
		"sub":  username,
		"role": "admin",
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
