package utils

import (
	"fmt"
	"os"

	"github.com/skip2/go-qrcode"
)

// GenerateTrackingQR encode en PNG le lien public de suivi d'une commande,
// joint à l'email de notification.
func GenerateTrackingQR(trackingNumber string) ([]byte, error) {
	trackingURL := fmt.Sprintf("%s/tracking?trackingNumber=%s", FrontendBaseURL(), trackingNumber)
	return qrcode.Encode(trackingURL, qrcode.Medium, 256)
}

// FrontendBaseURL retourne l'URL de la vitrine Next depuis l'env.
func FrontendBaseURL() string {
	u := os.Getenv("FRONTEND_URL")
	if u == "" {
		// fallback local dev
		return "http://localhost:3000"
	}
	return u
}
