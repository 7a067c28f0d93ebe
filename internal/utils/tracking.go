package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

const trackingPrefix = "CKL"

// GenerateTrackingNumber produit la référence publique d'une commande :
// préfixe fixe + 8 derniers chiffres de l'horodatage epoch-ms + suffixe
// aléatoire sur 3 chiffres. Pas d'unicité garantie (collision horodatage +
// aléa possible mais jamais vérifiée) — acceptable au volume d'une
// pâtisserie, pas une garantie.
func GenerateTrackingNumber() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ts) > 8 {
		ts = ts[len(ts)-8:]
	}
	return fmt.Sprintf("%s%s%03d", trackingPrefix, ts, rand.Intn(1000))
}

// GenerateOrderID dérive l'identifiant interne du temps + un suffixe
// aléatoire base 36, comme le faisait le front historique.
func GenerateOrderID(now time.Time) string {
	return now.UTC().Format(time.RFC3339) + randomBase36(7)
}

func randomBase36(n int) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}
