package inventory

import (
	"strings"

	"cakelandia_back_end/internal/models"
)

// Reserve valide un panier contre un instantané du catalogue et calcule les
// stocks décrémentés dans une copie de travail, en une seule passe :
//
//   - produit introuvable → issue (available = 0)
//   - stock défini insuffisant → issue (available = stock courant)
//   - stock défini suffisant → décrément dans la copie
//   - stock nil → illimité, ni issue ni décrément
//
// Tout ou rien : à la moindre issue, la copie de travail est abandonnée et
// la liste complète des issues est retournée (une par ligne fautive, pas
// seulement la première). Sinon, la copie retournée est le catalogue entier
// prêt à être persisté tel quel.
func Reserve(products []models.Product, lines []models.ReservationLine) ([]models.Product, []models.StockIssue) {
	updated := make([]models.Product, len(products))
	copy(updated, products)

	var issues []models.StockIssue

	for _, line := range lines {
		qty := line.Quantity
		if qty <= 0 {
			qty = 1
		}

		idx := findProduct(products, line.ProductID)
		if idx == -1 {
			issues = append(issues, models.StockIssue{
				ProductID: line.ProductID,
				Name:      line.Name,
				Requested: qty,
				Available: 0,
			})
			continue
		}

		product := updated[idx]
		if product.Stock == nil {
			// Stock illimité
			continue
		}

		if *product.Stock < qty {
			issues = append(issues, models.StockIssue{
				ProductID: line.ProductID,
				Name:      product.Name,
				Requested: qty,
				Available: *product.Stock,
			})
			continue
		}

		remaining := *product.Stock - qty
		updated[idx].Stock = &remaining
	}

	if len(issues) > 0 {
		return nil, issues
	}
	return updated, nil
}

// findProduct compare les identifiants sous forme canonique (trim), les
// fichiers historiques contenant des ids numériques ou avec espaces.
func findProduct(products []models.Product, id string) int {
	want := strings.TrimSpace(id)
	for i := range products {
		if strings.TrimSpace(products[i].ID) == want {
			return i
		}
	}
	return -1
}
