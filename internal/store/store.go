package store

import (
	"context"
	"errors"

	"cakelandia_back_end/internal/models"
)

// Erreurs sentinelles des stores. Les handlers les traduisent en codes HTTP
// (404, 400, 409), tout le reste part en 500 générique.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidStatus = errors.New("invalid status value")
	ErrEmptyID       = errors.New("empty identifier")
	ErrLastEntry     = errors.New("cannot delete the last entry")
)

// ProductStore expose le catalogue. List retourne l'instantané complet :
// filtres, tri et pagination se font en mémoire dans le handler, comme dans
// le front historique.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, p models.Product) (models.Product, error)
	Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error)
	Delete(ctx context.Context, id string) error
	// DeleteEmptyIDs supprime en masse les lignes héritées dont l'id est la
	// chaîne vide (la création en refuse désormais, mais les anciens
	// fichiers peuvent encore en contenir). Retourne le nombre supprimé.
	DeleteEmptyIDs(ctx context.Context) (int, error)
	// Reserve valide et décrémente le stock pour toutes les lignes, de
	// façon atomique pour le backend : soit toutes les lignes passent et
	// les décréments sont persistés, soit rien n'est écrit et la liste
	// complète des refus est retournée.
	Reserve(ctx context.Context, lines []models.ReservationLine) ([]models.StockIssue, error)
}

// OrderStore expose les commandes. Get accepte indifféremment l'identifiant
// interne ou le numéro de suivi public.
type OrderStore interface {
	List(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, idOrTracking string) (models.Order, error)
	Append(ctx context.Context, o models.Order) error
	UpdateStatus(ctx context.Context, id, status string) (models.Order, error)
}

// HomepageStore expose les variantes de bannière d'accueil.
type HomepageStore interface {
	List(ctx context.Context) ([]models.HomepageContent, error)
	GetActive(ctx context.Context) (models.HomepageContent, error)
	Create(ctx context.Context, content models.HomepageContent) (models.HomepageContent, error)
	Update(ctx context.Context, id string, patch models.HomepagePatch) (models.HomepageContent, error)
	SetActive(ctx context.Context, id string) (models.HomepageContent, error)
	Delete(ctx context.Context, id string) error
}

// Stores regroupe les trois stores derrière lesquels tournent les handlers.
type Stores struct {
	Products ProductStore
	Orders   OrderStore
	Homepage HomepageStore
}

// Instances globales, initialisées au démarrage (ou par les tests).
var (
	Products ProductStore
	Orders   OrderStore
	Homepage HomepageStore
)

// Use installe les stores globaux.
func Use(s Stores) {
	Products = s.Products
	Orders = s.Orders
	Homepage = s.Homepage
}
