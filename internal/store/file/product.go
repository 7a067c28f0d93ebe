package file

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"cakelandia_back_end/internal/inventory"
	"cakelandia_back_end/internal/models"
	"cakelandia_back_end/internal/store"
)

type ProductStore struct {
	path string
	mu   sync.Mutex
}

func NewProductStore(dataDir string) *ProductStore {
	return &ProductStore{path: filepath.Join(dataDir, "products.json")}
}

func (s *ProductStore) load() ([]models.Product, error) {
	products := []models.Product{}
	if err := readJSON(s.path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *ProductStore) Create(ctx context.Context, p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Un id vide n'est jamais persisté : on en génère un (dérivé du temps,
	// comme le faisait le front).
	p.ID = normalizeID(p.ID)
	if p.ID == "" {
		p.ID = fmt.Sprintf("prod_%d", time.Now().UnixMilli())
	}

	products, err := s.load()
	if err != nil {
		return models.Product{}, err
	}

	products = append(products, p)
	if err := writeJSON(s.path, products); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (s *ProductStore) Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id = normalizeID(id)
	if id == "" {
		return models.Product{}, store.ErrEmptyID
	}

	products, err := s.load()
	if err != nil {
		return models.Product{}, err
	}

	for i := range products {
		if normalizeID(products[i].ID) != id {
			continue
		}
		patch.Apply(&products[i])
		if err := writeJSON(s.path, products); err != nil {
			return models.Product{}, err
		}
		return products[i], nil
	}
	return models.Product{}, store.ErrNotFound
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id = normalizeID(id)
	if id == "" {
		// Les lignes héritées sans id passent par DeleteEmptyIDs, pas ici.
		return store.ErrEmptyID
	}

	products, err := s.load()
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if normalizeID(p.ID) != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return store.ErrNotFound
	}
	return writeJSON(s.path, kept)
}

func (s *ProductStore) DeleteEmptyIDs(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return 0, err
	}

	kept := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID != "" {
			kept = append(kept, p)
		}
	}

	removed := len(products) - len(kept)
	if removed == 0 {
		return 0, store.ErrNotFound
	}
	if err := writeJSON(s.path, kept); err != nil {
		return 0, err
	}
	return removed, nil
}

// Reserve valide toutes les lignes contre l'instantané courant et, si tout
// passe, persiste la copie décrémentée en une seule réécriture sous le
// mutex. Aucun commit partiel : des refus → le fichier n'est pas touché.
func (s *ProductStore) Reserve(ctx context.Context, lines []models.ReservationLine) ([]models.StockIssue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return nil, err
	}

	updated, issues := inventory.Reserve(products, lines)
	if len(issues) > 0 {
		return issues, nil
	}
	return nil, writeJSON(s.path, updated)
}
