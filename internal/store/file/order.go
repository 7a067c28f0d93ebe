package file

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"cakelandia_back_end/internal/models"
	"cakelandia_back_end/internal/store"
)

type OrderStore struct {
	path string
	mu   sync.Mutex
}

func NewOrderStore(dataDir string) *OrderStore {
	return &OrderStore{path: filepath.Join(dataDir, "orders.json")}
}

func (s *OrderStore) load() ([]models.Order, error) {
	orders := []models.Order{}
	if err := readJSON(s.path, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderStore) List(ctx context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get accepte l'identifiant interne ou le numéro de suivi public.
func (s *OrderStore) Get(ctx context.Context, idOrTracking string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return models.Order{}, err
	}
	for _, o := range orders {
		if o.ID == idOrTracking || o.TrackingNumber == idOrTracking {
			return o, nil
		}
	}
	return models.Order{}, store.ErrNotFound
}

// Append ajoute sans vérifier les collisions d'identifiants.
func (s *OrderStore) Append(ctx context.Context, o models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return err
	}
	orders = append(orders, o)
	return writeJSON(s.path, orders)
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id, status string) (models.Order, error) {
	if !models.IsValidOrderStatus(status) {
		return models.Order{}, store.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return models.Order{}, err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		orders[i].Status = status
		orders[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		if err := writeJSON(s.path, orders); err != nil {
			return models.Order{}, err
		}
		return orders[i], nil
	}
	return models.Order{}, store.ErrNotFound
}
