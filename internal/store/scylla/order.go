package scylla

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gocql/gocql"

	"cakelandia_back_end/internal/database"
	"cakelandia_back_end/internal/models"
	"cakelandia_back_end/internal/store"
)

type OrderStore struct{}

func NewOrderStore() *OrderStore { return &OrderStore{} }

// Les lignes de commande sont stockées en JSON dans la colonne items : ce
// sont des instantanés figés, jamais requêtés colonne par colonne.
func (s *OrderStore) List(ctx context.Context) ([]models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT id, tracking_number, customer_name, customer_email, customer_phone, address, items, total, status, created_at, updated_at, notes FROM orders`).
		WithContext(ctx).Iter()

	var orders []models.Order
	var o models.Order
	var itemsJSON string
	for iter.Scan(&o.ID, &o.TrackingNumber, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.Address, &itemsJSON, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt, &o.Notes) {
		if itemsJSON != "" {
			if err := json.Unmarshal([]byte(itemsJSON), &o.Items); err != nil {
				return nil, fmt.Errorf("décodage items commande %s: %w", o.ID, err)
			}
		}
		orders = append(orders, o)
		o = models.Order{}
		itemsJSON = ""
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("lecture commandes: %w", err)
	}
	return orders, nil
}

func (s *OrderStore) Get(ctx context.Context, idOrTracking string) (models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return models.Order{}, err
	}

	// Essai par identifiant interne, puis par la table d'index du numéro
	// de suivi (même schéma que products_by_category côté catalogue).
	o, err := s.getByID(ctx, session, idOrTracking)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return models.Order{}, err
	}

	var orderID string
	err = session.Query(`SELECT order_id FROM orders_by_tracking WHERE tracking_number = ?`, idOrTracking).
		WithContext(ctx).Scan(&orderID)
	if errors.Is(err, gocql.ErrNotFound) {
		return models.Order{}, store.ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	return s.getByID(ctx, session, orderID)
}

func (s *OrderStore) getByID(ctx context.Context, session *gocql.Session, id string) (models.Order, error) {
	var o models.Order
	var itemsJSON string
	err := session.Query(`SELECT id, tracking_number, customer_name, customer_email, customer_phone, address, items, total, status, created_at, updated_at, notes FROM orders WHERE id = ?`, id).
		WithContext(ctx).Scan(&o.ID, &o.TrackingNumber, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.Address, &itemsJSON, &o.Total, &o.Status, &o.CreatedAt, &o.UpdatedAt, &o.Notes)
	if errors.Is(err, gocql.ErrNotFound) {
		return models.Order{}, store.ErrNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	if itemsJSON != "" {
		if err := json.Unmarshal([]byte(itemsJSON), &o.Items); err != nil {
			return models.Order{}, fmt.Errorf("décodage items commande %s: %w", o.ID, err)
		}
	}
	return o, nil
}

func (s *OrderStore) Append(ctx context.Context, o models.Order) error {
	session, err := database.GetOrdersSession()
	if err != nil {
		return err
	}

	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	if err := session.Query(`INSERT INTO orders (id, tracking_number, customer_name, customer_email, customer_phone, address, items, total, status, created_at, updated_at, notes)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.TrackingNumber, o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.Address,
		string(itemsJSON), o.Total, o.Status, o.CreatedAt, o.UpdatedAt, o.Notes).
		WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("création commande: %w", err)
	}

	if err := session.Query(`INSERT INTO orders_by_tracking (tracking_number, order_id) VALUES (?, ?)`,
		o.TrackingNumber, o.ID).WithContext(ctx).Exec(); err != nil {
		// L'index de suivi est best-effort : la commande est déjà écrite.
		return fmt.Errorf("indexation numéro de suivi: %w", err)
	}
	return nil
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id, status string) (models.Order, error) {
	if !models.IsValidOrderStatus(status) {
		return models.Order{}, store.ErrInvalidStatus
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		return models.Order{}, err
	}

	o, err := s.getByID(ctx, session, id)
	if err != nil {
		return models.Order{}, err
	}

	o.Status = status
	o.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := session.Query(`UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`,
		o.Status, o.UpdatedAt, id).WithContext(ctx).Exec(); err != nil {
		return models.Order{}, fmt.Errorf("mise à jour statut: %w", err)
	}
	return o, nil
}
