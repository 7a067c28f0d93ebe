// Package scylla implémente les stores en tables ScyllaDB, une ligne par
// entité. C'est le backend visé pour fermer la course de survente du format
// fichier : le décrément de stock passe par des écritures conditionnelles
// (LWT) ligne par ligne.
package scylla

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gocql/gocql"

	"cakelandia_back_end/internal/database"
	"cakelandia_back_end/internal/inventory"
	"cakelandia_back_end/internal/models"
	"cakelandia_back_end/internal/store"
)

const casRetries = 3

type ProductStore struct{}

func NewProductStore() *ProductStore { return &ProductStore{} }

func (s *ProductStore) List(ctx context.Context) ([]models.Product, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT id, name, description, price, image, category, featured, stock FROM products`).
		WithContext(ctx).Iter()

	var products []models.Product
	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category, &p.Featured, &p.Stock) {
		products = append(products, p)
		p = models.Product{} // Reset pour la prochaine itération
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("lecture produits: %w", err)
	}
	return products, nil
}

func (s *ProductStore) Create(ctx context.Context, p models.Product) (models.Product, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return models.Product{}, err
	}

	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		p.ID = fmt.Sprintf("prod_%d", time.Now().UnixMilli())
	}

	if err := session.Query(`INSERT INTO products (id, name, description, price, image, category, featured, stock)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Price, p.Image, p.Category, p.Featured, p.Stock).
		WithContext(ctx).Exec(); err != nil {
		return models.Product{}, fmt.Errorf("création produit: %w", err)
	}
	return p, nil
}

func (s *ProductStore) get(ctx context.Context, session *gocql.Session, id string) (models.Product, error) {
	var p models.Product
	err := session.Query(`SELECT id, name, description, price, image, category, featured, stock FROM products WHERE id = ?`, id).
		WithContext(ctx).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category, &p.Featured, &p.Stock)
	if errors.Is(err, gocql.ErrNotFound) {
		return models.Product{}, store.ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (s *ProductStore) Update(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return models.Product{}, err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return models.Product{}, store.ErrEmptyID
	}

	p, err := s.get(ctx, session, id)
	if err != nil {
		return models.Product{}, err
	}
	patch.Apply(&p)

	if err := session.Query(`UPDATE products SET name = ?, description = ?, price = ?, image = ?, category = ?, featured = ?, stock = ? WHERE id = ?`,
		p.Name, p.Description, p.Price, p.Image, p.Category, p.Featured, p.Stock, id).
		WithContext(ctx).Exec(); err != nil {
		return models.Product{}, fmt.Errorf("mise à jour produit: %w", err)
	}
	return p, nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	session, err := database.GetProductsSession()
	if err != nil {
		return err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return store.ErrEmptyID
	}

	if _, err := s.get(ctx, session, id); err != nil {
		return err
	}
	if err := session.Query(`DELETE FROM products WHERE id = ?`, id).WithContext(ctx).Exec(); err != nil {
		return fmt.Errorf("suppression produit: %w", err)
	}
	return nil
}

// DeleteEmptyIDs n'a rien à faire ici : la clé primaire interdit les ids
// vides, seuls les fichiers hérités peuvent en contenir. On garde le
// contrat pour le endpoint de nettoyage.
func (s *ProductStore) DeleteEmptyIDs(ctx context.Context) (int, error) {
	return 0, store.ErrNotFound
}

// Reserve valide toutes les lignes contre une lecture fraîche puis commit
// les décréments en écritures conditionnelles `IF stock = ?`. Une CAS
// perdue est relue et rejouée ; si une ligne devient indisponible en cours
// de route, les décréments déjà appliqués sont compensés et la réservation
// échoue entière — jamais de commit partiel.
func (s *ProductStore) Reserve(ctx context.Context, lines []models.ReservationLine) ([]models.StockIssue, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return nil, err
	}

	snapshot, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	updated, issues := inventory.Reserve(snapshot, lines)
	if len(issues) > 0 {
		return issues, nil
	}

	// Commit ligne par ligne, en retenant ce qui a été appliqué pour
	// pouvoir compenser en cas d'échec.
	type applied struct {
		id  string
		qty int
	}
	var done []applied

	rollback := func() {
		for _, a := range done {
			if err := s.casAdjust(ctx, session, a.id, a.qty); err != nil {
				log.Printf("❌ Compensation stock impossible pour %s (+%d): %v", a.id, a.qty, err)
			}
		}
	}

	for _, line := range lines {
		qty := line.Quantity
		if qty <= 0 {
			qty = 1
		}

		idx := indexOf(updated, line.ProductID)
		if idx == -1 || updated[idx].Stock == nil {
			// Produit à stock illimité : rien à décrémenter.
			continue
		}

		if err := s.casAdjust(ctx, session, updated[idx].ID, -qty); err != nil {
			var conflict *stockConflict
			if errors.As(err, &conflict) {
				rollback()
				return []models.StockIssue{{
					ProductID: line.ProductID,
					Name:      updated[idx].Name,
					Requested: qty,
					Available: conflict.available,
				}}, nil
			}
			rollback()
			return nil, err
		}
		done = append(done, applied{id: updated[idx].ID, qty: qty})
	}

	return nil, nil
}

type stockConflict struct{ available int }

func (e *stockConflict) Error() string {
	return fmt.Sprintf("stock insuffisant (disponible: %d)", e.available)
}

// casAdjust applique delta au stock d'une ligne via UPDATE ... IF stock = ?,
// en relisant et rejouant sur CAS perdue.
func (s *ProductStore) casAdjust(ctx context.Context, session *gocql.Session, id string, delta int) error {
	for attempt := 0; attempt < casRetries; attempt++ {
		p, err := s.get(ctx, session, id)
		if err != nil {
			return err
		}
		if p.Stock == nil {
			return nil
		}

		next := *p.Stock + delta
		if next < 0 {
			return &stockConflict{available: *p.Stock}
		}

		var current int
		ok, err := session.Query(`UPDATE products SET stock = ? WHERE id = ? IF stock = ?`, next, id, *p.Stock).
			WithContext(ctx).ScanCAS(&current)
		if err != nil {
			return fmt.Errorf("écriture conditionnelle stock %s: %w", id, err)
		}
		if ok {
			return nil
		}
		// CAS perdue : un autre checkout est passé avant nous, on rejoue
		// sur la valeur fraîche.
	}
	return fmt.Errorf("écriture conditionnelle stock %s: trop de collisions", id)
}

func indexOf(products []models.Product, id string) int {
	want := strings.TrimSpace(id)
	for i := range products {
		if strings.TrimSpace(products[i].ID) == want {
			return i
		}
	}
	return -1
}
