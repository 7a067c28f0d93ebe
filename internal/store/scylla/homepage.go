package scylla

import (
	"context"
	"fmt"
	"time"

	"cakelandia_back_end/internal/database"
	"cakelandia_back_end/internal/models"
	"cakelandia_back_end/internal/store"
)

type HomepageStore struct{}

func NewHomepageStore() *HomepageStore { return &HomepageStore{} }

func (s *HomepageStore) list(ctx context.Context) ([]models.HomepageContent, error) {
	session, err := database.GetContentSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT id, hero_image, hero_title, hero_subtitle, hero_button_text, hero_button_link, is_active, created_at, updated_at FROM homepage_content`).
		WithContext(ctx).Iter()

	var entries []models.HomepageContent
	var c models.HomepageContent
	for iter.Scan(&c.ID, &c.HeroImage, &c.HeroTitle, &c.HeroSubtitle, &c.HeroButtonText,
		&c.HeroButtonLink, &c.IsActive, &c.CreatedAt, &c.UpdatedAt) {
		entries = append(entries, c)
		c = models.HomepageContent{}
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("lecture contenu accueil: %w", err)
	}
	return entries, nil
}

func (s *HomepageStore) write(ctx context.Context, c models.HomepageContent) error {
	session, err := database.GetContentSession()
	if err != nil {
		return err
	}
	return session.Query(`INSERT INTO homepage_content (id, hero_image, hero_title, hero_subtitle, hero_button_text, hero_button_link, is_active, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.HeroImage, c.HeroTitle, c.HeroSubtitle, c.HeroButtonText, c.HeroButtonLink,
		c.IsActive, c.CreatedAt, c.UpdatedAt).WithContext(ctx).Exec()
}

// List auto-initialise le document par défaut si la table est vide, comme
// le backend fichier : la vitrine ne doit jamais être sans bannière.
func (s *HomepageStore) List(ctx context.Context) ([]models.HomepageContent, error) {
	entries, err := s.list(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		def := defaultHomepageContent()
		if err := s.write(ctx, def); err != nil {
			return nil, err
		}
		entries = []models.HomepageContent{def}
	}
	return entries, nil
}

func (s *HomepageStore) GetActive(ctx context.Context) (models.HomepageContent, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return models.HomepageContent{}, err
	}
	for _, c := range entries {
		if c.IsActive {
			return c, nil
		}
	}
	return entries[0], nil
}

func (s *HomepageStore) Create(ctx context.Context, content models.HomepageContent) (models.HomepageContent, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	content.ID = fmt.Sprintf("hero-%d", time.Now().UnixMilli())
	content.IsActive = false
	content.CreatedAt = now
	content.UpdatedAt = now
	applyHeroDefaults(&content)

	if err := s.write(ctx, content); err != nil {
		return models.HomepageContent{}, fmt.Errorf("création variante accueil: %w", err)
	}
	return content, nil
}

func (s *HomepageStore) Update(ctx context.Context, id string, patch models.HomepagePatch) (models.HomepageContent, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return models.HomepageContent{}, err
	}
	for _, c := range entries {
		if c.ID != id {
			continue
		}
		patch.Apply(&c)
		c.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		if err := s.write(ctx, c); err != nil {
			return models.HomepageContent{}, err
		}
		return c, nil
	}
	return models.HomepageContent{}, store.ErrNotFound
}

func (s *HomepageStore) SetActive(ctx context.Context, id string) (models.HomepageContent, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return models.HomepageContent{}, err
	}

	var target *models.HomepageContent
	for i := range entries {
		if entries[i].ID == id {
			target = &entries[i]
		}
	}
	if target == nil {
		return models.HomepageContent{}, store.ErrNotFound
	}

	session, err := database.GetContentSession()
	if err != nil {
		return models.HomepageContent{}, err
	}

	// Éteint tous les drapeaux puis allume la cible. Pas de transaction
	// multi-lignes ici : GetActive tolère un état transitoire via son repli
	// « première entrée ».
	for _, c := range entries {
		if c.IsActive && c.ID != id {
			if err := session.Query(`UPDATE homepage_content SET is_active = false WHERE id = ?`, c.ID).
				WithContext(ctx).Exec(); err != nil {
				return models.HomepageContent{}, err
			}
		}
	}

	target.IsActive = true
	target.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := session.Query(`UPDATE homepage_content SET is_active = true, updated_at = ? WHERE id = ?`,
		target.UpdatedAt, id).WithContext(ctx).Exec(); err != nil {
		return models.HomepageContent{}, err
	}
	return *target, nil
}

func (s *HomepageStore) Delete(ctx context.Context, id string) error {
	entries, err := s.List(ctx)
	if err != nil {
		return err
	}

	target := -1
	for i := range entries {
		if entries[i].ID == id {
			target = i
		}
	}
	if target == -1 {
		return store.ErrNotFound
	}
	if len(entries) <= 1 {
		return store.ErrLastEntry
	}

	session, err := database.GetContentSession()
	if err != nil {
		return err
	}

	// Promeut une autre variante avant le delete si la cible était active.
	if entries[target].IsActive {
		promote := 0
		if target == 0 {
			promote = 1
		}
		if err := session.Query(`UPDATE homepage_content SET is_active = true WHERE id = ?`, entries[promote].ID).
			WithContext(ctx).Exec(); err != nil {
			return err
		}
	}

	return session.Query(`DELETE FROM homepage_content WHERE id = ?`, id).WithContext(ctx).Exec()
}

func defaultHomepageContent() models.HomepageContent {
	now := time.Now().UTC().Format(time.RFC3339)
	c := models.HomepageContent{
		ID:        "default",
		HeroImage: "/images/hero-default.jpg",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyHeroDefaults(&c)
	return c
}

func applyHeroDefaults(content *models.HomepageContent) {
	if content.HeroTitle == "" {
		content.HeroTitle = "Welcome to Cakelandia"
	}
	if content.HeroSubtitle == "" {
		content.HeroSubtitle = "Delicious pastries for every occasion"
	}
	if content.HeroButtonText == "" {
		content.HeroButtonText = "Shop Now"
	}
	if content.HeroButtonLink == "" {
		content.HeroButtonLink = "/products"
	}
}
