package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"cakelandia_back_end/internal/models"
	"cakelandia_back_end/internal/store"
)

// Le fichier homepage.json garde son enveloppe historique {"content": [...]}.
type homepageDoc struct {
	Content []models.HomepageContent `json:"content"`
}

type HomepageStore struct {
	path string
	mu   sync.Mutex
}

func NewHomepageStore(dataDir string) *HomepageStore {
	return &HomepageStore{path: filepath.Join(dataDir, "homepage.json")}
}

// defaultContent est le document écrit à la première lecture quand le store
// est vide ou absent : la vitrine ne doit jamais se retrouver sans bannière.
func defaultContent() models.HomepageContent {
	now := time.Now().UTC().Format(time.RFC3339)
	return models.HomepageContent{
		ID:             "default",
		HeroImage:      "/images/hero-default.jpg",
		HeroTitle:      "Welcome to Cakelandia",
		HeroSubtitle:   "Delicious pastries for every occasion",
		HeroButtonText: "Shop Now",
		HeroButtonLink: "/products",
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// load auto-initialise le document par défaut si le fichier est absent ou
// si la collection est vide.
func (s *HomepageStore) load() (homepageDoc, error) {
	var doc homepageDoc
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) || (err == nil && len(data) == 0) {
		doc.Content = []models.HomepageContent{defaultContent()}
		return doc, writeJSON(s.path, doc)
	}
	if err != nil {
		return doc, fmt.Errorf("lecture %s: %w", s.path, err)
	}
	if err := readJSON(s.path, &doc); err != nil {
		return doc, err
	}
	if len(doc.Content) == 0 {
		doc.Content = []models.HomepageContent{defaultContent()}
		return doc, writeJSON(s.path, doc)
	}
	return doc, nil
}

func (s *HomepageStore) List(ctx context.Context) ([]models.HomepageContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Content, nil
}

// GetActive retourne la variante active, ou la première si aucune n'est
// marquée (repli défensif sur données incohérentes).
func (s *HomepageStore) GetActive(ctx context.Context) (models.HomepageContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return models.HomepageContent{}, err
	}
	for _, content := range doc.Content {
		if content.IsActive {
			return content, nil
		}
	}
	return doc.Content[0], nil
}

// Create ajoute une variante inactive : l'admin doit l'activer explicitement.
func (s *HomepageStore) Create(ctx context.Context, content models.HomepageContent) (models.HomepageContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	content.ID = fmt.Sprintf("hero-%d", time.Now().UnixMilli())
	content.IsActive = false
	content.CreatedAt = now
	content.UpdatedAt = now
	applyHeroDefaults(&content)

	doc, err := s.load()
	if err != nil {
		return models.HomepageContent{}, err
	}
	doc.Content = append(doc.Content, content)
	if err := writeJSON(s.path, doc); err != nil {
		return models.HomepageContent{}, err
	}
	return content, nil
}

func (s *HomepageStore) Update(ctx context.Context, id string, patch models.HomepagePatch) (models.HomepageContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return models.HomepageContent{}, err
	}

	for i := range doc.Content {
		if doc.Content[i].ID != id {
			continue
		}
		patch.Apply(&doc.Content[i])
		doc.Content[i].UpdatedAt = time.Now().UTC().Format(time.RFC3339)
		if err := writeJSON(s.path, doc); err != nil {
			return models.HomepageContent{}, err
		}
		return doc.Content[i], nil
	}
	return models.HomepageContent{}, store.ErrNotFound
}

// SetActive éteint le drapeau sur toutes les variantes puis l'allume sur la
// cible, dans une seule réécriture : exactement une active, quel que soit
// l'état de départ.
func (s *HomepageStore) SetActive(ctx context.Context, id string) (models.HomepageContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return models.HomepageContent{}, err
	}

	target := -1
	for i := range doc.Content {
		if doc.Content[i].ID == id {
			target = i
		}
	}
	if target == -1 {
		return models.HomepageContent{}, store.ErrNotFound
	}

	for i := range doc.Content {
		doc.Content[i].IsActive = false
	}
	doc.Content[target].IsActive = true
	doc.Content[target].UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := writeJSON(s.path, doc); err != nil {
		return models.HomepageContent{}, err
	}
	return doc.Content[target], nil
}

// Delete refuse de vider la collection. Si la variante supprimée était
// active, une autre est promue avant le commit pour que l'invariant
// « exactement une active » survive à la suppression.
func (s *HomepageStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	target := -1
	for i := range doc.Content {
		if doc.Content[i].ID == id {
			target = i
		}
	}
	if target == -1 {
		return store.ErrNotFound
	}
	if len(doc.Content) <= 1 {
		return store.ErrLastEntry
	}

	if doc.Content[target].IsActive {
		promote := 0
		if target == 0 {
			promote = 1
		}
		doc.Content[promote].IsActive = true
	}

	doc.Content = append(doc.Content[:target], doc.Content[target+1:]...)
	return writeJSON(s.path, doc)
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
