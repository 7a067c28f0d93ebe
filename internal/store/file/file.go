// Package file implémente les stores sur des documents JSON à plat
// (un tableau d'entités par fichier), le format historique du storefront.
// Chaque store sérialise ses cycles lecture-modification-écriture derrière
// un mutex : deux checkouts concurrents ne peuvent plus survendre le stock
// dans un même processus.
package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// normalizeID ramène un identifiant à sa forme canonique. Les fichiers
// hérités contiennent des ids numériques ou entourés d'espaces.
func normalizeID(id string) string {
	return strings.TrimSpace(id)
}

// readJSON charge un document. Fichier absent → collection vide
// auto-initialisée (pas une erreur). Contenu illisible → erreur interne.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return writeJSON(path, v)
	}
	if err != nil {
		return fmt.Errorf("lecture %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// writeJSON réécrit le document entier, indenté comme le faisait le front
// (les fichiers restent éditables à la main).
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("création répertoire data: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("écriture %s: %w", path, err)
	}
	return nil
}
