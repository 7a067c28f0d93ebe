package models

// Product représente une entrée du catalogue.
// Stock à nil = stock illimité (le produit n'est jamais en rupture).
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Featured    bool    `json:"featured,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
}

// ProductPatch contient les champs modifiables d'un produit.
// Un pointeur nil signifie « champ non fourni, ne pas toucher ».
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Featured    *bool    `json:"featured"`
	Stock       *int     `json:"stock"`
}

// Apply fusionne le patch dans le produit (même sémantique que le PUT du front).
func (patch ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Stock != nil {
		p.Stock = patch.Stock
	}
}

// StockValue retourne le stock effectif pour le tri et les filtres
// (illimité compté comme 0, comme dans le front historique).
func (p Product) StockValue() int {
	if p.Stock == nil {
		return 0
	}
	return *p.Stock
}
