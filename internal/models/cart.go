package models

// CartItem est une ligne de panier envoyée par le front au checkout.
// Le produit embarqué est un instantané côté client, pas une référence vive.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// ReservationLine est la forme minimale d'une ligne pour la réservation de
// stock : l'identifiant produit, le nom (repris dans les erreurs quand le
// produit n'existe plus) et la quantité demandée.
type ReservationLine struct {
	ProductID string
	Name      string
	Quantity  int
}

// StockIssue décrit une ligne refusée par la validation d'inventaire.
type StockIssue struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}
