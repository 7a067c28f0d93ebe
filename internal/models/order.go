package models

// Statuts de commande autorisés. Aucune machine à états : n'importe quelle
// transition est permise, seule la valeur est validée.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

var orderStatuses = []string{
	StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled,
}

// IsValidOrderStatus vérifie qu'un statut fait partie de l'énumération.
func IsValidOrderStatus(status string) bool {
	for _, s := range orderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// OrderItem est une copie figée du produit au moment de la commande.
// Les modifications ultérieures du catalogue ne touchent jamais l'historique.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID             string      `json:"id"`
	TrackingNumber string      `json:"trackingNumber"`
	CustomerName   string      `json:"customerName"`
	CustomerEmail  string      `json:"customerEmail"`
	CustomerPhone  string      `json:"customerPhone,omitempty"`
	Address        string      `json:"address"`
	Items          []OrderItem `json:"items"`
	Total          float64     `json:"total"`
	Status         string      `json:"status"`
	CreatedAt      string      `json:"createdAt"`
	UpdatedAt      string      `json:"updatedAt"`
	Notes          string      `json:"notes,omitempty"`
}

// TrackingInfo est la vue publique d'une commande : pas d'adresse, pas
// d'email, pas de téléphone, et seulement le prénom du client.
type TrackingInfo struct {
	TrackingNumber string `json:"trackingNumber"`
	Status         string `json:"status"`
	CustomerName   string `json:"customerName"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}
