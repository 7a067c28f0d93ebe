package order

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"cakelandia_back_end/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// feedClient enveloppe une connexion avec son mutex d'écriture : l'accueil
// et les pings partent de la goroutine du handler, les diffusions de celle
// du checkout, et gorilla/websocket n'admet qu'un écrivain à la fois.
type feedClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *feedClient) writeJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *feedClient) ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

var (
	feedMu    sync.Mutex
	feedConns = make(map[*feedClient]bool)
)

// OrdersFeed ouvre un flux WebSocket pour le back-office : chaque nouvelle
// commande soumise est poussée en temps réel aux connexions actives.
func OrdersFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}

	client := &feedClient{conn: conn}

	feedMu.Lock()
	feedConns[client] = true
	feedMu.Unlock()

	defer func() {
		feedMu.Lock()
		delete(feedConns, client)
		feedMu.Unlock()
		conn.Close()
	}()

	client.writeJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Flux commandes activé",
	})

	// Boucle de lecture : détecte la fermeture côté client. Les pings
	// gardent la connexion active à travers les proxys.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-time.After(30 * time.Second):
			if err := client.ping(); err != nil {
				return
			}
		}
	}
}

// BroadcastOrder pousse une commande à toutes les connexions du flux.
// Une connexion en erreur est retirée, jamais bloquante.
func BroadcastOrder(o models.Order) {
	feedMu.Lock()
	defer feedMu.Unlock()

	for client := range feedConns {
		err := client.writeJSON(map[string]interface{}{
			"type":  "order_created",
			"order": o,
		})
		if err != nil {
			log.Printf("❌ Erreur envoi WebSocket: %v", err)
			client.conn.Close()
			delete(feedConns, client)
		}
	}
}
