package order

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cakelandia_back_end/internal/models"
)

// Plusieurs checkouts diffusent en parallèle pendant que la goroutine du
// handler écrit sur la même connexion : chaque trame doit rester intacte.
func TestOrdersFeedConcurrentBroadcasts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/orders/ws", OrdersFeed)

	srv := httptest.NewServer(r)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/orders/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Le message d'accueil arrive après l'enregistrement dans le hub : le
	// lire garantit que les diffusions suivantes nous atteindront.
	var welcome map[string]interface{}
	require.NoError(t, conn.ReadJSON(&welcome))
	assert.Equal(t, "connected", welcome["type"])

	const writers, perWriter = 4, 25

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				BroadcastOrder(models.Order{
					ID:     fmt.Sprintf("order-%d-%d", n, j),
					Status: models.StatusPending,
				})
			}
		}(i)
	}
	wg.Wait()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	seen := make(map[string]bool)
	for len(seen) < writers*perWriter {
		var msg struct {
			Type  string       `json:"type"`
			Order models.Order `json:"order"`
		}
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, "order_created", msg.Type)
		require.NotEmpty(t, msg.Order.ID)
		seen[msg.Order.ID] = true
	}
}
