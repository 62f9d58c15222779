package realtime_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/infenixDeveloper/artegallera-backend/internal/realtime"
)

func dialHub(t *testing.T, hub *realtime.Hub) (*websocket.Conn, func()) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWS))
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)

	return conn, func() {
		conn.Close()
		srv.Close()
	}
}

func TestHub(t *testing.T) {
	t.Run("publishes to joined room", func(t *testing.T) {
		hub := realtime.NewHub(zap.NewNop(), nil)
		conn, cleanup := dialHub(t, hub)
		defer cleanup()

		assert.NoError(t, conn.WriteJSON(realtime.ClientMsg{Type: "join", Room: "42"}))

		// join is processed by the read loop; give it a moment
		assert.Eventually(t, func() bool {
			hub.Publish("42", realtime.EventMessage, map[string]string{"hello": "world"})
			conn.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return false
			}
			var got struct {
				Event string          `json:"event"`
				Data  json.RawMessage `json:"data"`
			}
			if err := json.Unmarshal(raw, &got); err != nil {
				return false
			}
			return got.Event == realtime.EventMessage
		}, 2*time.Second, 50*time.Millisecond)
	})

	t.Run("publish to empty room is a no-op", func(t *testing.T) {
		hub := realtime.NewHub(zap.NewNop(), nil)
		hub.Publish("nobody", realtime.EventMessage, "x")
	})

	t.Run("ping gets a pong", func(t *testing.T) {
		hub := realtime.NewHub(zap.NewNop(), nil)
		conn, cleanup := dialHub(t, hub)
		defer cleanup()

		assert.NoError(t, conn.WriteJSON(realtime.ClientMsg{Type: "ping"}))

		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var reply map[string]string
		assert.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "pong", reply["type"])
	})

	t.Run("leave stops delivery", func(t *testing.T) {
		hub := realtime.NewHub(zap.NewNop(), nil)
		conn, cleanup := dialHub(t, hub)
		defer cleanup()

		assert.NoError(t, conn.WriteJSON(realtime.ClientMsg{Type: "join", Room: "general"}))
		assert.NoError(t, conn.WriteJSON(realtime.ClientMsg{Type: "leave", Room: "general"}))
		// flush the read loop past both messages
		assert.NoError(t, conn.WriteJSON(realtime.ClientMsg{Type: "ping"}))
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var reply map[string]string
		assert.NoError(t, conn.ReadJSON(&reply))

		hub.Publish("general", realtime.EventMessage, "late")
		conn.SetReadDeadline(time.Now().Add(150 * time.Millisecond))
		_, _, err := conn.ReadMessage()
		assert.Error(t, err)
	})
}
