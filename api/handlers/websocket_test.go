package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/echolytics/persona-engine/communication"
)

func eventually(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestWebSocketDisconnectUnregisters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ws", HandleWebSocket)
	srv := httptest.NewServer(router)
	defer srv.Close()

	manager := communication.GetWSManager()
	base := manager.ClientCount()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	clients := make([]*websocket.Conn, 0, 5)
	for i := 0; i < 5; i++ {
		client, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			t.Fatalf("dial %d failed: %v", i, err)
		}
		clients = append(clients, client)
	}

	if !eventually(func() bool { return manager.ClientCount() == base+5 }) {
		t.Fatalf("registered clients = %d, want %d", manager.ClientCount()-base, 5)
	}

	for _, client := range clients {
		client.Close()
	}

	// Each closed connection must be detected and unregistered from the hub,
	// not linger until a broadcast write fails.
	if !eventually(func() bool { return manager.ClientCount() == base }) {
		t.Errorf("clients still registered after disconnect: %d", manager.ClientCount()-base)
	}
}
