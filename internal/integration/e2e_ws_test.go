package integration

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"whalebux_backend/internal/config"
	httpserver "whalebux_backend/internal/http"
	"whalebux_backend/internal/service"
)

// End to end: start a mining session through the service layer, then
// subscribe over the websocket and expect a progress frame.
func TestE2E_WS_Progress(t *testing.T) {
	db := connectTestDB(t)
	os.Setenv("JWT_SECRET", "test-secret")
	service.InitJWT()

	acct := createTestAccount(t, db, time.Now().UnixNano())

	mining := service.NewMiningService(db, 0, 1)
	if _, err := mining.Start(context.Background(), acct.ID); err != nil {
		t.Fatalf("start mining: %v", err)
	}

	token, err := service.GenerateJWT(acct.ID)
	if err != nil {
		t.Fatalf("gen token: %v", err)
	}

	cfg := &config.Config{
		BotToken:         "dummy-bot-token",
		APIRateLimit:     1000,
		APIRateWindow:    60,
		AuthRateLimit:    1000,
		AuthRateWindow:   60,
		ActionRateLimit:  1000,
		ActionRateWindow: 60,
		WSPushSeconds:    1,
	}

	gin.SetMode(gin.TestMode)
	r := gin.Default()
	hub := httpserver.RegisterRoutes(r, db, cfg, "test")

	hubCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(hubCtx)

	ts := httptest.NewServer(r)
	defer ts.Close()

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"status"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var frame struct {
		Type              string  `json:"type"`
		State             string  `json:"state"`
		Progress          float64 `json:"progress"`
		PotentialEarnings int64   `json:"potential_earnings"`
	}
	if err := json.Unmarshal(msg, &frame); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if frame.Type != "progress" {
		t.Fatalf("expected progress frame, got %q", frame.Type)
	}
	if frame.State != "active" {
		t.Fatalf("expected active state, got %q", frame.State)
	}
	if frame.PotentialEarnings <= 0 {
		t.Fatalf("expected positive potential earnings, got %d", frame.PotentialEarnings)
	}
}
