package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"whalebux_backend/internal/db"
	"whalebux_backend/internal/domain"
	"whalebux_backend/internal/repository"
	"whalebux_backend/internal/service"
)

// Connects to a running server, starts nothing itself - it just asks
// for an immediate status frame and then listens for pushes. Start a
// mining session via the REST API first to see progress frames.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	repo := repository.NewAccountRepository(pool)
	ctx := context.Background()

	acct, err := repo.GetByTgID(ctx, 3001)
	if err != nil {
		acct = &domain.Account{TgID: 3001, Username: "smoke", FirstName: "Smoke"}
		if err := repo.Create(ctx, acct); err != nil {
			log.Fatalf("create account: %v", err)
		}
	}

	service.InitJWT()
	token, err := service.GenerateJWT(acct.ID)
	if err != nil {
		log.Fatalf("gen token: %v", err)
	}

	// use 127.0.0.1 to prefer IPv4 (avoid resolving to [::1])
	wsURL := fmt.Sprintf("ws://127.0.0.1:%s/ws?token=%s", port, token)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		log.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"status"}`)); err != nil {
		log.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(15 * time.Second)
	for time.Now().Before(deadline) {
		_ = conn.SetReadDeadline(time.Now().Add(6 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			log.Printf("read error: %v", err)
			break
		}
		log.Printf("got: %s", string(msg))
	}

	log.Println("smoke test finished")
}
