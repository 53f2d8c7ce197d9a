package main

import (
	"context"
	"log"
	"os"

	"whalebux_backend/internal/db"
	"whalebux_backend/internal/domain"
	"whalebux_backend/internal/repository"
	"whalebux_backend/internal/service"
)

func main() {
	// expects DATABASE_URL env var
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	repo := repository.NewAccountRepository(pool)
	ctx := context.Background()

	tgID := int64(1234567890)

	existing, err := repo.GetByTgID(ctx, tgID)
	var a *domain.Account
	if err == nil {
		a = existing
		log.Printf("account already exists id=%d\n", a.ID)
	} else {
		a = &domain.Account{
			TgID:      tgID,
			Username:  "testminer",
			FirstName: "Tester",
		}

		if err := repo.Create(ctx, a); err != nil {
			log.Fatalf("create account failed: %v", err)
		}

		log.Printf("account created id=%d\n", a.ID)
	}

	// verify read
	a2, err := repo.GetByTgID(ctx, a.TgID)
	if err != nil {
		log.Fatalf("get by tg id failed: %v", err)
	}
	log.Printf("fetched account id=%d username=%s coins=%d tokens=%s level=%d\n",
		a2.ID, a2.Username, a2.Coins, domain.FormatTokens(a2.Tokens), a2.Level)

	// initialize JWT and print token
	service.InitJWT()
	token, err := service.GenerateJWT(a2.ID)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	log.Printf("token=%s\n", token)
}
