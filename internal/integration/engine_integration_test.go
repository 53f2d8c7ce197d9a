package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"whalebux_backend/internal/domain"
	"whalebux_backend/internal/econ"
	"whalebux_backend/internal/repository"
	"whalebux_backend/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

func applyMigrations(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "..", "internal", "migrations")
	files, err := os.ReadDir(migDir)
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".sql" {
			continue
		}
		b, err := os.ReadFile(filepath.Join(migDir, f.Name()))
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if _, err := db.Exec(context.Background(), string(b)); err != nil {
			t.Fatalf("apply migration %s: %v", f.Name(), err)
		}
	}
}

func connectTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)
	applyMigrations(t, db)
	return db
}

func createTestAccount(t *testing.T, db *pgxpool.Pool, tgID int64) *domain.Account {
	t.Helper()
	repo := repository.NewAccountRepository(db)
	ctx := context.Background()

	acct, err := repo.GetByTgID(ctx, tgID)
	if err == nil {
		return acct
	}
	acct = &domain.Account{TgID: tgID, Username: "itest", FirstName: "Itest"}
	if err := repo.Create(ctx, acct); err != nil {
		t.Fatalf("create account: %v", err)
	}
	return acct
}

func TestMiningLifecycle(t *testing.T) {
	db := connectTestDB(t)
	acct := createTestAccount(t, db, time.Now().UnixNano())
	ctx := context.Background()

	mining := service.NewMiningService(db, 0, 1)

	sess, err := mining.Start(ctx, acct.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if sess.Params.DurationSeconds <= 0 || sess.Params.PotentialEarnings <= 0 {
		t.Fatalf("bad frozen params: %+v", sess.Params)
	}

	st, err := mining.Status(ctx, acct.ID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.State != domain.SessionActive {
		t.Fatalf("expected active, got %s", st.State)
	}

	if _, err := mining.Start(ctx, acct.ID); !errors.Is(err, service.ErrSessionRunning) {
		t.Fatalf("expected ErrSessionRunning, got %v", err)
	}

	if _, err := mining.Claim(ctx, acct.ID); !errors.Is(err, service.ErrNothingToClaim) {
		t.Fatalf("expected ErrNothingToClaim, got %v", err)
	}
}

func TestUpgradePurchaseRules(t *testing.T) {
	db := connectTestDB(t)
	acct := createTestAccount(t, db, time.Now().UnixNano())
	ctx := context.Background()

	upgrades := service.NewUpgradeService(db)

	// skipping tiers is rejected
	if _, err := upgrades.Purchase(ctx, acct.ID, econ.TrackRate, 3); !errors.Is(err, service.ErrSequentialUpgrade) {
		t.Fatalf("expected ErrSequentialUpgrade, got %v", err)
	}

	// tier 1 costs 10 coins, starting balance covers it
	res, err := upgrades.Purchase(ctx, acct.ID, econ.TrackRate, 1)
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if res.NewLevel != 1 {
		t.Fatalf("expected level 1, got %d", res.NewLevel)
	}
	if res.Coins != acct.Coins-res.CoinCost {
		t.Fatalf("coin balance mismatch: %d != %d", res.Coins, acct.Coins-res.CoinCost)
	}

	// re-buying the same tier is rejected
	if _, err := upgrades.Purchase(ctx, acct.ID, econ.TrackRate, 1); !errors.Is(err, service.ErrSequentialUpgrade) {
		t.Fatalf("expected ErrSequentialUpgrade, got %v", err)
	}
}

func TestDailyLoginClaimOncePerDay(t *testing.T) {
	db := connectTestDB(t)
	acct := createTestAccount(t, db, time.Now().UnixNano())
	ctx := context.Background()

	logins := service.NewLoginService(db)

	res, err := logins.ClaimDaily(ctx, acct.ID)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if res.Day != 1 {
		t.Fatalf("expected day 1, got %d", res.Day)
	}
	if res.Reward.Kind != domain.RewardCoins {
		t.Fatalf("day 1 should pay coins, got %s", res.Reward.Kind)
	}

	if _, err := logins.ClaimDaily(ctx, acct.ID); !errors.Is(err, service.ErrAlreadyClaimed) {
		t.Fatalf("expected ErrAlreadyClaimed, got %v", err)
	}
}

func TestReferralMilestoneClaim(t *testing.T) {
	db := connectTestDB(t)
	referrer := createTestAccount(t, db, time.Now().UnixNano())
	referred := createTestAccount(t, db, time.Now().UnixNano()+1)
	ctx := context.Background()

	refs := repository.NewReferralRepository(db)
	if err := refs.Link(ctx, referrer.ID, referred.ID); err != nil {
		t.Fatalf("link: %v", err)
	}

	svc := service.NewReferralService(db)

	// milestone 1 needs one referral
	res, err := svc.ClaimMilestone(ctx, referrer.ID, 1)
	if err != nil {
		t.Fatalf("claim milestone: %v", err)
	}
	if res.Referrals != 1 {
		t.Fatalf("expected 1 referral, got %d", res.Referrals)
	}

	if _, err := svc.ClaimMilestone(ctx, referrer.ID, 1); !errors.Is(err, service.ErrAlreadyClaimed) {
		t.Fatalf("expected ErrAlreadyClaimed, got %v", err)
	}

	// milestone 3 needs three referrals
	if _, err := svc.ClaimMilestone(ctx, referrer.ID, 2); !errors.Is(err, service.ErrMilestoneNotReached) {
		t.Fatalf("expected ErrMilestoneNotReached, got %v", err)
	}
}
