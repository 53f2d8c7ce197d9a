package service

import (
	"context"
	"errors"
	"time"

	"whalebux_backend/internal/domain"
	"whalebux_backend/internal/econ"
	"whalebux_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ErrSessionRunning   = errors.New("mining session already running")
	ErrSessionCompleted = errors.New("mining session completed, claim first")
	ErrNothingToClaim   = errors.New("nothing to claim")
)

var (
	miningStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mining_sessions_started_total",
		Help: "Mining sessions started",
	})
	miningClaimed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mining_sessions_claimed_total",
		Help: "Mining sessions claimed",
	})
	miningCoinsPaid = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mining_coins_paid_total",
		Help: "Coins credited by mining claims",
	})
)

func init() {
	prometheus.MustRegister(miningStarted, miningClaimed, miningCoinsPaid)
}

// MiningService runs the session state machine: Idle -> Active ->
// Completed -> Idle. Completion is lazy - every query compares the
// clock against the persisted ends_at, so no timers and no state lost
// across restarts.
type MiningService struct {
	db           *pgxpool.Pool
	accounts     *repository.AccountRepository
	sessions     *repository.SessionRepository
	transactions *repository.TransactionRepository

	floorSeconds int64
	xpPerCoin    int64
}

// NewMiningService wires the service. xpPerCoin is the experience
// granted per claimed coin; the reference economy is 1:1.
func NewMiningService(db *pgxpool.Pool, floorSeconds, xpPerCoin int64) *MiningService {
	if xpPerCoin <= 0 {
		xpPerCoin = 1
	}
	return &MiningService{
		db:           db,
		accounts:     repository.NewAccountRepository(db),
		sessions:     repository.NewSessionRepository(db),
		transactions: repository.NewTransactionRepository(db),
		floorSeconds: floorSeconds,
		xpPerCoin:    xpPerCoin,
	}
}

// SessionStatus is the lazily evaluated view of an account's session.
// When Idle, Params previews what a session started right now would
// earn, computed from the live ledger.
type SessionStatus struct {
	State           domain.SessionState  `json:"state"`
	Params          domain.SessionParams `json:"params"`
	StartedAt       *time.Time           `json:"started_at,omitempty"`
	EndsAt          *time.Time           `json:"ends_at,omitempty"`
	ProgressPercent float64              `json:"progress_percent"`
	TimeLeftSeconds int64                `json:"time_left_seconds"`
	Earnings        int64                `json:"earnings"`
}

// Start freezes the effective parameters from the current ledger and
// opens a session. Rejected while a session is Active or sitting
// Completed-unclaimed.
func (s *MiningService) Start(ctx context.Context, accountID int64) (*domain.MiningSession, error) {
	now := time.Now()

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	acct, err := s.accounts.GetByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}

	existing, err := s.sessions.GetForUpdate(ctx, tx, accountID)
	if err == nil {
		if existing.StateAt(now) == domain.SessionActive {
			return nil, ErrSessionRunning
		}
		return nil, ErrSessionCompleted
	}
	if !errors.Is(err, repository.ErrNoSession) {
		return nil, err
	}

	params := econ.SessionParamsFor(
		acct.Level, acct.RateLevel, acct.BoostLevel, acct.TimeLevel,
		acct.EffectiveVIPTier(now), s.floorSeconds,
	)

	sess := &domain.MiningSession{
		AccountID: accountID,
		StartedAt: now,
		EndsAt:    now.Add(time.Duration(params.DurationSeconds) * time.Second),
		Params:    params,
	}
	if err := s.sessions.CreateTx(ctx, tx, sess); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	miningStarted.Inc()
	return sess, nil
}

// Status evaluates the session against the clock without mutating
// anything. Safe to poll at any cadence.
func (s *MiningService) Status(ctx context.Context, accountID int64) (*SessionStatus, error) {
	now := time.Now()

	sess, err := s.sessions.Get(ctx, accountID)
	if err != nil {
		if !errors.Is(err, repository.ErrNoSession) {
			return nil, err
		}
		// Idle: preview what a session would look like from the
		// current ledger.
		acct, err := s.accounts.GetByID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		params := econ.SessionParamsFor(
			acct.Level, acct.RateLevel, acct.BoostLevel, acct.TimeLevel,
			acct.EffectiveVIPTier(now), s.floorSeconds,
		)
		return &SessionStatus{State: domain.SessionIdle, Params: params}, nil
	}

	return &SessionStatus{
		State:           sess.StateAt(now),
		Params:          sess.Params,
		StartedAt:       &sess.StartedAt,
		EndsAt:          &sess.EndsAt,
		ProgressPercent: sess.ProgressAt(now),
		TimeLeftSeconds: sess.TimeLeftAt(now),
		Earnings:        sess.EarningsAt(now),
	}, nil
}

// ClaimResult reports what a claim paid out and where the ledger
// landed.
type ClaimResult struct {
	Earnings   int64 `json:"earnings"`
	Coins      int64 `json:"coins"`
	Experience int64 `json:"experience"`
	Level      int   `json:"level"`
	LeveledUp  bool  `json:"leveled_up"`
}

// Claim pays out a Completed session: coins and experience both move
// by the frozen earnings (times the configured ratio for experience),
// the level is re-derived, and the session row is deleted. Claiming
// anything not past its end time fails with ErrNothingToClaim.
func (s *MiningService) Claim(ctx context.Context, accountID int64) (*ClaimResult, error) {
	now := time.Now()

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Lock order matches Start: ledger row first, then session row.
	acct, err := s.accounts.GetByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}

	sess, err := s.sessions.GetForUpdate(ctx, tx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNoSession) {
			return nil, ErrNothingToClaim
		}
		return nil, err
	}
	if sess.StateAt(now) != domain.SessionCompleted {
		return nil, ErrNothingToClaim
	}

	earnings := sess.Params.PotentialEarnings

	newCoins, err := s.accounts.CreditCoinsTx(ctx, tx, accountID, earnings)
	if err != nil {
		return nil, err
	}
	newXP, err := s.accounts.AddExperienceTx(ctx, tx, accountID, earnings*s.xpPerCoin)
	if err != nil {
		return nil, err
	}

	newLevel := econ.LevelFor(newXP)
	if newLevel != acct.Level {
		if err := s.accounts.SetLevelTx(ctx, tx, accountID, newLevel); err != nil {
			return nil, err
		}
	}

	err = s.transactions.CreateWithTx(ctx, tx, &domain.Transaction{
		AccountID: accountID,
		Type:      "mining_claim",
		Currency:  domain.CurrencyCoins,
		Amount:    earnings,
		Meta: map[string]interface{}{
			"rate":     sess.Params.RatePerHour,
			"boost":    sess.Params.BoostPercent,
			"duration": sess.Params.DurationSeconds,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := s.sessions.DeleteTx(ctx, tx, accountID); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	miningClaimed.Inc()
	miningCoinsPaid.Add(float64(earnings))

	return &ClaimResult{
		Earnings:   earnings,
		Coins:      newCoins,
		Experience: newXP,
		Level:      newLevel,
		LeveledUp:  newLevel != acct.Level,
	}, nil
}
