package service

import (
	"context"
	"time"

	"whalebux_backend/internal/domain"
	"whalebux_backend/internal/econ"
	"whalebux_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrAlreadyClaimed is shared by the daily calendar and the milestone
// ladder: the reward for this slot was taken before.
var ErrAlreadyClaimed = repository.ErrAlreadyClaimed

// LoginService drives the 28-day daily-login calendar.
type LoginService struct {
	db     *pgxpool.Pool
	logins *repository.LoginRepository
	rewardApplier
}

func NewLoginService(db *pgxpool.Pool) *LoginService {
	return &LoginService{
		db:     db,
		logins: repository.NewLoginRepository(db),
		rewardApplier: rewardApplier{
			accounts:     repository.NewAccountRepository(db),
			transactions: repository.NewTransactionRepository(db),
		},
	}
}

// DaySlot is one calendar cell for API responses.
type DaySlot struct {
	Day     int           `json:"day"`
	Reward  domain.Reward `json:"reward"`
	Special bool          `json:"special"`
	Claimed bool          `json:"claimed"`
}

// CalendarStatus is the caller's view of the cycle.
type CalendarStatus struct {
	CurrentDay         int        `json:"current_day"`
	LastLogin          *time.Time `json:"last_login,omitempty"`
	RewardClaimedToday bool       `json:"reward_claimed_today"`
	Days               []DaySlot  `json:"days"`
}

func buildStatus(cal *domain.LoginCalendar) *CalendarStatus {
	st := &CalendarStatus{
		CurrentDay:         cal.CurrentDay,
		LastLogin:          cal.LastLogin,
		RewardClaimedToday: cal.RewardClaimedToday,
	}
	for day := 1; day <= domain.LoginCycleDays; day++ {
		reward, special := econ.DailyReward(day)
		st.Days = append(st.Days, DaySlot{
			Day:     day,
			Reward:  reward,
			Special: special,
			Claimed: cal.Claimed[day-1],
		})
	}
	return st
}

// Status returns the calendar without advancing it.
func (s *LoginService) Status(ctx context.Context, accountID int64) (*CalendarStatus, error) {
	cal, err := s.logins.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return buildStatus(cal), nil
}

// CheckIn advances the login cursor for today. Calling it twice on the
// same calendar date is a no-op, not an error.
func (s *LoginService) CheckIn(ctx context.Context, accountID int64) (*CalendarStatus, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cal, err := s.logins.GetForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}
	if cal.CheckIn(time.Now()) {
		if err := s.logins.SaveTx(ctx, tx, cal); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return buildStatus(cal), nil
}

// DailyClaimResult reports what the claim granted.
type DailyClaimResult struct {
	Day      int             `json:"day"`
	Reward   domain.Reward   `json:"reward"`
	VIPBonus int64           `json:"vip_bonus,omitempty"`
	Calendar *CalendarStatus `json:"calendar"`
}

// ClaimDaily takes today's slot. It checks in first, so a claim right
// after midnight works without a separate call. VIP members get their
// flat coin bonus on top of whatever the slot pays.
func (s *LoginService) ClaimDaily(ctx context.Context, accountID int64) (*DailyClaimResult, error) {
	now := time.Now()

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Ledger lock first, calendar row second - same order everywhere.
	acct, err := s.accounts.GetByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}

	cal, err := s.logins.GetForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}
	cal.CheckIn(now)

	if !cal.CanClaim() {
		return nil, ErrAlreadyClaimed
	}

	reward, _ := econ.DailyReward(cal.CurrentDay)
	if err := s.applyTx(ctx, tx, accountID, reward, "daily_login"); err != nil {
		return nil, err
	}

	var vipBonus int64
	if tier := acct.EffectiveVIPTier(now); tier > 0 {
		if plan, ok := econ.VIPPlanFor(tier); ok && plan.DailyLoginBonus > 0 {
			vipBonus = plan.DailyLoginBonus
			if _, err := s.accounts.CreditCoinsTx(ctx, tx, accountID, vipBonus); err != nil {
				return nil, err
			}
			err = s.transactions.CreateWithTx(ctx, tx, &domain.Transaction{
				AccountID: accountID,
				Type:      "daily_login_vip_bonus",
				Currency:  domain.CurrencyCoins,
				Amount:    vipBonus,
				Meta:      map[string]interface{}{"vip_tier": tier},
			})
			if err != nil {
				return nil, err
			}
		}
	}

	cal.MarkClaimed()
	if err := s.logins.SaveTx(ctx, tx, cal); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &DailyClaimResult{
		Day:      cal.CurrentDay,
		Reward:   reward,
		VIPBonus: vipBonus,
		Calendar: buildStatus(cal),
	}, nil
}
