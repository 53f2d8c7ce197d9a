package repository

import (
	"context"
	"errors"

	"whalebux_backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LoginRepository struct {
	db *pgxpool.Pool
}

func NewLoginRepository(db *pgxpool.Pool) *LoginRepository {
	return &LoginRepository{db: db}
}

// GetForUpdate loads (or lazily creates) the login cursor row and
// locks it for the transaction. Claimed day slots are stored as an
// int[] of day numbers and unpacked into the fixed 28-slot array.
func (r *LoginRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, accountID int64) (*domain.LoginCalendar, error) {
	cal, err := r.scan(tx.QueryRow(ctx,
		`SELECT account_id, current_day, last_login, reward_claimed, claimed_days
		 FROM login_calendar WHERE account_id = $1 FOR UPDATE`, accountID))
	if err == nil {
		return cal, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// First touch for this account.
	return r.scan(tx.QueryRow(ctx,
		`INSERT INTO login_calendar (account_id) VALUES ($1)
		 RETURNING account_id, current_day, last_login, reward_claimed, claimed_days`, accountID))
}

// Get is the read-only variant for status endpoints.
func (r *LoginRepository) Get(ctx context.Context, accountID int64) (*domain.LoginCalendar, error) {
	cal, err := r.scan(r.db.QueryRow(ctx,
		`SELECT account_id, current_day, last_login, reward_claimed, claimed_days
		 FROM login_calendar WHERE account_id = $1`, accountID))
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.LoginCalendar{AccountID: accountID}, nil
	}
	return cal, err
}

// SaveTx writes the cursor back. The whole record round-trips: cursor,
// date, today's flag and every per-slot claimed flag.
func (r *LoginRepository) SaveTx(ctx context.Context, tx pgx.Tx, cal *domain.LoginCalendar) error {
	var days []int32
	for i, claimed := range cal.Claimed {
		if claimed {
			days = append(days, int32(i+1))
		}
	}
	_, err := tx.Exec(ctx,
		`UPDATE login_calendar
		 SET current_day = $1, last_login = $2, reward_claimed = $3, claimed_days = $4
		 WHERE account_id = $5`,
		cal.CurrentDay, cal.LastLogin, cal.RewardClaimedToday, days, cal.AccountID,
	)
	return err
}

func (r *LoginRepository) scan(row pgx.Row) (*domain.LoginCalendar, error) {
	var cal domain.LoginCalendar
	var days []int32
	if err := row.Scan(&cal.AccountID, &cal.CurrentDay, &cal.LastLogin, &cal.RewardClaimedToday, &days); err != nil {
		return nil, err
	}
	for _, d := range days {
		if d >= 1 && d <= domain.LoginCycleDays {
			cal.Claimed[d-1] = true
		}
	}
	return &cal, nil
}
