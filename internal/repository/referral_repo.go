package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Referral struct {
	ID         int64     `json:"id"`
	ReferrerID int64     `json:"referrer_id"`
	ReferredID int64     `json:"referred_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReferralRepository struct {
	db *pgxpool.Pool
}

func NewReferralRepository(db *pgxpool.Pool) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// GenerateReferralCode generates a unique referral code
func GenerateReferralCode() string {
	bytes := make([]byte, 6)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// GetOrCreateCode gets the account's referral code, minting one on
// first use.
func (r *ReferralRepository) GetOrCreateCode(ctx context.Context, accountID int64) (string, error) {
	var code string
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(referral_code, '') FROM accounts WHERE id = $1`,
		accountID,
	).Scan(&code)
	if err == nil && code != "" {
		return code, nil
	}
	if err != nil {
		return "", err
	}

	for i := 0; i < 5; i++ { // retry on the unique index in case of collision
		code = GenerateReferralCode()
		_, err = r.db.Exec(ctx,
			`UPDATE accounts SET referral_code = $1 WHERE id = $2`,
			code, accountID,
		)
		if err == nil {
			return code, nil
		}
	}
	return "", err
}

// AccountIDByCode resolves a referral code to its owner.
func (r *ReferralRepository) AccountIDByCode(ctx context.Context, code string) (int64, error) {
	var accountID int64
	err := r.db.QueryRow(ctx,
		`SELECT id FROM accounts WHERE referral_code = $1`, code,
	).Scan(&accountID)
	return accountID, err
}

// Link records that referred joined through referrer. A referred
// account links at most once; repeats are silently ignored.
func (r *ReferralRepository) Link(ctx context.Context, referrerID, referredID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO referrals (referrer_id, referred_id)
		 VALUES ($1, $2)
		 ON CONFLICT (referred_id) DO NOTHING`,
		referrerID, referredID,
	)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`UPDATE accounts SET referred_by = $1 WHERE id = $2 AND referred_by IS NULL`,
		referrerID, referredID,
	)
	return err
}

// Count returns how many accounts this one referred - the number the
// milestone ladder runs on.
func (r *ReferralRepository) Count(ctx context.Context, accountID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM referrals WHERE referrer_id = $1`, accountID,
	).Scan(&count)
	return count, err
}

// ListByReferrer returns the referral edges an account created.
func (r *ReferralRepository) ListByReferrer(ctx context.Context, accountID int64) ([]Referral, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, referrer_id, referred_id, created_at
		 FROM referrals
		 WHERE referrer_id = $1
		 ORDER BY created_at DESC`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var referrals []Referral
	for rows.Next() {
		var ref Referral
		if err := rows.Scan(&ref.ID, &ref.ReferrerID, &ref.ReferredID, &ref.CreatedAt); err != nil {
			return nil, err
		}
		referrals = append(referrals, ref)
	}
	return referrals, rows.Err()
}
