package domain

import (
	"fmt"
	"time"
)

// TokenScale is how many stored token units make one whole WBUX token.
// Tokens are kept as integer units so balances stay exact; the UI shows
// four decimal places.
const TokenScale = 10000

// Account is the single ledger record for one player: balances, derived
// level and the three upgrade tracks. All game systems read and mutate
// this row, never each other.
type Account struct {
	ID           int64      `db:"id" json:"id"`
	TgID         int64      `db:"tg_id" json:"tg_id"`
	Username     string     `db:"username" json:"username"`
	FirstName    string     `db:"first_name" json:"first_name"`
	Coins        int64      `db:"coins" json:"coins"`
	Tokens       int64      `db:"tokens" json:"tokens"` // token units, see TokenScale
	Experience   int64      `db:"experience" json:"experience"`
	Level        int        `db:"level" json:"level"`
	RateLevel    int        `db:"rate_level" json:"rate_level"`
	BoostLevel   int        `db:"boost_level" json:"boost_level"`
	TimeLevel    int        `db:"time_level" json:"time_level"`
	VIPTier      int        `db:"vip_tier" json:"vip_tier"`
	VIPExpiresAt *time.Time `db:"vip_expires_at" json:"vip_expires_at,omitempty"`
	ReferralCode string     `db:"referral_code" json:"referral_code,omitempty"`
	ReferredBy   *int64     `db:"referred_by" json:"referred_by,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// EffectiveVIPTier returns the tier that actually applies at the given
// time. An expired membership contributes nothing; the stored tier is
// left alone until the next purchase.
func (a *Account) EffectiveVIPTier(now time.Time) int {
	if a.VIPTier <= 0 {
		return 0
	}
	if a.VIPExpiresAt == nil || !a.VIPExpiresAt.After(now) {
		return 0
	}
	return a.VIPTier
}

// FormatTokens renders token units with the 4-decimal display precision.
func FormatTokens(units int64) string {
	whole := units / TokenScale
	frac := units % TokenScale
	if frac < 0 {
		frac = -frac
	}
	return fmt.Sprintf("%d.%04d", whole, frac)
}

// TokensFromFloat converts a decimal token amount to stored units,
// rounding to the nearest unit.
func TokensFromFloat(v float64) int64 {
	if v >= 0 {
		return int64(v*TokenScale + 0.5)
	}
	return int64(v*TokenScale - 0.5)
}
