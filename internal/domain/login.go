package domain

import "time"

// LoginCycleDays is the length of the daily-login calendar.
const LoginCycleDays = 28

// LoginCalendar is the persisted cursor over the 28-day login cycle.
// CurrentDay 0 means the account has never checked in.
type LoginCalendar struct {
	AccountID          int64                `db:"account_id" json:"account_id"`
	CurrentDay         int                  `db:"current_day" json:"current_day"`
	LastLogin          *time.Time           `db:"last_login" json:"last_login,omitempty"`
	RewardClaimedToday bool                 `db:"reward_claimed" json:"reward_claimed_today"`
	Claimed            [LoginCycleDays]bool `json:"claimed_days"`
}

// CheckIn advances the cursor for the calendar date of now. Returns
// false when the account already checked in today (no-op). A one-day
// gap continues the streak, capped at day 28; anything longer breaks
// it: back to day 1 with every claimed flag cleared.
func (c *LoginCalendar) CheckIn(now time.Time) bool {
	today := dateOf(now)

	if c.LastLogin != nil && dateOf(*c.LastLogin).Equal(today) {
		return false
	}

	switch {
	case c.LastLogin == nil:
		c.CurrentDay = 1
	case daysBetween(*c.LastLogin, now) == 1:
		c.CurrentDay++
		if c.CurrentDay > LoginCycleDays {
			c.CurrentDay = LoginCycleDays
		}
	default:
		c.CurrentDay = 1
		c.Claimed = [LoginCycleDays]bool{}
	}

	c.RewardClaimedToday = false
	c.LastLogin = &today
	return true
}

// CanClaim reports whether today's slot is still up for grabs.
func (c *LoginCalendar) CanClaim() bool {
	return c.CurrentDay >= 1 && !c.RewardClaimedToday
}

// MarkClaimed records today's reward as taken.
func (c *LoginCalendar) MarkClaimed() {
	if c.CurrentDay >= 1 && c.CurrentDay <= LoginCycleDays {
		c.Claimed[c.CurrentDay-1] = true
	}
	c.RewardClaimedToday = true
}

// dateOf truncates to the calendar date in UTC. Streak math compares
// dates, not instants, so 23:59 and 00:01 count as consecutive days.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	return int(dateOf(b).Sub(dateOf(a)).Hours() / 24)
}
