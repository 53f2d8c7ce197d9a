package domain

import "time"

// SessionState - where a mining session is in its lifecycle.
type SessionState string

const (
	SessionIdle      SessionState = "idle"
	SessionActive    SessionState = "active"
	SessionCompleted SessionState = "completed"
)

// SessionParams are the economics frozen at session start. Upgrades or
// VIP changes bought mid-session never touch a running session; claim
// pays out PotentialEarnings exactly as computed here.
type SessionParams struct {
	DurationSeconds   int64   `db:"duration_seconds" json:"duration_seconds"`
	RatePerHour       float64 `db:"rate_per_hour" json:"rate_per_hour"`
	BoostPercent      float64 `db:"boost_percent" json:"boost_percent"`
	PotentialEarnings int64   `db:"potential_earnings" json:"potential_earnings"`
}

// MiningSession is one timed run. There is at most one per account; the
// row is deleted on claim. Completion is never event-driven: it is a
// pure predicate over (now, EndsAt), so a session persisted mid-flight
// reconstructs exactly after a restart.
type MiningSession struct {
	AccountID int64         `db:"account_id" json:"account_id"`
	StartedAt time.Time     `db:"started_at" json:"started_at"`
	EndsAt    time.Time     `db:"ends_at" json:"ends_at"`
	Params    SessionParams `json:"params"`
}

// StateAt evaluates the session lazily against the clock.
func (s *MiningSession) StateAt(now time.Time) SessionState {
	if s == nil {
		return SessionIdle
	}
	if now.Before(s.EndsAt) {
		return SessionActive
	}
	return SessionCompleted
}

// ProgressAt returns accrued progress in percent, clamped to [0, 100].
func (s *MiningSession) ProgressAt(now time.Time) float64 {
	if s == nil {
		return 0
	}
	total := s.EndsAt.Sub(s.StartedAt).Seconds()
	if total <= 0 {
		return 100
	}
	p := now.Sub(s.StartedAt).Seconds() / total * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// TimeLeftAt returns whole seconds until completion, 0 once done.
func (s *MiningSession) TimeLeftAt(now time.Time) int64 {
	if s == nil {
		return 0
	}
	left := int64(s.EndsAt.Sub(now).Seconds())
	if left < 0 {
		return 0
	}
	return left
}

// EarningsAt is the claimable amount: zero while the run is still
// active, the frozen potential once past EndsAt.
func (s *MiningSession) EarningsAt(now time.Time) int64 {
	if s.StateAt(now) != SessionCompleted {
		return 0
	}
	return s.Params.PotentialEarnings
}
