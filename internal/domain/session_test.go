package domain

import (
	"testing"
	"time"
)

func testSession() *MiningSession {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &MiningSession{
		AccountID: 1,
		StartedAt: start,
		EndsAt:    start.Add(2 * time.Hour),
		Params: SessionParams{
			DurationSeconds:   7200,
			RatePerHour:       1,
			PotentialEarnings: 2,
		},
	}
}

func TestSessionStateAt(t *testing.T) {
	s := testSession()

	if got := s.StateAt(s.StartedAt); got != SessionActive {
		t.Fatalf("at start: %s", got)
	}
	if got := s.StateAt(s.StartedAt.Add(time.Hour)); got != SessionActive {
		t.Fatalf("mid run: %s", got)
	}
	if got := s.StateAt(s.EndsAt); got != SessionCompleted {
		t.Fatalf("at ends_at: %s", got)
	}
	if got := s.StateAt(s.EndsAt.Add(time.Hour)); got != SessionCompleted {
		t.Fatalf("past end: %s", got)
	}

	var nilSession *MiningSession
	if got := nilSession.StateAt(time.Now()); got != SessionIdle {
		t.Fatalf("nil session: %s", got)
	}
}

func TestSessionProgressAt(t *testing.T) {
	s := testSession()

	if p := s.ProgressAt(s.StartedAt); p != 0 {
		t.Fatalf("at start: %v", p)
	}
	if p := s.ProgressAt(s.StartedAt.Add(time.Hour)); p != 50 {
		t.Fatalf("mid run: %v", p)
	}
	if p := s.ProgressAt(s.EndsAt.Add(time.Hour)); p != 100 {
		t.Fatalf("past end should clamp: %v", p)
	}
	if p := s.ProgressAt(s.StartedAt.Add(-time.Hour)); p != 0 {
		t.Fatalf("before start should clamp: %v", p)
	}
}

func TestSessionEarningsAt(t *testing.T) {
	s := testSession()

	if e := s.EarningsAt(s.StartedAt.Add(time.Hour)); e != 0 {
		t.Fatalf("active earnings = %d, want 0", e)
	}
	if e := s.EarningsAt(s.EndsAt); e != s.Params.PotentialEarnings {
		t.Fatalf("completed earnings = %d, want %d", e, s.Params.PotentialEarnings)
	}
}

func TestSessionTimeLeftAt(t *testing.T) {
	s := testSession()

	if left := s.TimeLeftAt(s.StartedAt); left != 7200 {
		t.Fatalf("at start: %d", left)
	}
	if left := s.TimeLeftAt(s.EndsAt.Add(time.Minute)); left != 0 {
		t.Fatalf("past end: %d", left)
	}
}
