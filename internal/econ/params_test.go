package econ

import "testing"

func TestSessionParamsBaseline(t *testing.T) {
	p := SessionParamsFor(1, 0, 0, 0, 0, 0)
	if p.DurationSeconds != 7200 {
		t.Fatalf("duration = %d, want 7200", p.DurationSeconds)
	}
	if p.RatePerHour != 1.0 {
		t.Fatalf("rate = %v, want 1.0", p.RatePerHour)
	}
	if p.BoostPercent != 0 {
		t.Fatalf("boost = %v, want 0", p.BoostPercent)
	}
	if p.PotentialEarnings != 2 {
		t.Fatalf("potential = %d, want 2", p.PotentialEarnings)
	}
}

func TestSessionParamsWithUpgrades(t *testing.T) {
	// level 5: 6h base, rate 5.6, boost 38
	p := SessionParamsFor(5, 3, 2, 4, 0, 0)
	if p.DurationSeconds != 14400 {
		t.Fatalf("duration = %d, want 14400", p.DurationSeconds)
	}
	if p.RatePerHour != 5.6+3 {
		t.Fatalf("rate = %v, want 8.6", p.RatePerHour)
	}
	if p.BoostPercent != 38+10 {
		t.Fatalf("boost = %v, want 48", p.BoostPercent)
	}
	// floor(8.6 * 4 * 1.48) = floor(50.912)
	if p.PotentialEarnings != 50 {
		t.Fatalf("potential = %d, want 50", p.PotentialEarnings)
	}
}

func TestSessionParamsVIP(t *testing.T) {
	p := SessionParamsFor(9, 0, 0, 0, 3, 0)
	if p.DurationSeconds != 10*3600-3600 {
		t.Fatalf("duration = %d, want %d", p.DurationSeconds, 10*3600-3600)
	}
	if p.RatePerHour != 11.25+3 {
		t.Fatalf("rate = %v, want 14.25", p.RatePerHour)
	}
	if p.BoostPercent != 150+15 {
		t.Fatalf("boost = %v, want 165", p.BoostPercent)
	}
}

func TestSessionParamsDurationFloor(t *testing.T) {
	// level 1 base 2h, nine time levels cut far past zero
	p := SessionParamsFor(1, 0, 0, 9, 3, 0)
	if p.DurationSeconds != FloorSessionSeconds {
		t.Fatalf("duration = %d, want floor %d", p.DurationSeconds, FloorSessionSeconds)
	}

	// custom floor is honored
	p = SessionParamsFor(1, 0, 0, 9, 0, 60)
	if p.DurationSeconds != 60 {
		t.Fatalf("duration = %d, want 60", p.DurationSeconds)
	}
}

func TestSessionParamsUnknownLevelFallsBack(t *testing.T) {
	p := SessionParamsFor(42, 0, 0, 0, 0, 0)
	base := SessionParamsFor(MinLevel, 0, 0, 0, 0, 0)
	if p != base {
		t.Fatalf("unknown level should use level %d params: %+v != %+v", MinLevel, p, base)
	}
}
