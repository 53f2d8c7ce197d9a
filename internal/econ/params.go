package econ

import (
	"math"

	"whalebux_backend/internal/domain"
)

const (
	// FloorSessionSeconds is the shortest a mining run can get no
	// matter how many time upgrades and VIP cuts stack up.
	FloorSessionSeconds int64 = 30 * 60

	// TimeUpgradeCutSeconds is shaved off per time-upgrade level.
	TimeUpgradeCutSeconds int64 = 30 * 60

	secondsPerHour = 3600
)

// SessionParamsFor computes the effective mining economics for an
// account snapshot. Callers freeze the result into the session row at
// start; nothing re-reads the ledger after that.
//
// floorSeconds <= 0 falls back to FloorSessionSeconds.
func SessionParamsFor(level, rateLevel, boostLevel, timeLevel, vipTier int, floorSeconds int64) domain.SessionParams {
	if floorSeconds <= 0 {
		floorSeconds = FloorSessionSeconds
	}

	base, ok := Levels[level]
	if !ok {
		base = Levels[MinLevel]
	}

	duration := int64(base.MiningHours)*secondsPerHour -
		int64(timeLevel)*TimeUpgradeCutSeconds -
		VIPDurationCut(vipTier)
	if duration < floorSeconds {
		duration = floorSeconds
	}

	rate := base.BaseRate + float64(rateLevel)*1 + VIPRateBonus(vipTier)
	boost := base.Boost + float64(boostLevel)*5 + VIPBoostPercent(vipTier)

	potential := int64(math.Floor(rate * (float64(duration) / secondsPerHour) * (1 + boost/100)))

	return domain.SessionParams{
		DurationSeconds:   duration,
		RatePerHour:       rate,
		BoostPercent:      boost,
		PotentialEarnings: potential,
	}
}
