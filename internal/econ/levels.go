// Package econ holds the designer-authored economy tables: level
// progression, the three upgrade catalogs, VIP plans, the daily-login
// calendar and the referral milestone ladder. Everything here is
// immutable for the process lifetime; the numbers are tuning data, not
// derived values.
package econ

import "math"

// LevelConfig describes one progression level: the experience range
// that maps to it and the base mining economics it grants.
type LevelConfig struct {
	XPMin       int64   `json:"xp_min"`
	XPMax       int64   `json:"xp_max"`
	MiningHours int     `json:"mining_hours"`
	BaseRate    float64 `json:"base_rate"` // coins per hour
	Boost       float64 `json:"boost"`     // percent
}

const (
	MinLevel = 1
	MaxLevel = 9
)

// Levels maps level 1..9 to its configuration. Level 9 has no upper
// experience bound.
var Levels = map[int]LevelConfig{
	1: {XPMin: 0, XPMax: 10, MiningHours: 2, BaseRate: 1.0, Boost: 0},
	2: {XPMin: 11, XPMax: 100, MiningHours: 3, BaseRate: 2.1, Boost: 7},
	3: {XPMin: 101, XPMax: 1000, MiningHours: 4, BaseRate: 3.21, Boost: 15},
	4: {XPMin: 1001, XPMax: 10000, MiningHours: 5, BaseRate: 4.4, Boost: 23},
	5: {XPMin: 10001, XPMax: 100000, MiningHours: 6, BaseRate: 5.6, Boost: 38},
	6: {XPMin: 100001, XPMax: 500000, MiningHours: 7, BaseRate: 6.9, Boost: 50},
	7: {XPMin: 500001, XPMax: 1000000, MiningHours: 8, BaseRate: 8.26, Boost: 76},
	8: {XPMin: 1000001, XPMax: 5000000, MiningHours: 9, BaseRate: 9.6, Boost: 90},
	9: {XPMin: 5000001, XPMax: math.MaxInt64, MiningHours: 10, BaseRate: 11.25, Boost: 150},
}

// LevelFor returns the greatest level whose XPMin the experience
// reaches. This is the only way a stored level is ever derived.
func LevelFor(experience int64) int {
	for lvl := MaxLevel; lvl >= MinLevel; lvl-- {
		if experience >= Levels[lvl].XPMin {
			return lvl
		}
	}
	return MinLevel
}
