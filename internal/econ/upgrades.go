package econ

import "whalebux_backend/internal/domain"

// tokenScale aliases the ledger's token unit so the cost tables below
// read in whole WBUX.
const tokenScale = domain.TokenScale

// UpgradeTrack names one of the three purchasable upgrade lines.
type UpgradeTrack string

const (
	TrackRate  UpgradeTrack = "rate"
	TrackBoost UpgradeTrack = "boost"
	TrackTime  UpgradeTrack = "time"
)

// MaxUpgradeTier is the catalog depth of every track.
const MaxUpgradeTier = 9

// UpgradeTier is one purchasable step. Bonus is display data (coins/hr
// for rate, percent for boost, minutes cut for time); the session math
// uses the flat per-level formulas in SessionParamsFor. Exactly one of
// the two costs is non-zero in the reference tables, but when both are
// set both get charged.
type UpgradeTier struct {
	Tier      int     `json:"tier"`
	Bonus     float64 `json:"bonus"`
	CoinCost  int64   `json:"coin_cost"`
	TokenCost int64   `json:"token_cost"` // token units
}

var RateUpgrades = []UpgradeTier{
	{Tier: 1, Bonus: 1, CoinCost: 10},
	{Tier: 2, Bonus: 1, CoinCost: 110},
	{Tier: 3, Bonus: 1, CoinCost: 500},
	{Tier: 4, Bonus: 1, CoinCost: 1200},
	{Tier: 5, Bonus: 1, CoinCost: 2800},
	{Tier: 6, Bonus: 2, TokenCost: 5 * tokenScale},
	{Tier: 7, Bonus: 2, TokenCost: 10 * tokenScale},
	{Tier: 8, Bonus: 2, TokenCost: 20 * tokenScale},
	{Tier: 9, Bonus: 3, TokenCost: 25 * tokenScale},
}

var BoostUpgrades = []UpgradeTier{
	{Tier: 1, Bonus: 5, CoinCost: 15},
	{Tier: 2, Bonus: 10, CoinCost: 130},
	{Tier: 3, Bonus: 16, CoinCost: 300},
	{Tier: 4, Bonus: 28, CoinCost: 1500},
	{Tier: 5, Bonus: 39, CoinCost: 2800},
	{Tier: 6, Bonus: 53, TokenCost: 10 * tokenScale},
	{Tier: 7, Bonus: 69, TokenCost: 30 * tokenScale},
	{Tier: 8, Bonus: 80, TokenCost: 80 * tokenScale},
	{Tier: 9, Bonus: 120, TokenCost: 120 * tokenScale},
}

var TimeUpgrades = []UpgradeTier{
	{Tier: 1, Bonus: 30, CoinCost: 10},
	{Tier: 2, Bonus: 30, CoinCost: 150},
	{Tier: 3, Bonus: 30, CoinCost: 500},
	{Tier: 4, Bonus: 30, CoinCost: 1200},
	{Tier: 5, Bonus: 30, CoinCost: 2500},
	{Tier: 6, Bonus: 30, TokenCost: 15 * tokenScale},
	{Tier: 7, Bonus: 30, TokenCost: 30 * tokenScale},
	{Tier: 8, Bonus: 30, TokenCost: 70 * tokenScale},
	{Tier: 9, Bonus: 30, TokenCost: 125 * tokenScale},
}

// TiersFor returns the full catalog for a track.
func TiersFor(track UpgradeTrack) ([]UpgradeTier, bool) {
	switch track {
	case TrackRate:
		return RateUpgrades, true
	case TrackBoost:
		return BoostUpgrades, true
	case TrackTime:
		return TimeUpgrades, true
	}
	return nil, false
}

// TierFor looks up a single tier (1-based) in a track.
func TierFor(track UpgradeTrack, tier int) (UpgradeTier, bool) {
	tiers, ok := TiersFor(track)
	if !ok || tier < 1 || tier > len(tiers) {
		return UpgradeTier{}, false
	}
	return tiers[tier-1], true
}
