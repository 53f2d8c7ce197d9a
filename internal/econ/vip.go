package econ

// VIPPlan is one purchasable membership tier. Bonuses are passive: they
// feed into session parameters at start time and into the daily-login
// claim, nothing else.
type VIPPlan struct {
	Tier            int     `json:"tier"`
	Name            string  `json:"name"`
	DurationDays    int     `json:"duration_days"`
	TokenPrice      int64   `json:"token_price"` // token units
	RateBonus       float64 `json:"rate_bonus"`
	BoostPercent    float64 `json:"boost_percent"`
	DurationCutSecs int64   `json:"duration_cut_seconds"`
	DailyLoginBonus int64   `json:"daily_login_bonus"` // extra coins on daily claim
}

// VIPPlans, tiers 1..3. Only Whale Legend shortens the mining run.
var VIPPlans = []VIPPlan{
	{Tier: 1, Name: "Whale Rookie", DurationDays: 30, TokenPrice: 1 * tokenScale, RateBonus: 1, BoostPercent: 5, DailyLoginBonus: 100},
	{Tier: 2, Name: "Whale Elite", DurationDays: 30, TokenPrice: 5 * tokenScale, RateBonus: 2, BoostPercent: 10, DailyLoginBonus: 300},
	{Tier: 3, Name: "Whale Legend", DurationDays: 30, TokenPrice: 20 * tokenScale, RateBonus: 3, BoostPercent: 15, DurationCutSecs: 3600, DailyLoginBonus: 600},
}

// VIPPlanFor looks up a plan by tier.
func VIPPlanFor(tier int) (VIPPlan, bool) {
	for _, p := range VIPPlans {
		if p.Tier == tier {
			return p, true
		}
	}
	return VIPPlan{}, false
}

// VIPBoostPercent is the passive boost for a tier (0 for non-VIP).
func VIPBoostPercent(tier int) float64 {
	if p, ok := VIPPlanFor(tier); ok {
		return p.BoostPercent
	}
	return 0
}

// VIPRateBonus is the passive rate bonus for a tier.
func VIPRateBonus(tier int) float64 {
	if p, ok := VIPPlanFor(tier); ok {
		return p.RateBonus
	}
	return 0
}

// VIPDurationCut is the session-time reduction for a tier in seconds.
func VIPDurationCut(tier int) int64 {
	if p, ok := VIPPlanFor(tier); ok {
		return p.DurationCutSecs
	}
	return 0
}
