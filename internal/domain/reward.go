package domain

// RewardKind discriminates what a reward descriptor grants.
type RewardKind string

const (
	RewardCoins      RewardKind = "coins"
	RewardTokens     RewardKind = "tokens"
	RewardBoostLevel RewardKind = "boost_level"
	RewardRateLevel  RewardKind = "rate_level"
	RewardTimeLevel  RewardKind = "time_level"
)

// Reward is the tagged descriptor shared by the daily-login calendar and
// the referral milestone ladder. Amount is an absolute value for coins,
// token units for tokens, and a cosmetic display figure for the three
// upgrade kinds - those always grant exactly one level.
type Reward struct {
	Kind   RewardKind `json:"kind"`
	Amount int64      `json:"amount"`
}

// Valid reports whether the kind is one of the known variants.
func (r Reward) Valid() bool {
	switch r.Kind {
	case RewardCoins, RewardTokens, RewardBoostLevel, RewardRateLevel, RewardTimeLevel:
		return true
	}
	return false
}

// Label is the human-readable form shown in claim responses.
func (r Reward) Label() string {
	switch r.Kind {
	case RewardCoins:
		return "$COINS"
	case RewardTokens:
		return "$WBUX"
	case RewardBoostLevel:
		return "Mining Boost"
	case RewardRateLevel:
		return "Mining Rate"
	case RewardTimeLevel:
		return "Mining Time"
	}
	return string(r.Kind)
}
