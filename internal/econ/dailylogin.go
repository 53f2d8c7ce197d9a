package econ

import "whalebux_backend/internal/domain"

// DailyReward returns the descriptor for a calendar day slot (1..28)
// and whether it is one of the special weekly days. Ordinary days pay
// coins that grow with the streak; days 7/14/21/28 grant an upgrade
// level or tokens. The amount on the upgrade days is the figure shown
// in the UI - the applied effect is always a single level.
func DailyReward(day int) (domain.Reward, bool) {
	switch day {
	case 7:
		return domain.Reward{Kind: domain.RewardBoostLevel, Amount: 10}, true
	case 14:
		return domain.Reward{Kind: domain.RewardRateLevel, Amount: 1}, true
	case 21:
		return domain.Reward{Kind: domain.RewardTimeLevel, Amount: 15}, true
	case 28:
		return domain.Reward{Kind: domain.RewardTokens, Amount: tokenScale / 2}, true
	}
	return domain.Reward{Kind: domain.RewardCoins, Amount: int64(50 + day*10)}, false
}
