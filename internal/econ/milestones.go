package econ

import "whalebux_backend/internal/domain"

// ReferralMilestones is the one-time reward ladder driven by how many
// accounts a player has referred. RequiredCount is strictly increasing.
var ReferralMilestones = []domain.Milestone{
	{ID: 1, RequiredCount: 1, Reward: domain.Reward{Kind: domain.RewardCoins, Amount: 500}},
	{ID: 2, RequiredCount: 3, Reward: domain.Reward{Kind: domain.RewardBoostLevel, Amount: 10}},
	{ID: 3, RequiredCount: 5, Reward: domain.Reward{Kind: domain.RewardTokens, Amount: tokenScale / 4}},
	{ID: 4, RequiredCount: 10, Reward: domain.Reward{Kind: domain.RewardRateLevel, Amount: 2}},
	{ID: 5, RequiredCount: 25, Reward: domain.Reward{Kind: domain.RewardTokens, Amount: tokenScale}},
}

// MilestoneFor looks up a ladder entry by id.
func MilestoneFor(id int) (domain.Milestone, bool) {
	for _, m := range ReferralMilestones {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Milestone{}, false
}
