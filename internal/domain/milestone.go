package domain

// Milestone is one rung of the referral ladder: reach RequiredCount
// referrals, claim the reward once.
type Milestone struct {
	ID            int    `json:"id"`
	RequiredCount int    `json:"required_count"`
	Reward        Reward `json:"reward"`
}

// MilestoneStatus pairs a ladder entry with an account's progress
// against it, for API responses.
type MilestoneStatus struct {
	Milestone
	Claimed   bool `json:"claimed"`
	Reachable bool `json:"reachable"`
}
