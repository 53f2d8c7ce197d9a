package econ

import "testing"

func TestCatalogShape(t *testing.T) {
	for _, track := range []UpgradeTrack{TrackRate, TrackBoost, TrackTime} {
		tiers, ok := TiersFor(track)
		if !ok {
			t.Fatalf("TiersFor(%s) not found", track)
		}
		if len(tiers) != MaxUpgradeTier {
			t.Fatalf("%s: %d tiers, want %d", track, len(tiers), MaxUpgradeTier)
		}
		for i, tier := range tiers {
			if tier.Tier != i+1 {
				t.Fatalf("%s[%d]: tier number %d", track, i, tier.Tier)
			}
			// tiers 1-5 cost coins, 6-9 cost tokens
			if tier.Tier <= 5 {
				if tier.CoinCost <= 0 || tier.TokenCost != 0 {
					t.Fatalf("%s tier %d: expected coin cost only, got %+v", track, tier.Tier, tier)
				}
			} else {
				if tier.TokenCost <= 0 || tier.CoinCost != 0 {
					t.Fatalf("%s tier %d: expected token cost only, got %+v", track, tier.Tier, tier)
				}
			}
		}
	}
}

func TestTierForBounds(t *testing.T) {
	if _, ok := TierFor(TrackRate, 0); ok {
		t.Fatal("tier 0 should not exist")
	}
	if _, ok := TierFor(TrackRate, MaxUpgradeTier+1); ok {
		t.Fatal("tier 10 should not exist")
	}
	if _, ok := TierFor(UpgradeTrack("speed"), 1); ok {
		t.Fatal("unknown track should not resolve")
	}

	tier, ok := TierFor(TrackBoost, 4)
	if !ok || tier.CoinCost != 1500 {
		t.Fatalf("boost tier 4 = %+v, want coin cost 1500", tier)
	}
}

func TestVIPPlans(t *testing.T) {
	if _, ok := VIPPlanFor(0); ok {
		t.Fatal("tier 0 is not a plan")
	}
	if _, ok := VIPPlanFor(4); ok {
		t.Fatal("tier 4 is not a plan")
	}

	for tier := 1; tier <= 3; tier++ {
		p, ok := VIPPlanFor(tier)
		if !ok {
			t.Fatalf("plan %d missing", tier)
		}
		if p.DurationDays != 30 {
			t.Fatalf("plan %d duration %d, want 30", tier, p.DurationDays)
		}
		if p.RateBonus != float64(tier) {
			t.Fatalf("plan %d rate bonus %v", tier, p.RateBonus)
		}
		if p.BoostPercent != float64(tier*5) {
			t.Fatalf("plan %d boost %v", tier, p.BoostPercent)
		}
	}

	if VIPDurationCut(3) != 3600 {
		t.Fatalf("legend cut = %d, want 3600", VIPDurationCut(3))
	}
	if VIPDurationCut(2) != 0 {
		t.Fatalf("elite cut = %d, want 0", VIPDurationCut(2))
	}
}

func TestDailyRewardSchedule(t *testing.T) {
	for day := 1; day <= 28; day++ {
		reward, special := DailyReward(day)
		switch day {
		case 7:
			if !special || reward.Kind != "boost_level" {
				t.Fatalf("day 7 = %+v", reward)
			}
		case 14:
			if !special || reward.Kind != "rate_level" {
				t.Fatalf("day 14 = %+v", reward)
			}
		case 21:
			if !special || reward.Kind != "time_level" {
				t.Fatalf("day 21 = %+v", reward)
			}
		case 28:
			if !special || reward.Kind != "tokens" || reward.Amount != tokenScale/2 {
				t.Fatalf("day 28 = %+v", reward)
			}
		default:
			if special || reward.Kind != "coins" {
				t.Fatalf("day %d = %+v", day, reward)
			}
			if reward.Amount != int64(50+day*10) {
				t.Fatalf("day %d coins = %d, want %d", day, reward.Amount, 50+day*10)
			}
		}
	}
}

func TestReferralMilestoneLadder(t *testing.T) {
	prev := 0
	for _, m := range ReferralMilestones {
		if m.RequiredCount <= prev {
			t.Fatalf("milestone %d: required count not increasing", m.ID)
		}
		prev = m.RequiredCount
		if !m.Reward.Valid() {
			t.Fatalf("milestone %d: invalid reward %+v", m.ID, m.Reward)
		}
	}
	if _, ok := MilestoneFor(99); ok {
		t.Fatal("milestone 99 should not exist")
	}
}
