package econ

import "testing"

func TestLevelForBoundaries(t *testing.T) {
	cases := []struct {
		xp   int64
		want int
	}{
		{0, 1},
		{10, 1},
		{11, 2},
		{100, 2},
		{101, 3},
		{1000, 3},
		{1001, 4},
		{10001, 5},
		{100001, 6},
		{500001, 7},
		{1000001, 8},
		{5000000, 8},
		{5000001, 9},
		{1 << 50, 9},
	}
	for _, tc := range cases {
		if got := LevelFor(tc.xp); got != tc.want {
			t.Fatalf("LevelFor(%d) = %d, want %d", tc.xp, got, tc.want)
		}
	}
}

func TestLevelsTableContiguous(t *testing.T) {
	for lvl := MinLevel; lvl < MaxLevel; lvl++ {
		cur, next := Levels[lvl], Levels[lvl+1]
		if next.XPMin != cur.XPMax+1 {
			t.Fatalf("level %d..%d gap: xp_max=%d xp_min=%d", lvl, lvl+1, cur.XPMax, next.XPMin)
		}
		if next.MiningHours <= cur.MiningHours {
			t.Fatalf("level %d mining hours not increasing", lvl+1)
		}
		if next.BaseRate <= cur.BaseRate {
			t.Fatalf("level %d base rate not increasing", lvl+1)
		}
	}
}
