package domain

import (
	"testing"
	"time"
)

func TestEffectiveVIPTier(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	cases := []struct {
		name string
		acct Account
		want int
	}{
		{"no vip", Account{}, 0},
		{"active", Account{VIPTier: 2, VIPExpiresAt: &future}, 2},
		{"expired", Account{VIPTier: 2, VIPExpiresAt: &past}, 0},
		{"expires exactly now", Account{VIPTier: 3, VIPExpiresAt: &now}, 0},
		{"tier without expiry", Account{VIPTier: 1}, 0},
	}
	for _, tc := range cases {
		if got := tc.acct.EffectiveVIPTier(now); got != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestFormatTokens(t *testing.T) {
	cases := []struct {
		units int64
		want  string
	}{
		{0, "0.0000"},
		{1, "0.0001"},
		{TokenScale, "1.0000"},
		{TokenScale + TokenScale/2, "1.5000"},
		{TokenScale / 4, "0.2500"},
		{5000 * TokenScale, "5000.0000"},
	}
	for _, tc := range cases {
		if got := FormatTokens(tc.units); got != tc.want {
			t.Fatalf("FormatTokens(%d) = %q, want %q", tc.units, got, tc.want)
		}
	}
}

func TestTokensFromFloat(t *testing.T) {
	cases := []struct {
		v    float64
		want int64
	}{
		{0, 0},
		{0.25, TokenScale / 4},
		{1, TokenScale},
		{0.5, TokenScale / 2},
		{20, 20 * TokenScale},
	}
	for _, tc := range cases {
		if got := TokensFromFloat(tc.v); got != tc.want {
			t.Fatalf("TokensFromFloat(%v) = %d, want %d", tc.v, got, tc.want)
		}
	}
}
