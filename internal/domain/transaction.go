package domain

import "time"

// Transaction is one journal entry for a balance mutation. Amount is
// signed: debits negative, credits positive, in the entry's currency
// ("coins" or "tokens", token units).
type Transaction struct {
	ID        int64                  `db:"id" json:"id"`
	AccountID int64                  `db:"account_id" json:"account_id"`
	Type      string                 `db:"type" json:"type"`
	Currency  string                 `db:"currency" json:"currency"`
	Amount    int64                  `db:"amount" json:"amount"`
	Meta      map[string]interface{} `db:"meta" json:"meta,omitempty"`
	CreatedAt time.Time              `db:"created_at" json:"created_at"`
}

const (
	CurrencyCoins  = "coins"
	CurrencyTokens = "tokens"
)
