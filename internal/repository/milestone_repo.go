package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrAlreadyClaimed - the milestone reward was taken before.
var ErrAlreadyClaimed = errors.New("already claimed")

type MilestoneRepository struct {
	db *pgxpool.Pool
}

func NewMilestoneRepository(db *pgxpool.Pool) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

// ClaimedIDs returns the milestone ids an account has already taken.
func (r *MilestoneRepository) ClaimedIDs(ctx context.Context, accountID int64) (map[int]bool, error) {
	rows, err := r.db.Query(ctx,
		`SELECT milestone_id FROM milestone_claims WHERE account_id = $1`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	claimed := make(map[int]bool)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		claimed[id] = true
	}
	return claimed, rows.Err()
}

// ClaimTx records the claim. The composite primary key makes a repeat
// claim a conflict, which surfaces as ErrAlreadyClaimed - no separate
// check-then-insert window.
func (r *MilestoneRepository) ClaimTx(ctx context.Context, tx pgx.Tx, accountID int64, milestoneID int) error {
	tag, err := tx.Exec(ctx,
		`INSERT INTO milestone_claims (account_id, milestone_id)
		 VALUES ($1, $2)
		 ON CONFLICT (account_id, milestone_id) DO NOTHING`,
		accountID, milestoneID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyClaimed
	}
	return nil
}
