package service

import (
	"context"
	"errors"

	"whalebux_backend/internal/domain"
	"whalebux_backend/internal/econ"
	"whalebux_backend/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrMilestoneNotReached = errors.New("milestone not reached")
	ErrUnknownMilestone    = errors.New("unknown milestone")
)

// ReferralService evaluates the milestone ladder against an account's
// referral count. How referrals get verified is the referral repo's
// business; this service only trusts the count.
type ReferralService struct {
	db         *pgxpool.Pool
	referrals  *repository.ReferralRepository
	milestones *repository.MilestoneRepository
	rewardApplier
}

func NewReferralService(db *pgxpool.Pool) *ReferralService {
	return &ReferralService{
		db:         db,
		referrals:  repository.NewReferralRepository(db),
		milestones: repository.NewMilestoneRepository(db),
		rewardApplier: rewardApplier{
			accounts:     repository.NewAccountRepository(db),
			transactions: repository.NewTransactionRepository(db),
		},
	}
}

// Milestones returns the full ladder with per-account progress.
func (s *ReferralService) Milestones(ctx context.Context, accountID int64) ([]domain.MilestoneStatus, int, error) {
	count, err := s.referrals.Count(ctx, accountID)
	if err != nil {
		return nil, 0, err
	}
	claimed, err := s.milestones.ClaimedIDs(ctx, accountID)
	if err != nil {
		return nil, 0, err
	}

	var out []domain.MilestoneStatus
	for _, m := range econ.ReferralMilestones {
		out = append(out, domain.MilestoneStatus{
			Milestone: m,
			Claimed:   claimed[m.ID],
			Reachable: count >= m.RequiredCount,
		})
	}
	return out, count, nil
}

// MilestoneClaimResult reports a successful one-time claim.
type MilestoneClaimResult struct {
	Milestone domain.Milestone `json:"milestone"`
	Referrals int              `json:"referrals"`
}

// ClaimMilestone takes a ladder reward once. The claim row's primary
// key is the idempotency guard; the reward applies in the same
// transaction, so a conflict means nothing was paid.
func (s *ReferralService) ClaimMilestone(ctx context.Context, accountID int64, milestoneID int) (*MilestoneClaimResult, error) {
	m, ok := econ.MilestoneFor(milestoneID)
	if !ok {
		return nil, ErrUnknownMilestone
	}

	count, err := s.referrals.Count(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if count < m.RequiredCount {
		return nil, ErrMilestoneNotReached
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := s.accounts.GetByIDForUpdate(ctx, tx, accountID); err != nil {
		return nil, err
	}
	if err := s.milestones.ClaimTx(ctx, tx, accountID, milestoneID); err != nil {
		return nil, err
	}
	if err := s.applyTx(ctx, tx, accountID, m.Reward, "referral_milestone"); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &MilestoneClaimResult{Milestone: m, Referrals: count}, nil
}
