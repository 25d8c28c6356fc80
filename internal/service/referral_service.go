package service

import (
	"context"
	"errors"

	"github.com/ncastrod/taskcash/internal/apperrors"
	"github.com/ncastrod/taskcash/internal/metrics"
	"github.com/ncastrod/taskcash/internal/models"
	"github.com/ncastrod/taskcash/internal/repository"
)

// milestoneBonuses maps a tasks_completed threshold to the one-time
// bonus paid to the referrer when the referred user reaches it.
var milestoneBonuses = map[int64]int64{
	3:  5000,
	7:  4000,
	15: 8000,
}

type ReferralService interface {
	EvaluateMilestones(ctx context.Context, userID int64) (bool, int64, error)
	GetSummary(ctx context.Context, userID int64) (*models.ReferralSummary, error)
}

type referralService struct {
	userRepo     repository.UserRepository
	referralRepo repository.ReferralRepository
}

func NewReferralService(userRepo repository.UserRepository, referralRepo repository.ReferralRepository) ReferralService {
	return &referralService{
		userRepo:     userRepo,
		referralRepo: referralRepo,
	}
}

// EvaluateMilestones checks the user's live task count against the
// milestone table and pays the referrer when a threshold is crossed.
// A milestone fires when the live count equals a threshold and the
// referral's snapshot is still below it; the snapshot is advanced to
// the live count either way, so a repeated evaluation at the same
// count never re-awards. Users without a referrer are a no-op.
func (s *referralService) EvaluateMilestones(ctx context.Context, userID int64) (bool, int64, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return false, 0, err
	}
	if user.ReferredBy == nil {
		return false, 0, nil
	}

	referral, err := s.referralRepo.GetByReferredID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrReferralNotFound) {
			return false, 0, nil
		}
		return false, 0, err
	}

	bonus, ok := milestoneBonuses[user.TasksCompleted]
	if !ok || referral.TasksCompleted >= user.TasksCompleted {
		if err := s.referralRepo.UpdateSnapshot(ctx, referral.ID, user.TasksCompleted); err != nil {
			return false, 0, err
		}
		return false, 0, nil
	}

	awarded, err := s.referralRepo.AwardBonus(ctx, referral, bonus, user.TasksCompleted)
	if err != nil {
		return false, 0, err
	}
	if !awarded {
		return false, 0, nil
	}

	metrics.ReferralBonuses.Inc()
	return true, bonus, nil
}

func (s *referralService) GetSummary(ctx context.Context, userID int64) (*models.ReferralSummary, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	referrals, err := s.referralRepo.GetByReferrerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var totalBonus int64
	for _, ref := range referrals {
		totalBonus += ref.BonusEarned
	}

	return &models.ReferralSummary{
		ReferralCode:   user.ReferralCode,
		ReferralsCount: user.ReferralsCount,
		TotalBonus:     totalBonus,
		Referrals:      referrals,
	}, nil
}
