package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ncastrod/taskcash/internal/apperrors"
	"github.com/ncastrod/taskcash/internal/logger"
	"github.com/ncastrod/taskcash/internal/models"
	"go.uber.org/zap"
)

type ReferralRepository interface {
	Link(ctx context.Context, referrerID, referredID int64) error
	GetByReferredID(ctx context.Context, referredID int64) (*models.Referral, error)
	GetByReferrerID(ctx context.Context, referrerID int64) ([]models.Referral, error)
	UpdateSnapshot(ctx context.Context, referralID, tasksCompleted int64) error
	AwardBonus(ctx context.Context, referral *models.Referral, amount, tasksCompleted int64) (bool, error)
}

type referralRepo struct {
	db *sql.DB
}

func NewReferralRepository(db *sql.DB) ReferralRepository {
	return &referralRepo{db: db}
}

// Link creates the referral pair and bumps the referrer's counter.
// Called once, at registration time.
func (r *referralRepo) Link(ctx context.Context, referrerID, referredID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO referrals (referrer_id, referred_id) VALUES ($1, $2)
	`, referrerID, referredID)
	if err != nil {
		return fmt.Errorf("failed to insert referral: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE users SET referrals_count = referrals_count + 1 WHERE id = $1
	`, referrerID)
	if err != nil {
		return fmt.Errorf("failed to increment referrals_count: %w", err)
	}

	err = tx.Commit()
	return err
}

func (r *referralRepo) GetByReferredID(ctx context.Context, referredID int64) (*models.Referral, error) {
	query := `
		SELECT id, referrer_id, referred_id, bonus_earned, tasks_completed, created_at
		FROM referrals WHERE referred_id = $1
	`
	var ref models.Referral
	err := r.db.QueryRowContext(ctx, query, referredID).Scan(
		&ref.ID, &ref.ReferrerID, &ref.ReferredID, &ref.BonusEarned, &ref.TasksCompleted, &ref.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrReferralNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *referralRepo) GetByReferrerID(ctx context.Context, referrerID int64) ([]models.Referral, error) {
	query := `
		SELECT id, referrer_id, referred_id, bonus_earned, tasks_completed, created_at
		FROM referrals WHERE referrer_id = $1 ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, referrerID)
	if err != nil {
		logger.Log.Error("failed to query referrals", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var referrals []models.Referral
	for rows.Next() {
		var ref models.Referral
		if err := rows.Scan(&ref.ID, &ref.ReferrerID, &ref.ReferredID, &ref.BonusEarned, &ref.TasksCompleted, &ref.CreatedAt); err != nil {
			logger.Log.Error("failed to scan referral", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, ref)
	}
	return referrals, rows.Err()
}

// UpdateSnapshot advances the stored task counter. GREATEST keeps a
// stale or duplicate evaluation from moving the snapshot backwards.
func (r *referralRepo) UpdateSnapshot(ctx context.Context, referralID, tasksCompleted int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE referrals SET tasks_completed = GREATEST(tasks_completed, $1) WHERE id = $2
	`, tasksCompleted, referralID)
	return err
}

// AwardBonus pays a milestone bonus to the referrer. The conditional
// snapshot update fires first: if another evaluation already advanced
// the snapshot past this milestone the whole transaction backs out and
// (false, nil) is returned, so a milestone pays exactly once per pair.
func (r *referralRepo) AwardBonus(ctx context.Context, referral *models.Referral, amount, tasksCompleted int64) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE referrals
		SET bonus_earned = bonus_earned + $1,
		    tasks_completed = $2
		WHERE id = $3 AND tasks_completed < $2
	`, amount, tasksCompleted, referral.ID)
	if err != nil {
		return false, fmt.Errorf("failed to update referral: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		err = tx.Rollback()
		return false, err
	}

	description := fmt.Sprintf("referral bonus for %d completed tasks", tasksCompleted)
	_, err = applyDelta(ctx, tx, referral.ReferrerID, amount, true, models.TransactionTypeBonus, description)
	if err != nil {
		return false, err
	}

	message := fmt.Sprintf("you earned a %d referral bonus, your referral completed %d tasks", amount, tasksCompleted)
	if err = insertNotification(ctx, tx, referral.ReferrerID, models.NotificationTypeBonus, message); err != nil {
		return false, fmt.Errorf("failed to insert notification: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return false, err
	}
	return true, nil
}
