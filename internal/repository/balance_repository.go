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

type BalanceRepository interface {
	GetBalance(ctx context.Context, userID int64) (models.Balance, error)
	ApplyDelta(ctx context.Context, userID int64, amount int64, isEarning bool, txType, description string) (models.Balance, error)
	GetTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
	CreateWithdrawal(ctx context.Context, withdrawal *models.Withdrawal) error
	GetWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error)
}

type balanceRepo struct {
	db *sql.DB
}

func NewBalanceRepository(db *sql.DB) BalanceRepository {
	return &balanceRepo{db: db}
}

// execQuerier is satisfied by both *sql.DB and *sql.Tx so the balance
// mutation can run standalone or inside a larger transaction.
type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// applyDelta is the single balance mutation primitive. The conditional
// UPDATE serializes concurrent mutators on the same row and rejects
// debits that would drive balance below zero; the transaction row is
// written in the same unit of work. Zero-amount deltas still produce a
// transaction row so the audit trail stays gapless.
func applyDelta(ctx context.Context, q execQuerier, userID int64, amount int64, isEarning bool, txType, description string) (models.Balance, error) {
	var balance models.Balance
	err := q.QueryRowContext(ctx, `
		UPDATE users
		SET balance = balance + $1,
		    total_earnings = total_earnings + CASE WHEN $2::boolean AND $1 > 0 THEN $1 ELSE 0 END
		WHERE id = $3 AND balance + $1 >= 0
		RETURNING balance, total_earnings
	`, amount, isEarning, userID).Scan(&balance.Current, &balance.TotalEarnings)

	if errors.Is(err, sql.ErrNoRows) {
		var exists bool
		if err := q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists); err != nil {
			return models.Balance{}, fmt.Errorf("failed to check user existence: %w", err)
		}
		if !exists {
			return models.Balance{}, apperrors.ErrUserNotFound
		}
		return models.Balance{}, apperrors.ErrInsufficientFunds
	}
	if err != nil {
		return models.Balance{}, fmt.Errorf("failed to update balance: %w", err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO transactions (user_id, amount, type, description, status)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, amount, txType, description, models.TransactionStatusCompleted)
	if err != nil {
		return models.Balance{}, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return balance, nil
}

func insertNotification(ctx context.Context, q execQuerier, userID int64, notifType, message string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO notifications (user_id, type, message)
		VALUES ($1, $2, $3)
	`, userID, notifType, message)
	return err
}

func (r *balanceRepo) GetBalance(ctx context.Context, userID int64) (models.Balance, error) {
	var balance models.Balance
	query := `
		SELECT balance, total_earnings FROM users WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&balance.Current, &balance.TotalEarnings)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Balance{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		logger.Log.Error("failed to get balance", zap.Error(err))
		return models.Balance{}, err
	}
	return balance, nil
}

func (r *balanceRepo) ApplyDelta(ctx context.Context, userID int64, amount int64, isEarning bool, txType, description string) (models.Balance, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Balance{}, err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	balance, err := applyDelta(ctx, tx, userID, amount, isEarning, txType, description)
	if err != nil {
		return models.Balance{}, err
	}

	err = tx.Commit()
	if err != nil {
		return models.Balance{}, err
	}
	return balance, nil
}

func (r *balanceRepo) GetTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, type, description, status, created_at
		FROM transactions WHERE user_id = $1 ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		logger.Log.Error("failed to query transactions", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Description, &t.Status, &t.CreatedAt); err != nil {
			logger.Log.Error("failed to scan transaction", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// CreateWithdrawal debits the gross amount and creates the pending
// withdrawal in one transaction: a debited balance with no withdrawal
// row must be impossible. The retained fee is booked to platform_revenue.
func (r *balanceRepo) CreateWithdrawal(ctx context.Context, withdrawal *models.Withdrawal) error {
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

	description := fmt.Sprintf("withdrawal via %s", withdrawal.Method)
	_, err = applyDelta(ctx, tx, withdrawal.UserID, -withdrawal.Amount, false, models.TransactionTypeWithdraw, description)
	if err != nil {
		return err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO withdrawals (user_id, amount, fee, net_amount, method, account_info, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, withdrawal.UserID, withdrawal.Amount, withdrawal.Fee, withdrawal.NetAmount,
		withdrawal.Method, withdrawal.AccountInfo, withdrawal.Status,
	).Scan(&withdrawal.ID, &withdrawal.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert withdrawal: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO platform_revenue (withdrawal_id, amount) VALUES ($1, $2)
	`, withdrawal.ID, withdrawal.Fee)
	if err != nil {
		return fmt.Errorf("failed to record platform revenue: %w", err)
	}

	message := fmt.Sprintf("withdrawal of %d requested, %d will be paid out via %s", withdrawal.Amount, withdrawal.NetAmount, withdrawal.Method)
	if err = insertNotification(ctx, tx, withdrawal.UserID, models.NotificationTypeWithdrawal, message); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	err = tx.Commit()
	return err
}

func (r *balanceRepo) GetWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	query := `
		SELECT id, user_id, amount, fee, net_amount, method, account_info, status, created_at, processed_at
		FROM withdrawals WHERE user_id = $1 ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var withdrawals []models.Withdrawal
	for rows.Next() {
		var w models.Withdrawal
		if err := rows.Scan(&w.ID, &w.UserID, &w.Amount, &w.Fee, &w.NetAmount, &w.Method, &w.AccountInfo, &w.Status, &w.CreatedAt, &w.ProcessedAt); err != nil {
			logger.Log.Error("failed to scan withdrawal", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}
