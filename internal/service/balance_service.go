package service

import (
	"context"

	"github.com/ncastrod/taskcash/internal/apperrors"
	"github.com/ncastrod/taskcash/internal/metrics"
	"github.com/ncastrod/taskcash/internal/models"
	"github.com/ncastrod/taskcash/internal/repository"
)

// MinWithdrawalAmount is the smallest amount, in minor currency units,
// a user may request to withdraw.
const MinWithdrawalAmount int64 = 25000

const feeRatePercent int64 = 10

var supportedMethods = map[string]bool{
	"paypal": true,
	"nequi":  true,
}

// CalculateFee returns the platform fee (rounded half up) and the net
// payout for a withdrawal of the given gross amount.
func CalculateFee(amount int64) (fee, netAmount int64) {
	fee = (amount*feeRatePercent + 50) / 100
	return fee, amount - fee
}

type BalanceService interface {
	GetUserBalance(ctx context.Context, userID int64) (models.Balance, error)
	GetTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
	RequestWithdrawal(ctx context.Context, userID int64, req models.WithdrawalRequest) (*models.Withdrawal, error)
	GetWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error)
}

type balanceService struct {
	repo repository.BalanceRepository
}

func NewBalanceService(repo repository.BalanceRepository) BalanceService {
	return &balanceService{repo: repo}
}

func (s *balanceService) GetUserBalance(ctx context.Context, userID int64) (models.Balance, error) {
	return s.repo.GetBalance(ctx, userID)
}

func (s *balanceService) GetTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	return s.repo.GetTransactions(ctx, userID)
}

// RequestWithdrawal validates the request and hands the debit plus the
// pending withdrawal record to the repository as one atomic unit. The
// gross amount is debited; the fee is retained by the platform and the
// payout processor is told only the net amount.
func (s *balanceService) RequestWithdrawal(ctx context.Context, userID int64, req models.WithdrawalRequest) (*models.Withdrawal, error) {
	if !supportedMethods[req.Method] {
		return nil, apperrors.ErrUnsupportedMethod
	}
	if req.Amount < MinWithdrawalAmount {
		return nil, apperrors.ErrBelowMinimum
	}
	if req.AccountInfo == "" {
		return nil, apperrors.ErrInvalidRequest
	}

	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance.Current < req.Amount {
		return nil, apperrors.ErrInsufficientFunds
	}

	fee, netAmount := CalculateFee(req.Amount)
	withdrawal := &models.Withdrawal{
		UserID:      userID,
		Amount:      req.Amount,
		Fee:         fee,
		NetAmount:   netAmount,
		Method:      req.Method,
		AccountInfo: req.AccountInfo,
		Status:      models.WithdrawalStatusPending,
	}

	if err := s.repo.CreateWithdrawal(ctx, withdrawal); err != nil {
		return nil, err
	}

	metrics.Withdrawals.WithLabelValues(req.Method).Inc()
	return withdrawal, nil
}

func (s *balanceService) GetWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	return s.repo.GetWithdrawals(ctx, userID)
}
