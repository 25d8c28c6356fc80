package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ncastrod/taskcash/internal/apperrors"
	"github.com/ncastrod/taskcash/internal/mocks/repository_mocks"
	"github.com/ncastrod/taskcash/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateFee(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		wantFee int64
		wantNet int64
	}{
		{"exact tenth", 30000, 3000, 27000},
		{"minimum amount", 25000, 2500, 22500},
		{"rounds half up", 25005, 2501, 22504},
		{"rounds down below half", 25001, 2500, 22501},
		{"large amount", 1000000, 100000, 900000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, net := CalculateFee(tt.amount)
			assert.Equal(t, tt.wantFee, fee)
			assert.Equal(t, tt.wantNet, net)
			assert.Equal(t, tt.amount, fee+net)
		})
	}
}

func TestBalanceService_RequestWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name      string
		userID    int64
		req       models.WithdrawalRequest
		mockSetup func(m *repository_mocks.MockBalanceRepository)
		wantErr   error
		check     func(t *testing.T, w *models.Withdrawal)
	}{
		{
			name:   "successful withdrawal debits gross amount",
			userID: 1,
			req:    models.WithdrawalRequest{Amount: 30000, Method: "paypal", AccountInfo: "user@example.com"},
			mockSetup: func(m *repository_mocks.MockBalanceRepository) {
				m.EXPECT().GetBalance(ctx, int64(1)).Return(models.Balance{Current: 50000}, nil).Times(1)
				m.EXPECT().CreateWithdrawal(ctx, gomock.AssignableToTypeOf(&models.Withdrawal{})).DoAndReturn(
					func(_ context.Context, w *models.Withdrawal) error {
						assert.Equal(t, int64(1), w.UserID)
						assert.Equal(t, int64(30000), w.Amount)
						assert.Equal(t, int64(3000), w.Fee)
						assert.Equal(t, int64(27000), w.NetAmount)
						assert.Equal(t, models.WithdrawalStatusPending, w.Status)
						return nil
					}).Times(1)
			},
			check: func(t *testing.T, w *models.Withdrawal) {
				assert.Equal(t, int64(3000), w.Fee)
				assert.Equal(t, int64(27000), w.NetAmount)
			},
		},
		{
			name:      "unsupported method",
			userID:    1,
			req:       models.WithdrawalRequest{Amount: 30000, Method: "bitcoin", AccountInfo: "addr"},
			mockSetup: func(m *repository_mocks.MockBalanceRepository) {},
			wantErr:   apperrors.ErrUnsupportedMethod,
		},
		{
			name:      "below minimum",
			userID:    1,
			req:       models.WithdrawalRequest{Amount: 24999, Method: "nequi", AccountInfo: "3001234567"},
			mockSetup: func(m *repository_mocks.MockBalanceRepository) {},
			wantErr:   apperrors.ErrBelowMinimum,
		},
		{
			name:      "missing account info",
			userID:    1,
			req:       models.WithdrawalRequest{Amount: 30000, Method: "nequi"},
			mockSetup: func(m *repository_mocks.MockBalanceRepository) {},
			wantErr:   apperrors.ErrInvalidRequest,
		},
		{
			name:   "insufficient funds at pre-check",
			userID: 2,
			req:    models.WithdrawalRequest{Amount: 30000, Method: "paypal", AccountInfo: "user@example.com"},
			mockSetup: func(m *repository_mocks.MockBalanceRepository) {
				m.EXPECT().GetBalance(ctx, int64(2)).Return(models.Balance{Current: 29999}, nil).Times(1)
			},
			wantErr: apperrors.ErrInsufficientFunds,
		},
		{
			name:   "insufficient funds detected by atomic debit",
			userID: 3,
			req:    models.WithdrawalRequest{Amount: 30000, Method: "paypal", AccountInfo: "user@example.com"},
			mockSetup: func(m *repository_mocks.MockBalanceRepository) {
				m.EXPECT().GetBalance(ctx, int64(3)).Return(models.Balance{Current: 40000}, nil).Times(1)
				m.EXPECT().CreateWithdrawal(ctx, gomock.AssignableToTypeOf(&models.Withdrawal{})).
					Return(apperrors.ErrInsufficientFunds).Times(1)
			},
			wantErr: apperrors.ErrInsufficientFunds,
		},
		{
			name:   "storage error propagates",
			userID: 4,
			req:    models.WithdrawalRequest{Amount: 25000, Method: "nequi", AccountInfo: "3001234567"},
			mockSetup: func(m *repository_mocks.MockBalanceRepository) {
				m.EXPECT().GetBalance(ctx, int64(4)).Return(models.Balance{Current: 100000}, nil).Times(1)
				m.EXPECT().CreateWithdrawal(ctx, gomock.AssignableToTypeOf(&models.Withdrawal{})).
					Return(errors.New("db error")).Times(1)
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := repository_mocks.NewMockBalanceRepository(ctrl)
			tt.mockSetup(mockRepo)
			s := NewBalanceService(mockRepo)

			withdrawal, err := s.RequestWithdrawal(ctx, tt.userID, tt.req)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, withdrawal)
				return
			}
			assert.NoError(t, err)
			if tt.check != nil {
				tt.check(t, withdrawal)
			}
		})
	}
}

func TestBalanceService_GetUserBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockRepo := repository_mocks.NewMockBalanceRepository(ctrl)
	mockRepo.EXPECT().GetBalance(ctx, int64(7)).Return(models.Balance{Current: 12345, TotalEarnings: 34567}, nil)

	s := NewBalanceService(mockRepo)
	balance, err := s.GetUserBalance(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(12345), balance.Current)
	assert.Equal(t, int64(34567), balance.TotalEarnings)
}
