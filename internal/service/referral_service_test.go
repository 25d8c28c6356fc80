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

func referrerID() *int64 {
	id := int64(100)
	return &id
}

func TestReferralService_EvaluateMilestones(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name        string
		userID      int64
		mockSetup   func(u *repository_mocks.MockUserRepository, r *repository_mocks.MockReferralRepository)
		wantAwarded bool
		wantBonus   int64
		wantErr     bool
	}{
		{
			name:   "fires at 3 tasks with snapshot behind",
			userID: 1,
			mockSetup: func(u *repository_mocks.MockUserRepository, r *repository_mocks.MockReferralRepository) {
				u.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1, TasksCompleted: 3, ReferredBy: referrerID()}, nil)
				ref := &models.Referral{ID: 10, ReferrerID: 100, ReferredID: 1, TasksCompleted: 2}
				r.EXPECT().GetByReferredID(ctx, int64(1)).Return(ref, nil)
				r.EXPECT().AwardBonus(ctx, ref, int64(5000), int64(3)).Return(true, nil)
			},
			wantAwarded: true,
			wantBonus:   5000,
		},
		{
			name:   "does not re-fire at the same count",
			userID: 1,
			mockSetup: func(u *repository_mocks.MockUserRepository, r *repository_mocks.MockReferralRepository) {
				u.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1, TasksCompleted: 3, ReferredBy: referrerID()}, nil)
				ref := &models.Referral{ID: 10, ReferrerID: 100, ReferredID: 1, TasksCompleted: 3}
				r.EXPECT().GetByReferredID(ctx, int64(1)).Return(ref, nil)
				r.EXPECT().UpdateSnapshot(ctx, int64(10), int64(3)).Return(nil)
			},
		},
		{
			name:   "fires at 7 tasks",
			userID: 2,
			mockSetup: func(u *repository_mocks.MockUserRepository, r *repository_mocks.MockReferralRepository) {
				u.EXPECT().GetUserByID(ctx, int64(2)).Return(&models.User{ID: 2, TasksCompleted: 7, ReferredBy: referrerID()}, nil)
				ref := &models.Referral{ID: 11, ReferrerID: 100, ReferredID: 2, TasksCompleted: 6}
				r.EXPECT().GetByReferredID(ctx, int64(2)).Return(ref, nil)
				r.EXPECT().AwardBonus(ctx, ref, int64(4000), int64(7)).Return(true, nil)
			},
			wantAwarded: true,
			wantBonus:   4000,
		},
		{
			name:   "fires at 15 tasks",
			userID: 3,
			mockSetup: func(u *repository_mocks.MockUserRepository, r *repository_mocks.MockReferralRepository) {
				u.EXPECT().GetUserByID(ctx, int64(3)).Return(&models.User{ID: 3, TasksCompleted: 15, ReferredBy: referrerID()}, nil)
				ref := &models.Referral{ID: 12, ReferrerID: 100, ReferredID: 3, TasksCompleted: 14}
				r.EXPECT().GetByReferredID(ctx, int64(3)).Return(ref, nil)
				r.EXPECT().AwardBonus(ctx, ref, int64(8000), int64(15)).Return(true, nil)
			},
			wantAwarded: true,
			wantBonus:   8000,
		},
		{
			name:   "non-milestone count only advances snapshot",
			userID: 4,
			mockSetup: func(u *repository_mocks.MockUserRepository, r *repository_mocks.MockReferralRepository) {
				u.EXPECT().GetUserByID(ctx, int64(4)).Return(&models.User{ID: 4, TasksCompleted: 4, ReferredBy: referrerID()}, nil)
				ref := &models.Referral{ID: 13, ReferrerID: 100, ReferredID: 4, TasksCompleted: 3}
				r.EXPECT().GetByReferredID(ctx, int64(4)).Return(ref, nil)
				r.EXPECT().UpdateSnapshot(ctx, int64(13), int64(4)).Return(nil)
			},
		},
		{
			name:   "user without referrer is a no-op",
			userID: 5,
			mockSetup: func(u *repository_mocks.MockUserRepository, r *repository_mocks.MockReferralRepository) {
				u.EXPECT().GetUserByID(ctx, int64(5)).Return(&models.User{ID: 5, TasksCompleted: 3}, nil)
			},
		},
		{
			name:   "missing referral record is a no-op",
			userID: 6,
			mockSetup: func(u *repository_mocks.MockUserRepository, r *repository_mocks.MockReferralRepository) {
				u.EXPECT().GetUserByID(ctx, int64(6)).Return(&models.User{ID: 6, TasksCompleted: 3, ReferredBy: referrerID()}, nil)
				r.EXPECT().GetByReferredID(ctx, int64(6)).Return(nil, apperrors.ErrReferralNotFound)
			},
		},
		{
			name:   "concurrent award already taken",
			userID: 7,
			mockSetup: func(u *repository_mocks.MockUserRepository, r *repository_mocks.MockReferralRepository) {
				u.EXPECT().GetUserByID(ctx, int64(7)).Return(&models.User{ID: 7, TasksCompleted: 3, ReferredBy: referrerID()}, nil)
				ref := &models.Referral{ID: 14, ReferrerID: 100, ReferredID: 7, TasksCompleted: 2}
				r.EXPECT().GetByReferredID(ctx, int64(7)).Return(ref, nil)
				r.EXPECT().AwardBonus(ctx, ref, int64(5000), int64(3)).Return(false, nil)
			},
		},
		{
			name:   "storage error propagates to caller",
			userID: 8,
			mockSetup: func(u *repository_mocks.MockUserRepository, r *repository_mocks.MockReferralRepository) {
				u.EXPECT().GetUserByID(ctx, int64(8)).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := repository_mocks.NewMockUserRepository(ctrl)
			mockReferralRepo := repository_mocks.NewMockReferralRepository(ctrl)
			tt.mockSetup(mockUserRepo, mockReferralRepo)

			s := NewReferralService(mockUserRepo, mockReferralRepo)
			awarded, bonus, err := s.EvaluateMilestones(ctx, tt.userID)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantAwarded, awarded)
			assert.Equal(t, tt.wantBonus, bonus)
		})
	}
}

func TestReferralService_GetSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockUserRepo := repository_mocks.NewMockUserRepository(ctrl)
	mockReferralRepo := repository_mocks.NewMockReferralRepository(ctrl)

	mockUserRepo.EXPECT().GetUserByID(ctx, int64(1)).
		Return(&models.User{ID: 1, ReferralCode: "ABCD2345", ReferralsCount: 2}, nil)
	mockReferralRepo.EXPECT().GetByReferrerID(ctx, int64(1)).Return([]models.Referral{
		{ID: 1, ReferrerID: 1, ReferredID: 2, BonusEarned: 5000},
		{ID: 2, ReferrerID: 1, ReferredID: 3, BonusEarned: 9000},
	}, nil)

	s := NewReferralService(mockUserRepo, mockReferralRepo)
	summary, err := s.GetSummary(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, "ABCD2345", summary.ReferralCode)
	assert.Equal(t, int64(2), summary.ReferralsCount)
	assert.Equal(t, int64(14000), summary.TotalBonus)
	assert.Len(t, summary.Referrals, 2)
}
