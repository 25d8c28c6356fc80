package service

import (
	"context"
	"errors"

	"github.com/ncastrod/taskcash/internal/apperrors"
	"github.com/ncastrod/taskcash/internal/logger"
	"github.com/ncastrod/taskcash/internal/models"
	"github.com/ncastrod/taskcash/internal/repository"
	"github.com/ncastrod/taskcash/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	Register(ctx context.Context, login, password, referralCode string) (*models.User, error)
	Authenticate(ctx context.Context, login, password string) error
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

type userService struct {
	repo         repository.UserRepository
	referralRepo repository.ReferralRepository
}

func NewUserService(repo repository.UserRepository, referralRepo repository.ReferralRepository) UserService {
	return &userService{
		repo:         repo,
		referralRepo: referralRepo,
	}
}

// Register creates the account and, when a referral code is presented,
// links the new user to the referrer so later task completions can be
// evaluated for milestone bonuses.
func (s *userService) Register(ctx context.Context, login, password, referralCode string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var referrer *models.User
	if referralCode != "" {
		referrer, err = s.repo.GetUserByReferralCode(ctx, referralCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return nil, apperrors.ErrInvalidReferralCode
			}
			return nil, err
		}
	}

	user := &models.User{
		Login:        login,
		Password:     string(hashedPassword),
		ReferralCode: utils.GenerateReferralCode(),
	}
	if referrer != nil {
		user.ReferredBy = &referrer.ID
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if referrer != nil {
		if err := s.referralRepo.Link(ctx, referrer.ID, user.ID); err != nil {
			logger.Log.Error("failed to link referral",
				zap.Int64("referrer", referrer.ID), zap.Int64("referred", user.ID), zap.Error(err))
		}
	}

	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, login, password string) error {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		return apperrors.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return apperrors.ErrInvalidCredentials
	}

	return nil
}

func (s *userService) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	return s.repo.GetUserByLogin(ctx, login)
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetUserByID(ctx, id)
}
