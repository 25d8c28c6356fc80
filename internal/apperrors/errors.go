package apperrors

import "errors"

var (
	ErrInvalidRequest       = errors.New("invalid request")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrInternalServer       = errors.New("internal server error")
	ErrInvalidAuthHeader    = errors.New("invalid or missing Authorization header")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrInvalidCredentials   = errors.New("invalid login or password")
	ErrInvalidReferralCode  = errors.New("invalid referral code")
	ErrTaskNotFound         = errors.New("task not found or inactive")
	ErrTaskAlreadyCompleted = errors.New("task already completed")
	ErrReferralNotFound     = errors.New("referral record not found")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrUnsupportedMethod    = errors.New("unsupported withdrawal method")
	ErrBelowMinimum         = errors.New("withdrawal amount below minimum")
	ErrInvalidAmount        = errors.New("invalid amount")
)
