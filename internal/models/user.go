package models

import "time"

type User struct {
	ID             int64     `json:"-" db:"id"`
	Login          string    `json:"login" db:"login"`
	Password       string    `json:"password,omitempty" db:"password_hash"`
	Balance        int64     `json:"balance" db:"balance"`
	TotalEarnings  int64     `json:"total_earnings" db:"total_earnings"`
	TasksCompleted int64     `json:"tasks_completed" db:"tasks_completed"`
	ReferralsCount int64     `json:"referrals_count" db:"referrals_count"`
	ReferralCode   string    `json:"referral_code" db:"referral_code"`
	ReferredBy     *int64    `json:"-" db:"referred_by"`
	CreatedAt      time.Time `json:"-" db:"created_at"`
}

type Balance struct {
	Current       int64 `json:"current" db:"balance"`
	TotalEarnings int64 `json:"total_earnings" db:"total_earnings"`
}
