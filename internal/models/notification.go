package models

import "time"

const (
	NotificationTypeReward     = "reward"
	NotificationTypeBonus      = "referral_bonus"
	NotificationTypeWithdrawal = "withdrawal"
)

// Notification rows are written inside the same transaction as the
// balance change that caused them and delivered later by the notifier.
type Notification struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"-" db:"user_id"`
	Type      string    `json:"type" db:"type"`
	Message   string    `json:"message" db:"message"`
	Sent      bool      `json:"sent" db:"sent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
