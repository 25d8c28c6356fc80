package models

import "time"

const (
	WithdrawalStatusPending   = "pending"
	WithdrawalStatusProcessed = "processed"
	WithdrawalStatusRejected  = "rejected"
)

type WithdrawalRequest struct {
	Amount      int64  `json:"amount"`
	Method      string `json:"method"`
	AccountInfo string `json:"account_info"`
}

type Withdrawal struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"-" db:"user_id"`
	Amount      int64      `json:"amount" db:"amount"`
	Fee         int64      `json:"fee" db:"fee"`
	NetAmount   int64      `json:"net_amount" db:"net_amount"`
	Method      string     `json:"method" db:"method"`
	AccountInfo string     `json:"account_info" db:"account_info"`
	Status      string     `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty" db:"processed_at"`
}
