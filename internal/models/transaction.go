package models

import "time"

const (
	TransactionTypeEarn     = "earn"
	TransactionTypeWithdraw = "withdraw"
	TransactionTypeBonus    = "bonus"

	TransactionStatusCompleted = "completed"
)

// Transaction is an append-only record of a single balance change.
// Amount is signed: credits are positive, debits negative.
type Transaction struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"-" db:"user_id"`
	Amount      int64     `json:"amount" db:"amount"`
	Type        string    `json:"type" db:"type"`
	Description string    `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
