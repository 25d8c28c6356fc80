package models

import "time"

type Task struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Provider    string `json:"provider" db:"provider"`
	Reward      int64  `json:"reward" db:"reward"`
	Active      bool   `json:"active" db:"active"`
}

// UserTask is the completion record for a (user, task) pair. Its
// existence means the reward was already paid.
type UserTask struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"-" db:"user_id"`
	TaskID      int64     `json:"task_id" db:"task_id"`
	Reward      int64     `json:"reward" db:"reward"`
	Status      string    `json:"status" db:"status"`
	CompletedAt time.Time `json:"completed_at" db:"completed_at"`
}
