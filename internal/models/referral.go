package models

import "time"

// Referral pairs a referrer with a referred user. TasksCompleted is a
// snapshot of the referred user's counter as of the last milestone
// evaluation; crossings are detected by comparing it with the live count.
type Referral struct {
	ID             int64     `json:"id" db:"id"`
	ReferrerID     int64     `json:"referrer_id" db:"referrer_id"`
	ReferredID     int64     `json:"referred_id" db:"referred_id"`
	BonusEarned    int64     `json:"bonus_earned" db:"bonus_earned"`
	TasksCompleted int64     `json:"tasks_completed" db:"tasks_completed"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

type ReferralSummary struct {
	ReferralCode   string     `json:"referral_code"`
	ReferralsCount int64      `json:"referrals_count"`
	TotalBonus     int64      `json:"total_bonus"`
	Referrals      []Referral `json:"referrals"`
}
