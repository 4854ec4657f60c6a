package models

import "time"

// Budget is a user-set spending target for one bank category in one
// calendar month. Month is normalized to the first day of the month.
//
// Uniqueness of (category_id, month) is enforced by migration 000002, not by
// a GORM tag: rows created before that migration may be duplicated and the
// application tolerates them (see BudgetService.Upsert).
type Budget struct {
	Base
	CategoryID  string    `gorm:"not null;index" json:"category_id"`
	AmountCents int64     `gorm:"type:bigint;not null" json:"amount_cents"`
	Month       time.Time `gorm:"not null;index" json:"month"`
}
