package models

import "time"

// LocalTransaction is a manually entered transaction. Unlike bank-sourced
// transactions these rows are owned by this application: they can be created
// and deleted, and their category is a free-text label rather than a bank
// category reference.
//
// IDs are surfaced to clients with a "local-" prefix so they can never be
// confused with bank transaction IDs.
type LocalTransaction struct {
	Base
	AccountID   string    `gorm:"not null;index" json:"account_id"`
	Description string    `gorm:"not null" json:"description"`
	Message     string    `json:"message"`
	AmountCents int64     `gorm:"type:bigint;not null" json:"amount_cents"`
	Category    string    `json:"category"`
	Date        time.Time `gorm:"not null;index" json:"date"`
}
