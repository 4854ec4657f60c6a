package models

import "time"

// Bill is a manually tracked upcoming or recurring payment.
type Bill struct {
	Base
	Description    string     `gorm:"not null" json:"description"`
	AmountCents    int64      `gorm:"type:bigint;not null" json:"amount_cents"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	Paid           bool       `gorm:"default:false" json:"paid"`
	PayFromAccount string     `json:"pay_from_account"`
	CategoryID     string     `json:"category_id"`
	SubcategoryID  string     `json:"subcategory_id"`
	Notes          string     `json:"notes"`
}
