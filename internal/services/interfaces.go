package services

import (
	"context"
	"time"

	"hearth/internal/bank"
	"hearth/internal/models"
	"hearth/internal/pagination"
)

// LocalIDPrefix marks transaction IDs owned by the local store. Bank IDs
// never carry it, which is what the deletion guard relies on.
const LocalIDPrefix = "local-"

// Transaction provenance markers.
const (
	SourceBank  = "bank"
	SourceLocal = "local"
)

// MergedTransaction is the uniform envelope for a transaction in a merged
// listing. Bank rows keep their attributes verbatim; local rows are mapped
// into the same shape with the local category embedded at attribute level.
type MergedTransaction struct {
	ID            string                        `json:"id"`
	Type          string                        `json:"type"`
	Source        string                        `json:"source"`
	Attributes    bank.TransactionAttributes    `json:"attributes"`
	Relationships bank.TransactionRelationships `json:"relationships"`
}

// CategoryID resolves the envelope's category from relationship data or the
// attribute-embedded category. Empty when uncategorized.
func (t MergedTransaction) CategoryID() string {
	if t.Relationships.Category.Data != nil {
		return t.Relationships.Category.Data.ID
	}
	if t.Attributes.Category != nil {
		return t.Attributes.Category.ID
	}
	return ""
}

// MergedPage is a merged transaction listing plus the bank page's pagination
// links. The links describe only the bank-sourced subset.
type MergedPage struct {
	Transactions []MergedTransaction `json:"transactions"`
	Links        pagination.Links    `json:"links"`
}

// ListQuery holds the filters for a merged transaction listing. Start and
// End must be set together; PageAfter/PageBefore are opaque bank cursors.
type ListQuery struct {
	AccountID  string
	Start      *time.Time
	End        *time.Time
	CategoryID string
	PageAfter  string
	PageBefore string
}

// CreateTransactionParams holds the fields for a new local transaction.
// AccountID, Description, Amount, and CreatedAt are mandatory.
type CreateTransactionParams struct {
	AccountID   string
	Description string
	Message     string
	Amount      string
	CreatedAt   time.Time
	Category    string
}

// TransactionServicer defines the contract for the transaction merger.
type TransactionServicer interface {
	List(ctx context.Context, q ListQuery) (*MergedPage, error)
	Create(ctx context.Context, p CreateTransactionParams) (*models.LocalTransaction, error)
	Delete(ctx context.Context, id string) error
	SetCategory(ctx context.Context, transactionID string, categoryID *string) error
}

// BudgetServicer defines the contract for the per-month budget store.
type BudgetServicer interface {
	Upsert(categoryID string, amountCents int64, month time.Time) (*models.Budget, error)
	ForMonth(month time.Time) ([]models.Budget, error)
}

// CategoryNode is one child category's computed report row.
// Available = Budgeted + Activity; all figures are signed cents.
type CategoryNode struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Budgeted  int64  `json:"budgeted"`
	Activity  int64  `json:"activity"`
	Available int64  `json:"available"`
	Status    string `json:"status"`
}

// CategoryGroup is one root category with its children's totals.
type CategoryGroup struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Budgeted   int64          `json:"budgeted"`
	Activity   int64          `json:"activity"`
	Available  int64          `json:"available"`
	Categories []CategoryNode `json:"categories"`
}

// CategoryActivity is one category's transaction breakdown. Activity comes
// from the bulk month scan, ListedTotal from the per-category listing; the
// two are not guaranteed to agree and Discrepancy surfaces the difference.
type CategoryActivity struct {
	CategoryID   string              `json:"category_id"`
	Transactions []MergedTransaction `json:"transactions"`
	ListedTotal  int64               `json:"listed_total"`
	Activity     int64               `json:"activity"`
	Discrepancy  int64               `json:"discrepancy"`
}

// ReportServicer defines the contract for the category aggregation engine.
type ReportServicer interface {
	MonthReport(ctx context.Context, month time.Time) ([]CategoryGroup, error)
	CategoryBreakdown(ctx context.Context, month time.Time, categoryIDs []string) ([]CategoryActivity, error)
}

// AccountServicer defines the contract for the bank account proxy.
type AccountServicer interface {
	Accounts(ctx context.Context) ([]bank.Account, error)
}

// BillServicer defines the contract for bill management.
type BillServicer interface {
	CreateBill(p BillParams) (*models.Bill, error)
	GetBills() ([]models.Bill, error)
	GetBillByID(id string) (*models.Bill, error)
	UpdateBill(id string, p BillParams) (*models.Bill, error)
	DeleteBill(id string) error
}

// BillParams holds the writable fields of a bill.
type BillParams struct {
	Description    string
	AmountCents    int64
	DueDate        *time.Time
	Paid           *bool
	PayFromAccount string
	CategoryID     string
	SubcategoryID  string
	Notes          string
}
