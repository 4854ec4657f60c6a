package bank

import "time"

// Money is the banking API's monetary amount object. ValueInBaseUnits is the
// signed amount in cents and is what the application aggregates with.
type Money struct {
	CurrencyCode     string `json:"currencyCode"`
	Value            string `json:"value"`
	ValueInBaseUnits int64  `json:"valueInBaseUnits"`
}

// ResourceIdentifier identifies a JSON:API resource by type and ID.
type ResourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Relationship is a JSON:API to-one relationship. Data is null when the
// relationship is not set.
type Relationship struct {
	Data *ResourceIdentifier `json:"data"`
}

// Account is a bank account resource.
type Account struct {
	Type       string            `json:"type"`
	ID         string            `json:"id"`
	Attributes AccountAttributes `json:"attributes"`
}

// AccountAttributes holds the account fields surfaced by the banking API.
type AccountAttributes struct {
	DisplayName string `json:"displayName"`
	AccountType string `json:"accountType"`
	Balance     Money  `json:"balance"`
}

// Category is a spending category resource. Root categories have a null
// parent; the hierarchy is two levels deep and enforced by the bank.
type Category struct {
	Type          string                `json:"type"`
	ID            string                `json:"id"`
	Attributes    CategoryAttributes    `json:"attributes"`
	Relationships CategoryRelationships `json:"relationships"`
}

// CategoryAttributes holds the category display fields.
type CategoryAttributes struct {
	Name string `json:"name"`
}

// CategoryRelationships holds the category hierarchy links.
type CategoryRelationships struct {
	Parent Relationship `json:"parent"`
}

// IsRoot reports whether the category has no parent.
func (c Category) IsRoot() bool {
	return c.Relationships.Parent.Data == nil
}

// Transaction is a bank-sourced transaction resource.
type Transaction struct {
	Type          string                   `json:"type"`
	ID            string                   `json:"id"`
	Attributes    TransactionAttributes    `json:"attributes"`
	Relationships TransactionRelationships `json:"relationships"`
}

// TransactionAttributes holds the transaction fields surfaced by the banking
// API. Category is occasionally embedded here instead of (or as well as) the
// relationship; consumers must check both.
type TransactionAttributes struct {
	Status      string              `json:"status,omitempty"`
	Description string              `json:"description"`
	Message     string              `json:"message"`
	Amount      Money               `json:"amount"`
	CreatedAt   time.Time           `json:"createdAt"`
	Category    *ResourceIdentifier `json:"category,omitempty"`
}

// TransactionRelationships holds the transaction's category link.
type TransactionRelationships struct {
	Category Relationship `json:"category"`
}

// CategoryID returns the transaction's category ID from the relationship,
// falling back to the attribute-embedded category. Empty when uncategorized.
func (t Transaction) CategoryID() string {
	if t.Relationships.Category.Data != nil {
		return t.Relationships.Category.Data.ID
	}
	if t.Attributes.Category != nil {
		return t.Attributes.Category.ID
	}
	return ""
}

// Links carries the pagination cursors of a collection response. They are
// opaque URLs forwarded to clients verbatim.
type Links struct {
	Prev *string `json:"prev"`
	Next *string `json:"next"`
}

// TransactionPage is one page of bank transactions plus its pagination links.
type TransactionPage struct {
	Transactions []Transaction
	Links        Links
}
