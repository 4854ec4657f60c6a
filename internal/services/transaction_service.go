package services

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"hearth/internal/bank"
	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/money"
	"hearth/internal/pagination"
)

// defaultCurrency is the base currency of the connected bank.
const defaultCurrency = "AUD"

// Internal-transfer descriptions. These are non-user-meaningful movements
// between the household's own accounts and must never appear in a listing.
const (
	roundUpDescription    = "Round Up"
	quickSavePrefix       = "Quick save transfer"
	genericTransferPrefix = "Transfer"
)

// transactionService merges bank-sourced and locally entered transactions.
type transactionService struct {
	db   *gorm.DB
	bank bank.Client
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, bankClient bank.Client) TransactionServicer {
	return &transactionService{db: db, bank: bankClient}
}

// List returns one merged, chronologically descending transaction listing.
// Pagination cursors apply to the bank-sourced subset only; local rows are
// always included in full for the requested filters.
func (s *transactionService) List(ctx context.Context, q ListQuery) (*MergedPage, error) {
	page, err := s.bank.Transactions(ctx, bank.TransactionQuery{
		AccountID:  q.AccountID,
		Since:      q.Start,
		Until:      q.End,
		PageAfter:  q.PageAfter,
		PageBefore: q.PageBefore,
	})
	if err != nil {
		return nil, err
	}

	locals, err := s.localTransactions(ctx, q)
	if err != nil {
		return nil, err
	}

	merged := make([]MergedTransaction, 0, len(locals)+len(page.Transactions))
	for _, txn := range locals {
		merged = append(merged, localEnvelope(txn))
	}
	for _, txn := range page.Transactions {
		if isInternalTransfer(txn.Attributes.Description) {
			continue
		}
		merged = append(merged, bankEnvelope(txn))
	}

	// Most recent first; equal timestamps keep merge order.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Attributes.CreatedAt.After(merged[j].Attributes.CreatedAt)
	})

	if q.CategoryID != "" {
		filtered := merged[:0]
		for _, txn := range merged {
			if txn.CategoryID() == q.CategoryID {
				filtered = append(filtered, txn)
			}
		}
		merged = filtered
	}

	return &MergedPage{
		Transactions: merged,
		Links:        pagination.FromLinkURLs(page.Links.Prev, page.Links.Next),
	}, nil
}

// Create stores a new locally entered transaction. AccountID, Description,
// Amount, and CreatedAt are all mandatory; Category is free text.
func (s *transactionService) Create(ctx context.Context, p CreateTransactionParams) (*models.LocalTransaction, error) {
	var missing []string
	if p.AccountID == "" {
		missing = append(missing, "accountId")
	}
	if p.Description == "" {
		missing = append(missing, "description")
	}
	if p.Amount == "" {
		missing = append(missing, "amount")
	}
	if p.CreatedAt.IsZero() {
		missing = append(missing, "createdAt")
	}
	if len(missing) > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"missing required fields: "+strings.Join(missing, ", "))
	}

	amountCents, err := money.ParseToCents(p.Amount)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid amount: "+p.Amount)
	}

	txn := &models.LocalTransaction{
		AccountID:   p.AccountID,
		Description: p.Description,
		Message:     p.Message,
		AmountCents: amountCents,
		Category:    p.Category,
		Date:        p.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(txn).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return txn, nil
}

// Delete removes a locally entered transaction. Bank-sourced IDs (anything
// without the local prefix) are rejected and the store is left untouched.
func (s *transactionService) Delete(ctx context.Context, id string) error {
	if !strings.HasPrefix(id, LocalIDPrefix) {
		return apperrors.ErrNotLocalTransaction
	}
	localID := strings.TrimPrefix(id, LocalIDPrefix)

	res := s.db.WithContext(ctx).Where("id = ?", localID).Delete(&models.LocalTransaction{})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}

// SetCategory re-assigns a bank transaction's category via the banking API.
func (s *transactionService) SetCategory(ctx context.Context, transactionID string, categoryID *string) error {
	if transactionID == "" || strings.HasPrefix(transactionID, LocalIDPrefix) {
		return apperrors.ErrInvalidTransactionID
	}
	return s.bank.SetTransactionCategory(ctx, transactionID, categoryID)
}

// localTransactions fetches the local rows matching the listing filters.
// The category filter is applied later, on the merged list.
func (s *transactionService) localTransactions(ctx context.Context, q ListQuery) ([]models.LocalTransaction, error) {
	query := s.db.WithContext(ctx).Model(&models.LocalTransaction{})
	if q.AccountID != "" {
		query = query.Where("account_id = ?", q.AccountID)
	}
	if q.Start != nil && q.End != nil {
		query = query.Where("date BETWEEN ? AND ?", *q.Start, *q.End)
	}

	var locals []models.LocalTransaction
	if err := query.Order("date DESC").Find(&locals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return locals, nil
}

// isInternalTransfer reports whether a description marks one of the bank's
// internal movements (round-ups, quick saves, account transfers).
func isInternalTransfer(description string) bool {
	return description == roundUpDescription ||
		strings.HasPrefix(description, quickSavePrefix) ||
		strings.HasPrefix(description, genericTransferPrefix)
}

// bankEnvelope wraps a bank transaction in the merged envelope.
func bankEnvelope(txn bank.Transaction) MergedTransaction {
	return MergedTransaction{
		ID:            txn.ID,
		Type:          "transactions",
		Source:        SourceBank,
		Attributes:    txn.Attributes,
		Relationships: txn.Relationships,
	}
}

// localEnvelope maps a local row into the bank envelope shape, with the
// local-origin ID prefix and the free-text category embedded at attribute
// level.
func localEnvelope(txn models.LocalTransaction) MergedTransaction {
	env := MergedTransaction{
		ID:     LocalIDPrefix + txn.ID,
		Type:   "transactions",
		Source: SourceLocal,
	}
	env.Attributes.Description = txn.Description
	env.Attributes.Message = txn.Message
	env.Attributes.CreatedAt = txn.Date
	env.Attributes.Amount = bank.Money{
		CurrencyCode:     defaultCurrency,
		Value:            money.CentsToDecimal(txn.AmountCents),
		ValueInBaseUnits: txn.AmountCents,
	}
	if txn.Category != "" {
		env.Attributes.Category = &bank.ResourceIdentifier{Type: "categories", ID: txn.Category}
	}
	return env
}
