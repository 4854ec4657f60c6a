package services

import (
	"context"
	"time"

	"hearth/internal/bank"
	"hearth/internal/models"
)

// --- mock bank client ---

type mockBankClient struct {
	accountsFn        func(ctx context.Context) ([]bank.Account, error)
	categoriesFn      func(ctx context.Context) ([]bank.Category, error)
	childCategoriesFn func(ctx context.Context, parentID string) ([]bank.Category, error)
	transactionsFn    func(ctx context.Context, q bank.TransactionQuery) (*bank.TransactionPage, error)
	setCategoryFn     func(ctx context.Context, transactionID string, categoryID *string) error
}

func (m *mockBankClient) Accounts(ctx context.Context) ([]bank.Account, error) {
	if m.accountsFn != nil {
		return m.accountsFn(ctx)
	}
	return []bank.Account{}, nil
}

func (m *mockBankClient) Categories(ctx context.Context) ([]bank.Category, error) {
	if m.categoriesFn != nil {
		return m.categoriesFn(ctx)
	}
	return []bank.Category{}, nil
}

func (m *mockBankClient) ChildCategories(ctx context.Context, parentID string) ([]bank.Category, error) {
	if m.childCategoriesFn != nil {
		return m.childCategoriesFn(ctx, parentID)
	}
	return []bank.Category{}, nil
}

func (m *mockBankClient) Transactions(ctx context.Context, q bank.TransactionQuery) (*bank.TransactionPage, error) {
	if m.transactionsFn != nil {
		return m.transactionsFn(ctx, q)
	}
	return &bank.TransactionPage{}, nil
}

func (m *mockBankClient) SetTransactionCategory(ctx context.Context, transactionID string, categoryID *string) error {
	if m.setCategoryFn != nil {
		return m.setCategoryFn(ctx, transactionID, categoryID)
	}
	return nil
}

var _ bank.Client = (*mockBankClient)(nil)

// --- mock budget service ---

type mockBudgetService struct {
	upsertFn   func(categoryID string, amountCents int64, month time.Time) (*models.Budget, error)
	forMonthFn func(month time.Time) ([]models.Budget, error)
}

func (m *mockBudgetService) Upsert(categoryID string, amountCents int64, month time.Time) (*models.Budget, error) {
	if m.upsertFn != nil {
		return m.upsertFn(categoryID, amountCents, month)
	}
	return &models.Budget{CategoryID: categoryID, AmountCents: amountCents, Month: month}, nil
}

func (m *mockBudgetService) ForMonth(month time.Time) ([]models.Budget, error) {
	if m.forMonthFn != nil {
		return m.forMonthFn(month)
	}
	return []models.Budget{}, nil
}

var _ BudgetServicer = (*mockBudgetService)(nil)

// --- mock transaction service ---

type mockTransactionService struct {
	listFn        func(ctx context.Context, q ListQuery) (*MergedPage, error)
	createFn      func(ctx context.Context, p CreateTransactionParams) (*models.LocalTransaction, error)
	deleteFn      func(ctx context.Context, id string) error
	setCategoryFn func(ctx context.Context, transactionID string, categoryID *string) error
}

func (m *mockTransactionService) List(ctx context.Context, q ListQuery) (*MergedPage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return &MergedPage{Transactions: []MergedTransaction{}}, nil
}

func (m *mockTransactionService) Create(ctx context.Context, p CreateTransactionParams) (*models.LocalTransaction, error) {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	return &models.LocalTransaction{}, nil
}

func (m *mockTransactionService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockTransactionService) SetCategory(ctx context.Context, transactionID string, categoryID *string) error {
	if m.setCategoryFn != nil {
		return m.setCategoryFn(ctx, transactionID, categoryID)
	}
	return nil
}

var _ TransactionServicer = (*mockTransactionService)(nil)

// --- fixture helpers ---

func bankCategory(id, name string, parentID *string) bank.Category {
	cat := bank.Category{Type: "categories", ID: id}
	cat.Attributes.Name = name
	if parentID != nil {
		cat.Relationships.Parent.Data = &bank.ResourceIdentifier{Type: "categories", ID: *parentID}
	}
	return cat
}

func bankTransaction(id, description string, amountCents int64, createdAt time.Time, categoryID string) bank.Transaction {
	txn := bank.Transaction{Type: "transactions", ID: id}
	txn.Attributes.Description = description
	txn.Attributes.Amount = bank.Money{CurrencyCode: "AUD", ValueInBaseUnits: amountCents}
	txn.Attributes.CreatedAt = createdAt
	if categoryID != "" {
		txn.Relationships.Category.Data = &bank.ResourceIdentifier{Type: "categories", ID: categoryID}
	}
	return txn
}

func strPtr(s string) *string { return &s }
