package services

import (
	"context"

	"hearth/internal/bank"
)

// accountService proxies account listings from the banking API.
type accountService struct {
	bank bank.Client
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(bankClient bank.Client) AccountServicer {
	return &accountService{bank: bankClient}
}

// Accounts returns the bank's accounts in the bank's own order.
func (s *accountService) Accounts(ctx context.Context) ([]bank.Account, error) {
	return s.bank.Accounts(ctx)
}
