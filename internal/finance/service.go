package finance

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=finance_test

type financeRepo interface {
	ListAccounts(ctx context.Context, userID int) ([]Account, error)
	AddAccount(ctx context.Context, account Account) (*Account, error)
	AddTransaction(ctx context.Context, t Transaction) (*Transaction, error)
	ListTransactions(ctx context.Context, userID int, from, to time.Time) ([]Transaction, error)
}

type Service struct {
	repo financeRepo
}

func NewService(repo financeRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) ListAccounts(ctx context.Context, userID int) ([]Account, error) {
	return s.repo.ListAccounts(ctx, userID)
}

func (s *Service) AddAccount(ctx context.Context, account Account) (*Account, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}
	return s.repo.AddAccount(ctx, account)
}

func (s *Service) AddTransaction(ctx context.Context, t Transaction) (*Transaction, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	added, err := s.repo.AddTransaction(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("add transaction: %w", err)
	}
	return added, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID int, month string) ([]Transaction, error) {
	from, to, err := MonthRange(month)
	if err != nil {
		return nil, err
	}
	return s.repo.ListTransactions(ctx, userID, from, to)
}

func (s *Service) MonthlySummary(ctx context.Context, userID int, month string) (*MonthlySummary, error) {
	transactions, err := s.ListTransactions(ctx, userID, month)
	if err != nil {
		return nil, err
	}
	summary := Summarize(month, transactions)
	return &summary, nil
}
