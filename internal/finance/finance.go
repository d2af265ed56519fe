package finance

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"

	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

var (
	ErrAccountNotFound = errors.New("account not found")
)

// ValidationError reports a missing or malformed transaction or account field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

type Account struct {
	ID       int             `json:"id"`
	UserID   int             `json:"userId"`
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

func (a *Account) Validate() error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return &ValidationError{Field: "name", Message: "required"}
	}
	if a.Type == "" {
		a.Type = "checking"
	}
	if a.Currency == "" {
		a.Currency = "USD"
	}
	if len(a.Currency) != 3 {
		return &ValidationError{Field: "currency", Message: "must be a 3 letter code"}
	}
	a.Currency = strings.ToUpper(a.Currency)
	return nil
}

type Transaction struct {
	ID          int             `json:"id"`
	UserID      int             `json:"userId"`
	AccountID   int             `json:"accountId"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func (t *Transaction) Validate() error {
	if t.AccountID <= 0 {
		return &ValidationError{Field: "accountId", Message: "required"}
	}
	if !t.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Message: "must be greater than zero"}
	}
	if t.Type != TypeIncome && t.Type != TypeExpense {
		return &ValidationError{Field: "type", Message: "must be income or expense"}
	}
	if t.Date == "" {
		return &ValidationError{Field: "date", Message: "required"}
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return &ValidationError{Field: "date", Message: "must be YYYY-MM-DD"}
	}
	t.Description = strings.TrimSpace(t.Description)
	if t.Description == "" {
		return &ValidationError{Field: "description", Message: "required"}
	}
	return nil
}

// BalanceDelta is the signed change the transaction applies to its account.
func (t *Transaction) BalanceDelta() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

type MonthlySummary struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// Summarize totals income and expense of the given transactions.
func Summarize(month string, transactions []Transaction) MonthlySummary {
	summary := MonthlySummary{
		Month:   month,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	for _, t := range transactions {
		switch t.Type {
		case TypeIncome:
			summary.Income = summary.Income.Add(t.Amount)
		case TypeExpense:
			summary.Expense = summary.Expense.Add(t.Amount)
		}
	}
	summary.Net = summary.Income.Sub(summary.Expense)
	return summary
}

// MonthRange returns the first day of the month and the first day of the next one.
func MonthRange(month string) (time.Time, time.Time, error) {
	start, err := time.Parse(MonthLayout, month)
	if err != nil {
		return time.Time{}, time.Time{}, &ValidationError{Field: "month", Message: "must be YYYY-MM"}
	}
	return start, start.AddDate(0, 1, 0), nil
}
