package stocks

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// prices older than this are fetched again
	priceTTL = 15 * time.Minute

	SourceMemory = "memory"
	SourceDB     = "db"
)

var (
	ErrInvalidSymbol       = errors.New("invalid stock symbol")
	ErrSymbolNotFound      = errors.New("stock symbol not found")
	ErrBudgetExhausted     = errors.New("provider request budget exhausted")
	ErrAllProvidersFailed  = errors.New("all stock price providers failed")
	ErrProviderRateLimited = errors.New("provider rate limited")

	symbolRegex = regexp.MustCompile(`^[A-Z0-9][A-Z0-9.\-]{0,11}$`)
)

type Quote struct {
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	Source    string          `json:"source"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// NormalizeSymbol upper-cases and validates a ticker symbol.
func NormalizeSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if !symbolRegex.MatchString(symbol) {
		return "", fmt.Errorf("%w: [%s]", ErrInvalidSymbol, symbol)
	}
	return symbol, nil
}
