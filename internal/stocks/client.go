package stocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/lifedash/internal/telemetry/metrics"
	"github.com/2beens/lifedash/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=client_mocks_test.go -package=stocks_test

type priceStore interface {
	Get(ctx context.Context, symbol string, notBefore time.Time) (*Quote, error)
	Save(ctx context.Context, q Quote) error
}

type budgetedProvider struct {
	provider Provider
	budget   *minuteBudget
}

// Client looks prices up in memory, then in the persistent cache, then asks the
// providers in order, each within its own per-minute request budget.
type Client struct {
	cache          *freecache.Cache
	store          priceStore
	providers      []budgetedProvider
	metricsManager *metrics.Manager
	nowFunc        func() time.Time
}

func NewClient(store priceStore, metricsManager *metrics.Manager) *Client {
	megabyte := 1024 * 1024
	return &Client{
		cache:          freecache.NewCache(5 * megabyte),
		store:          store,
		metricsManager: metricsManager,
		nowFunc:        time.Now,
	}
}

// AddProvider appends a provider to the fallback chain with its requests per minute budget.
func (c *Client) AddProvider(provider Provider, requestsPerMin int) {
	c.providers = append(c.providers, budgetedProvider{
		provider: provider,
		budget:   newMinuteBudget(requestsPerMin),
	})
}

func (c *Client) ProvidersCount() int {
	return len(c.providers)
}

func (c *Client) Price(ctx context.Context, symbol string) (_ *Quote, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stocks.client.price")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	symbol, err = NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("stock.symbol", symbol))

	if q := c.fromMemory(symbol); q != nil {
		c.countLookup(SourceMemory)
		return q, nil
	}

	now := c.nowFunc()
	if c.store != nil {
		stored, err := c.store.Get(ctx, symbol, now.Add(-priceTTL))
		if err != nil {
			log.Warnf("stocks: read persistent cache for %s: %s", symbol, err)
		} else if stored != nil {
			c.toMemory(*stored, priceTTL-now.Sub(stored.FetchedAt))
			c.countLookup(SourceDB)
			return stored, nil
		}
	}

	var errs error
	for _, p := range c.providers {
		name := p.provider.Name()
		if !p.budget.Take() {
			log.Debugf("stocks: %s budget exhausted, skipping", name)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, ErrBudgetExhausted))
			continue
		}

		price, err := p.provider.FetchPrice(ctx, symbol)
		if err != nil {
			log.Debugf("stocks: %s failed for %s: %s", name, symbol, err)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		q := Quote{
			Symbol:    symbol,
			Price:     price,
			Source:    name,
			FetchedAt: c.nowFunc(),
		}
		c.toMemory(q, priceTTL)
		if c.store != nil {
			if err := c.store.Save(ctx, q); err != nil {
				log.Warnf("stocks: write persistent cache for %s: %s", symbol, err)
			}
		}
		c.countLookup(name)
		return &q, nil
	}

	if errs == nil {
		return nil, fmt.Errorf("%w: no providers configured", ErrAllProvidersFailed)
	}
	// a symbol unknown to every provider that answered is reported as not found
	allNotFound := true
	for _, e := range multierr.Errors(errs) {
		if !errors.Is(e, ErrSymbolNotFound) {
			allNotFound = false
			break
		}
	}
	if allNotFound {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}
	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, errs)
}

func (c *Client) fromMemory(symbol string) *Quote {
	quoteBytes, err := c.cache.Get([]byte(symbol))
	if err != nil {
		return nil
	}
	q := &Quote{}
	if err := json.Unmarshal(quoteBytes, q); err != nil {
		log.Errorf("stocks: unmarshal cached quote for %s: %s", symbol, err)
		return nil
	}
	return q
}

func (c *Client) toMemory(q Quote, ttl time.Duration) {
	expireSeconds := int(ttl.Seconds())
	if expireSeconds <= 0 {
		return
	}
	quoteBytes, err := json.Marshal(q)
	if err != nil {
		log.Errorf("stocks: marshal quote for %s: %s", q.Symbol, err)
		return
	}
	if err := c.cache.Set([]byte(q.Symbol), quoteBytes, expireSeconds); err != nil {
		log.Errorf("stocks: cache quote for %s: %s", q.Symbol, err)
	}
}

func (c *Client) countLookup(source string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterStockLookups.WithLabelValues(source).Inc()
	}
}
