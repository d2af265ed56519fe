package stocks

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/2beens/lifedash/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createPriceCacheTable = `CREATE TABLE IF NOT EXISTS stock_price_cache (
	symbol     TEXT PRIMARY KEY,
	price      NUMERIC(18, 6) NOT NULL,
	source     TEXT NOT NULL,
	fetched_at TIMESTAMPTZ NOT NULL
);`

// Repo is the persistent price cache. Its table is not part of the migrations,
// it is created on first use.
type Repo struct {
	db *pgxpool.Pool

	mu           sync.Mutex
	tableCreated bool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ensureTable(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tableCreated {
		return nil
	}
	if _, err := r.db.Exec(ctx, createPriceCacheTable); err != nil {
		return err
	}
	r.tableCreated = true
	return nil
}

// Get returns the stored quote when it was fetched after notBefore, nil otherwise.
func (r *Repo) Get(ctx context.Context, symbol string, notBefore time.Time) (_ *Quote, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stocks.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	q := &Quote{}
	err = r.db.QueryRow(
		ctx,
		`SELECT symbol, price, source, fetched_at FROM stock_price_cache WHERE symbol = $1 AND fetched_at > $2;`,
		symbol, notBefore,
	).Scan(&q.Symbol, &q.Price, &q.Source, &q.FetchedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (r *Repo) Save(ctx context.Context, q Quote) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stocks.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.ensureTable(ctx); err != nil {
		return err
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO stock_price_cache (symbol, price, source, fetched_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (symbol) DO UPDATE SET price = EXCLUDED.price, source = EXCLUDED.source, fetched_at = EXCLUDED.fetched_at;`,
		q.Symbol, q.Price, q.Source, q.FetchedAt,
	)
	return err
}
