package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/lifedash/internal/telemetry/tracing"
	"github.com/2beens/lifedash/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListAccounts(ctx context.Context, userID int) (_ []Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.finance.listAccounts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, type, balance, currency FROM accounts WHERE user_id = $1 ORDER BY id;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.Balance, &a.Currency); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *Repo) AddAccount(ctx context.Context, account Account) (_ *Account, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.finance.addAccount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err = r.db.QueryRow(
		ctx,
		`INSERT INTO accounts (user_id, name, type, balance, currency) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		account.UserID, account.Name, account.Type, account.Balance, account.Currency,
	).Scan(&account.ID); err != nil {
		return nil, err
	}
	return &account, nil
}

// AddTransaction stores the transaction and applies it to the account balance, in one transaction.
func (r *Repo) AddTransaction(ctx context.Context, t Transaction) (_ *Transaction, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.finance.addTransaction")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("account.id", t.AccountID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	tag, err := tx.Exec(
		ctx,
		`UPDATE accounts SET balance = balance + $3 WHERE id = $1 AND user_id = $2;`,
		t.AccountID, t.UserID, t.BalanceDelta(),
	)
	if err != nil {
		return nil, fmt.Errorf("update balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrAccountNotFound
	}

	if err = tx.QueryRow(
		ctx,
		`INSERT INTO transactions (user_id, account_id, amount, type, category, description, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7::date)
		RETURNING id, created_at;`,
		t.UserID, t.AccountID, t.Amount, t.Type, t.Category, t.Description, t.Date,
	).Scan(&t.ID, &t.CreatedAt); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	return &t, nil
}

// ListTransactions returns transactions dated in [from, to).
func (r *Repo) ListTransactions(ctx context.Context, userID int, from, to time.Time) (_ []Transaction, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.finance.listTransactions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, account_id, amount, type, category, description, to_char(date, 'YYYY-MM-DD'), created_at
		FROM transactions
		WHERE user_id = $1 AND date >= $2::date AND date < $3::date
		ORDER BY date DESC, id DESC;`,
		userID, from.Format(DateLayout), to.Format(DateLayout),
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Transaction, error) {
		var t Transaction
		err := row.Scan(&t.ID, &t.UserID, &t.AccountID, &t.Amount, &t.Type, &t.Category, &t.Description, &t.Date, &t.CreatedAt)
		return t, err
	})
}
