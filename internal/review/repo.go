package review

import (
	"context"
	"errors"

	"github.com/2beens/lifedash/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const reviewColumns = `user_id, to_char(date, 'YYYY-MM-DD'), mood, energy, focus, notes, wins, improvements, screen_time_minutes, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) UpsertReview(ctx context.Context, review Review) (_ *Review, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.review.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("review.date", review.Date))

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO daily_context_reviews
			(user_id, date, mood, energy, focus, notes, wins, improvements, screen_time_minutes, updated_at)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, $8, $9, now())
		ON CONFLICT (user_id, date) DO UPDATE SET
			mood = EXCLUDED.mood,
			energy = EXCLUDED.energy,
			focus = EXCLUDED.focus,
			notes = EXCLUDED.notes,
			wins = EXCLUDED.wins,
			improvements = EXCLUDED.improvements,
			screen_time_minutes = EXCLUDED.screen_time_minutes,
			updated_at = now()
		RETURNING `+reviewColumns+`;`,
		review.UserID, review.Date, review.Mood, review.Energy, review.Focus,
		review.Notes, review.Wins, review.Improvements, review.ScreenTimeMinutes,
	)
	return scanReview(row)
}

func (r *Repo) UpsertScreenTime(ctx context.Context, userID int, date string, minutes int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.review.upsertScreenTime")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO screen_time (user_id, date, minutes, updated_at)
		VALUES ($1, $2::date, $3, now())
		ON CONFLICT (user_id, date) DO UPDATE SET minutes = EXCLUDED.minutes, updated_at = now();`,
		userID, date, minutes,
	)
	return err
}

func (r *Repo) GetReview(ctx context.Context, userID int, date string) (_ *Review, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.review.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`SELECT `+reviewColumns+` FROM daily_context_reviews WHERE user_id = $1 AND date = $2::date;`,
		userID, date,
	)
	review, err := scanReview(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	return review, err
}

func (r *Repo) ListReviews(ctx context.Context, userID int, from, to string) (_ []Review, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.review.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+reviewColumns+` FROM daily_context_reviews
		WHERE user_id = $1 AND date >= $2::date AND date <= $3::date
		ORDER BY date DESC;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *review)
	}
	return reviews, rows.Err()
}

func scanReview(row pgx.Row) (*Review, error) {
	var review Review
	if err := row.Scan(
		&review.UserID,
		&review.Date,
		&review.Mood,
		&review.Energy,
		&review.Focus,
		&review.Notes,
		&review.Wins,
		&review.Improvements,
		&review.ScreenTimeMinutes,
		&review.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &review, nil
}
