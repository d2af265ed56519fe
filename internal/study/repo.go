package study

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/lifedash/internal/telemetry/tracing"
	"github.com/2beens/lifedash/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// advisory lock namespace serializing study session starts per user
const sessionsLockNamespace = 1002

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// StartSession ends any open session of the user and inserts a new one, in one transaction.
func (r *Repo) StartSession(ctx context.Context, userID int, bucketID *int, startedAt time.Time) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.study.startSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

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

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1::int, $2::int);`, sessionsLockNamespace, userID); err != nil {
		return nil, fmt.Errorf("lock user study sessions: %w", err)
	}

	if _, err = tx.Exec(
		ctx,
		`UPDATE study_sessions
		SET ended_at = $2,
			duration_minutes = GREATEST(0, FLOOR(EXTRACT(EPOCH FROM ($2 - started_at)) / 60))::int
		WHERE user_id = $1 AND ended_at IS NULL;`,
		userID, startedAt,
	); err != nil {
		return nil, fmt.Errorf("close open study sessions: %w", err)
	}

	s := &Session{
		UserID:    userID,
		BucketID:  bucketID,
		StartedAt: startedAt,
	}
	if err = tx.QueryRow(
		ctx,
		`INSERT INTO study_sessions (user_id, bucket_id, started_at) VALUES ($1, $2, $3) RETURNING id;`,
		userID, bucketID, startedAt,
	).Scan(&s.ID); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrBucketNotFound
		}
		return nil, fmt.Errorf("insert study session: %w", err)
	}

	span.SetAttributes(attribute.Int("session.id", s.ID))
	return s, nil
}

// EndSession closes the open session and stores its duration. When deleteIfEmpty is set
// and the session lasted less than a minute, it is removed and saved is false.
func (r *Repo) EndSession(
	ctx context.Context,
	userID, id int,
	endedAt time.Time,
	deleteIfEmpty bool,
) (saved bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.study.endSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, err
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

	var startedAt time.Time
	if err = tx.QueryRow(
		ctx,
		`SELECT started_at FROM study_sessions
		WHERE id = $1 AND user_id = $2 AND ended_at IS NULL FOR UPDATE;`,
		id, userID,
	).Scan(&startedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrSessionNotFound
		}
		return false, err
	}

	if deleteIfEmpty && endedAt.Sub(startedAt) < minSessionDuration {
		if _, err = tx.Exec(ctx, `DELETE FROM study_sessions WHERE id = $1;`, id); err != nil {
			return false, fmt.Errorf("delete short study session: %w", err)
		}
		span.SetAttributes(attribute.Bool("session.deleted", true))
		return false, nil
	}

	if _, err = tx.Exec(
		ctx,
		`UPDATE study_sessions SET ended_at = $2, duration_minutes = $3 WHERE id = $1;`,
		id, endedAt, DurationMinutes(startedAt, endedAt),
	); err != nil {
		return false, err
	}

	return true, nil
}

// ActiveSession returns nil when the user has no open session.
func (r *Repo) ActiveSession(ctx context.Context, userID int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.study.activeSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var s Session
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, bucket_id, notes, started_at, ended_at, duration_minutes
		FROM study_sessions WHERE user_id = $1 AND ended_at IS NULL
		ORDER BY started_at DESC LIMIT 1;`,
		userID,
	).Scan(&s.ID, &s.UserID, &s.BucketID, &s.Notes, &s.StartedAt, &s.EndedAt, &s.DurationMinutes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &s, nil
}

// UpdateNotes sets the notes of the open session.
func (r *Repo) UpdateNotes(ctx context.Context, userID, id int, notes string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.study.updateNotes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE study_sessions SET notes = $3 WHERE id = $1 AND user_id = $2 AND ended_at IS NULL;`,
		id, userID, notes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) ListSessions(ctx context.Context, userID int, from, to time.Time) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.study.listSessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, bucket_id, notes, started_at, ended_at, duration_minutes
		FROM study_sessions WHERE user_id = $1 AND started_at >= $2 AND started_at < $3
		ORDER BY started_at DESC;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.BucketID, &s.Notes, &s.StartedAt, &s.EndedAt, &s.DurationMinutes); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

func (r *Repo) ListBuckets(ctx context.Context, userID int) (_ []Bucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.study.listBuckets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, color, created_at FROM buckets WHERE user_id = $1 ORDER BY name;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []Bucket
	for rows.Next() {
		var b Bucket
		if err := rows.Scan(&b.ID, &b.UserID, &b.Name, &b.Color, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		buckets = append(buckets, b)
	}

	return buckets, rows.Err()
}

func (r *Repo) AddBucket(ctx context.Context, bucket Bucket) (_ *Bucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.study.addBucket")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO buckets (user_id, name, color) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		bucket.UserID, bucket.Name, bucket.Color,
	).Scan(&bucket.ID, &bucket.CreatedAt); err != nil {
		return nil, err
	}

	return &bucket, nil
}

func (r *Repo) DeleteBucket(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.study.deleteBucket")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM buckets WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBucketNotFound
	}
	return nil
}

// BucketTotals sums ended session minutes per bucket; sessions without a bucket are grouped under a nil id.
func (r *Repo) BucketTotals(ctx context.Context, userID int, from, to time.Time) (_ []BucketTotal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.study.bucketTotals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT s.bucket_id, COALESCE(b.name, ''), COUNT(*), COALESCE(SUM(s.duration_minutes), 0)
		FROM study_sessions s
		LEFT JOIN buckets b ON b.id = s.bucket_id
		WHERE s.user_id = $1 AND s.ended_at IS NOT NULL AND s.started_at >= $2 AND s.started_at < $3
		GROUP BY s.bucket_id, b.name
		ORDER BY 4 DESC;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []BucketTotal
	for rows.Next() {
		var t BucketTotal
		if err := rows.Scan(&t.BucketID, &t.BucketName, &t.Sessions, &t.TotalMinutes); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		totals = append(totals, t)
	}

	return totals, rows.Err()
}
