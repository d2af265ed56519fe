package gcal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/lifedash/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const eventColumns = `id, user_id, gcal_event_id, calendar_id, title, description, location,
	start_time, end_time, all_day, task_id, last_synced, is_deleted`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetCredentials(ctx context.Context, userID int) (_ *Credentials, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gcal.getCredentials")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	c := &Credentials{}
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, access_token, refresh_token, token_expiry, calendar_id, sync_enabled,
			last_sync_at, created_at, updated_at
		FROM google_calendar_credentials WHERE user_id = $1;`,
		userID,
	).Scan(
		&c.UserID, &c.AccessToken, &c.RefreshToken, &c.TokenExpiry, &c.CalendarID, &c.SyncEnabled,
		&c.LastSyncAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotConnected
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *Repo) SaveCredentials(ctx context.Context, c Credentials) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gcal.saveCredentials")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO google_calendar_credentials
			(user_id, access_token, refresh_token, token_expiry, calendar_id, sync_enabled)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_expiry = EXCLUDED.token_expiry,
			calendar_id = EXCLUDED.calendar_id,
			sync_enabled = EXCLUDED.sync_enabled,
			updated_at = now();`,
		c.UserID, c.AccessToken, c.RefreshToken, c.TokenExpiry, c.CalendarID, c.SyncEnabled,
	)
	return err
}

func (r *Repo) UpdateToken(ctx context.Context, userID int, accessToken string, expiry time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gcal.updateToken")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE google_calendar_credentials SET access_token = $2, token_expiry = $3, updated_at = now()
		WHERE user_id = $1;`,
		userID, accessToken, expiry,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotConnected
	}
	return nil
}

// DeleteCredentials removes the credential row and the cached events of the user.
func (r *Repo) DeleteCredentials(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gcal.deleteCredentials")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
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

	if _, err = tx.Exec(ctx, `DELETE FROM google_calendar_events WHERE user_id = $1;`, userID); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM google_calendar_credentials WHERE user_id = $1;`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotConnected
	}
	return nil
}

func (r *Repo) SetSyncEnabled(ctx context.Context, userID int, enabled bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gcal.setSyncEnabled")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE google_calendar_credentials SET sync_enabled = $2, updated_at = now() WHERE user_id = $1;`,
		userID, enabled,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotConnected
	}
	return nil
}

func (r *Repo) SetLastSync(ctx context.Context, userID int, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gcal.setLastSync")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`UPDATE google_calendar_credentials SET last_sync_at = $2 WHERE user_id = $1;`,
		userID, at,
	)
	return err
}

func (r *Repo) ListSyncEnabledUsers(ctx context.Context) (_ []int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gcal.listSyncEnabledUsers")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT user_id FROM google_calendar_credentials WHERE sync_enabled ORDER BY user_id;`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int])
}

// ListCachedEvents returns cached events overlapping [from, to], tombstones included.
func (r *Repo) ListCachedEvents(ctx context.Context, userID int, from, to time.Time) (_ []CachedEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gcal.listCachedEvents")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+eventColumns+` FROM google_calendar_events
		WHERE user_id = $1 AND start_time <= $3 AND end_time >= $2
		ORDER BY start_time;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []CachedEvent
	for rows.Next() {
		var e CachedEvent
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.GCalEventID, &e.CalendarID, &e.Title, &e.Description, &e.Location,
			&e.StartTime, &e.EndTime, &e.AllDay, &e.TaskID, &e.LastSynced, &e.IsDeleted,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// UpdateCachedEvent overwrites the mirrored fields and clears a tombstone. The task link is kept.
func (r *Repo) UpdateCachedEvent(ctx context.Context, e CachedEvent) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gcal.updateCachedEvent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`UPDATE google_calendar_events SET
			calendar_id = $3, title = $4, description = $5, location = $6,
			start_time = $7, end_time = $8, all_day = $9, last_synced = $10, is_deleted = FALSE
		WHERE user_id = $1 AND gcal_event_id = $2;`,
		e.UserID, e.GCalEventID, e.CalendarID, e.Title, e.Description, e.Location,
		e.StartTime, e.EndTime, e.AllDay, e.LastSynced,
	)
	return err
}

// UpsertCachedEvent inserts or overwrites a cached event and clears a tombstone.
// An existing task link is kept when e carries none.
func (r *Repo) UpsertCachedEvent(ctx context.Context, e CachedEvent) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gcal.upsertCachedEvent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO google_calendar_events
			(user_id, gcal_event_id, calendar_id, title, description, location, start_time, end_time, all_day, task_id, last_synced)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id, gcal_event_id) DO UPDATE SET
			calendar_id = EXCLUDED.calendar_id,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			location = EXCLUDED.location,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			all_day = EXCLUDED.all_day,
			task_id = COALESCE(EXCLUDED.task_id, google_calendar_events.task_id),
			last_synced = EXCLUDED.last_synced,
			is_deleted = FALSE;`,
		e.UserID, e.GCalEventID, e.CalendarID, e.Title, e.Description, e.Location,
		e.StartTime, e.EndTime, e.AllDay, e.TaskID, e.LastSynced,
	)
	return err
}

func (r *Repo) TombstoneCachedEvent(ctx context.Context, userID int, gcalEventID string, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gcal.tombstoneCachedEvent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`UPDATE google_calendar_events SET is_deleted = TRUE, last_synced = $3
		WHERE user_id = $1 AND gcal_event_id = $2;`,
		userID, gcalEventID, at,
	)
	return err
}
