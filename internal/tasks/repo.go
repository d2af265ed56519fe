package tasks

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/lifedash/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const taskColumns = `id, user_id, title, description, status, priority, due_date, start_time, end_time,
	gcal_event_id, gcal_sync_status, gcal_last_sync, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add inserts the task; a scheduled task starts as pending calendar sync.
func (r *Repo) Add(ctx context.Context, task Task) (_ *Task, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var syncStatus *string
	if task.Scheduled() {
		pending := SyncPending
		syncStatus = &pending
	}

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO tasks (user_id, title, description, status, priority, due_date, start_time, end_time, gcal_sync_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+taskColumns+`;`,
		task.UserID, task.Title, task.Description, task.Status, task.Priority,
		task.DueDate, task.StartTime, task.EndTime, syncStatus,
	)
	return scanTask(row)
}

// Update overwrites the editable fields. A change touching the time slot, title or
// description of a scheduled task marks it pending calendar sync again.
func (r *Repo) Update(ctx context.Context, task Task) (_ *Task, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("task.id", task.ID))

	row := r.db.QueryRow(
		ctx,
		`UPDATE tasks SET
			title = $3,
			description = $4,
			status = $5,
			priority = $6,
			due_date = $7,
			start_time = $8,
			end_time = $9,
			gcal_sync_status = CASE
				WHEN $8::timestamptz IS NOT NULL AND (
					start_time IS DISTINCT FROM $8::timestamptz OR
					end_time IS DISTINCT FROM $9::timestamptz OR
					title IS DISTINCT FROM $3 OR
					description IS DISTINCT FROM $4
				) THEN 'pending'
				ELSE gcal_sync_status
			END,
			updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+taskColumns+`;`,
		task.ID, task.UserID, task.Title, task.Description, task.Status, task.Priority,
		task.DueDate, task.StartTime, task.EndTime,
	)
	updated, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	return updated, err
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Task, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1 AND user_id = $2;`, id, userID)
	task, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	return task, err
}

// List returns the user tasks, optionally filtered by status.
func (r *Repo) List(ctx context.Context, userID int, status string) (_ []Task, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+taskColumns+` FROM tasks
		WHERE user_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY priority DESC, COALESCE(start_time, due_date, created_at) ASC;`,
		userID, status,
	)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *Repo) ListPendingSync(ctx context.Context, userID int) (_ []Task, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.listPendingSync")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+taskColumns+` FROM tasks
		WHERE user_id = $1 AND gcal_sync_status = 'pending' AND start_time IS NOT NULL
		ORDER BY id;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

func (r *Repo) MarkSynced(ctx context.Context, userID, id int, eventID string, syncedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.markSynced")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE tasks SET gcal_event_id = $3, gcal_sync_status = 'synced', gcal_last_sync = $4
		WHERE id = $1 AND user_id = $2;`,
		id, userID, eventID, syncedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *Repo) MarkSyncError(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tasks.markSyncError")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE tasks SET gcal_sync_status = 'error' WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func collectTasks(rows pgx.Rows) ([]Task, error) {
	defer rows.Close()
	var tasks []Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func scanTask(row pgx.Row) (*Task, error) {
	var t Task
	if err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.Priority,
		&t.DueDate,
		&t.StartTime,
		&t.EndTime,
		&t.GCalEventID,
		&t.GCalSyncStatus,
		&t.GCalLastSync,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}
