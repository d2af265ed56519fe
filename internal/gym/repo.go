package gym

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

// advisory lock namespace serializing workout starts per user
const workoutsLockNamespace = 1001

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// StartWorkout closes any open workout of the user and inserts a new one, in one transaction.
func (r *Repo) StartWorkout(ctx context.Context, userID int, name string, startedAt time.Time) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.startWorkout")
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

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1::int, $2::int);`, workoutsLockNamespace, userID); err != nil {
		return nil, fmt.Errorf("lock user workouts: %w", err)
	}

	tag, err := tx.Exec(
		ctx,
		`UPDATE workouts SET ended_at = $2 WHERE user_id = $1 AND ended_at IS NULL;`,
		userID, startedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("close open workouts: %w", err)
	}
	span.SetAttributes(attribute.Int64("workouts.closed", tag.RowsAffected()))

	w := &Workout{
		UserID:    userID,
		Name:      name,
		StartedAt: startedAt,
	}
	if err = tx.QueryRow(
		ctx,
		`INSERT INTO workouts (user_id, name, started_at) VALUES ($1, $2, $3) RETURNING id;`,
		userID, name, startedAt,
	).Scan(&w.ID); err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", w.ID))
	return w, nil
}

// EndWorkout closes the open workout. When deleteIfEmpty is set and the workout has no lifts,
// it is removed and saved is false.
func (r *Repo) EndWorkout(
	ctx context.Context,
	userID, id int,
	endedAt time.Time,
	deleteIfEmpty bool,
) (saved bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.endWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

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

	tag, err := tx.Exec(
		ctx,
		`UPDATE workouts SET ended_at = $3 WHERE id = $1 AND user_id = $2 AND ended_at IS NULL;`,
		id, userID, endedAt,
	)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, ErrWorkoutNotFound
	}

	if !deleteIfEmpty {
		return true, nil
	}

	var liftsCount int
	if err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM lifts WHERE workout_id = $1;`, id).Scan(&liftsCount); err != nil {
		return false, fmt.Errorf("count lifts: %w", err)
	}
	if liftsCount > 0 {
		return true, nil
	}

	if _, err = tx.Exec(ctx, `DELETE FROM workouts WHERE id = $1;`, id); err != nil {
		return false, fmt.Errorf("delete empty workout: %w", err)
	}
	span.SetAttributes(attribute.Bool("workout.deleted", true))

	return false, nil
}

// ActiveWorkout returns nil when the user has no open workout.
func (r *Repo) ActiveWorkout(ctx context.Context, userID int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.activeWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var w Workout
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, name, notes, started_at, ended_at
		FROM workouts WHERE user_id = $1 AND ended_at IS NULL
		ORDER BY started_at DESC LIMIT 1;`,
		userID,
	).Scan(&w.ID, &w.UserID, &w.Name, &w.Notes, &w.StartedAt, &w.EndedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &w, nil
}

func (r *Repo) GetWorkout(ctx context.Context, userID, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.getWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", id))

	var w Workout
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, name, notes, started_at, ended_at FROM workouts WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(&w.ID, &w.UserID, &w.Name, &w.Notes, &w.StartedAt, &w.EndedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	lifts, err := r.ListLifts(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("list workout lifts: %w", err)
	}
	w.Lifts = lifts

	return &w, nil
}

func (r *Repo) ListWorkouts(ctx context.Context, userID, page, size int) (_ []Workout, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.listWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("size", size))

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workouts WHERE user_id = $1;`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count workouts: %w", err)
	}

	limit := size
	offset := (page - 1) * size
	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, notes, started_at, ended_at
		FROM workouts WHERE user_id = $1
		ORDER BY started_at DESC LIMIT $2 OFFSET $3;`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Notes, &w.StartedAt, &w.EndedAt); err != nil {
			return nil, 0, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return workouts, total, nil
}

func (r *Repo) UpdateNotes(ctx context.Context, userID, id int, notes string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.updateNotes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workouts SET notes = $3 WHERE id = $1 AND user_id = $2;`,
		id, userID, notes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// AddLift inserts a lift into an open workout.
func (r *Repo) AddLift(ctx context.Context, lift Lift) (_ *Lift, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.addLift")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", lift.WorkoutID))

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO lifts (workout_id, user_id, exercise, weight, reps, rpe, created_at)
		SELECT w.id, w.user_id, $3::text, $4::double precision, $5::int, $6::double precision, $7::timestamptz
		FROM workouts w WHERE w.id = $1 AND w.user_id = $2 AND w.ended_at IS NULL
		RETURNING id;`,
		lift.WorkoutID, lift.UserID, lift.Exercise, lift.Weight, lift.Reps, lift.RPE, lift.CreatedAt,
	).Scan(&lift.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActiveWorkout
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("lift.id", lift.ID))
	return &lift, nil
}

func (r *Repo) DeleteLift(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.deleteLift")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("lift.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM lifts WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLiftNotFound
	}
	return nil
}

func (r *Repo) ListLifts(ctx context.Context, userID, workoutID int) (_ []Lift, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.listLifts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, workout_id, user_id, exercise, weight, reps, rpe, created_at
		FROM lifts WHERE workout_id = $1 AND user_id = $2
		ORDER BY created_at;`,
		workoutID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lifts []Lift
	for rows.Next() {
		var l Lift
		if err := rows.Scan(&l.ID, &l.WorkoutID, &l.UserID, &l.Exercise, &l.Weight, &l.Reps, &l.RPE, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		lifts = append(lifts, l)
	}

	return lifts, rows.Err()
}

// PersonalRecord returns nil when there is no record for the exercise yet.
func (r *Repo) PersonalRecord(ctx context.Context, userID int, exercise string) (_ *PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.personalRecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", exercise))

	var pr PersonalRecord
	if err := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, exercise, weight, reps, estimated_1rm, lift_id, achieved_at
		FROM personal_records WHERE user_id = $1 AND exercise = $2;`,
		userID, exercise,
	).Scan(&pr.ID, &pr.UserID, &pr.Exercise, &pr.Weight, &pr.Reps, &pr.Estimated1RM, &pr.LiftID, &pr.AchievedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &pr, nil
}

func (r *Repo) UpsertPersonalRecord(ctx context.Context, pr PersonalRecord) (_ *PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.upsertPersonalRecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise", pr.Exercise))

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO personal_records (user_id, exercise, weight, reps, estimated_1rm, lift_id, achieved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, exercise) DO UPDATE SET
			weight = EXCLUDED.weight,
			reps = EXCLUDED.reps,
			estimated_1rm = EXCLUDED.estimated_1rm,
			lift_id = EXCLUDED.lift_id,
			achieved_at = EXCLUDED.achieved_at
		RETURNING id;`,
		pr.UserID, pr.Exercise, pr.Weight, pr.Reps, pr.Estimated1RM, pr.LiftID, pr.AchievedAt,
	).Scan(&pr.ID); err != nil {
		return nil, err
	}

	return &pr, nil
}

func (r *Repo) ListPersonalRecords(ctx context.Context, userID int) (_ []PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gym.listPersonalRecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, exercise, weight, reps, estimated_1rm, lift_id, achieved_at
		FROM personal_records WHERE user_id = $1 ORDER BY exercise;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []PersonalRecord
	for rows.Next() {
		var pr PersonalRecord
		if err := rows.Scan(&pr.ID, &pr.UserID, &pr.Exercise, &pr.Weight, &pr.Reps, &pr.Estimated1RM, &pr.LiftID, &pr.AchievedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, pr)
	}

	return records, rows.Err()
}
