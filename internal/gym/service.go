package gym

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/lifedash/internal/telemetry/metrics"
	"github.com/2beens/lifedash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=gym_test

type gymRepo interface {
	StartWorkout(ctx context.Context, userID int, name string, startedAt time.Time) (*Workout, error)
	EndWorkout(ctx context.Context, userID, id int, endedAt time.Time, deleteIfEmpty bool) (bool, error)
	ActiveWorkout(ctx context.Context, userID int) (*Workout, error)
	GetWorkout(ctx context.Context, userID, id int) (*Workout, error)
	ListWorkouts(ctx context.Context, userID, page, size int) ([]Workout, int, error)
	UpdateNotes(ctx context.Context, userID, id int, notes string) error
	AddLift(ctx context.Context, lift Lift) (*Lift, error)
	DeleteLift(ctx context.Context, userID, id int) error
	ListLifts(ctx context.Context, userID, workoutID int) ([]Lift, error)
	PersonalRecord(ctx context.Context, userID int, exercise string) (*PersonalRecord, error)
	UpsertPersonalRecord(ctx context.Context, pr PersonalRecord) (*PersonalRecord, error)
	ListPersonalRecords(ctx context.Context, userID int) ([]PersonalRecord, error)
}

type AddLiftResult struct {
	Lift      Lift            `json:"lift"`
	NewRecord bool            `json:"newRecord"`
	Record    *PersonalRecord `json:"record,omitempty"`
}

type Service struct {
	repo           gymRepo
	metricsManager *metrics.Manager
	nowFunc        func() time.Time
}

func NewService(repo gymRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
		nowFunc:        time.Now,
	}
}

// StartWorkout starts a new workout. Any workout left open is closed first, on the server side.
func (s *Service) StartWorkout(ctx context.Context, userID int, name string, startedAt time.Time) (*Workout, error) {
	if startedAt.IsZero() {
		startedAt = s.nowFunc()
	}
	w, err := s.repo.StartWorkout(ctx, userID, name, startedAt)
	if err != nil {
		return nil, fmt.Errorf("start workout: %w", err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterSessionsStarted.WithLabelValues(Domain).Inc()
	}
	return w, nil
}

func (s *Service) EndWorkout(ctx context.Context, userID, id int, endedAt time.Time, deleteIfEmpty bool) (bool, error) {
	if endedAt.IsZero() {
		endedAt = s.nowFunc()
	}
	saved, err := s.repo.EndWorkout(ctx, userID, id, endedAt, deleteIfEmpty)
	if err != nil {
		return false, fmt.Errorf("end workout: %w", err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterSessionsEnded.WithLabelValues(Domain, strconv.FormatBool(saved)).Inc()
	}
	return saved, nil
}

func (s *Service) ActiveWorkout(ctx context.Context, userID int) (*Workout, error) {
	return s.repo.ActiveWorkout(ctx, userID)
}

func (s *Service) GetWorkout(ctx context.Context, userID, id int) (*Workout, error) {
	return s.repo.GetWorkout(ctx, userID, id)
}

func (s *Service) ListWorkouts(ctx context.Context, userID, page, size int) ([]Workout, int, error) {
	return s.repo.ListWorkouts(ctx, userID, page, size)
}

func (s *Service) UpdateNotes(ctx context.Context, userID, id int, notes string) error {
	return s.repo.UpdateNotes(ctx, userID, id, notes)
}

// AddLift stores the lift and records a new personal record when its estimated 1RM beats the current one.
func (s *Service) AddLift(ctx context.Context, lift Lift) (_ *AddLiftResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gym.addLift")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := lift.Validate(); err != nil {
		return nil, err
	}
	if lift.CreatedAt.IsZero() {
		lift.CreatedAt = s.nowFunc()
	}

	added, err := s.repo.AddLift(ctx, lift)
	if err != nil {
		return nil, fmt.Errorf("add lift: %w", err)
	}

	result := &AddLiftResult{Lift: *added}

	estimated := estimated1RM(added.Weight, added.Reps)
	span.SetAttributes(attribute.Int("lift.estimated1RM", estimated))

	current, err := s.repo.PersonalRecord(ctx, added.UserID, added.Exercise)
	if err != nil {
		// the lift is stored, record tracking can catch up on the next one
		log.Errorf("get personal record [%s] for user %d: %s", added.Exercise, added.UserID, err)
		return result, nil
	}

	if current != nil && estimated <= current.Estimated1RM {
		result.Record = current
		return result, nil
	}

	liftID := added.ID
	record, err := s.repo.UpsertPersonalRecord(ctx, PersonalRecord{
		UserID:       added.UserID,
		Exercise:     added.Exercise,
		Weight:       added.Weight,
		Reps:         added.Reps,
		Estimated1RM: estimated,
		LiftID:       &liftID,
		AchievedAt:   added.CreatedAt,
	})
	if err != nil {
		log.Errorf("upsert personal record [%s] for user %d: %s", added.Exercise, added.UserID, err)
		return result, nil
	}

	result.NewRecord = true
	result.Record = record
	return result, nil
}

func (s *Service) DeleteLift(ctx context.Context, userID, id int) error {
	return s.repo.DeleteLift(ctx, userID, id)
}

func (s *Service) ListLifts(ctx context.Context, userID, workoutID int) ([]Lift, error) {
	return s.repo.ListLifts(ctx, userID, workoutID)
}

func (s *Service) ListPersonalRecords(ctx context.Context, userID int) ([]PersonalRecord, error) {
	return s.repo.ListPersonalRecords(ctx, userID)
}
