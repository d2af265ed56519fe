package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/lifedash/internal/apiclient"
	"github.com/2beens/lifedash/internal/gym"
	"github.com/2beens/lifedash/internal/study"
)

//go:generate mockgen -source=$GOFILE -destination=trackers_mocks_test.go -package=session_test

type gymAPI interface {
	StartWorkout(ctx context.Context, name string, startedAt time.Time) (*gym.Workout, error)
	EndWorkout(ctx context.Context, id int, endedAt time.Time, deleteIfEmpty bool) (*gym.EndWorkoutResponse, error)
	ActiveWorkout(ctx context.Context) (*gym.Workout, error)
}

type studyAPI interface {
	StartStudySession(ctx context.Context, bucketID *int, startedAt time.Time) (*study.Session, error)
	EndStudySession(ctx context.Context, id int, endedAt time.Time, deleteIfEmpty bool) (*study.EndSessionResponse, error)
	ActiveStudySession(ctx context.Context) (*study.Session, error)
}

// endErr maps a server "not found" to ErrSessionGone.
func endErr(err error) error {
	if errors.Is(err, apiclient.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrSessionGone, err)
	}
	return err
}

// GymTracker tracks workouts. Empty workouts are deleted on end.
type GymTracker struct {
	api    gymAPI
	maxAge time.Duration
}

func NewGymTracker(api gymAPI, maxAge time.Duration) *GymTracker {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &GymTracker{api: api, maxAge: maxAge}
}

func (t *GymTracker) Domain() string        { return gym.Domain }
func (t *GymTracker) MaxAge() time.Duration { return t.maxAge }

func (t *GymTracker) Start(ctx context.Context, data StartData) (*Session, error) {
	workout, err := t.api.StartWorkout(ctx, data.Name, data.StartedAt)
	if err != nil {
		return nil, err
	}
	return fromWorkout(workout), nil
}

func (t *GymTracker) End(ctx context.Context, id int, endedAt time.Time) (bool, error) {
	resp, err := t.api.EndWorkout(ctx, id, endedAt, true)
	if err != nil {
		return false, endErr(err)
	}
	return resp.Saved, nil
}

func (t *GymTracker) Active(ctx context.Context) (*Session, error) {
	workout, err := t.api.ActiveWorkout(ctx)
	if err != nil || workout == nil {
		return nil, err
	}
	return fromWorkout(workout), nil
}

func fromWorkout(w *gym.Workout) *Session {
	return &Session{
		ID:        w.ID,
		Domain:    gym.Domain,
		Name:      w.Name,
		StartedAt: w.StartedAt,
	}
}

// StudyTracker tracks study sessions. Sessions under a minute are deleted on end.
type StudyTracker struct {
	api    studyAPI
	maxAge time.Duration
}

func NewStudyTracker(api studyAPI, maxAge time.Duration) *StudyTracker {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &StudyTracker{api: api, maxAge: maxAge}
}

func (t *StudyTracker) Domain() string        { return study.Domain }
func (t *StudyTracker) MaxAge() time.Duration { return t.maxAge }

func (t *StudyTracker) Start(ctx context.Context, data StartData) (*Session, error) {
	s, err := t.api.StartStudySession(ctx, data.BucketID, data.StartedAt)
	if err != nil {
		return nil, err
	}
	return fromStudySession(s), nil
}

func (t *StudyTracker) End(ctx context.Context, id int, endedAt time.Time) (bool, error) {
	resp, err := t.api.EndStudySession(ctx, id, endedAt, true)
	if err != nil {
		return false, endErr(err)
	}
	return resp.Saved, nil
}

func (t *StudyTracker) Active(ctx context.Context) (*Session, error) {
	s, err := t.api.ActiveStudySession(ctx)
	if err != nil || s == nil {
		return nil, err
	}
	return fromStudySession(s), nil
}

func fromStudySession(s *study.Session) *Session {
	return &Session{
		ID:        s.ID,
		Domain:    study.Domain,
		BucketID:  s.BucketID,
		StartedAt: s.StartedAt,
	}
}
