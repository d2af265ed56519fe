package gym

import (
	"errors"
	"time"
)

const Domain = "gym"

// MsgWorkoutGone is the 404 body when the workout to end is missing or already ended.
const MsgWorkoutGone = "workout not found or already ended"

var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrLiftNotFound     = errors.New("lift not found")
	ErrNoActiveWorkout  = errors.New("workout is not active")
	ErrInvalidLiftInput = errors.New("invalid lift")
)

type Workout struct {
	ID        int        `json:"id"`
	UserID    int        `json:"userId"`
	Name      string     `json:"name"`
	Notes     string     `json:"notes"`
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
	Lifts     []Lift     `json:"lifts,omitempty"`
}

func (w *Workout) IsActive() bool {
	return w.EndedAt == nil
}

type Lift struct {
	ID        int       `json:"id"`
	WorkoutID int       `json:"workoutId"`
	UserID    int       `json:"userId"`
	Exercise  string    `json:"exercise"`
	Weight    float64   `json:"weight"`
	Reps      int       `json:"reps"`
	RPE       *float64  `json:"rpe,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (l Lift) Validate() error {
	switch {
	case l.WorkoutID <= 0:
		return errors.Join(ErrInvalidLiftInput, errors.New("workout id missing"))
	case l.Exercise == "":
		return errors.Join(ErrInvalidLiftInput, errors.New("exercise empty"))
	case l.Weight < 0:
		return errors.Join(ErrInvalidLiftInput, errors.New("negative weight"))
	case l.Reps <= 0:
		return errors.Join(ErrInvalidLiftInput, errors.New("reps must be positive"))
	case l.RPE != nil && (*l.RPE < 0 || *l.RPE > 10):
		return errors.Join(ErrInvalidLiftInput, errors.New("rpe out of range"))
	}
	return nil
}

type PersonalRecord struct {
	ID           int       `json:"id"`
	UserID       int       `json:"userId"`
	Exercise     string    `json:"exercise"`
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	Estimated1RM int       `json:"estimated1RM"`
	LiftID       *int      `json:"liftId,omitempty"`
	AchievedAt   time.Time `json:"achievedAt"`
}
