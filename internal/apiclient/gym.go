package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/lifedash/internal/gym"
)

func (c *Client) StartWorkout(ctx context.Context, name string, startedAt time.Time) (*gym.Workout, error) {
	var workout gym.Workout
	if err := c.do(ctx, http.MethodPost, "/gym/workouts/start", gym.StartWorkoutRequest{
		Name:      name,
		StartedAt: startedAt,
	}, &workout); err != nil {
		return nil, err
	}
	return &workout, nil
}

func (c *Client) EndWorkout(ctx context.Context, id int, endedAt time.Time, deleteIfEmpty bool) (*gym.EndWorkoutResponse, error) {
	var resp gym.EndWorkoutResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/gym/workouts/%d/end", id), gym.EndWorkoutRequest{
		EndedAt:       endedAt,
		DeleteIfEmpty: deleteIfEmpty,
	}, &resp); err != nil {
		return nil, resourceNotFound(err, gym.MsgWorkoutGone)
	}
	return &resp, nil
}

// ActiveWorkout returns nil when the user has no open workout.
func (c *Client) ActiveWorkout(ctx context.Context) (*gym.Workout, error) {
	var resp gym.ActiveWorkoutResponse
	if err := c.do(ctx, http.MethodGet, "/gym/workouts/active", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Workout, nil
}

func (c *Client) AddLift(ctx context.Context, lift gym.Lift) (*gym.AddLiftResult, error) {
	var result gym.AddLiftResult
	if err := c.do(ctx, http.MethodPost, "/gym/lifts", lift, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListLifts(ctx context.Context, workoutID int) ([]gym.Lift, error) {
	var lifts []gym.Lift
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/gym/workouts/%d/lifts", workoutID), nil, &lifts); err != nil {
		return nil, err
	}
	return lifts, nil
}

func (c *Client) PersonalRecords(ctx context.Context) ([]gym.PersonalRecord, error) {
	var records []gym.PersonalRecord
	if err := c.do(ctx, http.MethodGet, "/gym/records", nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
