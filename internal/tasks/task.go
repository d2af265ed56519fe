package tasks

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusDone       = "done"

	SyncPending = "pending"
	SyncSynced  = "synced"
	SyncError   = "error"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidTask  = errors.New("invalid task")
)

type Task struct {
	ID             int        `json:"id"`
	UserID         int        `json:"userId"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       int        `json:"priority"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	StartTime      *time.Time `json:"startTime,omitempty"`
	EndTime        *time.Time `json:"endTime,omitempty"`
	GCalEventID    *string    `json:"gcalEventId,omitempty"`
	GCalSyncStatus *string    `json:"gcalSyncStatus,omitempty"`
	GCalLastSync   *time.Time `json:"gcalLastSync,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Scheduled reports whether the task has a time slot that can be pushed to a calendar.
func (t *Task) Scheduled() bool {
	return t.StartTime != nil
}

func (t *Task) Validate() error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return fmt.Errorf("%w: title required", ErrInvalidTask)
	}
	if t.Status == "" {
		t.Status = StatusTodo
	}
	switch t.Status {
	case StatusTodo, StatusInProgress, StatusDone:
	default:
		return fmt.Errorf("%w: unknown status [%s]", ErrInvalidTask, t.Status)
	}
	if t.EndTime != nil && t.StartTime == nil {
		return fmt.Errorf("%w: end time without start time", ErrInvalidTask)
	}
	if t.StartTime != nil && t.EndTime != nil && t.EndTime.Before(*t.StartTime) {
		return fmt.Errorf("%w: end time before start time", ErrInvalidTask)
	}
	return nil
}

// SlotEnd returns the end of the task time slot, one hour after start when no end is set.
func (t *Task) SlotEnd() time.Time {
	if t.EndTime != nil {
		return *t.EndTime
	}
	if t.StartTime == nil {
		return time.Time{}
	}
	return t.StartTime.Add(time.Hour)
}
