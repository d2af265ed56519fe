package tasks

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=tasks_test

type tasksRepo interface {
	Add(ctx context.Context, task Task) (*Task, error)
	Update(ctx context.Context, task Task) (*Task, error)
	Get(ctx context.Context, userID, id int) (*Task, error)
	List(ctx context.Context, userID int, status string) ([]Task, error)
	Delete(ctx context.Context, userID, id int) error
	ListPendingSync(ctx context.Context, userID int) ([]Task, error)
	MarkSynced(ctx context.Context, userID, id int, eventID string, syncedAt time.Time) error
	MarkSyncError(ctx context.Context, userID, id int) error
}

type Service struct {
	repo tasksRepo
}

func NewService(repo tasksRepo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Add(ctx context.Context, task Task) (*Task, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}
	added, err := s.repo.Add(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}
	return added, nil
}

func (s *Service) Update(ctx context.Context, task Task) (*Task, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("update task %d: %w", task.ID, err)
	}
	return updated, nil
}

func (s *Service) Get(ctx context.Context, userID, id int) (*Task, error) {
	return s.repo.Get(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID int, status string) ([]Task, error) {
	switch status {
	case "", StatusTodo, StatusInProgress, StatusDone:
	default:
		return nil, fmt.Errorf("%w: unknown status [%s]", ErrInvalidTask, status)
	}
	return s.repo.List(ctx, userID, status)
}

func (s *Service) Delete(ctx context.Context, userID, id int) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) ListPendingSync(ctx context.Context, userID int) ([]Task, error) {
	return s.repo.ListPendingSync(ctx, userID)
}

func (s *Service) MarkSynced(ctx context.Context, userID, id int, eventID string, syncedAt time.Time) error {
	return s.repo.MarkSynced(ctx, userID, id, eventID, syncedAt)
}

func (s *Service) MarkSyncError(ctx context.Context, userID, id int) error {
	return s.repo.MarkSyncError(ctx, userID, id)
}
