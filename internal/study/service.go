package study

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/lifedash/internal/telemetry/metrics"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=study_test

type studyRepo interface {
	StartSession(ctx context.Context, userID int, bucketID *int, startedAt time.Time) (*Session, error)
	EndSession(ctx context.Context, userID, id int, endedAt time.Time, deleteIfEmpty bool) (bool, error)
	ActiveSession(ctx context.Context, userID int) (*Session, error)
	UpdateNotes(ctx context.Context, userID, id int, notes string) error
	ListSessions(ctx context.Context, userID int, from, to time.Time) ([]Session, error)
	ListBuckets(ctx context.Context, userID int) ([]Bucket, error)
	AddBucket(ctx context.Context, bucket Bucket) (*Bucket, error)
	DeleteBucket(ctx context.Context, userID, id int) error
	BucketTotals(ctx context.Context, userID int, from, to time.Time) ([]BucketTotal, error)
}

type Service struct {
	repo           studyRepo
	metricsManager *metrics.Manager
	nowFunc        func() time.Time
}

func NewService(repo studyRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
		nowFunc:        time.Now,
	}
}

// StartSession starts a study session. Any session left open is ended first, on the server side.
func (s *Service) StartSession(ctx context.Context, userID int, bucketID *int, startedAt time.Time) (*Session, error) {
	if startedAt.IsZero() {
		startedAt = s.nowFunc()
	}
	session, err := s.repo.StartSession(ctx, userID, bucketID, startedAt)
	if err != nil {
		return nil, fmt.Errorf("start study session: %w", err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterSessionsStarted.WithLabelValues(Domain).Inc()
	}
	return session, nil
}

func (s *Service) EndSession(ctx context.Context, userID, id int, endedAt time.Time, deleteIfEmpty bool) (bool, error) {
	if endedAt.IsZero() {
		endedAt = s.nowFunc()
	}
	saved, err := s.repo.EndSession(ctx, userID, id, endedAt, deleteIfEmpty)
	if err != nil {
		return false, fmt.Errorf("end study session: %w", err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterSessionsEnded.WithLabelValues(Domain, strconv.FormatBool(saved)).Inc()
	}
	return saved, nil
}

func (s *Service) ActiveSession(ctx context.Context, userID int) (*Session, error) {
	return s.repo.ActiveSession(ctx, userID)
}

func (s *Service) UpdateNotes(ctx context.Context, userID, id int, notes string) error {
	return s.repo.UpdateNotes(ctx, userID, id, notes)
}

func (s *Service) ListSessions(ctx context.Context, userID int, from, to time.Time) ([]Session, error) {
	return s.repo.ListSessions(ctx, userID, from, to)
}

func (s *Service) ListBuckets(ctx context.Context, userID int) ([]Bucket, error) {
	return s.repo.ListBuckets(ctx, userID)
}

func (s *Service) AddBucket(ctx context.Context, bucket Bucket) (*Bucket, error) {
	bucket.Name = strings.TrimSpace(bucket.Name)
	if bucket.Name == "" {
		return nil, fmt.Errorf("%w: name empty", ErrInvalidBucket)
	}
	return s.repo.AddBucket(ctx, bucket)
}

func (s *Service) DeleteBucket(ctx context.Context, userID, id int) error {
	return s.repo.DeleteBucket(ctx, userID, id)
}

func (s *Service) BucketTotals(ctx context.Context, userID int, from, to time.Time) ([]BucketTotal, error) {
	return s.repo.BucketTotals(ctx, userID, from, to)
}
