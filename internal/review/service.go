package review

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/lifedash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=review_test

type reviewRepo interface {
	UpsertReview(ctx context.Context, review Review) (*Review, error)
	UpsertScreenTime(ctx context.Context, userID int, date string, minutes int) error
	GetReview(ctx context.Context, userID int, date string) (*Review, error)
	ListReviews(ctx context.Context, userID int, from, to string) ([]Review, error)
}

type Service struct {
	repo reviewRepo
}

func NewService(repo reviewRepo) *Service {
	return &Service{
		repo: repo,
	}
}

// Submit upserts the review. Screen time, when present, is mirrored into its own table
// afterwards; a failed mirror write leaves the review in place and reports ScreenTimeSaved=false.
func (s *Service) Submit(ctx context.Context, review Review) (*SubmitResult, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.review.submit")
	defer span.End()

	if err := review.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.repo.UpsertReview(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("upsert review: %w", err)
	}

	result := &SubmitResult{Review: saved}
	if review.ScreenTimeMinutes == nil {
		return result, nil
	}

	if err := s.repo.UpsertScreenTime(ctx, review.UserID, review.Date, *review.ScreenTimeMinutes); err != nil {
		log.Errorf("review %s for user %d: mirror screen time: %s", review.Date, review.UserID, err)
		span.RecordError(err)
		return result, nil
	}
	result.ScreenTimeSaved = true

	return result, nil
}

func (s *Service) Get(ctx context.Context, userID int, date string) (*Review, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidReview)
	}
	return s.repo.GetReview(ctx, userID, date)
}

func (s *Service) List(ctx context.Context, userID int, from, to time.Time) ([]Review, error) {
	return s.repo.ListReviews(ctx, userID, from.Format(DateLayout), to.Format(DateLayout))
}
