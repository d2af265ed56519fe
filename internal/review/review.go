package review

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	minRating  = 1
	maxRating  = 10
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrInvalidReview  = errors.New("invalid review")
)

// Review is a daily context review, one per user and date.
type Review struct {
	UserID            int       `json:"userId"`
	Date              string    `json:"date"`
	Mood              *int      `json:"mood,omitempty"`
	Energy            *int      `json:"energy,omitempty"`
	Focus             *int      `json:"focus,omitempty"`
	Notes             string    `json:"notes"`
	Wins              string    `json:"wins"`
	Improvements      string    `json:"improvements"`
	ScreenTimeMinutes *int      `json:"screenTimeMinutes,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (r *Review) Validate() error {
	if r.Date == "" {
		return fmt.Errorf("%w: date required", ErrInvalidReview)
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidReview)
	}
	ratings := []struct {
		name  string
		value *int
	}{
		{"mood", r.Mood},
		{"energy", r.Energy},
		{"focus", r.Focus},
	}
	for _, rating := range ratings {
		if rating.value != nil && (*rating.value < minRating || *rating.value > maxRating) {
			return fmt.Errorf("%w: %s must be between %d and %d", ErrInvalidReview, rating.name, minRating, maxRating)
		}
	}
	if r.ScreenTimeMinutes != nil && *r.ScreenTimeMinutes < 0 {
		return fmt.Errorf("%w: screen time cannot be negative", ErrInvalidReview)
	}
	return nil
}

type SubmitResult struct {
	Review          *Review `json:"review"`
	ScreenTimeSaved bool    `json:"screenTimeSaved"`
}
