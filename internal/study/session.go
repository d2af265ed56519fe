package study

import (
	"errors"
	"time"
)

const (
	Domain = "study"
	// sessions shorter than this are dropped when ended with deleteIfEmpty
	minSessionDuration = time.Minute
)

// MsgSessionGone is the 404 body when the study session is missing or already ended.
const MsgSessionGone = "study session not found or already ended"

var (
	ErrSessionNotFound = errors.New("study session not found")
	ErrBucketNotFound  = errors.New("bucket not found")
	ErrInvalidBucket   = errors.New("invalid bucket")
)

type Session struct {
	ID              int        `json:"id"`
	UserID          int        `json:"userId"`
	BucketID        *int       `json:"bucketId,omitempty"`
	Notes           string     `json:"notes"`
	StartedAt       time.Time  `json:"startedAt"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
}

func (s *Session) IsActive() bool {
	return s.EndedAt == nil
}

// DurationMinutes returns whole minutes between start and end, never negative.
func DurationMinutes(startedAt, endedAt time.Time) int {
	d := endedAt.Sub(startedAt)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

type Bucket struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

type BucketTotal struct {
	BucketID     *int   `json:"bucketId"`
	BucketName   string `json:"bucketName"`
	Sessions     int    `json:"sessions"`
	TotalMinutes int    `json:"totalMinutes"`
}
