package session

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=session_mocks_test.go -package=session_test

type State string

const (
	StateIdle       State = "idle"
	StateStarting   State = "starting"
	StateActive     State = "active"
	StateEnding     State = "ending"
	StateRecovering State = "recovering"

	DefaultMaxAge = 12 * time.Hour
)

var (
	ErrAlreadyActive       = errors.New("session already active in local state")
	ErrOperationInProgress = errors.New("session operation in progress")
	// ErrSessionGone means the server has no open session with that id: already ended or deleted.
	ErrSessionGone = errors.New("session gone")
)

// Session is an open gym or study session, as known to the client.
type Session struct {
	ID        int       `json:"id"`
	Domain    string    `json:"domain"`
	Name      string    `json:"name,omitempty"`
	BucketID  *int      `json:"bucketId,omitempty"`
	StartedAt time.Time `json:"startedAt"`
}

func (s Session) Elapsed(now time.Time) time.Duration {
	if now.Before(s.StartedAt) {
		return 0
	}
	return now.Sub(s.StartedAt)
}

type StartData struct {
	Name      string
	BucketID  *int
	StartedAt time.Time
}

type EndResult struct {
	ID    int  `json:"id"`
	Saved bool `json:"saved"`
}

// LocalRecord is what gets persisted locally for the open session of a domain.
type LocalRecord struct {
	Domain  string    `json:"domain"`
	Session Session   `json:"session"`
	SavedAt time.Time `json:"savedAt"`
}

// Tracker talks to the server about the sessions of one domain.
type Tracker interface {
	Domain() string
	// MaxAge is how old a local record may be before recovery discards it.
	MaxAge() time.Duration
	Start(ctx context.Context, data StartData) (*Session, error)
	// End returns ErrSessionGone when the server has no such open session.
	End(ctx context.Context, id int, endedAt time.Time) (bool, error)
	// Active returns nil, nil when there is no open session.
	Active(ctx context.Context) (*Session, error)
}

type LocalStore interface {
	// Load returns nil, nil when nothing is stored for the domain.
	Load(ctx context.Context, domain string) (*LocalRecord, error)
	Save(ctx context.Context, record LocalRecord) error
	Clear(ctx context.Context, domain string) error
}
