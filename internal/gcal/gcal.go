package gcal

import (
	"errors"
	"time"
)

const DefaultCalendarID = "primary"

var (
	ErrNotConnected   = errors.New("google calendar not connected")
	ErrInvalidState   = errors.New("invalid oauth state")
	ErrNoRefreshToken = errors.New("no refresh token granted")
)

// Credentials is the stored OAuth token pair of a user.
type Credentials struct {
	UserID       int        `json:"userId"`
	AccessToken  string     `json:"-"`
	RefreshToken string     `json:"-"`
	TokenExpiry  time.Time  `json:"tokenExpiry"`
	CalendarID   string     `json:"calendarId"`
	SyncEnabled  bool       `json:"syncEnabled"`
	LastSyncAt   *time.Time `json:"lastSyncAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// RemoteEvent is a calendar event as seen on the Google side.
type RemoteEvent struct {
	ID          string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	AllDay      bool
	Updated     time.Time
}

// CachedEvent is the local mirror of a remote event. IsDeleted marks a tombstone.
type CachedEvent struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	GCalEventID string    `json:"gcalEventId"`
	CalendarID  string    `json:"calendarId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	AllDay      bool      `json:"allDay"`
	TaskID      *int      `json:"taskId,omitempty"`
	LastSynced  time.Time `json:"lastSynced"`
	IsDeleted   bool      `json:"isDeleted"`
}

// cachedFromRemote builds the cache row of a remote event, synced at the later of now and the remote update.
func cachedFromRemote(userID int, calendarID string, ev RemoteEvent, now time.Time) CachedEvent {
	lastSynced := now
	if ev.Updated.After(lastSynced) {
		lastSynced = ev.Updated
	}
	return CachedEvent{
		UserID:      userID,
		GCalEventID: ev.ID,
		CalendarID:  calendarID,
		Title:       ev.Title,
		Description: ev.Description,
		Location:    ev.Location,
		StartTime:   ev.Start,
		EndTime:     ev.End,
		AllDay:      ev.AllDay,
		LastSynced:  lastSynced,
	}
}

// SyncResult counts what one sync run changed. Per item failures land in Errors.
type SyncResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Deleted int      `json:"deleted"`
	Pushed  int      `json:"pushed"`
	Errors  []string `json:"errors"`
}

func (r *SyncResult) addError(err error) {
	r.Errors = append(r.Errors, err.Error())
}
