package gcal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/lifedash/internal/telemetry/tracing"

	"go.uber.org/multierr"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

//go:generate mockgen -source=$GOFILE -destination=calendar_mocks_test.go -package=gcal_test

const (
	allDayLayout = "2006-01-02"
	listPageSize = 250
	maxListPages = 20
)

var (
	// ErrEventGone is returned when the remote event no longer exists.
	ErrEventGone = errors.New("calendar event gone")
	// ErrListTruncated is returned when a listing still has pages after maxListPages.
	ErrListTruncated = errors.New("too many event pages, narrow the window")
)

// MalformedEventError is one remote event that could not be read.
// ListEvents returns it, combined with the others, next to the events it could read.
type MalformedEventError struct {
	EventID string
	Err     error
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed event %s: %s", e.EventID, e.Err)
}

func (e *MalformedEventError) Unwrap() error {
	return e.Err
}

type CalendarAPI interface {
	// ListEvents may return events together with *MalformedEventError values for the items it skipped.
	ListEvents(ctx context.Context, userID int, calendarID string, from, to time.Time) ([]RemoteEvent, error)
	InsertEvent(ctx context.Context, userID int, calendarID string, ev RemoteEvent) (*RemoteEvent, error)
	PatchEvent(ctx context.Context, userID int, calendarID, eventID string, ev RemoteEvent) (*RemoteEvent, error)
	DeleteEvent(ctx context.Context, userID int, calendarID, eventID string) error
}

type userClientSource interface {
	HTTPClient(ctx context.Context, userID int) (*http.Client, error)
}

// GoogleCalendar talks to the Calendar v3 API as a given user, every call going through the limiter.
type GoogleCalendar struct {
	clients  userClientSource
	limiter  *RateLimiter
	endpoint string
}

// NewGoogleCalendar creates the client. Empty endpoint means the public Google API.
func NewGoogleCalendar(clients userClientSource, limiter *RateLimiter, endpoint string) *GoogleCalendar {
	return &GoogleCalendar{
		clients:  clients,
		limiter:  limiter,
		endpoint: endpoint,
	}
}

func (g *GoogleCalendar) service(ctx context.Context, userID int) (*calendar.Service, error) {
	httpClient, err := g.clients.HTTPClient(ctx, userID)
	if err != nil {
		return nil, err
	}
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if g.endpoint != "" {
		opts = append(opts, option.WithEndpoint(g.endpoint))
	}
	srv, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return srv, nil
}

func (g *GoogleCalendar) ListEvents(ctx context.Context, userID int, calendarID string, from, to time.Time) (_ []RemoteEvent, err error) {
	ctx, span := tracing.GlobalSyncTracer.Start(ctx, "gcal.calendar.listEvents")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	srv, err := g.service(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		events    []RemoteEvent
		malformed error
	)
	pageToken := ""
	for page := 0; ; page++ {
		if page == maxListPages {
			return nil, fmt.Errorf("list events: %w", ErrListTruncated)
		}

		var resp *calendar.Events
		err := g.limiter.Do(ctx, PriorityNormal, func(ctx context.Context) error {
			call := srv.Events.List(calendarID).
				TimeMin(from.Format(time.RFC3339)).
				TimeMax(to.Format(time.RFC3339)).
				SingleEvents(true).
				ShowDeleted(false).
				MaxResults(listPageSize).
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			var err error
			resp, err = call.Do()
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}

		for _, item := range resp.Items {
			if item.Status == "cancelled" {
				continue
			}
			ev, err := fromAPIEvent(item)
			if err != nil {
				malformed = multierr.Append(malformed, &MalformedEventError{EventID: item.Id, Err: err})
				continue
			}
			events = append(events, ev)
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	return events, malformed
}

func (g *GoogleCalendar) InsertEvent(ctx context.Context, userID int, calendarID string, ev RemoteEvent) (_ *RemoteEvent, err error) {
	ctx, span := tracing.GlobalSyncTracer.Start(ctx, "gcal.calendar.insertEvent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	srv, err := g.service(ctx, userID)
	if err != nil {
		return nil, err
	}

	var created *calendar.Event
	if err := g.limiter.Do(ctx, PriorityHigh, func(ctx context.Context) error {
		var err error
		created, err = srv.Events.Insert(calendarID, toAPIEvent(ev)).Context(ctx).Do()
		return err
	}); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	result, err := fromAPIEvent(created)
	if err != nil {
		return nil, &MalformedEventError{EventID: created.Id, Err: err}
	}
	return &result, nil
}

func (g *GoogleCalendar) PatchEvent(ctx context.Context, userID int, calendarID, eventID string, ev RemoteEvent) (_ *RemoteEvent, err error) {
	ctx, span := tracing.GlobalSyncTracer.Start(ctx, "gcal.calendar.patchEvent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	srv, err := g.service(ctx, userID)
	if err != nil {
		return nil, err
	}

	var patched *calendar.Event
	if err := g.limiter.Do(ctx, PriorityHigh, func(ctx context.Context) error {
		var err error
		patched, err = srv.Events.Patch(calendarID, eventID, toAPIEvent(ev)).Context(ctx).Do()
		return err
	}); err != nil {
		if isGone(err) {
			return nil, fmt.Errorf("%w: %s", ErrEventGone, eventID)
		}
		return nil, fmt.Errorf("patch event: %w", err)
	}

	result, err := fromAPIEvent(patched)
	if err != nil {
		return nil, &MalformedEventError{EventID: patched.Id, Err: err}
	}
	return &result, nil
}

func (g *GoogleCalendar) DeleteEvent(ctx context.Context, userID int, calendarID, eventID string) (err error) {
	ctx, span := tracing.GlobalSyncTracer.Start(ctx, "gcal.calendar.deleteEvent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	srv, err := g.service(ctx, userID)
	if err != nil {
		return err
	}

	if err := g.limiter.Do(ctx, PriorityHigh, func(ctx context.Context) error {
		return srv.Events.Delete(calendarID, eventID).Context(ctx).Do()
	}); err != nil {
		if isGone(err) {
			return nil
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func isGone(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusGone
	}
	return false
}

func toAPIEvent(ev RemoteEvent) *calendar.Event {
	apiEvent := &calendar.Event{
		Summary:     ev.Title,
		Description: ev.Description,
		Location:    ev.Location,
	}
	if ev.AllDay {
		apiEvent.Start = &calendar.EventDateTime{Date: ev.Start.Format(allDayLayout)}
		apiEvent.End = &calendar.EventDateTime{Date: ev.End.Format(allDayLayout)}
	} else {
		apiEvent.Start = &calendar.EventDateTime{DateTime: ev.Start.Format(time.RFC3339)}
		apiEvent.End = &calendar.EventDateTime{DateTime: ev.End.Format(time.RFC3339)}
	}
	return apiEvent
}

func fromAPIEvent(e *calendar.Event) (RemoteEvent, error) {
	ev := RemoteEvent{
		ID:          e.Id,
		Title:       e.Summary,
		Description: e.Description,
		Location:    e.Location,
	}

	var err error
	ev.Start, ev.AllDay, err = parseEventTime(e.Start)
	if err != nil {
		return RemoteEvent{}, fmt.Errorf("start: %w", err)
	}
	ev.End, _, err = parseEventTime(e.End)
	if err != nil {
		return RemoteEvent{}, fmt.Errorf("end: %w", err)
	}
	if e.Updated != "" {
		ev.Updated, err = time.Parse(time.RFC3339, e.Updated)
		if err != nil {
			return RemoteEvent{}, fmt.Errorf("updated: %w", err)
		}
	}
	return ev, nil
}

func parseEventTime(t *calendar.EventDateTime) (time.Time, bool, error) {
	if t == nil {
		return time.Time{}, false, errors.New("missing time")
	}
	if t.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, t.DateTime)
		return parsed, false, err
	}
	parsed, err := time.Parse(allDayLayout, t.Date)
	return parsed, true, err
}
