package gcal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/lifedash/internal/tasks"
	"github.com/2beens/lifedash/internal/telemetry/metrics"
	"github.com/2beens/lifedash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=syncer_mocks_test.go -package=gcal_test

type syncStore interface {
	GetCredentials(ctx context.Context, userID int) (*Credentials, error)
	ListCachedEvents(ctx context.Context, userID int, from, to time.Time) ([]CachedEvent, error)
	UpdateCachedEvent(ctx context.Context, e CachedEvent) error
	UpsertCachedEvent(ctx context.Context, e CachedEvent) error
	TombstoneCachedEvent(ctx context.Context, userID int, gcalEventID string, at time.Time) error
	SetLastSync(ctx context.Context, userID int, at time.Time) error
	ListSyncEnabledUsers(ctx context.Context) ([]int, error)
}

type pendingTasks interface {
	ListPendingSync(ctx context.Context, userID int) ([]tasks.Task, error)
	MarkSynced(ctx context.Context, userID, id int, eventID string, syncedAt time.Time) error
	MarkSyncError(ctx context.Context, userID, id int) error
}

// Syncer reconciles the remote calendar with the local event cache and pushes pending tasks.
type Syncer struct {
	store          syncStore
	calendar       CalendarAPI
	tasks          pendingTasks
	metricsManager *metrics.Manager
	nowFunc        func() time.Time
}

func NewSyncer(store syncStore, calendarAPI CalendarAPI, pending pendingTasks, metricsManager *metrics.Manager) *Syncer {
	return &Syncer{
		store:          store,
		calendar:       calendarAPI,
		tasks:          pending,
		metricsManager: metricsManager,
		nowFunc:        time.Now,
	}
}

// Sync runs one reconciliation over [from, to]. It never fails as a whole:
// problems, including a missing connection, are reported in SyncResult.Errors.
func (s *Syncer) Sync(ctx context.Context, userID int, from, to time.Time) SyncResult {
	ctx, span := tracing.GlobalSyncTracer.Start(ctx, "gcal.syncer.sync")
	defer span.End()
	span.SetAttributes(attribute.Int("user.id", userID))

	start := time.Now()
	result := SyncResult{Errors: []string{}}
	defer func() {
		span.SetAttributes(
			attribute.Int("sync.created", result.Created),
			attribute.Int("sync.updated", result.Updated),
			attribute.Int("sync.deleted", result.Deleted),
			attribute.Int("sync.pushed", result.Pushed),
			attribute.Int("sync.errors", len(result.Errors)),
		)
		s.observe(result, time.Since(start))
	}()

	creds, err := s.store.GetCredentials(ctx, userID)
	if err != nil {
		result.addError(fmt.Errorf("load credentials: %w", err))
		return result
	}
	calendarID := creds.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	// 1. remote events in the window
	remote, err := s.calendar.ListEvents(ctx, userID, calendarID, from, to)
	skipped, err := skippedEvents(err)
	if err != nil {
		result.addError(fmt.Errorf("list remote events: %w", err))
		return result
	}
	for _, malformed := range skipped {
		result.addError(malformed)
	}

	// 2. local cache in the same window, by remote id
	cached, err := s.store.ListCachedEvents(ctx, userID, from, to)
	if err != nil {
		result.addError(fmt.Errorf("list cached events: %w", err))
		return result
	}
	local := make(map[string]CachedEvent, len(cached))
	for _, c := range cached {
		local[c.GCalEventID] = c
	}

	// 3. diff
	var toCreate, toUpdate []RemoteEvent
	for _, ev := range remote {
		c, ok := local[ev.ID]
		switch {
		case !ok:
			toCreate = append(toCreate, ev)
		case ev.Updated.After(c.LastSynced) || c.IsDeleted:
			toUpdate = append(toUpdate, ev)
		}
		delete(local, ev.ID)
	}

	// 4. what is left was deleted remotely; unreadable events are left alone
	for _, malformed := range skipped {
		delete(local, malformed.EventID)
	}
	var toDelete []CachedEvent
	for _, c := range local {
		if !c.IsDeleted {
			toDelete = append(toDelete, c)
		}
	}

	// 5. apply, one item at a time
	now := s.nowFunc()
	// a new event may already be cached outside the window, so creates upsert
	for _, ev := range toCreate {
		if err := s.store.UpsertCachedEvent(ctx, cachedFromRemote(userID, calendarID, ev, now)); err != nil {
			result.addError(fmt.Errorf("cache event %s: %w", ev.ID, err))
			continue
		}
		result.Created++
	}
	for _, ev := range toUpdate {
		if err := s.store.UpdateCachedEvent(ctx, cachedFromRemote(userID, calendarID, ev, now)); err != nil {
			result.addError(fmt.Errorf("update cached event %s: %w", ev.ID, err))
			continue
		}
		result.Updated++
	}
	for _, c := range toDelete {
		if err := s.store.TombstoneCachedEvent(ctx, userID, c.GCalEventID, now); err != nil {
			result.addError(fmt.Errorf("tombstone cached event %s: %w", c.GCalEventID, err))
			continue
		}
		result.Deleted++
	}

	// 6. push pending tasks
	s.pushTasks(ctx, userID, calendarID, &result)

	// 7. done
	if err := s.store.SetLastSync(ctx, userID, s.nowFunc()); err != nil {
		result.addError(fmt.Errorf("record sync time: %w", err))
	}

	return result
}

// skippedEvents splits a listing error into the events skipped as malformed.
// Any other error is returned as is.
func skippedEvents(err error) ([]*MalformedEventError, error) {
	if err == nil {
		return nil, nil
	}
	var skipped []*MalformedEventError
	for _, e := range multierr.Errors(err) {
		var malformed *MalformedEventError
		if !errors.As(e, &malformed) {
			return nil, err
		}
		skipped = append(skipped, malformed)
	}
	return skipped, nil
}

func (s *Syncer) pushTasks(ctx context.Context, userID int, calendarID string, result *SyncResult) {
	pending, err := s.tasks.ListPendingSync(ctx, userID)
	if err != nil {
		result.addError(fmt.Errorf("list pending tasks: %w", err))
		return
	}

	for _, task := range pending {
		ev := RemoteEvent{
			Title:       task.Title,
			Description: task.Description,
			Start:       *task.StartTime,
			End:         task.SlotEnd(),
		}

		pushed, err := s.pushTask(ctx, userID, calendarID, task, ev)
		if err != nil {
			result.addError(fmt.Errorf("push task %d: %w", task.ID, err))
			if err := s.tasks.MarkSyncError(ctx, userID, task.ID); err != nil {
				log.Errorf("gcal: mark task %d sync error: %s", task.ID, err)
			}
			continue
		}

		now := s.nowFunc()
		if err := s.tasks.MarkSynced(ctx, userID, task.ID, pushed.ID, now); err != nil {
			result.addError(fmt.Errorf("mark task %d synced: %w", task.ID, err))
			continue
		}

		mirror := cachedFromRemote(userID, calendarID, *pushed, now)
		taskID := task.ID
		mirror.TaskID = &taskID
		if err := s.store.UpsertCachedEvent(ctx, mirror); err != nil {
			result.addError(fmt.Errorf("mirror task %d event: %w", task.ID, err))
		}
		result.Pushed++
	}
}

// pushTask creates the remote event of a task, or patches the linked one.
// A linked event deleted on the Google side is created again.
func (s *Syncer) pushTask(ctx context.Context, userID int, calendarID string, task tasks.Task, ev RemoteEvent) (*RemoteEvent, error) {
	if task.GCalEventID != nil && *task.GCalEventID != "" {
		patched, err := s.calendar.PatchEvent(ctx, userID, calendarID, *task.GCalEventID, ev)
		if err == nil {
			return patched, nil
		}
		if !errors.Is(err, ErrEventGone) {
			return nil, err
		}
		log.Debugf("gcal: event of task %d gone remotely, creating again", task.ID)
	}
	return s.calendar.InsertEvent(ctx, userID, calendarID, ev)
}

func (s *Syncer) observe(result SyncResult, took time.Duration) {
	if s.metricsManager == nil {
		return
	}
	s.metricsManager.CounterGCalSyncItems.WithLabelValues("created").Add(float64(result.Created))
	s.metricsManager.CounterGCalSyncItems.WithLabelValues("updated").Add(float64(result.Updated))
	s.metricsManager.CounterGCalSyncItems.WithLabelValues("deleted").Add(float64(result.Deleted))
	s.metricsManager.CounterGCalSyncItems.WithLabelValues("pushed").Add(float64(result.Pushed))
	s.metricsManager.CounterGCalSyncErrors.Add(float64(len(result.Errors)))
	s.metricsManager.HistGCalSyncDuration.Observe(took.Seconds())
}

// SyncAll syncs every user with sync enabled over [now-7d, now+windowDays].
func (s *Syncer) SyncAll(ctx context.Context, windowDays int) {
	userIDs, err := s.store.ListSyncEnabledUsers(ctx)
	if err != nil {
		log.Errorf("gcal: list sync enabled users: %s", err)
		return
	}

	now := s.nowFunc()
	from := now.AddDate(0, 0, -7)
	to := now.AddDate(0, 0, windowDays)
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			return
		}
		result := s.Sync(ctx, userID, from, to)
		log.Debugf(
			"gcal: synced user %d: created %d, updated %d, deleted %d, pushed %d, errors %d",
			userID, result.Created, result.Updated, result.Deleted, result.Pushed, len(result.Errors),
		)
		for _, e := range result.Errors {
			log.Warnf("gcal: sync user %d: %s", userID, e)
		}
	}
}

// RunPeriodic calls SyncAll every interval until ctx is done.
func (s *Syncer) RunPeriodic(ctx context.Context, interval time.Duration, windowDays int) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugln("gcal: periodic sync stopped")
			return
		case <-ticker.C:
			s.SyncAll(ctx, windowDays)
		}
	}
}
