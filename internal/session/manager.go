package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const endRetryWait = 100 * time.Millisecond

// Manager owns the open session of one domain on the client: local state first,
// the server being the source of truth.
type Manager struct {
	tracker Tracker
	store   LocalStore
	nowFunc func() time.Time
	endWait time.Duration

	mu       sync.Mutex
	state    State
	session  *Session
	lastErr  error
	inFlight bool
}

func NewManager(tracker Tracker, store LocalStore) *Manager {
	return &Manager{
		tracker: tracker,
		store:   store,
		nowFunc: time.Now,
		endWait: endRetryWait,
		state:   StateIdle,
	}
}

func (m *Manager) Domain() string {
	return m.tracker.Domain()
}

func (m *Manager) Status() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) IsActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session != nil
}

// Session returns a copy of the tracked session, nil when there is none.
func (m *Manager) Session() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil
	}
	s := *m.session
	return &s
}

func (m *Manager) LastError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// adopt must be called with mu held.
func (m *Manager) adopt(ctx context.Context, s *Session) {
	m.session = s
	m.state = StateActive
	m.saveLocal(ctx, *s)
}

// drop must be called with mu held.
func (m *Manager) drop(ctx context.Context) {
	m.session = nil
	m.state = StateIdle
	m.clearLocal(ctx)
}

func (m *Manager) saveLocal(ctx context.Context, s Session) {
	record := LocalRecord{
		Domain:  m.tracker.Domain(),
		Session: s,
		SavedAt: m.nowFunc(),
	}
	if err := m.store.Save(ctx, record); err != nil {
		log.Warnf("session [%s]: save local state: %s", record.Domain, err)
	}
}

func (m *Manager) clearLocal(ctx context.Context) {
	if err := m.store.Clear(ctx, m.tracker.Domain()); err != nil {
		log.Warnf("session [%s]: clear local state: %s", m.tracker.Domain(), err)
	}
}

// StartSession starts a session on the server, which ends any session still open there.
func (m *Manager) StartSession(ctx context.Context, data StartData) (*Session, error) {
	m.mu.Lock()
	if m.session != nil {
		m.mu.Unlock()
		return nil, ErrAlreadyActive
	}
	if m.inFlight {
		m.mu.Unlock()
		return nil, ErrOperationInProgress
	}
	m.inFlight = true
	m.state = StateStarting
	m.mu.Unlock()

	if data.StartedAt.IsZero() {
		data.StartedAt = m.nowFunc()
	}
	started, err := m.tracker.Start(ctx, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight = false

	if err != nil {
		m.state = StateIdle
		m.lastErr = err
		return nil, fmt.Errorf("start %s session: %w", m.tracker.Domain(), err)
	}

	m.lastErr = nil
	m.adopt(ctx, started)
	log.Debugf("session [%s]: started %d", m.tracker.Domain(), started.ID)

	s := *started
	return &s, nil
}

// EndSession ends the tracked session. Local state is cleared before the server call
// and restored if the call fails; a session the server no longer has counts as ended.
func (m *Manager) EndSession(ctx context.Context) (EndResult, error) {
	m.mu.Lock()
	if m.inFlight {
		m.mu.Unlock()
		select {
		case <-ctx.Done():
			return EndResult{}, ctx.Err()
		case <-time.After(m.endWait):
		}
		m.mu.Lock()
		if m.inFlight {
			m.mu.Unlock()
			return EndResult{Saved: false}, nil
		}
	}

	if m.session == nil {
		m.mu.Unlock()
		return EndResult{Saved: false}, nil
	}

	endedAt := m.nowFunc()
	snapshot := *m.session
	snapshotRecord, err := m.store.Load(ctx, m.tracker.Domain())
	if err != nil {
		log.Warnf("session [%s]: load local state for snapshot: %s", m.tracker.Domain(), err)
	}

	m.inFlight = true
	m.session = nil
	m.state = StateEnding
	m.clearLocal(ctx)
	m.mu.Unlock()

	saved, err := m.tracker.End(ctx, snapshot.ID, endedAt)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight = false

	if err != nil && !errors.Is(err, ErrSessionGone) {
		m.session = &snapshot
		m.state = StateActive
		m.lastErr = err
		if snapshotRecord != nil {
			if err := m.store.Save(ctx, *snapshotRecord); err != nil {
				log.Warnf("session [%s]: restore local state: %s", m.tracker.Domain(), err)
			}
		} else {
			m.saveLocal(ctx, snapshot)
		}
		return EndResult{}, fmt.Errorf("end %s session %d: %w", m.tracker.Domain(), snapshot.ID, err)
	}

	m.state = StateIdle
	m.lastErr = nil
	if err != nil {
		log.Debugf("session [%s]: %d already ended on the server", m.tracker.Domain(), snapshot.ID)
		return EndResult{ID: snapshot.ID, Saved: false}, nil
	}
	return EndResult{ID: snapshot.ID, Saved: saved}, nil
}

// RestoreFromDatabase adopts a server session when nothing is tracked locally.
func (m *Manager) RestoreFromDatabase(ctx context.Context, s *Session) bool {
	if s == nil {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session != nil || m.inFlight {
		return false
	}

	adopted := *s
	m.adopt(ctx, &adopted)
	return true
}

// SyncWithDatabase makes local state follow the server.
func (m *Manager) SyncWithDatabase(ctx context.Context) error {
	m.mu.Lock()
	if m.inFlight {
		m.mu.Unlock()
		return ErrOperationInProgress
	}
	m.inFlight = true
	m.mu.Unlock()

	active, err := m.tracker.Active(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight = false

	if err != nil {
		m.lastErr = err
		return fmt.Errorf("sync %s session: %w", m.tracker.Domain(), err)
	}

	m.lastErr = nil
	if active != nil {
		m.adopt(ctx, active)
	} else {
		m.drop(ctx)
	}
	return nil
}

// Recover reconciles the local record with the server, once, at startup.
// A fresh local record survives a server error; the error is returned and kept.
func (m *Manager) Recover(ctx context.Context) error {
	m.mu.Lock()
	if m.inFlight {
		m.mu.Unlock()
		return ErrOperationInProgress
	}
	m.inFlight = true
	m.state = StateRecovering
	m.mu.Unlock()

	domain := m.tracker.Domain()
	record, err := m.store.Load(ctx, domain)
	if err != nil {
		log.Warnf("session [%s]: unreadable local state, discarding: %s", domain, err)
		record = nil
		m.clearLocal(ctx)
	}

	if record != nil && !m.fresh(record) {
		log.Debugf("session [%s]: discarding stale local session %d", domain, record.Session.ID)
		record = nil
		m.clearLocal(ctx)
	}

	active, err := m.tracker.Active(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inFlight = false

	if err != nil {
		m.lastErr = err
		if record != nil {
			local := record.Session
			m.session = &local
			m.state = StateActive
		} else {
			m.session = nil
			m.state = StateIdle
		}
		return fmt.Errorf("recover %s session: %w", domain, err)
	}

	m.lastErr = nil
	switch {
	case active != nil:
		if record != nil && record.Session.ID != active.ID {
			log.Debugf("session [%s]: server session %d replaces local %d", domain, active.ID, record.Session.ID)
		}
		m.adopt(ctx, active)
	case record != nil:
		log.Debugf("session [%s]: local session %d not open on the server, discarding", domain, record.Session.ID)
		m.drop(ctx)
	default:
		m.session = nil
		m.state = StateIdle
	}
	return nil
}

func (m *Manager) fresh(record *LocalRecord) bool {
	if record.Domain != m.tracker.Domain() || record.Session.Domain != m.tracker.Domain() {
		return false
	}
	return m.nowFunc().Sub(record.SavedAt) <= m.tracker.MaxAge()
}
