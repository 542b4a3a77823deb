package booking

import (
	"context"
	"sync"
	"time"

	"darimaids/models"
)

type memoryEntry struct {
	session   *models.BookingSession
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. Entries expire after ttl of
// inactivity.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memoryEntry
	inFlight map[string]time.Time
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
		inFlight: make(map[string]time.Time),
		now:      time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (*models.BookingSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if m.now().After(entry.expiresAt) {
		delete(m.sessions, sessionID)
		return nil, ErrSessionNotFound
	}
	return entry.session.Clone(), nil
}

func (m *MemoryStore) Save(_ context.Context, session *models.BookingSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.SessionID] = memoryEntry{
		session:   session.Clone(),
		expiresAt: m.now().Add(m.ttl),
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	delete(m.inFlight, sessionID)
	return nil
}

func (m *MemoryStore) AcquireSubmit(_ context.Context, sessionID string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if until, ok := m.inFlight[sessionID]; ok && now.Before(until) {
		return false, nil
	}
	m.inFlight[sessionID] = now.Add(ttl)
	return true, nil
}

func (m *MemoryStore) ReleaseSubmit(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.inFlight, sessionID)
	return nil
}

// Sweep drops expired sessions and stale in-flight markers.
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for id, entry := range m.sessions {
		if now.After(entry.expiresAt) {
			delete(m.sessions, id)
			removed++
		}
	}
	for id, until := range m.inFlight {
		if !now.Before(until) {
			delete(m.inFlight, id)
		}
	}
	return removed
}

// StartSweeper runs Sweep every interval until ctx is done.
func (m *MemoryStore) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Sweep()
			}
		}
	}()
}

var _ SessionStore = (*MemoryStore)(nil)
