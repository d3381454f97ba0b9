package verification

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSessionTTL is how long an untouched session survives before the
// janitor evicts it.
const DefaultSessionTTL = 30 * time.Minute

// Manager owns the lifetime of verification sessions. Sessions are scoped
// resources: acquired when the wizard enters the phone step, released on
// completion, abandonment or idle eviction.
type Manager struct {
	provider ChallengeProvider
	policy   CountryPolicy
	opts     Options
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
	stop     chan struct{}
	stopOnce sync.Once
}

// NewManager creates a session manager and starts its eviction janitor.
func NewManager(provider ChallengeProvider, policy CountryPolicy, opts Options) *Manager {
	m := &Manager{
		provider: provider,
		policy:   policy,
		opts:     opts.withDefaults(),
		ttl:      DefaultSessionTTL,
		sessions: make(map[string]*Session),
		stop:     make(chan struct{}),
	}
	go m.janitor()
	return m
}

// Open creates a fresh Idle session and returns it.
func (m *Manager) Open() *Session {
	session := NewSession(uuid.New().String(), m.provider, m.policy, m.opts)
	m.mu.Lock()
	m.sessions[session.ID()] = session
	m.mu.Unlock()
	return session
}

// Get returns the session for id, or ErrSessionExpired if it is gone.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionExpired
	}
	return session, nil
}

// Close discards a session. Safe to call for unknown ids.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Shutdown stops the eviction janitor.
func (m *Manager) Shutdown() {
	m.stopOnce.Do(func() { close(m.stop) })
}

func (m *Manager) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			cutoff := m.opts.Now().Add(-m.ttl)
			m.mu.Lock()
			for id, session := range m.sessions {
				if session.LastTouched().Before(cutoff) {
					delete(m.sessions, id)
					zap.L().Debug("evicted idle verification session", zap.String("sessionId", id))
				}
			}
			m.mu.Unlock()
		}
	}
}
