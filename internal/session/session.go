// Package session owns the lifetime of the in-memory stores. Every API
// session gets its own freshly seeded store, so two browsers never see
// each other's data; idle sessions are pruned after a TTL.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"stayops-backend/internal/config"
	"stayops-backend/internal/logger"
	"stayops-backend/internal/repository/memory"
	"stayops-backend/internal/seed"
	"stayops-backend/internal/service"
)

// Services bundles the per-session service graph wired over one store.
type Services struct {
	Users      service.UserService
	Properties service.PropertyService
	Bookings   service.BookingService
	Expenses   service.ExpenseService
	Payouts    service.PayoutService
}

type Session struct {
	ID         uuid.UUID
	Store      *memory.Store
	Services   *Services
	CreatedAt  time.Time
	LastActive time.Time
}

type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	shares   config.RevenueConfig
	seed     bool
}

func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      time.Duration(cfg.Session.TTLMinutes) * time.Minute,
		shares:   cfg.Revenue,
		seed:     cfg.Seed.Enabled,
	}
}

// Create builds a new session with its own store and service graph.
func (m *Manager) Create(ctx context.Context) (*Session, error) {
	store := memory.NewStore()
	if m.seed {
		if err := seed.Apply(ctx, store); err != nil {
			return nil, err
		}
	}

	expenseSvc := service.NewExpenseService(store.ExpenseRepository, store.BookingRepository)
	now := time.Now()
	sess := &Session{
		ID:    uuid.New(),
		Store: store,
		Services: &Services{
			Users:      service.NewUserService(store.UserRepository),
			Properties: service.NewPropertyService(store.PropertyRepository, store.UserRepository),
			Bookings:   service.NewBookingService(store.BookingRepository, store.PropertyRepository),
			Expenses:   expenseSvc,
			Payouts:    service.NewPayoutService(store.BookingRepository, store.PropertyRepository, expenseSvc, m.shares),
		},
		CreatedAt:  now,
		LastActive: now,
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	logger.Debug("Session created", "session_id", sess.ID)
	return sess, nil
}

// Get looks up a session by token and marks it active.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	sess.LastActive = time.Now()
	return sess, true
}

// Resolve returns the session for the given token, or a fresh one when
// the token is empty, malformed or expired from the map.
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, bool, error) {
	if token != "" {
		if id, err := uuid.Parse(token); err == nil {
			if sess, ok := m.Get(id); ok {
				return sess, false, nil
			}
		}
	}
	sess, err := m.Create(ctx)
	if err != nil {
		return nil, false, err
	}
	return sess, true, nil
}

// Prune drops sessions idle past the TTL and returns how many went.
func (m *Manager) Prune(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for id, sess := range m.sessions {
		if now.Sub(sess.LastActive) > m.ttl {
			delete(m.sessions, id)
			count++
		}
	}
	return count
}

// Range calls fn for each live session. Used by the scheduled jobs.
func (m *Manager) Range(fn func(*Session)) {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, sess := range m.sessions {
		sessions = append(sessions, sess)
	}
	m.mu.Unlock()

	for _, sess := range sessions {
		fn(sess)
	}
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
