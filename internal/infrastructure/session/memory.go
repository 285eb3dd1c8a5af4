package session

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/fraudlens/console/internal/domain/models"
	"github.com/fraudlens/console/internal/infrastructure/monitoring"
)

// memoryStore keeps sessions in-process with per-item TTL. Default profile
// for single-instance deployments.
type memoryStore struct {
	cache   *gocache.Cache
	maxTTL  time.Duration
	metrics *monitoring.Metrics
}

// NewMemoryStore builds a go-cache backed store.
func NewMemoryStore(maxTTL time.Duration, metrics *monitoring.Metrics) Store {
	return &memoryStore{
		cache:   gocache.New(maxTTL, 5*time.Minute),
		maxTTL:  maxTTL,
		metrics: metrics,
	}
}

func (m *memoryStore) Create(_ context.Context, token string, user models.SessionUser) (*Session, error) {
	s := newSession(token, user, m.maxTTL)
	m.cache.Set(s.ID, s, time.Until(s.ExpiresAt))
	m.metrics.SessionOpened()
	return s, nil
}

func (m *memoryStore) Get(_ context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, errSessionGone
	}
	val, ok := m.cache.Get(id)
	if !ok {
		return nil, errSessionGone
	}
	s, ok := val.(*Session)
	if !ok {
		return nil, errSessionGone
	}
	return s, nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	if _, ok := m.cache.Get(id); ok {
		m.cache.Delete(id)
		m.metrics.SessionClosed()
	}
	return nil
}
