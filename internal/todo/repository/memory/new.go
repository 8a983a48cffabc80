package memory

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"todo-list/internal/todo/repository"
	"todo-list/pkg/log"
)

const (
	DefaultMaxSessions = 10000
	DefaultTTL         = 24 * time.Hour
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	Logger           log.Logger
	MaxSessions      int
	TTL              time.Duration
	MaxNotifications int
	Now              func() time.Time
}

func (c *RepositoryConfig) defaults() {
	if c.Logger == nil {
		c.Logger = log.NewNop()
	}
	if c.MaxSessions <= 0 {
		c.MaxSessions = DefaultMaxSessions
	}
	if c.TTL <= 0 {
		c.TTL = DefaultTTL
	}
	if c.Now == nil {
		c.Now = time.Now
	}
}

// Repository keeps sessions in an expiring LRU. Nothing survives a restart.
type Repository struct {
	sessions  *expirable.LRU[string, *repository.Session]
	mu        sync.Mutex
	l         log.Logger
	maxQueued int
	now       func() time.Time

	// deleting holds ids being removed by DeleteSession, so onEvict can tell
	// them apart from capacity and TTL evictions.
	deletingMu sync.Mutex
	deleting   map[string]struct{}
}

// New creates a new memory repository.
func New(cfg RepositoryConfig) *Repository {
	cfg.defaults()

	r := &Repository{
		l:         cfg.Logger,
		maxQueued: cfg.MaxNotifications,
		now:       cfg.Now,
		deleting:  map[string]struct{}{},
	}
	r.sessions = expirable.NewLRU[string, *repository.Session](cfg.MaxSessions, r.onEvict, cfg.TTL)

	return r
}

func (r *Repository) onEvict(id string, _ *repository.Session) {
	r.deletingMu.Lock()
	_, deleted := r.deleting[id]
	r.deletingMu.Unlock()
	if deleted {
		return
	}
	r.l.Debugf(context.Background(), "repository.memory: session %s evicted", id)
}

var _ repository.Repository = (*Repository)(nil)
