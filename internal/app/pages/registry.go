package pages

import (
	"context"
	"sync"
	"time"

	"clinic-portal/internal/pkg/constvars"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type slot struct {
	mu       sync.Mutex
	page     Page
	lastUsed time.Time
}

// Registry keeps the one mounted page of every browser session in memory.
type Registry struct {
	mu    sync.Mutex
	slots map[string]*slot
	now   func() time.Time
	log   *zap.Logger
}

func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		slots: make(map[string]*slot),
		now:   time.Now,
		log:   logger,
	}
}

func (r *Registry) slot(sessionID string) *slot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[sessionID]
	if !ok {
		s = &slot{}
		r.slots[sessionID] = s
	}
	// A slot counts as used from the moment a request asks for it, so a
	// sweep cannot drop it while its first fetch is still running.
	s.lastUsed = r.now()
	return s
}

func (r *Registry) touch(s *slot) {
	r.mu.Lock()
	s.lastUsed = r.now()
	r.mu.Unlock()
}

// Mount replaces whatever the session had mounted with page, runs its mount
// fetch and then hands it to fn.
func Mount[P Page](ctx context.Context, r *Registry, sessionID string, page P, fn func(P)) {
	s := r.slot(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.page = page
	page.Mount(ctx)
	r.touch(s)
	fn(page)
}

// Use hands the session's mounted page to fn when it is a P. Otherwise a page
// built by fresh is mounted first.
func Use[P Page](ctx context.Context, r *Registry, sessionID string, fresh func() P, fn func(P)) {
	s := r.slot(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	page, ok := s.page.(P)
	if !ok {
		page = fresh()
		s.page = page
		page.Mount(ctx)
	}
	r.touch(s)
	fn(page)
}

// Mounted returns the name of the session's mounted page, if any.
func (r *Registry) Mounted(sessionID string) (string, bool) {
	r.mu.Lock()
	s, ok := r.slots[sessionID]
	r.mu.Unlock()
	if !ok {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.page == nil {
		return "", false
	}
	return s.page.Name(), true
}

// Unmount forgets every page of the session. A request still holding the
// session's page finishes on its own copy.
func (r *Registry) Unmount(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, sessionID)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

// Sweep unmounts the sessions idle for longer than maxIdle and reports how
// many were dropped.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	dropped := 0
	for sessionID, s := range r.slots {
		if s.lastUsed.Before(cutoff) {
			delete(r.slots, sessionID)
			dropped++
		}
	}
	return dropped
}

// StartSweeper schedules Sweep every interval. The schedule stops, waiting
// for a running sweep, once ctx is done.
func (r *Registry) StartSweeper(ctx context.Context, interval, maxIdle time.Duration) error {
	c := cron.New()
	_, err := c.AddFunc("@every "+interval.String(), func() {
		if dropped := r.Sweep(maxIdle); dropped > 0 {
			r.log.Info("Registry.Sweep unmounted idle sessions",
				zap.Int(constvars.LoggingCountKey, dropped),
			)
		}
	})
	if err != nil {
		return err
	}
	c.Start()

	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		r.log.Info("Registry sweeper stopped")
	}()
	return nil
}
