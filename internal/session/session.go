// Package session keeps resume drafts in memory while they are being edited.
package session

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/types"
)

// ErrNotFound is returned for an unknown or expired draft ID.
var ErrNotFound = errors.New("draft not found")

// Draft is a snapshot of one draft. Preview is always derived from Resume
// as it was after the most recent write.
type Draft struct {
	ID        string           `json:"id"`
	Resume    types.Resume     `json:"resume"`
	Preview   preview.Document `json:"preview"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// EditError reports which edit of a batch failed. None of the batch is applied.
type EditError struct {
	Index int
	Op    editor.Op
	Cause error
}

func (e *EditError) Error() string {
	return fmt.Sprintf("edit %d (%s): %v", e.Index, e.Op, e.Cause)
}

func (e *EditError) Unwrap() error {
	return e.Cause
}

// Config holds session manager settings.
type Config struct {
	// TTL is how long a draft may sit idle before it is swept. Zero keeps drafts forever.
	TTL time.Duration
	// SweepInterval is how often expired drafts are removed. Defaults to TTL/4.
	SweepInterval time.Duration
}

// Manager holds drafts keyed by ID. It is safe for concurrent use; writes
// to one draft are serialized.
type Manager struct {
	mu     sync.RWMutex
	drafts map[string]*Draft
	ttl    time.Duration
	now    func() time.Time

	sweepTicker *time.Ticker
	sweepStop   chan struct{}
	stopOnce    sync.Once
}

// NewManager creates a manager and starts its sweeper when a TTL is set.
func NewManager(cfg Config) *Manager {
	m := &Manager{
		drafts: make(map[string]*Draft),
		ttl:    cfg.TTL,
		now:    time.Now,
	}

	if cfg.TTL > 0 {
		interval := cfg.SweepInterval
		if interval <= 0 {
			interval = cfg.TTL / 4
		}
		m.sweepTicker = time.NewTicker(interval)
		m.sweepStop = make(chan struct{})
		go m.sweepLoop()
	}

	return m
}

// Create opens a new draft. When initial is nil the draft starts as an
// empty resume of the given variant.
func (m *Manager) Create(variant types.Variant, initial *types.Resume) Draft {
	var r types.Resume
	if initial != nil {
		r = *initial
		if r.Variant == "" {
			r.Variant = variant
		}
		r = r.Normalize()
	} else {
		r = types.NewResume(variant)
	}

	now := m.now()
	d := &Draft{
		ID:        uuid.New().String(),
		CreatedAt: now,
	}
	d.set(r, now)

	m.mu.Lock()
	m.drafts[d.ID] = d
	m.mu.Unlock()

	log.Printf("[session] created draft %s (%s)", d.ID, r.Variant)
	return *d
}

// Get returns the current snapshot of a draft.
func (m *Manager) Get(id string) (Draft, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.drafts[id]
	if !ok {
		return Draft{}, ErrNotFound
	}
	return *d, nil
}

// Apply runs edits against a draft in order. If any edit fails the draft
// is left unchanged and the failure is returned as *EditError.
func (m *Manager) Apply(id string, edits ...editor.Edit) (Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.drafts[id]
	if !ok {
		return Draft{}, ErrNotFound
	}

	r := d.Resume
	for i, e := range edits {
		next, err := editor.Apply(r, e)
		if err != nil {
			return Draft{}, &EditError{Index: i, Op: e.Op, Cause: err}
		}
		r = next
	}

	d.set(r, m.now())
	return *d, nil
}

// Replace swaps the whole resume of a draft. The variant of the stored
// draft is kept when r does not name one.
func (m *Manager) Replace(id string, r types.Resume) (Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.drafts[id]
	if !ok {
		return Draft{}, ErrNotFound
	}
	if r.Variant == "" {
		r.Variant = d.Resume.Variant
	}

	d.set(r.Normalize(), m.now())
	return *d, nil
}

// Delete removes a draft.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.drafts[id]; !ok {
		return ErrNotFound
	}
	delete(m.drafts, id)
	return nil
}

// Len returns the number of live drafts.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.drafts)
}

// Sweep removes drafts idle for longer than the TTL and returns how many
// were removed.
func (m *Manager) Sweep() int {
	if m.ttl <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, d := range m.drafts {
		if d.UpdatedAt.Before(cutoff) {
			delete(m.drafts, id)
			removed++
		}
	}
	if removed > 0 {
		log.Printf("[session] swept %d expired draft(s)", removed)
	}
	return removed
}

func (m *Manager) sweepLoop() {
	for {
		select {
		case <-m.sweepTicker.C:
			m.Sweep()
		case <-m.sweepStop:
			return
		}
	}
}

// Stop stops the sweeper goroutine. It is safe to call more than once.
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		if m.sweepTicker != nil {
			m.sweepTicker.Stop()
		}
		if m.sweepStop != nil {
			close(m.sweepStop)
		}
	})
}

// set stores r and recomputes the preview.
func (d *Draft) set(r types.Resume, now time.Time) {
	d.Resume = r
	d.Preview = preview.Build(r)
	d.UpdatedAt = now
}
