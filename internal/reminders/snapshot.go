package reminders

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/patramworks/patram/internal/models"
)

// Orders older than this never influence a due date; a client whose only
// orders fall outside the window simply counts from now.
const orderWindow = 365 * 24 * time.Hour

type ClientLister interface {
	List(ctx context.Context) ([]*models.Client, error)
}

type OrderLister interface {
	ListSince(ctx context.Context, since time.Time) ([]*models.Order, error)
}

// Snapshot holds the latest consistent clients+orders data set and derives
// reminder rows from it on demand. Every reload is a full replace — partial
// results are never merged. A failed reload keeps the previous data in place
// and records the error, since a stale page beats an empty one.
type Snapshot struct {
	clientSrc ClientLister
	orderSrc  OrderLister
	prefs     *PrefStore
	log       *zap.Logger
	now       func() time.Time

	mu      sync.RWMutex
	clients []*models.Client
	orders  []*models.Order
	gen     uint64
	lastErr string
}

func NewSnapshot(clientSrc ClientLister, orderSrc OrderLister, prefs *PrefStore, log *zap.Logger) *Snapshot {
	return &Snapshot{
		clientSrc: clientSrc,
		orderSrc:  orderSrc,
		prefs:     prefs,
		log:       log,
		now:       time.Now,
	}
}

// begin marks the start of a reload and returns its generation. A reload may
// only publish its results while it is still the newest one; anything started
// later supersedes it.
func (s *Snapshot) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

func (s *Snapshot) superseded(gen uint64) bool {
	return gen != s.gen
}

// Load fetches clients, orders and preferences and replaces the snapshot.
func (s *Snapshot) Load(ctx context.Context) error {
	gen := s.begin()
	since := s.now().Add(-orderWindow)

	clients, err := s.clientSrc.List(ctx)
	if err != nil {
		return s.fail(gen, fmt.Errorf("failed to load clients: %w", err))
	}
	orders, err := s.orderSrc.ListSince(ctx, since)
	if err != nil {
		return s.fail(gen, fmt.Errorf("failed to load orders: %w", err))
	}
	if err := s.prefs.Load(ctx); err != nil {
		return s.fail(gen, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.superseded(gen) {
		s.log.Debug("discarding superseded load", zap.Uint64("gen", gen))
		return nil
	}
	s.clients = clients
	s.orders = orders
	s.lastErr = ""
	return nil
}

// ReloadOrders re-fetches only the orders, for realtime change notifications
// and post-write refreshes.
func (s *Snapshot) ReloadOrders(ctx context.Context) error {
	gen := s.begin()
	orders, err := s.orderSrc.ListSince(ctx, s.now().Add(-orderWindow))
	if err != nil {
		return s.fail(gen, fmt.Errorf("failed to reload orders: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.superseded(gen) {
		s.log.Debug("discarding superseded order reload", zap.Uint64("gen", gen))
		return nil
	}
	s.orders = orders
	s.lastErr = ""
	return nil
}

func (s *Snapshot) fail(gen uint64, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.superseded(gen) {
		s.lastErr = err.Error()
	}
	s.log.Warn("snapshot reload failed", zap.Error(err))
	return err
}

// Rows derives the full reminder row set from the current snapshot.
func (s *Snapshot) Rows() []models.ReminderRow {
	s.mu.RLock()
	clients, orders := s.clients, s.orders
	s.mu.RUnlock()
	return BuildRows(clients, orders, s.prefs, s.now())
}

// LastError returns the message of the most recent failed reload, or "" if
// the last reload succeeded.
func (s *Snapshot) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
