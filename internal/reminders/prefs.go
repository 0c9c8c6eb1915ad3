package reminders

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patramworks/patram/internal/models"
)

// DefaultEveryDays is the cadence used for clients without a stored
// preference.
const DefaultEveryDays = 30

// PrefPersister is the external store behind the preference cache.
// *repository.ReminderPrefRepository satisfies it.
type PrefPersister interface {
	List(ctx context.Context) ([]*models.ReminderPref, error)
	Upsert(ctx context.Context, pref *models.ReminderPref) (*models.ReminderPref, error)
}

// PrefStore caches per-client reminder preferences and writes changes through
// to the external store. The cache only ever takes on server-confirmed rows:
// a failed upsert leaves it untouched.
type PrefStore struct {
	repo PrefPersister

	mu    sync.RWMutex
	cache map[uuid.UUID]*models.ReminderPref
}

func NewPrefStore(repo PrefPersister) *PrefStore {
	return &PrefStore{
		repo:  repo,
		cache: make(map[uuid.UUID]*models.ReminderPref),
	}
}

// Load replaces the cache with all stored preferences.
func (s *PrefStore) Load(ctx context.Context) error {
	prefs, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load reminder preferences: %w", err)
	}

	cache := make(map[uuid.UUID]*models.ReminderPref, len(prefs))
	for _, pref := range prefs {
		cache[pref.ClientID] = pref
	}

	s.mu.Lock()
	s.cache = cache
	s.mu.Unlock()
	return nil
}

// Get returns the cached preference for a client, or the defaults when none
// is stored.
func (s *PrefStore) Get(clientID uuid.UUID) (everyDays int, lastRemindedAt *time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if pref, ok := s.cache[clientID]; ok {
		return pref.EveryDays, pref.LastRemindedAt
	}
	return DefaultEveryDays, nil
}

// Upsert validates and persists a preference. everyDays below 1 is clamped to
// 1. The cache is updated with the row the database returned, so the next
// computation pass sees the confirmed value immediately.
func (s *PrefStore) Upsert(ctx context.Context, clientID uuid.UUID, everyDays int, lastRemindedAt *time.Time) (*models.ReminderPref, error) {
	if everyDays < 1 {
		everyDays = 1
	}

	stored, err := s.repo.Upsert(ctx, &models.ReminderPref{
		ClientID:       clientID,
		EveryDays:      everyDays,
		LastRemindedAt: lastRemindedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert reminder preference: %w", err)
	}

	s.mu.Lock()
	s.cache[stored.ClientID] = stored
	s.mu.Unlock()
	return stored, nil
}
