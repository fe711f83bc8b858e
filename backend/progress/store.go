package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/factorymaster/mission-control/backend/models"
	"github.com/factorymaster/mission-control/backend/storage"
)

// StorageKey is the blob the completion set is saved under.
const StorageKey = "factory_app_progress"

// ErrPersistenceRead marks saved progress that could not be decoded.
// It is only logged; the store starts empty instead.
var ErrPersistenceRead = errors.New("persisted progress unreadable")

// Store owns the completion set of one learner. All mutation goes through
// Toggle and Reset, and every mutation writes the whole set back.
type Store struct {
	kv     storage.KV
	logger *log.Logger

	// writeMu serialises mutate-and-persist so writes land in update order.
	writeMu sync.Mutex

	mu        sync.Mutex
	completed models.CompletionSet
}

func NewStore(kv storage.KV, logger *log.Logger) *Store {
	return &Store{kv: kv, logger: logger, completed: models.NewCompletionSet()}
}

// Load reads the saved set and makes it the current state. Missing or
// malformed data yields an empty set.
func (s *Store) Load(ctx context.Context) models.CompletionSet {
	set, err := s.read(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Printf("progress: starting empty: %v", err)
		}
		set = models.NewCompletionSet()
	}

	s.mu.Lock()
	s.completed = set
	s.mu.Unlock()
	return set.Clone()
}

func (s *Store) read(ctx context.Context) (models.CompletionSet, error) {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return models.CompletionSet{}, err
	}
	set, skipped, err := models.DecodeCompletionSet([]byte(raw))
	if err != nil {
		return models.CompletionSet{}, fmt.Errorf("%w: %v", ErrPersistenceRead, err)
	}
	if len(skipped) > 0 {
		s.logger.Printf("progress: ignoring %d malformed ids: %v", len(skipped), skipped)
	}
	return set, nil
}

// Toggle flips id and persists the resulting set.
func (s *Store) Toggle(ctx context.Context, id models.ActivityID) models.CompletionSet {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.completed = s.completed.Toggle(id)
	snapshot := s.completed.Clone()
	s.mu.Unlock()

	s.Persist(ctx, snapshot)
	return snapshot
}

// Reset clears all progress.
func (s *Store) Reset(ctx context.Context) models.CompletionSet {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.completed = models.NewCompletionSet()
	s.mu.Unlock()

	s.Persist(ctx, models.NewCompletionSet())
	return models.NewCompletionSet()
}

// Persist writes the full set. A failed write is logged and otherwise
// ignored: the in-memory set stays authoritative for the session.
func (s *Store) Persist(ctx context.Context, set models.CompletionSet) {
	data, err := json.Marshal(set)
	if err != nil {
		s.logger.Printf("progress: encoding set: %v", err)
		return
	}
	if err := s.kv.Put(ctx, StorageKey, string(data)); err != nil {
		s.logger.Printf("progress: persisting set: %v", err)
	}
}

func (s *Store) Completed() models.CompletionSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed.Clone()
}
