// Package resources stores the learner's saved video and reference links.
package resources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/factorymaster/mission-control/backend/models"
	"github.com/factorymaster/mission-control/backend/storage"
)

const StorageKey = "resourceLinks"

type Store struct {
	kv     storage.KV
	logger *log.Logger
}

func NewStore(kv storage.KV, logger *log.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// Load returns the saved links. Missing or unreadable data gives empty links.
func (s *Store) Load(ctx context.Context) models.ResourceLinks {
	var links models.ResourceLinks
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Printf("resources: reading links: %v", err)
		}
		return links
	}
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		s.logger.Printf("resources: ignoring malformed links: %v", err)
		return models.ResourceLinks{}
	}
	return links
}

// Save replaces all six links at once.
func (s *Store) Save(ctx context.Context, links models.ResourceLinks) error {
	data, err := json.Marshal(links)
	if err != nil {
		return fmt.Errorf("encoding links: %w", err)
	}
	if err := s.kv.Put(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("saving links: %w", err)
	}
	return nil
}
