package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/factorymaster/mission-control/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormKV keeps blobs in the kv_entries table.
type GormKV struct {
	DB *gorm.DB
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{DB: db}
}

func (g *GormKV) Get(ctx context.Context, key string) (string, error) {
	var entry models.KVEntry
	err := g.DB.WithContext(ctx).Where(&models.KVEntry{Key: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", key, err)
	}
	return entry.Value, nil
}

func (g *GormKV) Put(ctx context.Context, key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	err := g.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
