package storage

import (
	"errors"
	"fmt"

	"suite46-pickup/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm is a Store over the kv_entries table
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) Get(key string) ([]byte, error) {
	var entry models.KVEntry
	err := g.db.Where("kv_key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(entry.Value), nil
}

func (g *Gorm) Set(key string, value []byte) error {
	entry := models.KVEntry{Key: key, Value: string(value)}
	err := g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (g *Gorm) Remove(key string) error {
	if err := g.db.Where("kv_key = ?", key).Delete(&models.KVEntry{}).Error; err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}
