package models

import "time"

// KVEntry backs the durable key-value store
type KVEntry struct {
	Key       string    `gorm:"column:kv_key;primaryKey;size:191"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (KVEntry) TableName() string { return "kv_entries" }
