package models

import "time"

// KVEntry is one string-keyed blob. Blobs are always replaced whole.
type KVEntry struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}

type ResourceLinks struct {
	YouTube1 string `json:"youtube1"`
	YouTube2 string `json:"youtube2"`
	YouTube3 string `json:"youtube3"`
	Link1    string `json:"link1"`
	Link2    string `json:"link2"`
	Link3    string `json:"link3"`
}
