// Package model holds the GORM persistence models for the local state store.
package model

import "time"

// StateModel mirrors the 'state_entries' table: one row per persisted client
// state key (cart snapshot, delivery details, credential token, profile).
// Values are JSON documents with no schema versioning; the last writer wins.
type StateModel struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StateModel) TableName() string {
	return "state_entries"
}
