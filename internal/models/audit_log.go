package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog records a single successful mutation against any resource.
type AuditLog struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Entity    string         `json:"entity" gorm:"index"`
	EntityKey string         `json:"entity_key" gorm:"index"`
	Action    string         `json:"action"`
	Details   datatypes.JSON `json:"details"`
	CreatedAt time.Time      `json:"created_at"`
}
