package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditEvent is one entry of the audit trail. Persisted through gorm when an
// audit database is configured, otherwise kept in memory only.
type AuditEvent struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	Action    string         `gorm:"size:128;index" json:"action"`
	Actor     string         `gorm:"size:64" json:"actor"`
	Details   datatypes.JSON `gorm:"column:details" json:"details,omitempty"`
}
