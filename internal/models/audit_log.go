package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EventID   string `gorm:"size:36;uniqueIndex" json:"event_id"`
	Actor     string `gorm:"size:100;index" json:"actor"`
	RequestID string `gorm:"size:36" json:"request_id,omitempty"`
	Action    string `gorm:"size:50;not null;index" json:"action"`

	Entity    string `gorm:"size:50" json:"entity"`
	EntityKey string `gorm:"size:255;index" json:"entity_key"`
	Metadata  string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
