package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WebhookConfiguration is a registration of an external endpoint that
// receives signed purchase event deliveries.
type WebhookConfiguration struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	URL          string        `gorm:"type:text;not null" json:"url"`
	SignatureKey string        `gorm:"type:text;not null" json:"-"`
	Status       WebhookStatus `gorm:"type:text;not null" json:"status"`
	LastUpdated  time.Time     `gorm:"not null" json:"last_updated"`

	// Gateway event names this registration subscribes to.
	Events datatypes.JSONSlice[string] `json:"events"`
}

func (WebhookConfiguration) TableName() string { return "webhook_configurations" }
