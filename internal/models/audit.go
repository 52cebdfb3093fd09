package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WriteAnomaly records a multi-step write whose compensating deletes could
// not be confirmed, leaving orphaned rows behind. Rows in this table are the
// operator follow-up queue; nothing in the service consumes them.
type WriteAnomaly struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Operation  string         `json:"operation" gorm:"size:64;not null;index"` // e.g. question.create
	EntityType string         `json:"entity_type" gorm:"size:50;index"`
	EntityID   string         `json:"entity_id" gorm:"size:36;index"`
	Reason     string         `json:"reason" gorm:"not null;type:text"`
	Detail     datatypes.JSON `json:"detail" gorm:"type:jsonb"` // per-step rollback attempts

	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (WriteAnomaly) TableName() string {
	return "write_anomalies"
}

func (a *WriteAnomaly) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
