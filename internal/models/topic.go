package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Topic is an independent bilingual taxonomy entity.
type Topic struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	NameEN string    `json:"name_en" gorm:"column:name_en;size:255;not null"`
	NameVI string    `json:"name_vi" gorm:"column:name_vi;size:255;not null"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

func (Topic) TableName() string {
	return "topics"
}

func (t *Topic) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
