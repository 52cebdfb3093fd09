package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VariantName string

const (
	VariantOpenEnded      VariantName = "open_ended"
	VariantMultipleChoice VariantName = "multiple_choice"
)

// IsValid reports whether the variant name is one of the supported answer modes.
func (v VariantName) IsValid() bool {
	return v == VariantOpenEnded || v == VariantMultipleChoice
}

// Question is the root entity of the question bank. A question always owns
// exactly one QuestionVariant after a successful create.
type Question struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	QuestionEN string    `json:"question_en" gorm:"column:question_en;type:text;not null"`
	QuestionVI string    `json:"question_vi" gorm:"column:question_vi;type:text;not null"`
	ExampleEN  *string   `json:"example_en" gorm:"column:example_en;type:text"`
	ExampleVI  *string   `json:"example_vi" gorm:"column:example_vi;type:text"`
	IsActive   bool      `json:"is_active" gorm:"default:true;index"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`

	// Relations. The JSON key matches the embedded-resource name the
	// storefront clients already consume.
	Variants []QuestionVariant `json:"question_variant" gorm:"foreignKey:QuestionID"`
}

func (Question) TableName() string {
	return "questions"
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// QuestionVariant is the answer-format mode of its owning question.
type QuestionVariant struct {
	ID         uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	QuestionID uuid.UUID   `json:"question_id" gorm:"type:uuid;not null;index"`
	Name       VariantName `json:"name" gorm:"size:32;not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Options []Option `json:"options" gorm:"foreignKey:QuestionVariantID;constraint:OnDelete:CASCADE"`
}

func (QuestionVariant) TableName() string {
	return "question_variant"
}

func (v *QuestionVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// Option is one selectable answer choice. Only meaningful for
// multiple_choice variants; open_ended variants carry zero options.
type Option struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	QuestionVariantID uuid.UUID `json:"question_variant_id" gorm:"type:uuid;not null;index"`
	TextEN            string    `json:"text_en" gorm:"column:text_en;type:text"`
	TextVI            string    `json:"text_vi" gorm:"column:text_vi;type:text"`
	IsCorrect         bool      `json:"is_correct" gorm:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Option) TableName() string {
	return "options"
}

func (o *Option) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
