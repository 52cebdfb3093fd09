package repositories

import (
	"context"

	"github.com/VV-Learning/question-bank-service/internal/models"
	"github.com/google/uuid"
)

// QuestionRepository covers the question table. Reads preload the variant
// and its options; visibility means is_active AND deleted_at IS NULL.
type QuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error

	// GetByID returns a visible question with its nested variant and options.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Question, error)
	// FindByID looks the row up by id only (still excluding soft-deleted
	// rows); used for the post-write re-read, which must see rows the
	// caller just deactivated.
	FindByID(ctx context.Context, id uuid.UUID) (*models.Question, error)
	List(ctx context.Context, filters QuestionFilters) ([]*models.Question, error)

	// UpdateFields patches only the provided columns.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error

	// SoftDelete marks the row deleted; the row itself is kept.
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// HardDelete physically removes the row. Only the compensation path
	// uses it.
	HardDelete(ctx context.Context, id uuid.UUID) error
}

// VariantRepository covers the question_variant table.
type VariantRepository interface {
	Create(ctx context.Context, variant *models.QuestionVariant) error
	GetByQuestion(ctx context.Context, questionID uuid.UUID) (*models.QuestionVariant, error)
	// UpdateNameByQuestion renames the single variant owned by the question
	// and returns the updated row.
	UpdateNameByQuestion(ctx context.Context, questionID uuid.UUID, name models.VariantName) (*models.QuestionVariant, error)
	// DeleteByQuestion hard-deletes; only the compensation path uses it.
	DeleteByQuestion(ctx context.Context, questionID uuid.UUID) error
}

// OptionRepository covers the options table. Options are replaced as a set,
// never patched row by row.
type OptionRepository interface {
	CreateBatch(ctx context.Context, options []*models.Option) error
	GetByVariant(ctx context.Context, variantID uuid.UUID) ([]*models.Option, error)
	DeleteByVariant(ctx context.Context, variantID uuid.UUID) error
}

// ===== SHARED FILTER STRUCTS =====

type QuestionFilters struct {
	IsActive *bool `json:"is_active"`
	Limit    int   `json:"limit"`
	Offset   int   `json:"offset"`
}
