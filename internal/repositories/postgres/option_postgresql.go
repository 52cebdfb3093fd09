package postgres

import (
	"context"
	"fmt"

	"github.com/VV-Learning/question-bank-service/internal/models"
	"github.com/VV-Learning/question-bank-service/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OptionPostgreSQL struct {
	db *gorm.DB
}

func NewOptionPostgreSQL(db *gorm.DB) repositories.OptionRepository {
	return &OptionPostgreSQL{db: db}
}

func (o *OptionPostgreSQL) CreateBatch(ctx context.Context, options []*models.Option) error {
	if len(options) == 0 {
		return nil
	}
	if err := o.db.WithContext(ctx).Create(options).Error; err != nil {
		return fmt.Errorf("failed to create options: %w", err)
	}
	return nil
}

func (o *OptionPostgreSQL) GetByVariant(ctx context.Context, variantID uuid.UUID) ([]*models.Option, error) {
	var options []*models.Option
	err := o.db.WithContext(ctx).
		Where("question_variant_id = ?", variantID).
		Order("created_at ASC").
		Find(&options).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get options: %w", err)
	}
	return options, nil
}

// DeleteByVariant removes the whole option set of a variant. Options are
// always replaced as a set, so an empty result is fine.
func (o *OptionPostgreSQL) DeleteByVariant(ctx context.Context, variantID uuid.UUID) error {
	err := o.db.WithContext(ctx).
		Where("question_variant_id = ?", variantID).
		Delete(&models.Option{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete options: %w", err)
	}
	return nil
}
