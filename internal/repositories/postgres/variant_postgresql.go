package postgres

import (
	"context"
	"fmt"

	"github.com/VV-Learning/question-bank-service/internal/models"
	"github.com/VV-Learning/question-bank-service/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VariantPostgreSQL struct {
	db *gorm.DB
}

func NewVariantPostgreSQL(db *gorm.DB) repositories.VariantRepository {
	return &VariantPostgreSQL{db: db}
}

func (v *VariantPostgreSQL) Create(ctx context.Context, variant *models.QuestionVariant) error {
	if err := v.db.WithContext(ctx).Omit("Options").Create(variant).Error; err != nil {
		return fmt.Errorf("failed to create question variant: %w", err)
	}
	return nil
}

func (v *VariantPostgreSQL) GetByQuestion(ctx context.Context, questionID uuid.UUID) (*models.QuestionVariant, error) {
	var variant models.QuestionVariant
	err := v.db.WithContext(ctx).
		First(&variant, "question_id = ?", questionID).Error
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

// UpdateNameByQuestion renames the single variant owned by the question and
// returns the updated row.
func (v *VariantPostgreSQL) UpdateNameByQuestion(ctx context.Context, questionID uuid.UUID, name models.VariantName) (*models.QuestionVariant, error) {
	result := v.db.WithContext(ctx).
		Model(&models.QuestionVariant{}).
		Where("question_id = ?", questionID).
		Update("name", name)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update question variant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return v.GetByQuestion(ctx, questionID)
}

// DeleteByQuestion hard-deletes the variant rows for a question. Idempotent
// so the compensation path can retry it.
func (v *VariantPostgreSQL) DeleteByQuestion(ctx context.Context, questionID uuid.UUID) error {
	err := v.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Delete(&models.QuestionVariant{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete question variant: %w", err)
	}
	return nil
}
