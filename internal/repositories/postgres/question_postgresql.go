package postgres

import (
	"context"
	"fmt"

	"github.com/VV-Learning/question-bank-service/internal/models"
	"github.com/VV-Learning/question-bank-service/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionPostgreSQL struct {
	db *gorm.DB
}

func NewQuestionPostgreSQL(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionPostgreSQL{db: db}
}

// Create inserts a question row. Variant and option rows are written by
// their own repositories; the service layer sequences the steps.
func (q *QuestionPostgreSQL) Create(ctx context.Context, question *models.Question) error {
	if err := q.db.WithContext(ctx).Omit("Variants").Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

// GetByID retrieves a visible question with its variant and options.
func (q *QuestionPostgreSQL) GetByID(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	var question models.Question
	err := q.db.WithContext(ctx).
		Preload("Variants.Options").
		Where("is_active = ?", true).
		First(&question, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// FindByID retrieves a question by id only, regardless of is_active. The
// post-write re-read uses this so an update that deactivates a question can
// still return the row it just wrote.
func (q *QuestionPostgreSQL) FindByID(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	var question models.Question
	err := q.db.WithContext(ctx).
		Preload("Variants.Options").
		First(&question, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// List returns visible questions, newest first.
func (q *QuestionPostgreSQL) List(ctx context.Context, filters repositories.QuestionFilters) ([]*models.Question, error) {
	query := q.db.WithContext(ctx).
		Preload("Variants.Options").
		Order("created_at DESC").
		Order("updated_at DESC")

	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit).Offset(filters.Offset)
	}

	var questions []*models.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// UpdateFields patches only the provided columns.
func (q *QuestionPostgreSQL) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := q.db.WithContext(ctx).
		Model(&models.Question{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDelete sets deleted_at; the row remains in the table.
func (q *QuestionPostgreSQL) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := q.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Question{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete question: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HardDelete physically removes the row. Idempotent: deleting an absent row
// is not an error, so a retried compensation converges.
func (q *QuestionPostgreSQL) HardDelete(ctx context.Context, id uuid.UUID) error {
	err := q.db.WithContext(ctx).
		Unscoped().
		Where("id = ?", id).
		Delete(&models.Question{}).Error
	if err != nil {
		return fmt.Errorf("failed to hard-delete question: %w", err)
	}
	return nil
}
