package postgres

import (
	"context"
	"fmt"

	"github.com/VV-Learning/question-bank-service/internal/models"
	"github.com/VV-Learning/question-bank-service/internal/repositories"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TopicPostgreSQL struct {
	db *gorm.DB
}

func NewTopicPostgreSQL(db *gorm.DB) repositories.TopicRepository {
	return &TopicPostgreSQL{db: db}
}

func (t *TopicPostgreSQL) Create(ctx context.Context, topic *models.Topic) error {
	if err := t.db.WithContext(ctx).Create(topic).Error; err != nil {
		return fmt.Errorf("failed to create topic: %w", err)
	}
	return nil
}

func (t *TopicPostgreSQL) GetByID(ctx context.Context, id uuid.UUID) (*models.Topic, error) {
	var topic models.Topic
	if err := t.db.WithContext(ctx).First(&topic, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (t *TopicPostgreSQL) List(ctx context.Context) ([]*models.Topic, error) {
	var topics []*models.Topic
	err := t.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&topics).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	return topics, nil
}

func (t *TopicPostgreSQL) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := t.db.WithContext(ctx).
		Model(&models.Topic{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update topic: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (t *TopicPostgreSQL) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := t.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Topic{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete topic: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
