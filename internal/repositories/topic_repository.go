package repositories

import (
	"context"

	"github.com/VV-Learning/question-bank-service/internal/models"
	"github.com/google/uuid"
)

// TopicRepository covers the topics table. Visibility means
// deleted_at IS NULL.
type TopicRepository interface {
	Create(ctx context.Context, topic *models.Topic) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Topic, error)
	List(ctx context.Context) ([]*models.Topic, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// AnomalyRepository records unrecoverable partial-write states for operator
// follow-up.
type AnomalyRepository interface {
	Create(ctx context.Context, anomaly *models.WriteAnomaly) error
	List(ctx context.Context, limit int) ([]*models.WriteAnomaly, error)
}
