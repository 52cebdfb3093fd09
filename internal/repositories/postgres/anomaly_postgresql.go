package postgres

import (
	"context"
	"fmt"

	"github.com/VV-Learning/question-bank-service/internal/models"
	"github.com/VV-Learning/question-bank-service/internal/repositories"
	"gorm.io/gorm"
)

type AnomalyPostgreSQL struct {
	db *gorm.DB
}

func NewAnomalyPostgreSQL(db *gorm.DB) repositories.AnomalyRepository {
	return &AnomalyPostgreSQL{db: db}
}

func (a *AnomalyPostgreSQL) Create(ctx context.Context, anomaly *models.WriteAnomaly) error {
	if err := a.db.WithContext(ctx).Create(anomaly).Error; err != nil {
		return fmt.Errorf("failed to record write anomaly: %w", err)
	}
	return nil
}

func (a *AnomalyPostgreSQL) List(ctx context.Context, limit int) ([]*models.WriteAnomaly, error) {
	query := a.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var anomalies []*models.WriteAnomaly
	if err := query.Find(&anomalies).Error; err != nil {
		return nil, fmt.Errorf("failed to list write anomalies: %w", err)
	}
	return anomalies, nil
}
