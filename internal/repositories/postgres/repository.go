package postgres

import (
	"github.com/VV-Learning/question-bank-service/internal/repositories"
	"gorm.io/gorm"
)

type gormRepository struct {
	question repositories.QuestionRepository
	variant  repositories.VariantRepository
	option   repositories.OptionRepository
	topic    repositories.TopicRepository
	anomaly  repositories.AnomalyRepository
}

func NewRepository(db *gorm.DB) repositories.Repository {
	return &gormRepository{
		question: NewQuestionPostgreSQL(db),
		variant:  NewVariantPostgreSQL(db),
		option:   NewOptionPostgreSQL(db),
		topic:    NewTopicPostgreSQL(db),
		anomaly:  NewAnomalyPostgreSQL(db),
	}
}

func (r *gormRepository) Question() repositories.QuestionRepository { return r.question }
func (r *gormRepository) Variant() repositories.VariantRepository   { return r.variant }
func (r *gormRepository) Option() repositories.OptionRepository     { return r.option }
func (r *gormRepository) Topic() repositories.TopicRepository       { return r.topic }
func (r *gormRepository) Anomaly() repositories.AnomalyRepository   { return r.anomaly }
