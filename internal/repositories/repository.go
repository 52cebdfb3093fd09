package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// Repository aggregates the per-entity repositories backing the service
// layer. All store access goes through this capability.
type Repository interface {
	Question() QuestionRepository
	Variant() VariantRepository
	Option() OptionRepository
	Topic() TopicRepository
	Anomaly() AnomalyRepository
}

// IsNotFoundError reports whether err means "no matching row".
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
