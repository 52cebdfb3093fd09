package services

import (
	"context"

	"github.com/VV-Learning/question-bank-service/internal/models"
	"github.com/VV-Learning/question-bank-service/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockQuestionRepository is a mock implementation of QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *models.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

func (m *MockQuestionRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Question), args.Error(1)
}

func (m *MockQuestionRepository) List(ctx context.Context, filters repositories.QuestionFilters) ([]*models.Question, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Question), args.Error(1)
}

func (m *MockQuestionRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockQuestionRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuestionRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVariantRepository is a mock implementation of VariantRepository
type MockVariantRepository struct {
	mock.Mock
}

func (m *MockVariantRepository) Create(ctx context.Context, variant *models.QuestionVariant) error {
	args := m.Called(ctx, variant)
	return args.Error(0)
}

func (m *MockVariantRepository) GetByQuestion(ctx context.Context, questionID uuid.UUID) (*models.QuestionVariant, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuestionVariant), args.Error(1)
}

func (m *MockVariantRepository) UpdateNameByQuestion(ctx context.Context, questionID uuid.UUID, name models.VariantName) (*models.QuestionVariant, error) {
	args := m.Called(ctx, questionID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuestionVariant), args.Error(1)
}

func (m *MockVariantRepository) DeleteByQuestion(ctx context.Context, questionID uuid.UUID) error {
	args := m.Called(ctx, questionID)
	return args.Error(0)
}

// MockOptionRepository is a mock implementation of OptionRepository
type MockOptionRepository struct {
	mock.Mock
}

func (m *MockOptionRepository) CreateBatch(ctx context.Context, options []*models.Option) error {
	args := m.Called(ctx, options)
	return args.Error(0)
}

func (m *MockOptionRepository) GetByVariant(ctx context.Context, variantID uuid.UUID) ([]*models.Option, error) {
	args := m.Called(ctx, variantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Option), args.Error(1)
}

func (m *MockOptionRepository) DeleteByVariant(ctx context.Context, variantID uuid.UUID) error {
	args := m.Called(ctx, variantID)
	return args.Error(0)
}

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) Create(ctx context.Context, topic *models.Topic) error {
	args := m.Called(ctx, topic)
	return args.Error(0)
}

func (m *MockTopicRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Topic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Topic), args.Error(1)
}

func (m *MockTopicRepository) List(ctx context.Context) ([]*models.Topic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Topic), args.Error(1)
}

func (m *MockTopicRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockTopicRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAnomalyRepository is a mock implementation of AnomalyRepository
type MockAnomalyRepository struct {
	mock.Mock
}

func (m *MockAnomalyRepository) Create(ctx context.Context, anomaly *models.WriteAnomaly) error {
	args := m.Called(ctx, anomaly)
	return args.Error(0)
}

func (m *MockAnomalyRepository) List(ctx context.Context, limit int) ([]*models.WriteAnomaly, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.WriteAnomaly), args.Error(1)
}

// mockRepository bundles the per-entity mocks behind the Repository interface
type mockRepository struct {
	question *MockQuestionRepository
	variant  *MockVariantRepository
	option   *MockOptionRepository
	topic    *MockTopicRepository
	anomaly  *MockAnomalyRepository
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		question: new(MockQuestionRepository),
		variant:  new(MockVariantRepository),
		option:   new(MockOptionRepository),
		topic:    new(MockTopicRepository),
		anomaly:  new(MockAnomalyRepository),
	}
}

func (r *mockRepository) Question() repositories.QuestionRepository { return r.question }
func (r *mockRepository) Variant() repositories.VariantRepository   { return r.variant }
func (r *mockRepository) Option() repositories.OptionRepository     { return r.option }
func (r *mockRepository) Topic() repositories.TopicRepository       { return r.topic }
func (r *mockRepository) Anomaly() repositories.AnomalyRepository   { return r.anomaly }
