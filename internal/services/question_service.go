package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/VV-Learning/question-bank-service/internal/cache"
	"github.com/VV-Learning/question-bank-service/internal/events"
	"github.com/VV-Learning/question-bank-service/internal/models"
	"github.com/VV-Learning/question-bank-service/internal/repositories"
	"github.com/VV-Learning/question-bank-service/internal/validator"
	"github.com/google/uuid"
)

const cacheTTL = 5 * time.Minute

// ===== REQUEST STRUCTURES =====

type OptionInput struct {
	TextEN    string `json:"text_en"`
	TextVI    string `json:"text_vi"`
	IsCorrect *bool  `json:"is_correct"`
}

type CreateQuestionRequest struct {
	QuestionEN             string        `json:"question_en"`
	QuestionVI             string        `json:"question_vi"`
	IsActive               *bool         `json:"is_active"`
	ExampleEN              *string       `json:"example_en"`
	ExampleVI              *string       `json:"example_vi"`
	QuestionVariantName    string        `json:"question_variant_name"`
	QuestionVariantOptions []OptionInput `json:"question_variant_options"`
}

// UpdateQuestionRequest is a partial payload: nil pointer fields are left
// untouched. The variant fields are re-validated exactly as in create.
type UpdateQuestionRequest struct {
	QuestionEN             *string       `json:"question_en"`
	QuestionVI             *string       `json:"question_vi"`
	IsActive               *bool         `json:"is_active"`
	ExampleEN              *string       `json:"example_en"`
	ExampleVI              *string       `json:"example_vi"`
	QuestionVariantName    string        `json:"question_variant_name"`
	QuestionVariantOptions []OptionInput `json:"question_variant_options"`
}

// ===== SERVICE =====

type QuestionService interface {
	Create(ctx context.Context, req *CreateQuestionRequest) (*models.Question, error)
	GetByID(ctx context.Context, id string) (*models.Question, error)
	List(ctx context.Context) ([]*models.Question, error)
	Update(ctx context.Context, id string, req *UpdateQuestionRequest) (*models.Question, error)
	Delete(ctx context.Context, id string) error
}

type questionService struct {
	repo         repositories.Repository
	validator    *validator.Validator
	publisher    events.EventPublisher
	cache        cache.CacheService
	compensator  *compensator
	logger       *slog.Logger
	storeTimeout time.Duration
}

func NewQuestionService(
	repo repositories.Repository,
	v *validator.Validator,
	publisher events.EventPublisher,
	cacheService cache.CacheService,
	logger *slog.Logger,
	storeTimeout time.Duration,
) QuestionService {
	return &questionService{
		repo:         repo,
		validator:    v,
		publisher:    publisher,
		cache:        cacheService,
		compensator:  newCompensator(repo.Anomaly(), publisher, logger),
		logger:       logger,
		storeTimeout: storeTimeout,
	}
}

// Create runs the ordered insert sequence: question, then variant, then
// options. The store offers this service no transaction, so a failure after
// the first insert triggers compensating deletes for the rows already
// written. A concurrent reader can observe the intermediate state; that is
// an accepted property of this protocol.
func (s *questionService) Create(ctx context.Context, req *CreateQuestionRequest) (*models.Question, error) {
	if verrs := s.validator.Question().ValidateCreate(validator.QuestionPayload{
		QuestionEN:  req.QuestionEN,
		QuestionVI:  req.QuestionVI,
		VariantName: models.VariantName(req.QuestionVariantName),
		OptionCount: len(req.QuestionVariantOptions),
	}); len(verrs) > 0 {
		return nil, verrs
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	s.logger.Info("Creating question", "variant_name", req.QuestionVariantName)

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	question := &models.Question{
		QuestionEN: req.QuestionEN,
		QuestionVI: req.QuestionVI,
		ExampleEN:  req.ExampleEN,
		ExampleVI:  req.ExampleVI,
		IsActive:   isActive,
	}
	if err := s.repo.Question().Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	variant := &models.QuestionVariant{
		QuestionID: question.ID,
		Name:       models.VariantName(req.QuestionVariantName),
	}
	if err := s.repo.Variant().Create(ctx, variant); err != nil {
		s.compensator.run(ctx, "question.create", "question", question.ID.String(),
			rollbackStep{name: "delete_question", run: func(c context.Context) error {
				return s.repo.Question().HardDelete(c, question.ID)
			}},
		)
		return nil, fmt.Errorf("failed to create question variant: %w", err)
	}

	if variant.Name == models.VariantMultipleChoice && len(req.QuestionVariantOptions) > 0 {
		options := buildOptions(variant.ID, req.QuestionVariantOptions)
		if err := s.repo.Option().CreateBatch(ctx, options); err != nil {
			s.compensator.run(ctx, "question.create", "question", question.ID.String(),
				rollbackStep{name: "delete_variant", run: func(c context.Context) error {
					return s.repo.Variant().DeleteByQuestion(c, question.ID)
				}},
				rollbackStep{name: "delete_question", run: func(c context.Context) error {
					return s.repo.Question().HardDelete(c, question.ID)
				}},
			)
			return nil, fmt.Errorf("failed to create options: %w", err)
		}
	}

	created, err := s.repo.Question().FindByID(ctx, question.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created question: %w", err)
	}

	s.logger.Info("Question created successfully", "question_id", created.ID)
	s.publish(ctx, events.EventQuestionCreated, &events.QuestionEvent{
		QuestionID:  created.ID.String(),
		VariantName: req.QuestionVariantName,
		OptionCount: len(req.QuestionVariantOptions),
	})
	s.invalidateCache(ctx)

	return created, nil
}

func (s *questionService) GetByID(ctx context.Context, id string) (*models.Question, error) {
	qid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrQuestionNotFound
	}

	if s.cache != nil {
		var cached models.Question
		if err := s.cache.Get(ctx, cache.QuestionKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	question, err := s.repo.Question().GetByID(ctx, qid)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.QuestionKey(id), question, cacheTTL); err != nil {
			s.logger.Warn("Failed to cache question", "question_id", id, "error", err)
		}
	}
	return question, nil
}

func (s *questionService) List(ctx context.Context) ([]*models.Question, error) {
	if s.cache != nil {
		var cached []*models.Question
		if err := s.cache.Get(ctx, cache.QuestionListKey, &cached); err == nil {
			return cached, nil
		}
	}

	active := true
	questions, err := s.repo.Question().List(ctx, repositories.QuestionFilters{IsActive: &active})
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.QuestionListKey, questions, cacheTTL); err != nil {
			s.logger.Warn("Failed to cache question list", "error", err)
		}
	}
	return questions, nil
}

// Update patches the question row, renames its variant, and replaces the
// whole option set. The full payload is validated before the first store
// write, so a rejected variant never leaves a half-updated question behind.
func (s *questionService) Update(ctx context.Context, id string, req *UpdateQuestionRequest) (*models.Question, error) {
	qid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrQuestionNotFound
	}

	if verrs := s.validator.Question().ValidateVariant(
		models.VariantName(req.QuestionVariantName),
		len(req.QuestionVariantOptions),
	); len(verrs) > 0 {
		return nil, verrs
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	s.logger.Info("Updating question", "question_id", id)

	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if req.QuestionEN != nil {
		fields["question_en"] = *req.QuestionEN
	}
	if req.QuestionVI != nil {
		fields["question_vi"] = *req.QuestionVI
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if req.ExampleEN != nil {
		fields["example_en"] = *req.ExampleEN
	}
	if req.ExampleVI != nil {
		fields["example_vi"] = *req.ExampleVI
	}

	if err := s.repo.Question().UpdateFields(ctx, qid, fields); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to update question: %w", err)
	}

	variant, err := s.repo.Variant().UpdateNameByQuestion(ctx, qid, models.VariantName(req.QuestionVariantName))
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to update question variant: %w", err)
	}

	// Options are replaced as a set: drop the old ones unconditionally,
	// then insert the new set when the variant is multiple_choice.
	if err := s.repo.Option().DeleteByVariant(ctx, variant.ID); err != nil {
		return nil, fmt.Errorf("failed to delete options: %w", err)
	}
	if variant.Name == models.VariantMultipleChoice && req.QuestionVariantOptions != nil {
		options := buildOptions(variant.ID, req.QuestionVariantOptions)
		if err := s.repo.Option().CreateBatch(ctx, options); err != nil {
			return nil, fmt.Errorf("failed to create options: %w", err)
		}
	}

	updated, err := s.repo.Question().FindByID(ctx, qid)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated question: %w", err)
	}

	s.logger.Info("Question updated successfully", "question_id", id)
	s.publish(ctx, events.EventQuestionUpdated, &events.QuestionEvent{
		QuestionID:  id,
		VariantName: req.QuestionVariantName,
		OptionCount: len(req.QuestionVariantOptions),
	})
	s.invalidateCache(ctx)

	return updated, nil
}

// Delete soft-deletes the question. Child rows are left to the store's
// referential configuration.
func (s *questionService) Delete(ctx context.Context, id string) error {
	qid, err := uuid.Parse(id)
	if err != nil {
		return ErrQuestionNotFound
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.repo.Question().SoftDelete(ctx, qid); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("failed to delete question: %w", err)
	}

	s.logger.Info("Question deleted successfully", "question_id", id)
	s.publish(ctx, events.EventQuestionDeleted, &events.QuestionEvent{QuestionID: id})
	s.invalidateCache(ctx)

	return nil
}

// ===== HELPERS =====

func buildOptions(variantID uuid.UUID, inputs []OptionInput) []*models.Option {
	options := make([]*models.Option, 0, len(inputs))
	for _, input := range inputs {
		isCorrect := false
		if input.IsCorrect != nil {
			isCorrect = *input.IsCorrect
		}
		options = append(options, &models.Option{
			QuestionVariantID: variantID,
			TextEN:            input.TextEN,
			TextVI:            input.TextVI,
			IsCorrect:         isCorrect,
		})
	}
	return options
}

func (s *questionService) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout > 0 {
		return context.WithTimeout(ctx, s.storeTimeout)
	}
	return ctx, func() {}
}

func (s *questionService) publish(ctx context.Context, eventType events.EventType, data interface{}) {
	if s.publisher == nil {
		return
	}
	event := events.NewDomainEvent(eventType, data)
	if err := s.publisher.PublishDomainEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish event", "event_type", eventType, "error", err)
	}
}

func (s *questionService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, cache.QuestionPattern()); err != nil {
		s.logger.Warn("Failed to invalidate question cache", "error", err)
	}
}
