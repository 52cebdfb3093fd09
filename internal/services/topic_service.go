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

// ===== REQUEST STRUCTURES =====

type CreateTopicRequest struct {
	NameEN string `json:"name_en"`
	NameVI string `json:"name_vi"`
}

type UpdateTopicRequest struct {
	NameEN *string `json:"name_en"`
	NameVI *string `json:"name_vi"`
}

// ===== SERVICE =====

type TopicService interface {
	Create(ctx context.Context, req *CreateTopicRequest) (*models.Topic, error)
	GetByID(ctx context.Context, id string) (*models.Topic, error)
	List(ctx context.Context) ([]*models.Topic, error)
	Update(ctx context.Context, id string, req *UpdateTopicRequest) (*models.Topic, error)
	Delete(ctx context.Context, id string) error
}

type topicService struct {
	repo         repositories.Repository
	validator    *validator.Validator
	publisher    events.EventPublisher
	cache        cache.CacheService
	logger       *slog.Logger
	storeTimeout time.Duration
}

func NewTopicService(
	repo repositories.Repository,
	v *validator.Validator,
	publisher events.EventPublisher,
	cacheService cache.CacheService,
	logger *slog.Logger,
	storeTimeout time.Duration,
) TopicService {
	return &topicService{
		repo:         repo,
		validator:    v,
		publisher:    publisher,
		cache:        cacheService,
		logger:       logger,
		storeTimeout: storeTimeout,
	}
}

func (s *topicService) Create(ctx context.Context, req *CreateTopicRequest) (*models.Topic, error) {
	if verrs := s.validator.Topic().ValidateNames(req.NameEN, req.NameVI); len(verrs) > 0 {
		return nil, verrs
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	topic := &models.Topic{
		NameEN: req.NameEN,
		NameVI: req.NameVI,
	}
	if err := s.repo.Topic().Create(ctx, topic); err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}

	s.logger.Info("Topic created successfully", "topic_id", topic.ID)
	s.publish(ctx, events.EventTopicCreated, &events.TopicEvent{
		TopicID: topic.ID.String(),
		NameEN:  topic.NameEN,
		NameVI:  topic.NameVI,
	})
	s.invalidateCache(ctx)

	return topic, nil
}

func (s *topicService) GetByID(ctx context.Context, id string) (*models.Topic, error) {
	tid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrTopicNotFound
	}

	if s.cache != nil {
		var cached models.Topic
		if err := s.cache.Get(ctx, cache.TopicKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	topic, err := s.repo.Topic().GetByID(ctx, tid)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to get topic: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.TopicKey(id), topic, cacheTTL); err != nil {
			s.logger.Warn("Failed to cache topic", "topic_id", id, "error", err)
		}
	}
	return topic, nil
}

func (s *topicService) List(ctx context.Context) ([]*models.Topic, error) {
	if s.cache != nil {
		var cached []*models.Topic
		if err := s.cache.Get(ctx, cache.TopicListKey, &cached); err == nil {
			return cached, nil
		}
	}

	topics, err := s.repo.Topic().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.TopicListKey, topics, cacheTTL); err != nil {
			s.logger.Warn("Failed to cache topic list", "error", err)
		}
	}
	return topics, nil
}

func (s *topicService) Update(ctx context.Context, id string, req *UpdateTopicRequest) (*models.Topic, error) {
	tid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrTopicNotFound
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if req.NameEN != nil {
		fields["name_en"] = *req.NameEN
	}
	if req.NameVI != nil {
		fields["name_vi"] = *req.NameVI
	}

	if err := s.repo.Topic().UpdateFields(ctx, tid, fields); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to update topic: %w", err)
	}

	updated, err := s.repo.Topic().GetByID(ctx, tid)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated topic: %w", err)
	}

	s.logger.Info("Topic updated successfully", "topic_id", id)
	s.publish(ctx, events.EventTopicUpdated, &events.TopicEvent{
		TopicID: id,
		NameEN:  updated.NameEN,
		NameVI:  updated.NameVI,
	})
	s.invalidateCache(ctx)

	return updated, nil
}

func (s *topicService) Delete(ctx context.Context, id string) error {
	tid, err := uuid.Parse(id)
	if err != nil {
		return ErrTopicNotFound
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.repo.Topic().SoftDelete(ctx, tid); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrTopicNotFound
		}
		return fmt.Errorf("failed to delete topic: %w", err)
	}

	s.logger.Info("Topic deleted successfully", "topic_id", id)
	s.publish(ctx, events.EventTopicDeleted, &events.TopicEvent{TopicID: id})
	s.invalidateCache(ctx)

	return nil
}

// ===== HELPERS =====

func (s *topicService) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout > 0 {
		return context.WithTimeout(ctx, s.storeTimeout)
	}
	return ctx, func() {}
}

func (s *topicService) publish(ctx context.Context, eventType events.EventType, data interface{}) {
	if s.publisher == nil {
		return
	}
	event := events.NewDomainEvent(eventType, data)
	if err := s.publisher.PublishDomainEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish event", "event_type", eventType, "error", err)
	}
}

func (s *topicService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, cache.TopicPattern()); err != nil {
		s.logger.Warn("Failed to invalidate topic cache", "error", err)
	}
}
