package events

import (
	"time"
)

// EventType represents different types of domain events
type EventType string

const (
	// Question lifecycle events
	EventQuestionCreated EventType = "question.created"
	EventQuestionUpdated EventType = "question.updated"
	EventQuestionDeleted EventType = "question.deleted"

	// Topic lifecycle events
	EventTopicCreated EventType = "topic.created"
	EventTopicUpdated EventType = "topic.updated"
	EventTopicDeleted EventType = "topic.deleted"

	// System events
	EventRollbackFailed EventType = "write.rollback_failed"
)

// DomainEvent is the base event structure for all published events
type DomainEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Question event payloads

type QuestionEvent struct {
	QuestionID  string `json:"question_id"`
	VariantName string `json:"variant_name,omitempty"`
	OptionCount int    `json:"option_count"`
}

type TopicEvent struct {
	TopicID string `json:"topic_id"`
	NameEN  string `json:"name_en,omitempty"`
	NameVI  string `json:"name_vi,omitempty"`
}

// RollbackFailedEvent describes a compensation sequence that could not be
// confirmed, i.e. orphaned rows may remain in the store.
type RollbackFailedEvent struct {
	Operation  string         `json:"operation"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Steps      []RollbackStep `json:"steps"`
}

type RollbackStep struct {
	Name     string `json:"name"`
	Attempts int    `json:"attempts"`
	Error    string `json:"error,omitempty"`
}
