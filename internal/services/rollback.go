package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/VV-Learning/question-bank-service/internal/events"
	"github.com/VV-Learning/question-bank-service/internal/models"
	"github.com/VV-Learning/question-bank-service/internal/repositories"
)

// The store exposes no transaction capability to this service, so partial
// multi-step writes are undone with compensating deletes. Each delete is
// idempotent and retried; a compensation that still fails is recorded as a
// write anomaly and published for operator follow-up, never swallowed.
const compensationAttempts = 3

type rollbackStep struct {
	name string
	run  func(ctx context.Context) error
}

// RollbackStepResult is the outcome of one compensating delete.
type RollbackStepResult struct {
	Name     string `json:"name"`
	Attempts int    `json:"attempts"`
	Error    string `json:"error,omitempty"`
}

// RollbackOutcome is the explicit result of a compensation sequence.
type RollbackOutcome struct {
	Operation  string               `json:"operation"`
	EntityType string               `json:"entity_type"`
	EntityID   string               `json:"entity_id"`
	Steps      []RollbackStepResult `json:"steps"`
}

// Failed reports whether any compensating delete could not be confirmed.
func (o *RollbackOutcome) Failed() bool {
	for _, step := range o.Steps {
		if step.Error != "" {
			return true
		}
	}
	return false
}

type compensator struct {
	anomalies repositories.AnomalyRepository
	publisher events.EventPublisher
	logger    *slog.Logger
}

func newCompensator(anomalies repositories.AnomalyRepository, publisher events.EventPublisher, logger *slog.Logger) *compensator {
	return &compensator{
		anomalies: anomalies,
		publisher: publisher,
		logger:    logger,
	}
}

// run executes the compensating deletes in order. It deliberately detaches
// from the caller's cancellation: when the triggering failure was a timeout,
// the cleanup must still get a chance to complete.
func (c *compensator) run(ctx context.Context, operation, entityType, entityID string, steps ...rollbackStep) RollbackOutcome {
	ctx = context.WithoutCancel(ctx)

	outcome := RollbackOutcome{
		Operation:  operation,
		EntityType: entityType,
		EntityID:   entityID,
	}

	for _, step := range steps {
		result := RollbackStepResult{Name: step.name}
		for attempt := 1; attempt <= compensationAttempts; attempt++ {
			result.Attempts = attempt
			err := step.run(ctx)
			if err == nil {
				result.Error = ""
				break
			}
			result.Error = err.Error()
			c.logger.Warn("Compensating delete failed",
				"operation", operation,
				"step", step.name,
				"attempt", attempt,
				"error", err)
			time.Sleep(time.Duration(attempt) * 50 * time.Millisecond)
		}
		outcome.Steps = append(outcome.Steps, result)
	}

	if outcome.Failed() {
		c.reportFailure(ctx, &outcome)
	} else {
		c.logger.Info("Rollback confirmed",
			"operation", operation,
			"entity_type", entityType,
			"entity_id", entityID)
	}

	return outcome
}

// reportFailure persists the orphan state and publishes it. Both channels
// are best-effort; the original store error still propagates to the caller.
func (c *compensator) reportFailure(ctx context.Context, outcome *RollbackOutcome) {
	c.logger.Error("Rollback failed, orphaned rows may remain",
		"operation", outcome.Operation,
		"entity_type", outcome.EntityType,
		"entity_id", outcome.EntityID)

	detail, err := json.Marshal(outcome.Steps)
	if err != nil {
		detail = nil
	}

	anomaly := &models.WriteAnomaly{
		Operation:  outcome.Operation,
		EntityType: outcome.EntityType,
		EntityID:   outcome.EntityID,
		Reason:     "compensating deletes could not be confirmed",
		Detail:     detail,
	}
	if err := c.anomalies.Create(ctx, anomaly); err != nil {
		c.logger.Error("Failed to record write anomaly", "error", err)
	}

	if c.publisher == nil {
		return
	}
	steps := make([]events.RollbackStep, 0, len(outcome.Steps))
	for _, s := range outcome.Steps {
		steps = append(steps, events.RollbackStep{
			Name:     s.Name,
			Attempts: s.Attempts,
			Error:    s.Error,
		})
	}
	event := events.NewDomainEvent(events.EventRollbackFailed, &events.RollbackFailedEvent{
		Operation:  outcome.Operation,
		EntityType: outcome.EntityType,
		EntityID:   outcome.EntityID,
		Steps:      steps,
	})
	if err := c.publisher.PublishDomainEvent(ctx, event); err != nil {
		c.logger.Error("Failed to publish rollback event", "error", err)
	}
}
