package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/VV-Learning/question-bank-service/internal/events"
	"github.com/VV-Learning/question-bank-service/internal/models"
	"github.com/VV-Learning/question-bank-service/internal/repositories"
	"github.com/VV-Learning/question-bank-service/internal/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestQuestionService(repo *mockRepository) (QuestionService, *events.MockEventPublisher) {
	publisher := events.NewMockEventPublisher(testLogger())
	svc := NewQuestionService(repo, validator.New(), publisher, nil, testLogger(), 0)
	return svc, publisher
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestQuestionService_Create_OpenEnded(t *testing.T) {
	repo := newMockRepository()
	svc, publisher := newTestQuestionService(repo)

	repo.question.On("Create", mock.Anything, mock.AnythingOfType("*models.Question")).Return(nil)
	repo.variant.On("Create", mock.Anything, mock.MatchedBy(func(v *models.QuestionVariant) bool {
		return v.Name == models.VariantOpenEnded
	})).Return(nil)
	repo.question.On("FindByID", mock.Anything, mock.Anything).Return(&models.Question{
		QuestionEN: "What is a goroutine?",
		QuestionVI: "Goroutine là gì?",
		Variants:   []models.QuestionVariant{{Name: models.VariantOpenEnded}},
	}, nil)

	created, err := svc.Create(context.Background(), &CreateQuestionRequest{
		QuestionEN:          "What is a goroutine?",
		QuestionVI:          "Goroutine là gì?",
		QuestionVariantName: "open_ended",
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
	repo.question.AssertExpectations(t)
	repo.variant.AssertExpectations(t)
	repo.option.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)

	published := publisher.GetPublishedEvents()
	assert.Len(t, published, 1)
	assert.Equal(t, events.EventQuestionCreated, published[0].Type)
}

func TestQuestionService_Create_MultipleChoice(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestQuestionService(repo)

	repo.question.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.variant.On("Create", mock.Anything, mock.MatchedBy(func(v *models.QuestionVariant) bool {
		return v.Name == models.VariantMultipleChoice
	})).Return(nil)
	repo.option.On("CreateBatch", mock.Anything, mock.MatchedBy(func(options []*models.Option) bool {
		// is_correct defaults to false when the payload omits it
		return len(options) == 2 && options[0].IsCorrect && !options[1].IsCorrect
	})).Return(nil)
	repo.question.On("FindByID", mock.Anything, mock.Anything).Return(&models.Question{}, nil)

	_, err := svc.Create(context.Background(), &CreateQuestionRequest{
		QuestionEN:          "Which keyword starts a goroutine?",
		QuestionVI:          "Từ khóa nào khởi động một goroutine?",
		QuestionVariantName: "multiple_choice",
		QuestionVariantOptions: []OptionInput{
			{TextEN: "go", TextVI: "go", IsCorrect: boolPtr(true)},
			{TextEN: "run", TextVI: "run"},
		},
	})

	assert.NoError(t, err)
	repo.option.AssertExpectations(t)
}

func TestQuestionService_Create_MissingText(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestQuestionService(repo)

	_, err := svc.Create(context.Background(), &CreateQuestionRequest{
		QuestionEN:          "only english",
		QuestionVariantName: "open_ended",
	})

	assert.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, validator.MsgMissingQuestionText, err.Error())
	repo.question.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestQuestionService_Create_InvalidVariantName(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestQuestionService(repo)

	_, err := svc.Create(context.Background(), &CreateQuestionRequest{
		QuestionEN:          "q",
		QuestionVI:          "q",
		QuestionVariantName: "true_false",
	})

	assert.Error(t, err)
	assert.Equal(t, validator.MsgInvalidVariantName, err.Error())
	repo.question.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestQuestionService_Create_MultipleChoiceWithoutOptions(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestQuestionService(repo)

	_, err := svc.Create(context.Background(), &CreateQuestionRequest{
		QuestionEN:          "q",
		QuestionVI:          "q",
		QuestionVariantName: "multiple_choice",
	})

	assert.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, validator.MsgMissingOptions, err.Error())
	repo.question.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestQuestionService_Create_VariantInsertFailureCompensates(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestQuestionService(repo)

	repo.question.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.variant.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))
	repo.question.On("HardDelete", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), &CreateQuestionRequest{
		QuestionEN:          "q",
		QuestionVI:          "q",
		QuestionVariantName: "open_ended",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create question variant")
	repo.question.AssertCalled(t, "HardDelete", mock.Anything, mock.Anything)
	repo.question.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestQuestionService_Create_OptionInsertFailureCompensates(t *testing.T) {
	repo := newMockRepository()
	svc, publisher := newTestQuestionService(repo)

	repo.question.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.variant.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.option.On("CreateBatch", mock.Anything, mock.Anything).Return(errors.New("insert failed"))
	repo.variant.On("DeleteByQuestion", mock.Anything, mock.Anything).Return(nil)
	repo.question.On("HardDelete", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), &CreateQuestionRequest{
		QuestionEN:          "q",
		QuestionVI:          "q",
		QuestionVariantName: "multiple_choice",
		QuestionVariantOptions: []OptionInput{
			{TextEN: "a", TextVI: "a"},
		},
	})

	assert.Error(t, err)
	repo.variant.AssertCalled(t, "DeleteByQuestion", mock.Anything, mock.Anything)
	repo.question.AssertCalled(t, "HardDelete", mock.Anything, mock.Anything)
	// deletes succeeded, so nothing is published
	assert.Empty(t, publisher.GetPublishedEvents())
}

func TestQuestionService_Create_CompensationFailureIsRecorded(t *testing.T) {
	repo := newMockRepository()
	svc, publisher := newTestQuestionService(repo)

	repo.question.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.variant.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))
	repo.question.On("HardDelete", mock.Anything, mock.Anything).Return(errors.New("still down"))
	repo.anomaly.On("Create", mock.Anything, mock.MatchedBy(func(a *models.WriteAnomaly) bool {
		return a.Operation == "question.create" && a.EntityType == "question"
	})).Return(nil)

	_, err := svc.Create(context.Background(), &CreateQuestionRequest{
		QuestionEN:          "q",
		QuestionVI:          "q",
		QuestionVariantName: "open_ended",
	})

	assert.Error(t, err)
	repo.question.AssertNumberOfCalls(t, "HardDelete", compensationAttempts)
	repo.anomaly.AssertExpectations(t)

	published := publisher.GetPublishedEvents()
	assert.Len(t, published, 1)
	assert.Equal(t, events.EventRollbackFailed, published[0].Type)
}

func TestQuestionService_GetByID_NotFound(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestQuestionService(repo)

	repo.question.On("GetByID", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestQuestionService_GetByID_MalformedID(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestQuestionService(repo)

	_, err := svc.GetByID(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, ErrQuestionNotFound)
	repo.question.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestQuestionService_Update_InvalidVariantBeforeAnyWrite(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestQuestionService(repo)

	_, err := svc.Update(context.Background(), uuid.NewString(), &UpdateQuestionRequest{
		QuestionEN:          strPtr("changed"),
		QuestionVariantName: "bogus",
	})

	assert.Error(t, err)
	assert.Equal(t, validator.MsgInvalidVariantName, err.Error())
	repo.question.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestQuestionService_Update_ToOpenEndedDropsOptions(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestQuestionService(repo)

	variantID := uuid.New()
	repo.question.On("UpdateFields", mock.Anything, mock.Anything, mock.MatchedBy(func(fields map[string]interface{}) bool {
		_, hasUpdatedAt := fields["updated_at"]
		return fields["question_en"] == "changed" && hasUpdatedAt
	})).Return(nil)
	repo.variant.On("UpdateNameByQuestion", mock.Anything, mock.Anything, models.VariantOpenEnded).
		Return(&models.QuestionVariant{ID: variantID, Name: models.VariantOpenEnded}, nil)
	repo.option.On("DeleteByVariant", mock.Anything, variantID).Return(nil)
	repo.question.On("FindByID", mock.Anything, mock.Anything).Return(&models.Question{}, nil)

	_, err := svc.Update(context.Background(), uuid.NewString(), &UpdateQuestionRequest{
		QuestionEN:          strPtr("changed"),
		QuestionVariantName: "open_ended",
	})

	assert.NoError(t, err)
	repo.option.AssertCalled(t, "DeleteByVariant", mock.Anything, variantID)
	repo.option.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
}

func TestQuestionService_Update_NotFound(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestQuestionService(repo)

	repo.question.On("UpdateFields", mock.Anything, mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)

	_, err := svc.Update(context.Background(), uuid.NewString(), &UpdateQuestionRequest{
		QuestionVariantName: "open_ended",
	})

	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestQuestionService_Delete_SoftDeletes(t *testing.T) {
	repo := newMockRepository()
	svc, publisher := newTestQuestionService(repo)

	repo.question.On("SoftDelete", mock.Anything, mock.Anything).Return(nil)

	err := svc.Delete(context.Background(), uuid.NewString())

	assert.NoError(t, err)
	repo.question.AssertNotCalled(t, "HardDelete", mock.Anything, mock.Anything)

	published := publisher.GetPublishedEvents()
	assert.Len(t, published, 1)
	assert.Equal(t, events.EventQuestionDeleted, published[0].Type)
}

func TestQuestionService_List_FiltersActive(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newTestQuestionService(repo)

	repo.question.On("List", mock.Anything, mock.MatchedBy(func(filters repositories.QuestionFilters) bool {
		return filters.IsActive != nil && *filters.IsActive
	})).Return([]*models.Question{{}, {}}, nil)

	questions, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, questions, 2)
}
