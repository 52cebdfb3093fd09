package validator

import (
	"testing"

	"github.com/VV-Learning/question-bank-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestQuestionValidator_ValidateCreate(t *testing.T) {
	qv := NewQuestionValidator()

	tests := []struct {
		name        string
		payload     QuestionPayload
		wantMessage string
	}{
		{
			name: "valid open_ended",
			payload: QuestionPayload{
				QuestionEN:  "What is 2+2?",
				QuestionVI:  "2+2 là gì?",
				VariantName: models.VariantOpenEnded,
			},
		},
		{
			name: "valid multiple_choice with options",
			payload: QuestionPayload{
				QuestionEN:  "What is 2+2?",
				QuestionVI:  "2+2 là gì?",
				VariantName: models.VariantMultipleChoice,
				OptionCount: 2,
			},
		},
		{
			name: "missing english text",
			payload: QuestionPayload{
				QuestionVI:  "2+2 là gì?",
				VariantName: models.VariantOpenEnded,
			},
			wantMessage: MsgMissingQuestionText,
		},
		{
			name: "missing vietnamese text",
			payload: QuestionPayload{
				QuestionEN:  "What is 2+2?",
				VariantName: models.VariantOpenEnded,
			},
			wantMessage: MsgMissingQuestionText,
		},
		{
			name: "empty variant name",
			payload: QuestionPayload{
				QuestionEN: "What is 2+2?",
				QuestionVI: "2+2 là gì?",
			},
			wantMessage: MsgInvalidVariantName,
		},
		{
			name: "unknown variant name",
			payload: QuestionPayload{
				QuestionEN:  "What is 2+2?",
				QuestionVI:  "2+2 là gì?",
				VariantName: "true_false",
			},
			wantMessage: MsgInvalidVariantName,
		},
		{
			name: "multiple_choice without options",
			payload: QuestionPayload{
				QuestionEN:  "What is 2+2?",
				QuestionVI:  "2+2 là gì?",
				VariantName: models.VariantMultipleChoice,
			},
			wantMessage: MsgMissingOptions,
		},
		{
			// text presence is checked before the variant name
			name: "missing text wins over bad variant",
			payload: QuestionPayload{
				VariantName: "true_false",
			},
			wantMessage: MsgMissingQuestionText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verrs := qv.ValidateCreate(tt.payload)
			if tt.wantMessage == "" {
				assert.Empty(t, verrs)
				return
			}
			assert.Len(t, verrs, 1)
			assert.Equal(t, tt.wantMessage, verrs.Error())
		})
	}
}

func TestQuestionValidator_ValidateVariant_OpenEndedIgnoresOptionCount(t *testing.T) {
	qv := NewQuestionValidator()

	verrs := qv.ValidateVariant(models.VariantOpenEnded, 0)
	assert.Empty(t, verrs)

	// a stray option count is not an error for open_ended
	verrs = qv.ValidateVariant(models.VariantOpenEnded, 3)
	assert.Empty(t, verrs)
}

func TestTopicValidator_ValidateNames(t *testing.T) {
	tv := NewTopicValidator()

	assert.Empty(t, tv.ValidateNames("Grammar", "Ngữ pháp"))

	verrs := tv.ValidateNames("Grammar", "")
	assert.Len(t, verrs, 1)
	assert.Equal(t, MsgMissingTopicName, verrs.Error())

	verrs = tv.ValidateNames("", "Ngữ pháp")
	assert.Equal(t, MsgMissingTopicName, verrs.Error())
}

func TestValidator_StructTags(t *testing.T) {
	v := New()

	type row struct {
		Name    string `json:"question_variant_name" validate:"required,variant_name"`
		Text    string `json:"question_en" validate:"required"`
		Comment string `json:"comment"`
	}

	assert.NoError(t, v.ValidateStruct(row{Name: "open_ended", Text: "q"}))
	assert.Error(t, v.ValidateStruct(row{Name: "true_false", Text: "q"}))
	assert.Error(t, v.ValidateStruct(row{Name: "open_ended"}))
}
