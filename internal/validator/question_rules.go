package validator

import (
	"github.com/VV-Learning/question-bank-service/internal/errors"
	"github.com/VV-Learning/question-bank-service/internal/models"
)

// Messages are kept byte-for-byte compatible with the storefront clients,
// Vietnamese text included.
const (
	MsgMissingQuestionText = "thiếu trường question_en và question_vi"
	MsgInvalidVariantName  = "question_variant_name là bắt buộc và phải là open_ended hoặc multiple_choice"
	MsgMissingOptions      = "question_variant_options là bắt buộc khi question_variant_name là multiple_choice"
	MsgMissingTopicName    = "thiếu trường name_en và name_vi"
)

// QuestionPayload carries the fields the ordered question rules inspect.
type QuestionPayload struct {
	QuestionEN  string
	QuestionVI  string
	VariantName models.VariantName
	OptionCount int
}

// QuestionValidator enforces the question rules in a fixed order; the first
// violated rule wins and no store access happens before it passes.
type QuestionValidator struct{}

func NewQuestionValidator() *QuestionValidator {
	return &QuestionValidator{}
}

// ValidateCreate runs all three create rules in order.
func (qv *QuestionValidator) ValidateCreate(p QuestionPayload) errors.ValidationErrors {
	if p.QuestionEN == "" || p.QuestionVI == "" {
		return errors.ValidationErrors{{
			Field:   "question_en",
			Message: MsgMissingQuestionText,
			Rule:    "required",
		}}
	}
	return qv.ValidateVariant(p.VariantName, p.OptionCount)
}

// ValidateVariant runs the variant rules only. The update path re-validates
// these exactly as create does.
func (qv *QuestionValidator) ValidateVariant(name models.VariantName, optionCount int) errors.ValidationErrors {
	if !name.IsValid() {
		return errors.ValidationErrors{{
			Field:   "question_variant_name",
			Message: MsgInvalidVariantName,
			Rule:    "variant_name",
			Value:   string(name),
		}}
	}
	if name == models.VariantMultipleChoice && optionCount == 0 {
		return errors.ValidationErrors{{
			Field:   "question_variant_options",
			Message: MsgMissingOptions,
			Rule:    "required",
		}}
	}
	return nil
}

// TopicValidator enforces the bilingual name rule for topics.
type TopicValidator struct{}

func NewTopicValidator() *TopicValidator {
	return &TopicValidator{}
}

func (tv *TopicValidator) ValidateNames(nameEN, nameVI string) errors.ValidationErrors {
	if nameEN == "" || nameVI == "" {
		return errors.ValidationErrors{{
			Field:   "name_en",
			Message: MsgMissingTopicName,
			Rule:    "required",
		}}
	}
	return nil
}
