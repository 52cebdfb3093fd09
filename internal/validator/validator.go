package validator

import (
	"reflect"
	"strings"

	"github.com/VV-Learning/question-bank-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// Validator is the main validator instance that combines struct-tag
// validation with the domain rules for questions and topics.
type Validator struct {
	structValidator   *validator.Validate
	questionValidator *QuestionValidator
	topicValidator    *TopicValidator
}

// New creates a new centralized validator instance
func New() *Validator {
	structValidator := validator.New()
	registerCustomValidators(structValidator)

	return &Validator{
		structValidator:   structValidator,
		questionValidator: NewQuestionValidator(),
		topicValidator:    NewTopicValidator(),
	}
}

// ValidateStruct validates struct tags only
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// Question returns the question rule validator
func (v *Validator) Question() *QuestionValidator {
	return v.questionValidator
}

// Topic returns the topic rule validator
func (v *Validator) Topic() *TopicValidator {
	return v.topicValidator
}

// registerCustomValidators registers all custom validation functions
func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("variant_name", validateVariantName)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateVariantName(fl validator.FieldLevel) bool {
	return models.VariantName(fl.Field().String()).IsValid()
}
