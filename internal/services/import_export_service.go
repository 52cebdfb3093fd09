package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/VV-Learning/question-bank-service/internal/errors"
	"github.com/VV-Learning/question-bank-service/internal/models"
	"github.com/VV-Learning/question-bank-service/internal/validator"
	"github.com/xuri/excelize/v2"
)

// optionSeparator splits the option columns of one spreadsheet row.
const optionSeparator = ";"

// ImportRow is one spreadsheet row before it becomes a create request.
type ImportRow struct {
	QuestionEN  string `json:"question_en" validate:"required"`
	QuestionVI  string `json:"question_vi" validate:"required"`
	ExampleEN   string `json:"example_en"`
	ExampleVI   string `json:"example_vi"`
	VariantName string `json:"question_variant_name" validate:"required,variant_name"`
	OptionsEN   string `json:"options_en"`
	OptionsVI   string `json:"options_vi"`
	// CorrectOption is the 1-based index into the option columns.
	CorrectOption int `json:"correct_option"`
}

type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ImportResult struct {
	TotalRows    int                `json:"total_rows"`
	SuccessCount int                `json:"success_count"`
	ErrorCount   int                `json:"error_count"`
	Errors       []ImportRowError   `json:"errors,omitempty"`
	Created      []*models.Question `json:"created,omitempty"`
}

type ImportExportService interface {
	ImportQuestionsFromExcel(ctx context.Context, reader io.Reader) (*ImportResult, error)
	ExportQuestionsToExcel(ctx context.Context) ([]byte, error)
	ExportQuestionsToCSV(ctx context.Context) ([]byte, error)
}

type importExportService struct {
	questions QuestionService
	validator *validator.Validator
	logger    *slog.Logger
}

func NewImportExportService(questions QuestionService, v *validator.Validator, logger *slog.Logger) ImportExportService {
	return &importExportService{
		questions: questions,
		validator: v,
		logger:    logger,
	}
}

var exportHeaders = []string{
	"question_en", "question_vi", "example_en", "example_vi",
	"question_variant_name", "options_en", "options_vi", "correct_option",
}

// ===== IMPORT OPERATIONS =====

// ImportQuestionsFromExcel parses the first sheet and funnels every valid
// row through the regular create path, compensation protocol included.
func (s *importExportService) ImportQuestionsFromExcel(ctx context.Context, reader io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewValidationError("file", "Excel file has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, errors.NewValidationError("file", "Excel must have header row and at least one data row", len(rows))
	}

	headerMap := make(map[string]int)
	for i, header := range rows[0] {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}

	result := &ImportResult{TotalRows: len(rows) - 1}

	for rowIndex, row := range rows[1:] {
		rowNumber := rowIndex + 2
		importRow := s.parseRow(row, headerMap)

		if err := s.validator.ValidateStruct(importRow); err != nil {
			for _, verr := range errors.ToValidationErrors(err) {
				result.Errors = append(result.Errors, ImportRowError{
					Row:     rowNumber,
					Field:   verr.Field,
					Message: verr.Message,
				})
			}
			result.ErrorCount++
			continue
		}

		created, err := s.questions.Create(ctx, importRow.toCreateRequest())
		if err != nil {
			result.Errors = append(result.Errors, ImportRowError{
				Row:     rowNumber,
				Message: err.Error(),
			})
			result.ErrorCount++
			continue
		}

		result.Created = append(result.Created, created)
		result.SuccessCount++
	}

	s.logger.Info("Excel import completed",
		"total_rows", result.TotalRows,
		"success_count", result.SuccessCount,
		"error_count", result.ErrorCount)

	return result, nil
}

func (s *importExportService) parseRow(row []string, headerMap map[string]int) *ImportRow {
	cell := func(name string) string {
		idx, ok := headerMap[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	correct, _ := strconv.Atoi(cell("correct_option"))

	return &ImportRow{
		QuestionEN:    cell("question_en"),
		QuestionVI:    cell("question_vi"),
		ExampleEN:     cell("example_en"),
		ExampleVI:     cell("example_vi"),
		VariantName:   cell("question_variant_name"),
		OptionsEN:     cell("options_en"),
		OptionsVI:     cell("options_vi"),
		CorrectOption: correct,
	}
}

func (r *ImportRow) toCreateRequest() *CreateQuestionRequest {
	req := &CreateQuestionRequest{
		QuestionEN:          r.QuestionEN,
		QuestionVI:          r.QuestionVI,
		QuestionVariantName: r.VariantName,
	}
	if r.ExampleEN != "" {
		req.ExampleEN = &r.ExampleEN
	}
	if r.ExampleVI != "" {
		req.ExampleVI = &r.ExampleVI
	}

	if r.VariantName != string(models.VariantMultipleChoice) {
		return req
	}

	textsEN := splitOptions(r.OptionsEN)
	textsVI := splitOptions(r.OptionsVI)
	for i, textEN := range textsEN {
		option := OptionInput{TextEN: textEN}
		if i < len(textsVI) {
			option.TextVI = textsVI[i]
		}
		if r.CorrectOption == i+1 {
			isCorrect := true
			option.IsCorrect = &isCorrect
		}
		req.QuestionVariantOptions = append(req.QuestionVariantOptions, option)
	}
	return req
}

func splitOptions(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, optionSeparator)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

// ===== EXPORT OPERATIONS =====

func (s *importExportService) ExportQuestionsToExcel(ctx context.Context) ([]byte, error) {
	questions, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "Questions"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for rowIndex, question := range questions {
		row := questionToRow(question)
		for colIndex, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *importExportService) ExportQuestionsToCSV(ctx context.Context) ([]byte, error) {
	questions, err := s.questions.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf strings.Builder
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, question := range questions {
		if err := writer.Write(questionToRow(question)); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}
	return []byte(buf.String()), nil
}

func questionToRow(question *models.Question) []string {
	row := []string{
		question.QuestionEN,
		question.QuestionVI,
		deref(question.ExampleEN),
		deref(question.ExampleVI),
	}

	var variantName, optionsEN, optionsVI, correct string
	if len(question.Variants) > 0 {
		variant := question.Variants[0]
		variantName = string(variant.Name)

		textsEN := make([]string, 0, len(variant.Options))
		textsVI := make([]string, 0, len(variant.Options))
		for i, option := range variant.Options {
			textsEN = append(textsEN, option.TextEN)
			textsVI = append(textsVI, option.TextVI)
			if option.IsCorrect && correct == "" {
				correct = strconv.Itoa(i + 1)
			}
		}
		optionsEN = strings.Join(textsEN, optionSeparator)
		optionsVI = strings.Join(textsVI, optionSeparator)
	}

	return append(row, variantName, optionsEN, optionsVI, correct)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
