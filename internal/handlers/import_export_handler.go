package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/VV-Learning/question-bank-service/internal/services"
	"github.com/VV-Learning/question-bank-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// ImportExportHandler serves bulk question import and export.
type ImportExportHandler struct {
	BaseHandler
	service services.ImportExportService
}

func NewImportExportHandler(service services.ImportExportService, logger utils.Logger) *ImportExportHandler {
	return &ImportExportHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// ImportQuestions handles POST /question/import with a multipart "file" field.
func (h *ImportExportHandler) ImportQuestions(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Import file is required", err)
		return
	}

	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".xlsx" {
		h.RespondWithError(c, http.StatusBadRequest, "Import file must be an .xlsx workbook", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Cannot read import file", err)
		return
	}
	defer file.Close()

	result, err := h.service.ImportQuestionsFromExcel(c.Request.Context(), file)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogInfo(c, "Questions imported",
		"total_rows", result.TotalRows,
		"success_count", result.SuccessCount,
		"error_count", result.ErrorCount)
	h.RespondWithSuccess(c, http.StatusOK, "Questions imported successfully", result)
}

// ExportQuestions handles GET /question/export?format=xlsx|csv (xlsx default).
func (h *ImportExportHandler) ExportQuestions(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", "xlsx"))
	stamp := time.Now().Format("2006-01-02")

	switch format {
	case "xlsx":
		data, err := h.service.ExportQuestionsToExcel(c.Request.Context())
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=questions_%s.xlsx", stamp))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	case "csv":
		data, err := h.service.ExportQuestionsToCSV(c.Request.Context())
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=questions_%s.csv", stamp))
		c.Data(http.StatusOK, "text/csv", data)
	default:
		h.RespondWithError(c, http.StatusBadRequest, "Unsupported export format", nil)
	}
}
