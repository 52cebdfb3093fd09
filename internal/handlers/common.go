package handlers

import (
	"errors"
	"net/http"

	apperrors "github.com/VV-Learning/question-bank-service/internal/errors"
	"github.com/VV-Learning/question-bank-service/internal/services"
	"github.com/VV-Learning/question-bank-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// ===== COMMON RESPONSE STRUCTURES =====

// SuccessResponse is the envelope for every successful response.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for every failed response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ===== BASE HANDLER STRUCT =====

// BaseHandler provides common logging and response helpers for all handlers
type BaseHandler struct {
	logger utils.Logger
}

// NewBaseHandler creates a new base handler with logging capability
func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{
		logger: logger,
	}
}

// LogError logs error details with request context
func (h *BaseHandler) LogError(c *gin.Context, err error, message string, additionalFields ...interface{}) {
	fields := []interface{}{
		"request_id", c.GetHeader("X-Request-ID"),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	}
	fields = append(fields, additionalFields...)

	h.logger.LogError(err, message, fields...)
}

// LogInfo logs informational messages with request context
func (h *BaseHandler) LogInfo(c *gin.Context, message string, additionalFields ...interface{}) {
	fields := []interface{}{
		"request_id", c.GetHeader("X-Request-ID"),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	}
	fields = append(fields, additionalFields...)

	h.logger.Info(message, fields...)
}

// RespondWithSuccess sends a consistent success envelope
func (h *BaseHandler) RespondWithSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondWithError sends a consistent error envelope and logs it
func (h *BaseHandler) RespondWithError(c *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		h.LogError(c, err, message, "status_code", statusCode)
	} else {
		h.logger.Warn(message, "status_code", statusCode, "path", c.Request.URL.Path)
	}

	c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// handleServiceError maps service-layer errors to HTTP responses.
// Validation failures surface only their first violated rule.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var verrs apperrors.ValidationErrors
	if errors.As(err, &verrs) {
		h.RespondWithError(c, http.StatusBadRequest, verrs.Error(), err)
		return
	}

	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		h.RespondWithError(c, http.StatusBadRequest, verr.Message, err)
		return
	}

	if services.IsNotFound(err) {
		h.RespondWithError(c, http.StatusNotFound, err.Error(), err)
		return
	}

	h.RespondWithError(c, http.StatusInternalServerError, err.Error(), err)
}
