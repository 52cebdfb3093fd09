package handlers

import (
	"net/http"

	"github.com/VV-Learning/question-bank-service/internal/services"
	"github.com/VV-Learning/question-bank-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// QuestionHandler serves the /question endpoint.
type QuestionHandler struct {
	BaseHandler
	service services.QuestionService
}

func NewQuestionHandler(service services.QuestionService, logger utils.Logger) *QuestionHandler {
	return &QuestionHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GetQuestions handles GET /question. With an id query parameter it returns
// one question, otherwise the full active list.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	if id := queryID(c); id != "" {
		question, err := h.service.GetByID(c.Request.Context(), id)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		h.RespondWithSuccess(c, http.StatusOK, "Question retrieved successfully", question)
		return
	}

	questions, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "Questions retrieved successfully", questions)
}

// CreateQuestion handles POST /question
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req services.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	question, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogInfo(c, "Question created", "question_id", question.ID)
	h.RespondWithSuccess(c, http.StatusCreated, "Thêm câu hỏi thành công", question)
}

// UpdateQuestion handles PUT /question?id=<uuid>
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id, ok := requireQueryID(c, "Question ID is required")
	if !ok {
		return
	}

	var req services.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	question, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Question updated successfully", question)
}

// DeleteQuestion handles DELETE /question?id=<uuid>
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id, ok := requireQueryID(c, "Question ID is required")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Question deleted successfully", nil)
}
