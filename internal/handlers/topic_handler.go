package handlers

import (
	"net/http"

	"github.com/VV-Learning/question-bank-service/internal/services"
	"github.com/VV-Learning/question-bank-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// TopicHandler serves the /category endpoint. The path keeps the public
// name the storefront clients call, while the entity is a topic everywhere
// else in the codebase.
type TopicHandler struct {
	BaseHandler
	service services.TopicService
}

func NewTopicHandler(service services.TopicService, logger utils.Logger) *TopicHandler {
	return &TopicHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// GetTopics handles GET /category. With an id query parameter it returns
// one topic, otherwise the full list.
func (h *TopicHandler) GetTopics(c *gin.Context) {
	if id := queryID(c); id != "" {
		topic, err := h.service.GetByID(c.Request.Context(), id)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		h.RespondWithSuccess(c, http.StatusOK, "Topic retrieved successfully", topic)
		return
	}

	topics, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "Topics retrieved successfully", topics)
}

// CreateTopic handles POST /category
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var req services.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	topic, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogInfo(c, "Topic created", "topic_id", topic.ID)
	h.RespondWithSuccess(c, http.StatusCreated, "Topic created successfully", topic)
}

// UpdateTopic handles PUT /category?id=<uuid>
func (h *TopicHandler) UpdateTopic(c *gin.Context) {
	id, ok := requireQueryID(c, "Category ID is required")
	if !ok {
		return
	}

	var req services.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	topic, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Topic updated successfully", topic)
}

// DeleteTopic handles DELETE /category?id=<uuid>
func (h *TopicHandler) DeleteTopic(c *gin.Context) {
	id, ok := requireQueryID(c, "Category ID is required")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Topic deleted successfully", nil)
}
