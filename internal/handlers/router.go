package handlers

import (
	"net/http"

	"github.com/VV-Learning/question-bank-service/internal/services"
	"github.com/VV-Learning/question-bank-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	questionHandler     *QuestionHandler
	topicHandler        *TopicHandler
	importExportHandler *ImportExportHandler
}

func NewHandlerManager(
	questionService services.QuestionService,
	topicService services.TopicService,
	importExportService services.ImportExportService,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		questionHandler:     NewQuestionHandler(questionService, logger),
		topicHandler:        NewTopicHandler(topicService, logger),
		importExportHandler: NewImportExportHandler(importExportService, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Question endpoint, method-dispatched on a single path
	router.GET("/question", hm.questionHandler.GetQuestions)
	router.POST("/question", hm.questionHandler.CreateQuestion)
	router.PUT("/question", hm.questionHandler.UpdateQuestion)
	router.DELETE("/question", hm.questionHandler.DeleteQuestion)

	// Bulk import/export
	router.POST("/question/import", hm.importExportHandler.ImportQuestions)
	router.GET("/question/export", hm.importExportHandler.ExportQuestions)

	// Topic endpoint, on the /category path the clients consume
	router.GET("/category", hm.topicHandler.GetTopics)
	router.POST("/category", hm.topicHandler.CreateTopic)
	router.PUT("/category", hm.topicHandler.UpdateTopic)
	router.DELETE("/category", hm.topicHandler.DeleteTopic)

	// Unsupported methods on known paths answer 405 in the same envelope
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
			Success: false,
			Error:   "Method not allowed",
		})
	})
}

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "question-bank-service",
	})
}
