package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"literacy_app_backend/middleware"
	"literacy_app_backend/models"
	"literacy_app_backend/quiz"
)

type QuizHandler struct {
	quiz *quiz.Service
	log  *zap.Logger
}

func NewQuizHandler(quizService *quiz.Service, log *zap.Logger) *QuizHandler {
	return &QuizHandler{quiz: quizService, log: log}
}

func (h *QuizHandler) SubmitQuiz(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var req models.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.quiz.Submit(userID, req.ModuleID, req.Answers)
	if err != nil {
		if err == quiz.ErrNoQuestions {
			c.JSON(http.StatusNotFound, gin.H{"error": "No questions found for this module"})
			return
		}
		h.log.Error("error submitting quiz", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit quiz"})
		return
	}

	c.JSON(http.StatusOK, result)
}
