package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"literacy_app_backend/middleware"
	"literacy_app_backend/models"
	"literacy_app_backend/store"
)

type ProgressHandler struct {
	store store.Store
	log   *zap.Logger
}

func NewProgressHandler(st store.Store, log *zap.Logger) *ProgressHandler {
	return &ProgressHandler{store: st, log: log}
}

func (h *ProgressHandler) GetProgress(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	progress, err := h.store.ListProgress(userID)
	if err != nil {
		h.log.Error("error fetching progress", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress"})
		return
	}
	c.JSON(http.StatusOK, progress)
}

// MarkContentCompleted records that the user finished reading a module.
func (h *ProgressHandler) MarkContentCompleted(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	moduleID := c.Param("moduleId")

	if _, err := h.store.GetModule(moduleID); err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
			return
		}
		h.log.Error("error fetching module", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update progress"})
		return
	}

	contentCompleted := true
	progress, err := h.store.UpsertProgress(userID, moduleID, models.ProgressPatch{
		ContentCompleted: &contentCompleted,
	})
	if err != nil {
		h.log.Error("error upserting progress", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update progress"})
		return
	}
	c.JSON(http.StatusOK, progress)
}

func (h *ProgressHandler) GetResults(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	results, err := h.store.ListQuizResults(userID)
	if err != nil {
		h.log.Error("error fetching quiz results", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch results"})
		return
	}
	c.JSON(http.StatusOK, results)
}
