package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"literacy_app_backend/store"
)

type ModuleHandler struct {
	store store.Store
	log   *zap.Logger
}

func NewModuleHandler(st store.Store, log *zap.Logger) *ModuleHandler {
	return &ModuleHandler{store: st, log: log}
}

func (h *ModuleHandler) GetModules(c *gin.Context) {
	modules, err := h.store.ListModules()
	if err != nil {
		h.log.Error("error fetching modules", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch modules"})
		return
	}
	c.JSON(http.StatusOK, modules)
}

func (h *ModuleHandler) GetModuleByID(c *gin.Context) {
	module, err := h.store.GetModule(c.Param("id"))
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
			return
		}
		h.log.Error("error fetching module", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch module"})
		return
	}
	c.JSON(http.StatusOK, module)
}

// GetModuleQuestions returns the module's questions in catalog order. The
// correct answer index is excluded from serialization, so the response never
// carries the answer key.
func (h *ModuleHandler) GetModuleQuestions(c *gin.Context) {
	moduleID := c.Param("id")

	if _, err := h.store.GetModule(moduleID); err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
			return
		}
		h.log.Error("error fetching module", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}

	questions, err := h.store.ListQuestions(moduleID)
	if err != nil {
		h.log.Error("error fetching questions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}
