package handlers

import (
	"context"
	"net/http"

	"campushub/models"
	ai "campushub/services/intelligence"
	"campushub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AIHandler struct {
	Service ai.DraftService
}

func NewAIHandler(service ai.DraftService) *AIHandler {
	return &AIHandler{Service: service}
}

// DraftAnnouncementHandler generates announcement copy from a topic and
// optional tone/audience hints.
func (h *AIHandler) DraftAnnouncementHandler(c *gin.Context) {
	h.draft(c, h.Service.DraftAnnouncement)
}

// DraftDescriptionHandler generates a short description for a document.
func (h *AIHandler) DraftDescriptionHandler(c *gin.Context) {
	h.draft(c, h.Service.DraftDescription)
}

func (h *AIHandler) draft(c *gin.Context, generate func(context.Context, models.DraftRequest) (string, error)) {
	var req models.DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Topic is required")
		return
	}

	content, err := generate(c.Request.Context(), req)
	if err != nil {
		utils.GetLogger().Error("AI drafting failed", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "AI assistant is unavailable right now")
		return
	}
	c.JSON(http.StatusOK, models.DraftResponse{Content: content})
}
