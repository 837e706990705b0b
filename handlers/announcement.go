package handlers

import (
	"errors"
	"net/http"

	"campushub/models"
	"campushub/services/announcement"
	"campushub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AnnouncementHandler struct {
	Service announcement.AnnouncementService
}

func NewAnnouncementHandler(service announcement.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{Service: service}
}

// ListHandler returns published announcements, newest first. Public.
func (h *AnnouncementHandler) ListHandler(c *gin.Context) {
	announcements, err := h.Service.ListPublished(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list announcements", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list announcements")
		return
	}
	c.JSON(http.StatusOK, announcements)
}

// ListAllHandler includes scheduled, not-yet-published announcements.
func (h *AnnouncementHandler) ListAllHandler(c *gin.Context) {
	announcements, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list announcements", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list announcements")
		return
	}
	c.JSON(http.StatusOK, announcements)
}

func (h *AnnouncementHandler) CreateHandler(c *gin.Context) {
	var input models.AnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Title and content are required")
		return
	}

	created, err := h.Service.Create(c.Request.Context(), c.GetString("userID"), input)
	if err != nil {
		utils.GetLogger().Error("Failed to create announcement", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create announcement")
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *AnnouncementHandler) UpdateHandler(c *gin.Context) {
	var input models.AnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Title and content are required")
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, announcement.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Announcement not found")
			return
		}
		utils.GetLogger().Error("Failed to update announcement", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update announcement")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *AnnouncementHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, announcement.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Announcement not found")
			return
		}
		utils.GetLogger().Error("Failed to delete announcement", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete announcement")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted successfully"})
}
