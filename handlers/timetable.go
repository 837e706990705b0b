package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"campushub/models"
	"campushub/services/auth"
	"campushub/services/timetable"
	"campushub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TimetableHandler struct {
	Service timetable.TimetableService
	Auth    auth.AuthService
}

func NewTimetableHandler(service timetable.TimetableService, authSvc auth.AuthService) *TimetableHandler {
	return &TimetableHandler{Service: service, Auth: authSvc}
}

// CreateManualHandler saves a complete timetable for a class (admin only).
func (h *TimetableHandler) CreateManualHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var submission models.TimetableSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		logger.Error("Invalid timetable submission", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	createdBy := c.GetString("userID")
	created, err := h.Service.CreateManual(c.Request.Context(), createdBy, submission)
	if err != nil {
		if errors.Is(err, timetable.ErrInvalidInput) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Failed to save timetable", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save timetable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Timetable created successfully for %s - Semester %s, Section %s",
			created.Branch, created.Semester, created.Section),
		"id":       created.ID,
		"branch":   created.Branch,
		"section":  created.Section,
		"semester": created.Semester,
	})
}

// ListHandler returns all class timetables (admin only).
func (h *TimetableHandler) ListHandler(c *gin.Context) {
	timetables, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list timetables", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list timetables")
		return
	}
	c.JSON(http.StatusOK, timetables)
}

// GetByClassHandler returns the timetable for a branch/section, optionally
// narrowed by semester.
func (h *TimetableHandler) GetByClassHandler(c *gin.Context) {
	branch := c.Param("branch")
	section := c.Param("section")
	semester := c.Query("semester")

	found, err := h.Service.GetByClass(c.Request.Context(), branch, section, semester)
	if err != nil {
		if errors.Is(err, timetable.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Timetable not found for this class")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch timetable")
		return
	}
	c.JSON(http.StatusOK, found)
}

// MyTimetableHandler resolves the authenticated student's timetable from
// their profile.
func (h *TimetableHandler) MyTimetableHandler(c *gin.Context) {
	userID := c.GetString("userID")
	student, err := h.Auth.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication error")
		return
	}
	if student.Role != models.RoleStudent {
		utils.JSONError(c, http.StatusForbidden, "This endpoint is only for students")
		return
	}

	found, err := h.Service.GetForStudent(c.Request.Context(), student)
	if err != nil {
		switch {
		case errors.Is(err, timetable.ErrProfileIncomplete):
			utils.JSONError(c, http.StatusBadRequest, timetable.ErrProfileIncomplete.Error())
		case errors.Is(err, timetable.ErrNotFound):
			detail := fmt.Sprintf("No timetable found for %s, Section %s", student.Branch, student.Section)
			if student.Semester != "" {
				detail += fmt.Sprintf(", Semester %s", student.Semester)
			}
			utils.JSONError(c, http.StatusNotFound, detail)
		default:
			utils.GetLogger().Error("Failed to fetch student timetable", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch timetable")
		}
		return
	}
	c.JSON(http.StatusOK, found)
}

// DeleteHandler removes a timetable by ID (admin only).
func (h *TimetableHandler) DeleteHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, timetable.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Timetable not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete timetable")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Timetable deleted successfully"})
}

// ExportCSVHandler streams a timetable as CSV (admin only).
func (h *TimetableHandler) ExportCSVHandler(c *gin.Context) {
	id := c.Param("id")
	data, err := h.Service.ExportCSV(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, timetable.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Timetable not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to export timetable")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=timetable_%s.csv", id))
	c.Data(http.StatusOK, "text/csv", data)
}
