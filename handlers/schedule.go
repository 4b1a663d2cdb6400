package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tutorly/models"
	"tutorly/services/schedule"
	"tutorly/utils"
)

// ScheduleHandler serves the timetable, period and occupancy views.
type ScheduleHandler struct {
	Svc    schedule.ScheduleService
	Logger *zap.Logger
}

func NewScheduleHandler(svc schedule.ScheduleService, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{Svc: svc, Logger: logger}
}

// referenceTime reads the optional "date" query parameter (YYYY-MM-DD),
// defaulting to now. A date-only reference keeps its midnight clock, which
// is what the weekly views want.
func referenceTime(c *gin.Context) time.Time {
	if raw := c.Query("date"); raw != "" {
		if t, err := time.ParseInLocation(schedule.DateLayout, raw, time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}

func selectionFrom(c *gin.Context, defaultPeriod string) schedule.Selection {
	period := c.Query("period")
	if period == "" {
		period = defaultPeriod
	}
	return schedule.Selection{
		Period: period,
		Level:  c.Query("level"),
		Now:    referenceTime(c),
	}
}

// WeekView returns the weekly timetable for a branch, filtered by period
// regime and level, sorted by day then start time.
func (h *ScheduleHandler) WeekView(c *gin.Context) {
	branch := c.Query("branch")
	if branch == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing selection", "query parameter 'branch' is required")
		return
	}

	sel := selectionFrom(c, models.PeriodNormal)
	sessions, err := h.Svc.WeekView(c.Request.Context(), branch, sel)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to load schedule", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"branch":   branch,
		"period":   sel.Period,
		"level":    sel.Level,
		"sessions": sessions,
	})
}

// CurrentView returns the sessions relevant right now with their live
// status. The period selector defaults to "auto": the active period if one
// governs today, the normal schedule otherwise.
func (h *ScheduleHandler) CurrentView(c *gin.Context) {
	branch := c.Query("branch")
	if branch == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing selection", "query parameter 'branch' is required")
		return
	}

	sel := selectionFrom(c, models.PeriodAuto)
	sessions, err := h.Svc.CurrentView(c.Request.Context(), branch, sel)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to load current sessions", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"branch":   branch,
		"at":       sel.Now,
		"sessions": sessions,
	})
}

// SetSessionStatus records or clears a manual override (cancelled, delayed,
// absent) on one session.
func (h *ScheduleHandler) SetSessionStatus(c *gin.Context) {
	branch := c.Param("branch")
	sessionID := c.Param("sessionID")

	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.SetSessionStatus(c.Request.Context(), branch, sessionID, input.Status); err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to update session status", err.Error())
		return
	}

	h.Logger.Info("session status updated",
		zap.String("branch", branch),
		zap.String("session", sessionID),
		zap.String("status", input.Status))
	c.JSON(http.StatusOK, gin.H{"branch": branch, "session": sessionID, "status": input.Status})
}
