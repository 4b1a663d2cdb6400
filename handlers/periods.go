package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tutorly/models"
	"tutorly/utils"
)

// ListPeriods returns the deduplicated cross-branch period catalog, each
// entry carrying its past/active/future status.
func (h *ScheduleHandler) ListPeriods(c *gin.Context) {
	periods, err := h.Svc.PeriodCatalog(c.Request.Context(), time.Now())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load period catalog", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"periods": periods})
}

// ActivePeriod reports which period governs a branch on the reference date,
// or null when the normal schedule applies.
func (h *ScheduleHandler) ActivePeriod(c *gin.Context) {
	branch := c.Query("branch")
	if branch == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing selection", "query parameter 'branch' is required")
		return
	}

	date := referenceTime(c)
	period, err := h.Svc.ActivePeriod(c.Request.Context(), branch, date)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to resolve active period", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"branch": branch, "date": date.Format("2006-01-02"), "period": period})
}

// CreatePeriod validates and stores a period draft on a branch. Validation
// failures come back as the full list of violated rules; overlaps with
// existing periods are returned as warnings, not rejections.
func (h *ScheduleHandler) CreatePeriod(c *gin.Context) {
	branch := c.Param("branch")

	var draft models.PeriodDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Svc.CreatePeriod(c.Request.Context(), branch, draft)
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to create period", err.Error())
		return
	}
	if !result.Validation.Valid {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	h.Logger.Info("period created",
		zap.String("branch", branch),
		zap.String("period", result.Period.ID),
		zap.Int("conflicts", len(result.Conflicts)))
	c.JSON(http.StatusCreated, result)
}
