package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorly/utils"
)

// Occupancy returns a branch's daily and weekly occupancy snapshots:
// programmed vs capacity hours, availability, rate, and under-utilized day
// flags with the estimated number of extra sessions that would fit.
func (h *ScheduleHandler) Occupancy(c *gin.Context) {
	branch := c.Query("branch")
	if branch == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing selection", "query parameter 'branch' is required")
		return
	}

	week, err := h.Svc.Occupancy(c.Request.Context(), branch)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to compute occupancy", err.Error())
		return
	}
	c.JSON(http.StatusOK, week)
}
