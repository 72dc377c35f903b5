package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"loon-backend/services"
	"loon-backend/utils"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

// GetSalonDashboard returns the salon overview: all bookings with resolved
// customer names, total count, and revenue over completed bookings.
func (ctl *DashboardController) GetSalonDashboard(c *gin.Context) {
	salonID, ok := accountUUID(c)
	if !ok {
		return
	}

	dashboard, err := ctl.Dashboard.LoadDashboard(c.Request.Context(), salonID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
