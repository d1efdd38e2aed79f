// controllers/reminder.go
package controllers

import (
	"net/http"

	"lina-nails-backend/services"
	"lina-nails-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReminderController exposes the manual trigger for the reminder batch.
type ReminderController struct {
	Service *services.ReminderService
}

// RunReminders runs the same batch the nightly cron runs and returns its
// summary. Safe to call while the cron is running: the per-appointment
// claim makes double-sends impossible, so a manual trigger is always
// harmless.
func (rc *ReminderController) RunReminders(c *gin.Context) {
	summary, err := rc.Service.RunNow()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to run reminders: "+err.Error())
		return
	}

	message := "Reminders for tomorrow's appointments have been processed"
	if summary.Skipped {
		message = "Skipped: tomorrow is the salon's rest day"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"summary": summary,
	})
}
