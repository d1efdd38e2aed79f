package controllers

import (
	"net/http"
	"time"

	"lina-nails-backend/config"
	"lina-nails-backend/models"
	"lina-nails-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalClients         int64                `json:"totalClients"`
	AppointmentsToday    int64                `json:"appointmentsToday"`
	AppointmentsTomorrow int64                `json:"appointmentsTomorrow"`
	RemindersSentToday   int64                `json:"remindersSentToday"`
	NextAppointments     []models.Appointment `json:"nextAppointments"`
}

// DashboardController summarizes bookings and reminder activity. Loc is the
// business timezone used for the day boundaries.
type DashboardController struct {
	Loc *time.Location
}

func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	now := time.Now().In(dc.Loc)
	today := utils.BeginningOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)

	var overview DashboardOverview

	config.DB.Model(&models.Client{}).Count(&overview.TotalClients)

	config.DB.Model(&models.Appointment{}).
		Where("start_time >= ? AND start_time <= ?", today, utils.EndOfDay(today)).
		Count(&overview.AppointmentsToday)

	config.DB.Model(&models.Appointment{}).
		Where("start_time >= ? AND start_time <= ?", tomorrow, utils.EndOfDay(tomorrow)).
		Count(&overview.AppointmentsTomorrow)

	// Claims recorded today cover tomorrow's appointments
	config.DB.Model(&models.Appointment{}).
		Where("last_reminder_sent_for_day = ?", utils.DayKey(tomorrow)).
		Count(&overview.RemindersSentToday)

	if err := config.DB.Preload("Client").
		Where("start_time >= ?", now).
		Order("start_time asc").
		Limit(5).
		Find(&overview.NextAppointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, overview)
}
