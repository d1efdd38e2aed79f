package controllers

import (
	"errors"
	"net/http"
	"time"

	"lina-nails-backend/config"
	"lina-nails-backend/models"
	"lina-nails-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentController handles booking CRUD. Loc is the business timezone
// used to interpret date-only and wall-clock inputs.
type AppointmentController struct {
	Loc *time.Location
}

// CreateAppointmentInput defines the expected JSON structure for booking
type CreateAppointmentInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Type  string `json:"type" binding:"required"`
	Time  string `json:"time" binding:"required"` // RFC3339, or HH:MM with date
	Date  string `json:"date"`                    // YYYY-MM-DD, used with HH:MM time
	Notes string `json:"notes"`
}

// UpdateAppointmentInput defines the expected JSON structure for editing
type UpdateAppointmentInput struct {
	Type  *string `json:"type"`
	Time  *string `json:"time"`
	Date  *string `json:"date"`
	Notes *string `json:"notes"`
}

// GetAppointments lists appointments for one calendar day
func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	dateParam := c.Query("date")
	if dateParam == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Date parameter is required")
		return
	}

	day, err := time.ParseInLocation("2006-01-02", dateParam, ac.Loc)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	var appointments []models.Appointment
	if err := config.DB.Preload("Client").
		Where("start_time >= ? AND start_time <= ?", utils.BeginningOfDay(day), utils.EndOfDay(day)).
		Order("start_time asc").
		Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func (ac *AppointmentController) GetAppointment(c *gin.Context) {
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Client").
		First(&appointment, "id = ?", apptUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// CreateAppointment books an appointment, creating the client on first visit
func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	serviceType := models.AppointmentType(input.Type)
	if _, ok := models.ServiceDurations[serviceType]; !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown service type")
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	startTime, err := ac.parseTime(input.Time, input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid time format")
		return
	}

	// Find the client by phone, or register them on first booking
	var client models.Client
	err = config.DB.Where("phone = ?", input.Phone).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		client = models.Client{Name: input.Name, Phone: input.Phone}
		err = config.DB.Create(&client).Error
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to resolve client")
		return
	}

	appointment := models.Appointment{
		ClientID:  client.ID,
		Type:      serviceType,
		StartTime: startTime,
		Notes:     input.Notes,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	appointment.Client = client
	c.JSON(http.StatusCreated, appointment)
}

// UpdateAppointment reschedules or edits an appointment
func (ac *AppointmentController) UpdateAppointment(c *gin.Context) {
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Client").
		First(&appointment, "id = ?", apptUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Type != nil {
		serviceType := models.AppointmentType(*input.Type)
		if _, ok := models.ServiceDurations[serviceType]; !ok {
			utils.RespondWithError(c, http.StatusBadRequest, "Unknown service type")
			return
		}
		appointment.Type = serviceType
		appointment.Duration = models.ServiceDurations[serviceType]
	}
	if input.Time != nil {
		date := ""
		if input.Date != nil {
			date = *input.Date
		}
		startTime, err := ac.parseTime(*input.Time, date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid time format")
			return
		}
		appointment.StartTime = startTime
	}
	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}

	// Keep the derived end time in sync with type and start
	appointment.EndTime = appointment.StartTime.Add(time.Duration(appointment.Duration) * time.Minute)

	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment cancels an appointment
func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	apptUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	result := config.DB.Where("id = ?", apptUUID).Delete(&models.Appointment{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted", "id": apptUUID})
}

// parseTime accepts either an RFC3339 instant or a HH:MM wall-clock time
// combined with a YYYY-MM-DD date (today when the date is omitted), read in
// the business timezone.
func (ac *AppointmentController) parseTime(value, date string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	clock, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, err
	}

	day := time.Now().In(ac.Loc)
	if date != "" {
		day, err = time.ParseInLocation("2006-01-02", date, ac.Loc)
		if err != nil {
			return time.Time{}, err
		}
	}

	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, ac.Loc), nil
}
