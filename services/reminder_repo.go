// services/reminder_repo.go
package services

import (
	"time"

	"lina-nails-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentRepository is the storage capability the scheduler needs:
// read a time window and atomically claim an appointment for a day.
type AppointmentRepository interface {
	FindDue(start, end time.Time, dayKey string) ([]models.Appointment, error)
	Claim(id uuid.UUID, dayKey string) (bool, error)
}

// GormAppointmentRepository backs the scheduler with PostgreSQL.
type GormAppointmentRepository struct {
	db *gorm.DB
}

func NewGormAppointmentRepository(db *gorm.DB) *GormAppointmentRepository {
	return &GormAppointmentRepository{db: db}
}

// FindDue returns appointments starting inside [start, end] that have not
// yet been claimed for dayKey, with the owning client loaded.
func (r *GormAppointmentRepository) FindDue(start, end time.Time, dayKey string) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.
		Preload("Client").
		Where("start_time >= ? AND start_time <= ?", start, end).
		Where("last_reminder_sent_for_day IS NULL OR last_reminder_sent_for_day <> ?", dayKey).
		Order("start_time asc").
		Find(&appointments).Error
	return appointments, err
}

// Claim marks the appointment as reminded for dayKey. The guard and the
// write happen in one conditional UPDATE, so of any number of concurrent
// claims for the same day exactly one sees RowsAffected == 1.
func (r *GormAppointmentRepository) Claim(id uuid.UUID, dayKey string) (bool, error) {
	result := r.db.Model(&models.Appointment{}).
		Where("id = ? AND (last_reminder_sent_for_day IS NULL OR last_reminder_sent_for_day <> ?)", id, dayKey).
		Updates(map[string]interface{}{
			"last_reminder_sent_for_day": dayKey,
			"last_reminder_sent_at":      time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
