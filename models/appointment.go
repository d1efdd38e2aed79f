package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentType string

const (
	Manicure  AppointmentType = "MANICURE"
	Pedicure  AppointmentType = "PEDICURE"
	BothBasic AppointmentType = "BOTH_BASIC"
	BothFull  AppointmentType = "BOTH_FULL"
	Eyebrows  AppointmentType = "EYEBROWS"
	Lashes    AppointmentType = "LASHES"
)

// ServiceDurations maps each service to its slot length in minutes.
var ServiceDurations = map[AppointmentType]int{
	Manicure:  30,
	Pedicure:  45,
	BothBasic: 60,
	BothFull:  90,
	Eyebrows:  30,
	Lashes:    120,
}

type Appointment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClientID uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`
	Client   Client    `gorm:"foreignKey:ClientID" json:"client"`

	Type      AppointmentType `gorm:"type:varchar(20);not null" json:"type"`
	StartTime time.Time       `gorm:"index;not null" json:"startTime"`
	EndTime   time.Time       `gorm:"not null" json:"endTime"`
	Duration  int             `json:"duration"` // minutes
	Notes     string          `gorm:"type:text" json:"notes"`

	// Reminder claim fields, written only by the atomic claim update.
	// LastReminderSentForDay holds the YYYY-MM-DD key of the day the last
	// reminder covered; at most one claim can succeed per appointment per day.
	LastReminderSentForDay *string    `gorm:"type:varchar(10);index" json:"lastReminderSentForDay,omitempty"`
	LastReminderSentAt     *time.Time `json:"lastReminderSentAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Initialize UUID and derive duration/end time before creating
func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Duration == 0 {
		a.Duration = ServiceDurations[a.Type]
	}
	if a.EndTime.IsZero() {
		a.EndTime = a.StartTime.Add(time.Duration(a.Duration) * time.Minute)
	}
	return
}
