// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"time"

	"lina-nails-backend/config"
	"lina-nails-backend/metrics"
	"lina-nails-backend/utils"

	"github.com/robfig/cron/v3"
)

// RunSummary reports what a single reminder batch run did.
type RunSummary struct {
	DayKey     string `json:"dayKey"`
	Skipped    bool   `json:"skipped"` // tomorrow is the rest day
	Candidates int    `json:"candidates"`
	Attempted  int    `json:"attempted"`
	Sent       int    `json:"sent"`
	Failed     int    `json:"failed"`
}

// ReminderService runs the daily reminder batch: find tomorrow's
// appointments, claim each one for the day, and send a WhatsApp reminder to
// the ones it won. The claim is the only synchronization between overlapping
// runs; the cron trigger and the manual endpoint share this exact logic.
type ReminderService struct {
	repo    AppointmentRepository
	sender  Sender
	metrics *metrics.ReminderMetrics

	loc                *time.Location
	defaultCountryCode string
	restDay            time.Weekday
	reminderHour       int
	lang               string
	sendDelay          time.Duration

	now func() time.Time
}

func NewReminderService(cfg config.Config, repo AppointmentRepository, sender Sender, m *metrics.ReminderMetrics) *ReminderService {
	loc, fallback := utils.ResolveLocation(cfg.TimezoneCandidates, cfg.UTCOffsetMinutes)
	if fallback {
		log.Printf("Reminder scheduler using fixed-offset timezone %s", loc)
	}

	return &ReminderService{
		repo:               repo,
		sender:             sender,
		metrics:            m,
		loc:                loc,
		defaultCountryCode: cfg.DefaultCountryCode,
		restDay:            cfg.RestDay,
		reminderHour:       cfg.ReminderHour,
		lang:               cfg.ReminderLang,
		sendDelay:          cfg.SendDelay,
		now:                time.Now,
	}
}

// Location returns the effective business timezone.
func (s *ReminderService) Location() *time.Location {
	return s.loc
}

// StartScheduler registers the daily cron trigger in the business timezone
// and starts it. The returned cron can be stopped on shutdown.
func (s *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New(cron.WithLocation(s.loc))

	spec := fmt.Sprintf("0 %d * * *", s.reminderHour)
	if _, err := c.AddFunc(spec, func() {
		if _, err := s.RunNow(); err != nil {
			log.Printf("Scheduled reminder run failed: %v", err)
		}
	}); err != nil {
		log.Printf("Failed to schedule reminder job: %v", err)
		return c
	}

	c.Start()
	log.Printf("Reminder scheduler started: daily at %02d:00 (%s)", s.reminderHour, s.loc)
	return c
}

// RunNow executes one reminder batch for tomorrow's appointments. Safe to
// call concurrently with the cron trigger; the atomic claim prevents
// double-sends. Only a repository failure is returned as an error, a failed
// send just counts against the summary.
func (s *ReminderService) RunNow() (RunSummary, error) {
	localNow := s.now().In(s.loc)
	start, end, dayKey := utils.TomorrowWindow(localNow)
	summary := RunSummary{DayKey: dayKey}

	if start.Weekday() == s.restDay {
		log.Printf("Skipping reminders for %s: salon is closed on %s", dayKey, s.restDay)
		summary.Skipped = true
		s.metrics.ObserveRun("skipped_rest_day")
		return summary, nil
	}

	appointments, err := s.repo.FindDue(start, end, dayKey)
	if err != nil {
		s.metrics.ObserveRun("failed")
		return summary, fmt.Errorf("find due appointments: %w", err)
	}
	summary.Candidates = len(appointments)
	log.Printf("Found %d appointments for %s", len(appointments), dayKey)

	for i, appt := range appointments {
		phone := utils.NormalizePhone(appt.Client.Phone, s.defaultCountryCode)
		if phone == "" {
			log.Printf("Skipping reminder for %s: no usable phone number", appt.Client.Name)
			s.metrics.ObserveSend("skipped_no_phone")
			continue
		}

		won, err := s.repo.Claim(appt.ID, dayKey)
		if err != nil {
			// One bad record must not stop the rest of the batch
			log.Printf("Claim failed for appointment %s: %v", appt.ID, err)
			continue
		}
		if !won {
			// Another run already handled this appointment today.
			s.metrics.ObserveSend("skipped_claimed")
			continue
		}

		date, timeStr, weekday := utils.FormatAppointmentTime(appt.StartTime, s.loc, s.lang)
		service := utils.ServiceLabel(string(appt.Type), s.lang)

		summary.Attempted++
		if s.sender.SendReminder(phone, appt.Client.Name, date, timeStr, service, weekday, s.lang) {
			log.Printf("Reminder sent to %s (%s)", appt.Client.Name, phone)
			summary.Sent++
			s.metrics.ObserveSend("sent")
		} else {
			// The claim stands even when delivery fails: a missed reminder
			// beats a duplicate one.
			log.Printf("Failed to send reminder to %s (%s)", appt.Client.Name, phone)
			summary.Failed++
			s.metrics.ObserveSend("failed")
		}

		if s.sendDelay > 0 && i < len(appointments)-1 {
			time.Sleep(s.sendDelay)
		}
	}

	log.Printf("Finished reminders for %s: %d sent, %d failed of %d candidates",
		dayKey, summary.Sent, summary.Failed, summary.Candidates)
	s.metrics.ObserveRun("completed")
	return summary, nil
}
