package services

import (
	"sync"
	"testing"
	"time"

	"lina-nails-backend/config"
	"lina-nails-backend/metrics"
	"lina-nails-backend/models"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu           sync.Mutex
	appointments []models.Appointment
	claims       map[uuid.UUID]string

	// When set, FindDue ignores prior claims, emulating another scheduler
	// run claiming candidates between our query and our claim attempt.
	ignoreClaimsInFindDue bool

	findDueCalls int
	lastStart    time.Time
	lastEnd      time.Time
	lastDayKey   string
}

func newFakeRepo(appointments ...models.Appointment) *fakeRepo {
	return &fakeRepo{
		appointments: appointments,
		claims:       make(map[uuid.UUID]string),
	}
}

func (f *fakeRepo) FindDue(start, end time.Time, dayKey string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findDueCalls++
	f.lastStart, f.lastEnd, f.lastDayKey = start, end, dayKey

	var due []models.Appointment
	for _, a := range f.appointments {
		if a.StartTime.Before(start) || a.StartTime.After(end) {
			continue
		}
		if !f.ignoreClaimsInFindDue && f.claims[a.ID] == dayKey {
			continue
		}
		due = append(due, a)
	}
	return due, nil
}

func (f *fakeRepo) Claim(id uuid.UUID, dayKey string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.claims[id] == dayKey {
		return false, nil
	}
	f.claims[id] = dayKey
	return true, nil
}

type sentReminder struct {
	phone, clientName, date, timeStr, service, weekday, lang string
}

type fakeSender struct {
	mu     sync.Mutex
	result bool
	sent   []sentReminder
}

func (f *fakeSender) SendText(phone, body string) bool { return f.result }

func (f *fakeSender) SendMediaWithCaption(phone, mediaURL, caption string) bool { return f.result }

func (f *fakeSender) SendReminder(phone, clientName, date, timeStr, service, weekday, lang string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentReminder{phone, clientName, date, timeStr, service, weekday, lang})
	return f.result
}

func newTestService(t *testing.T, repo AppointmentRepository, sender Sender, now time.Time, restDay time.Weekday) *ReminderService {
	t.Helper()
	cfg := config.Config{
		DefaultCountryCode: "970",
		TimezoneCandidates: []string{"UTC"},
		UTCOffsetMinutes:   0,
		RestDay:            restDay,
		ReminderHour:       20,
		ReminderLang:       "ar",
		SendDelay:          0,
	}
	s := NewReminderService(cfg, repo, sender, metrics.NewReminderMetrics(prometheus.NewRegistry()))
	s.now = func() time.Time { return now }
	return s
}

func appointmentAt(start time.Time, serviceType models.AppointmentType, name, phone string) models.Appointment {
	return models.Appointment{
		ID:        uuid.New(),
		ClientID:  uuid.New(),
		Type:      serviceType,
		StartTime: start,
		Client:    models.Client{ID: uuid.New(), Name: name, Phone: phone},
	}
}

func TestRunNowComputesTomorrowWindow(t *testing.T) {
	repo := newFakeRepo()
	// 2024-06-02 is a Sunday; move the rest day so the run proceeds
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, repo, &fakeSender{result: true}, now, time.Monday)

	summary, err := svc.RunNow()
	require.NoError(t, err)

	assert.Equal(t, "2024-06-02", summary.DayKey)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), repo.lastStart)
	assert.Equal(t, time.Date(2024, 6, 2, 23, 59, 59, 999000000, time.UTC), repo.lastEnd)
	assert.Equal(t, "2024-06-02", repo.lastDayKey)
}

func TestRunNowSkipsRestDay(t *testing.T) {
	repo := newFakeRepo(appointmentAt(
		time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC), models.Manicure, "Sara", "0599123456"))
	sender := &fakeSender{result: true}
	// Tomorrow is Sunday, the configured rest day
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, repo, sender, now, time.Sunday)

	summary, err := svc.RunNow()
	require.NoError(t, err)

	assert.True(t, summary.Skipped)
	assert.Equal(t, 0, repo.findDueCalls)
	assert.Empty(t, sender.sent)
}

func TestRunNowEndToEndArabic(t *testing.T) {
	// Tuesday 2024-06-04 at 16:30
	start := time.Date(2024, 6, 4, 16, 30, 0, 0, time.UTC)
	repo := newFakeRepo(appointmentAt(start, models.Manicure, "سارة", "0599123456"))
	sender := &fakeSender{result: true}
	now := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, repo, sender, now, time.Sunday)

	summary, err := svc.RunNow()
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Candidates)
	assert.Equal(t, 1, summary.Attempted)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 0, summary.Failed)

	require.Len(t, sender.sent, 1)
	got := sender.sent[0]
	assert.Equal(t, "+970599123456", got.phone)
	assert.Equal(t, "سارة", got.clientName)
	assert.Equal(t, "04/06/2024", got.date)
	assert.Equal(t, "4:30 PM", got.timeStr)
	assert.Equal(t, "مانيكير", got.service)
	assert.Equal(t, "الثلاثاء", got.weekday)
	assert.Equal(t, "ar", got.lang)

	// Running again for the same day must not re-send
	summary2, err := svc.RunNow()
	require.NoError(t, err)
	assert.Equal(t, 0, summary2.Attempted)
	assert.Len(t, sender.sent, 1)
}

func TestRunNowSkipsClientsWithoutPhone(t *testing.T) {
	start := time.Date(2024, 6, 4, 16, 30, 0, 0, time.UTC)
	repo := newFakeRepo(appointmentAt(start, models.Pedicure, "Sara", "no number"))
	sender := &fakeSender{result: true}
	now := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, repo, sender, now, time.Sunday)

	summary, err := svc.RunNow()
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Candidates)
	assert.Equal(t, 0, summary.Attempted)
	assert.Empty(t, sender.sent)
	assert.Empty(t, repo.claims) // no claim attempted without a phone
}

func TestRunNowClaimLostSkipsSilently(t *testing.T) {
	start := time.Date(2024, 6, 4, 16, 30, 0, 0, time.UTC)
	appt := appointmentAt(start, models.Lashes, "Sara", "0599123456")
	repo := newFakeRepo(appt)
	repo.ignoreClaimsInFindDue = true
	repo.claims[appt.ID] = "2024-06-04" // another run got here first
	sender := &fakeSender{result: true}
	now := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, repo, sender, now, time.Sunday)

	summary, err := svc.RunNow()
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Candidates)
	assert.Equal(t, 0, summary.Attempted)
	assert.Equal(t, 0, summary.Failed)
	assert.Empty(t, sender.sent)
}

func TestRunNowFailedSendKeepsClaim(t *testing.T) {
	start := time.Date(2024, 6, 4, 16, 30, 0, 0, time.UTC)
	appt := appointmentAt(start, models.BothFull, "Sara", "0599123456")
	repo := newFakeRepo(appt)
	sender := &fakeSender{result: false}
	now := time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, repo, sender, now, time.Sunday)

	summary, err := svc.RunNow()
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Attempted)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, "2024-06-04", repo.claims[appt.ID])

	// The failed send is not retried by a later run for the same day
	summary2, err := svc.RunNow()
	require.NoError(t, err)
	assert.Equal(t, 0, summary2.Attempted)
	assert.Len(t, sender.sent, 1)
}

func TestClaimExactlyOnceUnderConcurrency(t *testing.T) {
	appt := appointmentAt(time.Now(), models.Manicure, "Sara", "0599123456")
	repo := newFakeRepo(appt)

	const attempts = 16
	wins := make(chan bool, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			won, err := repo.Claim(appt.ID, "2024-06-01")
			assert.NoError(t, err)
			wins <- won
		}()
	}
	wg.Wait()
	close(wins)

	won := 0
	for w := range wins {
		if w {
			won++
		}
	}
	assert.Equal(t, 1, won)
}
