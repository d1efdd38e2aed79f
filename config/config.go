package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every externally configured setting. It is loaded once in main
// and passed to components; nothing reads the environment after startup.
type Config struct {
	Port  string
	DBURL string

	JWTSecret      string
	JWTExpiryHours int

	// Reminder pipeline settings
	DefaultCountryCode string
	TimezoneCandidates []string
	UTCOffsetMinutes   int
	RestDay            time.Weekday
	ReminderHour       int
	ReminderLang       string
	ReminderMediaURL   string
	SendDelay          time.Duration

	// WhatsApp provider (Twilio)
	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string
}

// Load reads the configuration from the environment, applying defaults
// suitable for the salon (Palestine country code, UTC+2 fallback, 8 PM
// reminders, Sundays off).
func Load() Config {
	cfg := Config{
		Port:                 getEnv("PORT", "8080"),
		DBURL:                os.Getenv("DB_URL"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		JWTExpiryHours:       getEnvInt("JWT_EXPIRY_HOURS", 24),
		DefaultCountryCode:   digitsOnly(getEnv("DEFAULT_COUNTRY_CODE", "970")),
		UTCOffsetMinutes:     getEnvInt("UTC_OFFSET_MINUTES", 120),
		RestDay:              time.Weekday(getEnvInt("REST_DAY", int(time.Sunday))),
		ReminderHour:         getEnvInt("REMINDER_HOUR", 20),
		ReminderLang:         getEnv("REMINDER_LANG", "ar"),
		ReminderMediaURL:     os.Getenv("REMINDER_MEDIA_URL"),
		SendDelay:            time.Duration(getEnvInt("REMINDER_SEND_DELAY_MS", 1000)) * time.Millisecond,
		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
	}

	// The configured timezone is tried first, then the fixed fallbacks.
	cfg.TimezoneCandidates = []string{
		getEnv("BUSINESS_TIMEZONE", "Asia/Gaza"),
		"Asia/Jerusalem",
		"Asia/Riyadh",
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
