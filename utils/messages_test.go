package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceLabel(t *testing.T) {
	assert.Equal(t, "مانيكير", ServiceLabel("MANICURE", "ar"))
	assert.Equal(t, "رموش", ServiceLabel("LASHES", "ar"))
	assert.Equal(t, "Manicure", ServiceLabel("MANICURE", "en"))
	assert.Equal(t, "Manicure & Full Pedicure", ServiceLabel("BOTH_FULL", "en"))
}

func TestServiceLabelUnknownPassesThrough(t *testing.T) {
	// Legacy rows may still carry the old coarse enumeration
	assert.Equal(t, "BOTH", ServiceLabel("BOTH", "ar"))
	assert.Equal(t, "BOTH", ServiceLabel("BOTH", "en"))
}

func TestComposeReminderArabic(t *testing.T) {
	caption := ComposeReminder("سارة", "02/06/2024", "6:30 PM", "مانيكير", "الأحد", "ar")

	assert.Contains(t, caption, "سارة")
	assert.Contains(t, caption, "مانيكير")
	assert.Contains(t, caption, "الأحد")
	assert.Contains(t, caption, "02/06/2024")
	assert.Contains(t, caption, "6:30 PM")
	assert.Contains(t, caption, "منستناكم")
}

func TestComposeReminderEnglish(t *testing.T) {
	caption := ComposeReminder("Sara", "02/06/2024", "6:30 PM", "Manicure", "Sunday", "en")

	assert.Contains(t, caption, "Hello Sara")
	assert.Contains(t, caption, "Manicure")
	assert.Contains(t, caption, "Sunday 02/06/2024")
	assert.Contains(t, caption, "at 6:30 PM")
}

func TestComposeReminderDeterministic(t *testing.T) {
	a := ComposeReminder("Sara", "02/06/2024", "6:30 PM", "Manicure", "Sunday", "en")
	b := ComposeReminder("Sara", "02/06/2024", "6:30 PM", "Manicure", "Sunday", "en")
	assert.Equal(t, a, b)
}
