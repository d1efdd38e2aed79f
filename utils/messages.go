// utils/messages.go
package utils

import "fmt"

var serviceLabelsAr = map[string]string{
	"MANICURE":   "مانيكير",
	"PEDICURE":   "بيديكير",
	"BOTH_BASIC": "مانيكير و باديكير أساسي",
	"BOTH_FULL":  "مانيكير و باديكير كامل",
	"EYEBROWS":   "حواجب",
	"LASHES":     "رموش",
}

var serviceLabelsEn = map[string]string{
	"MANICURE":   "Manicure",
	"PEDICURE":   "Pedicure",
	"BOTH_BASIC": "Manicure & Basic Pedicure",
	"BOTH_FULL":  "Manicure & Full Pedicure",
	"EYEBROWS":   "Eyebrows",
	"LASHES":     "Lashes",
}

// ServiceLabel returns the localized display name for a service type.
// Unknown or legacy values pass through unchanged so old rows still produce
// a caption.
func ServiceLabel(serviceType, lang string) string {
	table := serviceLabelsEn
	if lang == "ar" {
		table = serviceLabelsAr
	}
	if label, ok := table[serviceType]; ok {
		return label
	}
	return serviceType
}

// ComposeReminder builds the reminder caption. Same inputs always produce
// the same string.
func ComposeReminder(clientName, date, timeStr, service, weekday, lang string) string {
	if lang == "ar" {
		return fmt.Sprintf(
			"مرحبا %s\nمنحب نذكركم بموعدكم %s يوم %s %s\nالساعة %s\n\nمنستناكم ❤️",
			clientName, service, weekday, date, timeStr,
		)
	}
	return fmt.Sprintf(
		"Hello %s\nReminder for your %s on %s %s\nat %s\n\nWe'll be waiting for you ❤️",
		clientName, service, weekday, date, timeStr,
	)
}
