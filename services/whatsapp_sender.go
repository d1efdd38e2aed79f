// services/whatsapp_sender.go
package services

import (
	"log"
	"strings"
	"time"

	"lina-nails-backend/config"
	"lina-nails-backend/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Phones shorter than this cannot be real E.164 numbers for our market.
const minPhoneLength = 11

// Sender delivers WhatsApp messages. Implementations report success or
// failure as a boolean and never panic or return errors to the caller.
type Sender interface {
	SendText(phone, body string) bool
	SendMediaWithCaption(phone, mediaURL, caption string) bool
	SendReminder(phone, clientName, date, timeStr, service, weekday, lang string) bool
}

// WhatsAppSender sends messages through the Twilio WhatsApp API.
type WhatsAppSender struct {
	client     *twilio.RestClient
	from       string
	mediaURL   string
	configured bool
}

func NewWhatsAppSender(cfg config.Config) *WhatsAppSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	// A hung provider call must not stall the batch.
	client.SetTimeout(15 * time.Second)

	return &WhatsAppSender{
		client:     client,
		from:       cfg.TwilioWhatsAppNumber,
		mediaURL:   cfg.ReminderMediaURL,
		configured: cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioWhatsAppNumber != "",
	}
}

// SendText delivers a plain WhatsApp text message.
func (s *WhatsAppSender) SendText(phone, body string) bool {
	if !s.ready(phone) {
		return false
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:" + phone)
	params.SetFrom("whatsapp:" + s.from)
	params.SetBody(body)

	return s.create(phone, params)
}

// SendMediaWithCaption delivers a media attachment with a caption.
func (s *WhatsAppSender) SendMediaWithCaption(phone, mediaURL, caption string) bool {
	if !s.ready(phone) {
		return false
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:" + phone)
	params.SetFrom("whatsapp:" + s.from)
	params.SetBody(caption)
	params.SetMediaUrl([]string{mediaURL})

	return s.create(phone, params)
}

// SendReminder composes the reminder caption and delivers it as the salon
// logo image with caption. Reminders never fall back to plain text.
func (s *WhatsAppSender) SendReminder(phone, clientName, date, timeStr, service, weekday, lang string) bool {
	if s.mediaURL == "" {
		log.Println("REMINDER_MEDIA_URL not set; cannot send reminder")
		return false
	}

	caption := utils.ComposeReminder(clientName, date, timeStr, service, weekday, lang)
	return s.SendMediaWithCaption(phone, s.mediaURL, caption)
}

func (s *WhatsAppSender) ready(phone string) bool {
	if !s.configured {
		log.Println("Twilio credentials missing; set TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_WHATSAPP_NUMBER")
		return false
	}
	// Phone must already be normalized by the caller.
	if phone == "" || len(phone) < minPhoneLength || !strings.HasPrefix(phone, "+") {
		log.Printf("Refusing to send to invalid phone %q", phone)
		return false
	}
	return true
}

func (s *WhatsAppSender) create(phone string, params *twilioApi.CreateMessageParams) bool {
	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send WhatsApp message to %s: %v", phone, err)
		return false
	}
	if resp.ErrorCode != nil && *resp.ErrorCode != 0 {
		msg := ""
		if resp.ErrorMessage != nil {
			msg = *resp.ErrorMessage
		}
		log.Printf("WhatsApp API error for %s: %d %s", phone, *resp.ErrorCode, msg)
		return false
	}
	if resp.Sid != nil {
		log.Printf("WhatsApp message sent to %s, SID: %s", phone, *resp.Sid)
	}
	return true
}
