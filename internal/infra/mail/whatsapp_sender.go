package mail

import (
	"fmt"

	"github.com/xavierca1/handover-portal/internal/infra/integration/twilio"
)

// AdminAlertSender pushes freeform texts to the administrator's WhatsApp.
// Unlike a courtesy notification, these alerts gate a workflow transition,
// so failures are returned instead of swallowed.
type AdminAlertSender struct {
	client     *twilio.Client
	adminPhone string
}

func NewAdminAlertSender(client *twilio.Client, adminPhone string) *AdminAlertSender {
	return &AdminAlertSender{
		client:     client,
		adminPhone: adminPhone,
	}
}

func (s *AdminAlertSender) SendAlert(text string) error {
	if s.adminPhone == "" {
		return fmt.Errorf("admin phone number not configured")
	}

	return s.client.SendMessage(twilio.SendMessageInput{
		To:   s.adminPhone,
		Body: text,
	})
}
