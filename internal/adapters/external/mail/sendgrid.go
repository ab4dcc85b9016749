package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Message is one outbound email
type Message struct {
	To          string
	ToName      string
	Subject     string
	Content     string
	HTMLContent string
}

// Sender sends transactional email
type Sender interface {
	Send(ctx context.Context, msg *Message) error
	Enabled() bool
}

type sendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// NewSendGridSender creates a SendGrid backed sender. An empty apiKey yields a
// sender that reports itself disabled.
func NewSendGridSender(apiKey, fromEmail, fromName string) Sender {
	if apiKey == "" {
		return &sendGridSender{fromEmail: fromEmail, fromName: fromName}
	}
	return &sendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridSender) Enabled() bool {
	return s.client != nil
}

// Send delivers msg through the SendGrid v3 API
func (s *sendGridSender) Send(ctx context.Context, msg *Message) error {
	if s.client == nil {
		return fmt.Errorf("sendgrid is not configured")
	}

	message := sgmail.NewV3Mail()
	message.SetFrom(sgmail.NewEmail(s.fromName, s.fromEmail))

	personalization := sgmail.NewPersonalization()
	personalization.AddTos(sgmail.NewEmail(msg.ToName, msg.To))
	personalization.Subject = msg.Subject
	message.AddPersonalizations(personalization)

	message.AddContent(sgmail.NewContent("text/plain", msg.Content))
	if msg.HTMLContent != "" {
		message.AddContent(sgmail.NewContent("text/html", msg.HTMLContent))
	}

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}
	return nil
}
