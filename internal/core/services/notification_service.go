package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"dealerhub/internal/adapters/external/mail"
	"dealerhub/internal/adapters/external/sms"
	"dealerhub/internal/adapters/persistence/models"
	"dealerhub/internal/adapters/persistence/repositories"
	"dealerhub/internal/core/domain"

	"go.uber.org/zap"
)

var approvedEmail = template.Must(template.New("approved").Parse(
	`<p>Hello {{.Name}},</p><p>Your dealer account for <strong>{{.Business}}</strong> has been approved. You can now sign in to the dealer app and place orders.</p>`,
))

// NotificationService sends dealer notifications over email and SMS and keeps
// one log row per channel
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	mailer           mail.Sender
	sms              sms.Sender
	logger           *zap.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	mailer mail.Sender,
	smsSender sms.Sender,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		mailer:           mailer,
		sms:              smsSender,
		logger:           logger,
	}
}

// NotifyDealerApproved tells the dealer their account is live. Every channel
// is attempted; the returned error joins the failures.
func (s *NotificationService) NotifyDealerApproved(ctx context.Context, dealer *models.Dealer) error {
	reference := fmt.Sprintf("dealer:%d:approved", dealer.ID)
	subject := "Your dealer account has been approved"
	text := fmt.Sprintf(
		"Hello %s,\n\nYour dealer account for %s has been approved. You can now sign in to the dealer app and place orders.\n",
		dealer.FullName(), dealer.BusinessName,
	)
	var html bytes.Buffer
	if err := approvedEmail.Execute(&html, struct{ Name, Business string }{dealer.FullName(), dealer.BusinessName}); err != nil {
		return fmt.Errorf("failed to render approval email: %w", err)
	}
	smsText := fmt.Sprintf("%s: your dealer account has been approved.", dealer.BusinessName)

	emailErr := s.deliver(ctx, &models.Notification{
		Channel:   domain.ChannelEmail,
		Recipient: dealer.Email,
		Subject:   subject,
		Content:   text,
		Reference: reference,
	}, s.mailer != nil && s.mailer.Enabled(), func() error {
		return s.mailer.Send(ctx, &mail.Message{
			To:          dealer.Email,
			ToName:      dealer.FullName(),
			Subject:     subject,
			Content:     text,
			HTMLContent: html.String(),
		})
	})

	smsErr := s.deliver(ctx, &models.Notification{
		Channel:   domain.ChannelSMS,
		Recipient: dealer.Phone,
		Content:   smsText,
		Reference: reference,
	}, s.sms != nil && s.sms.Enabled(), func() error {
		return s.sms.Send(ctx, dealer.Phone, smsText)
	})

	return errors.Join(emailErr, smsErr)
}

// List lists the notification log newest first
func (s *NotificationService) List(ctx context.Context, page, limit int) ([]*models.Notification, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return s.notificationRepo.List(ctx, (page-1)*limit, limit)
}

// deliver records the notification, runs send when the channel is enabled and
// stores the outcome
func (s *NotificationService) deliver(ctx context.Context, n *models.Notification, enabled bool, send func() error) error {
	if !enabled {
		n.Status = domain.NotificationSkipped
		if err := s.notificationRepo.Create(ctx, n); err != nil {
			return fmt.Errorf("failed to create notification record: %w", err)
		}
		s.logger.Debug("notification channel disabled", zap.String("channel", n.Channel), zap.String("reference", n.Reference))
		return nil
	}

	n.Status = domain.NotificationPending
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification record: %w", err)
	}

	if err := send(); err != nil {
		n.Status = domain.NotificationFailed
		n.ErrorMessage = err.Error()
		if uerr := s.notificationRepo.UpdateStatus(ctx, n.ID, n.Status, n.ErrorMessage); uerr != nil {
			s.logger.Error("failed to update notification status", zap.Uint("notification_id", n.ID), zap.Error(uerr))
		}
		return fmt.Errorf("failed to send %s notification: %w", n.Channel, err)
	}

	n.Status = domain.NotificationSent
	if err := s.notificationRepo.UpdateStatus(ctx, n.ID, n.Status, ""); err != nil {
		return fmt.Errorf("notification sent but failed to update status: %w", err)
	}

	s.logger.Info("notification sent", zap.String("channel", n.Channel), zap.String("reference", n.Reference))
	return nil
}
