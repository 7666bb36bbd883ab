package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"

	"peakform/training-studio/internal/config"
	"peakform/training-studio/internal/domain"
	"peakform/training-studio/internal/repository"
)

var ErrContactFieldsRequired = errors.New("name, email, and message are required")

// ContactService handles public contact-form submissions: the message is
// stored, then a notification email goes out to the studio inbox via
// Resend. Email delivery is best-effort; a failed send never loses the
// stored submission.
type ContactService interface {
	Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error)
}

// contactService implements the ContactService interface.
type contactService struct {
	contactRepo repository.ContactRepository
	mailClient  *resend.Client // nil when mail is not configured
	mailCfg     config.MailConfig
}

// NewContactService creates a new instance of contactService. An empty
// mail API key disables the notification email.
func NewContactService(contactRepo repository.ContactRepository, mailCfg config.MailConfig) ContactService {
	var client *resend.Client
	if mailCfg.APIKey != "" {
		client = resend.NewClient(mailCfg.APIKey)
	} else {
		log.Println("Contact service: no mail API key configured, notification emails disabled")
	}
	return &contactService{
		contactRepo: contactRepo,
		mailClient:  client,
		mailCfg:     mailCfg,
	}
}

// Submit stores a contact message and notifies the studio inbox.
func (s *contactService) Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	if name == "" || email == "" || message == "" {
		return nil, ErrContactFieldsRequired
	}

	msg := &domain.ContactMessage{
		Reference: uuid.New().String(),
		Name:      name,
		Email:     email,
		Message:   message,
	}

	msgID, err := s.contactRepo.Create(ctx, msg)
	if err != nil {
		return nil, err
	}
	msg.ID = msgID

	s.notify(ctx, msg)

	return msg, nil
}

// notify emails the studio inbox about a new submission. Failures are
// logged and swallowed: the submission is already stored.
func (s *contactService) notify(ctx context.Context, msg *domain.ContactMessage) {
	if s.mailClient == nil || s.mailCfg.ContactTo == "" {
		return
	}

	params := &resend.SendEmailRequest{
		From:    s.mailCfg.From,
		To:      []string{s.mailCfg.ContactTo},
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("New contact message from %s", msg.Name),
		Html: fmt.Sprintf(
			"<p><strong>%s</strong> (%s) wrote:</p><p>%s</p><p>Reference: %s</p>",
			html.EscapeString(msg.Name),
			html.EscapeString(msg.Email),
			html.EscapeString(msg.Message),
			msg.Reference,
		),
	}

	if _, err := s.mailClient.Emails.SendWithContext(ctx, params); err != nil {
		log.Printf("ERROR: Failed to send contact notification email (ref %s): %v", msg.Reference, err)
	}
}
