package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/config"
	pkgerrors "github.com/rushjoshburner/PGTC-WEBAPP/pkg/errors"
	"github.com/rushjoshburner/PGTC-WEBAPP/pkg/mailer"
)

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Service relays contact-form submissions to the club inbox and sends the
// sender an acknowledgement.
type Service interface {
	Submit(ctx context.Context, req ContactRequest) error
}

type service struct {
	sender mailer.Sender
	cfg    config.MailConfig
}

// ServiceParams bundles the dependencies for the contact service.
type ServiceParams struct {
	Sender mailer.Sender
	Mail   config.MailConfig
}

func NewService(params ServiceParams) (Service, error) {
	if params.Sender == nil {
		return nil, fmt.Errorf("mail sender is required")
	}
	return &service{sender: params.Sender, cfg: params.Mail}, nil
}

func (s *service) Submit(ctx context.Context, req ContactRequest) error {
	if err := validateContact(req); err != nil {
		return err
	}

	notification := fmt.Sprintf(
		"New contact form submission\n\nFrom: %s <%s>\nSubject: %s\n\n%s\n",
		strings.TrimSpace(req.Name), req.Email, strings.TrimSpace(req.Subject), strings.TrimSpace(req.Message),
	)
	if err := s.sender.Send(s.cfg.AdminInbox, "[Contact] "+strings.TrimSpace(req.Subject), notification); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "notify admin")
	}

	reply := fmt.Sprintf(
		"Hi %s,\n\nThanks for reaching out to the Polo GT Club. We received your message and will get back to you soon.\n\nYour message:\n%s\n",
		strings.TrimSpace(req.Name), strings.TrimSpace(req.Message),
	)
	if err := s.sender.Send(req.Email, "We received your message", reply); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "send acknowledgement")
	}
	return nil
}

func validateContact(req ContactRequest) error {
	fields := map[string]string{}

	if len(strings.TrimSpace(req.Name)) < 2 {
		fields["name"] = "must be at least 2 characters"
	}
	if !strings.Contains(req.Email, "@") {
		fields["email"] = "must be a valid email"
	}
	if len(strings.TrimSpace(req.Subject)) < 3 {
		fields["subject"] = "must be at least 3 characters"
	}
	if len(strings.TrimSpace(req.Message)) < 10 {
		fields["message"] = "must be at least 10 characters"
	}

	if len(fields) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(fields)
	}
	return nil
}
