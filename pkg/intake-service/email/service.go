package email

import (
	"context"
	"strings"
	"time"

	"kriyatec.com/medicare-api/pkg/shared/helper"
)

// Sender delivers an HTML message; helper.Mailer implements it.
type Sender interface {
	SendMail(ctx context.Context, to string, subject string, htmlBody string) error
}

type Service struct {
	sender Sender
	clinic string
}

func NewService(sender Sender) *Service {
	return &Service{sender: sender, clinic: helper.GetenvStr("CLINIC_NAME", "MediCare Clinic")}
}

func (s *Service) deliver(ctx context.Context, to string, subject string, body string) error {
	if err := s.sender.SendMail(ctx, to, subject, body); err != nil {
		helper.Logger.Error().Err(err).Str("to", helper.MaskEmail(to)).Msg("email not sent")
		return helper.Unexpected("EMAIL_ERROR", "Failed to send email: "+err.Error())
	}
	helper.Logger.Info().Str("to", helper.MaskEmail(to)).Str("subject", subject).Msg("email sent")
	return nil
}

func (s *Service) Send(ctx context.Context, m Message) error {
	m.To = strings.TrimSpace(m.To)
	m.Subject = strings.TrimSpace(m.Subject)
	if err := helper.ValidateStruct("Email", m); err != nil {
		return err
	}
	body, err := plainMessage(m.Subject, m.Message, s.clinic)
	if err != nil {
		return helper.Unexpected("EMAIL_ERROR", err.Error())
	}
	return s.deliver(ctx, m.To, m.Subject, body)
}

// SendIntakeConfirmation acknowledges a submitted patient form.
func (s *Service) SendIntakeConfirmation(ctx context.Context, to string, fullName string, reason string, preferredDate time.Time) error {
	subject, body, err := intakeConfirmation(fullName, reason, preferredDate, s.clinic)
	if err != nil {
		return helper.Unexpected("EMAIL_ERROR", err.Error())
	}
	return s.deliver(ctx, to, subject, body)
}
