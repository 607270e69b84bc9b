package email

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/resend/resend-go/v2"

	"sales_associate/internal/domain/entities"
	"sales_associate/internal/domain/validation"
	"sales_associate/internal/usecase/interfaces"
)

var ErrMissingResendAPIKey = errors.New("missing RESEND_API_KEY")

// ResendSender delivers the pipeline's transactional emails through Resend.
//
// Test mode: everything is sent from the configured From address regardless of
// site. In production each site would send from its own contact address.

type ResendSender struct {
	client   *resend.Client
	from     string
	mockMode bool
}

var _ interfaces.IEmailSender = (*ResendSender)(nil)

func NewResendSender(apiKey, from string) (*ResendSender, error) {
	if isEmailMockEnabled() {
		log.Printf("[email][sender] mock mode enabled")
		return &ResendSender{from: from, mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[email][sender] missing RESEND_API_KEY")
		return nil, ErrMissingResendAPIKey
	}
	return &ResendSender{client: resend.NewClient(apiKey), from: from}, nil
}

func (s *ResendSender) send(ctx context.Context, to, subject, html string) (string, error) {
	if s != nil && s.mockMode {
		log.Printf("[email][sender] mock send to=%s subject=%q", to, subject)
		return "mock", nil
	}
	if s == nil || s.client == nil {
		return "", ErrMissingResendAPIKey
	}

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		log.Printf("[email][sender] send failed to=%s subject=%q err=%v", to, subject, err)
		return "", err
	}
	log.Printf("[email][sender] send success to=%s subject=%q message_id=%s", to, subject, sent.Id)
	return sent.Id, nil
}

func (s *ResendSender) SendAcknowledgment(ctx context.Context, site entities.Site, data interfaces.AcknowledgmentData) (string, error) {
	html, err := render(ackTmpl, struct {
		interfaces.AcknowledgmentData
		SiteName string
	}{data, site.Name})
	if err != nil {
		return "", err
	}
	return s.send(ctx, data.Email, "We've received your journey request", html)
}

func (s *ResendSender) SendMissingInfo(ctx context.Context, site entities.Site, data interfaces.MissingInfoData) (string, error) {
	html, err := render(missingInfoTmpl, struct {
		FirstName     string
		MissingFields []string
		SiteName      string
	}{data.FirstName, validation.MissingFieldLabels(data.MissingFields), site.Name})
	if err != nil {
		return "", err
	}
	return s.send(ctx, data.Email, "A few more details needed for your journey", html)
}

func (s *ResendSender) SendApprovalRequest(ctx context.Context, site entities.Site, to string, data interfaces.ApprovalRequestData) (string, error) {
	html, err := render(approvalRequestTmpl, struct {
		interfaces.ApprovalRequestData
		SiteName string
	}{data, site.Name})
	if err != nil {
		return "", err
	}
	subject := "[Approval Needed] " + data.ClientName + " (" + data.ClientID + ")"
	return s.send(ctx, to, subject, html)
}

func (s *ResendSender) SendPaymentRequest(ctx context.Context, site entities.Site, data interfaces.PaymentRequestData) (string, error) {
	html, err := render(paymentRequestTmpl, struct {
		interfaces.PaymentRequestData
		SiteName string
	}{data, site.Name})
	if err != nil {
		return "", err
	}
	return s.send(ctx, data.Email, "Your journey is ready to book", html)
}

func (s *ResendSender) SendPaymentConfirmation(ctx context.Context, site entities.Site, data interfaces.PaymentConfirmationData) (string, error) {
	html, err := render(paymentConfirmationTmpl, struct {
		interfaces.PaymentConfirmationData
		SiteName string
	}{data, site.Name})
	if err != nil {
		return "", err
	}
	return s.send(ctx, data.Email, "Payment received — your journey is confirmed", html)
}

func isEmailMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("EMAIL_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
