package interfaces

import (
	"context"

	"sales_associate/internal/domain/entities"
)

type AcknowledgmentData struct {
	FirstName string
	Email     string
	Journey   string
	Month     string
	Year      string
	Travelers string
	Days      string
}

type MissingInfoData struct {
	FirstName     string
	Email         string
	ClientID      string
	MissingFields []string
}

type ApprovalRequestData struct {
	ClientID        string
	ClientName      string
	ProposalSummary string
	ApproveURL      string
	RejectURL       string
}

type PaymentRequestData struct {
	FirstName   string
	Email       string
	ClientID    string
	ProposalURL string
	PaymentURL  string
	TotalAmount string
	Currency    string
}

type PaymentConfirmationData struct {
	FirstName string
	Email     string
	ClientID  string
	Amount    string
	Currency  string
}

// IEmailSender renders and sends the transactional emails of the pipeline.
// Each method returns the provider's message id for the dispatch ledger.
type IEmailSender interface {
	SendAcknowledgment(ctx context.Context, site entities.Site, data AcknowledgmentData) (string, error)
	SendMissingInfo(ctx context.Context, site entities.Site, data MissingInfoData) (string, error)
	SendApprovalRequest(ctx context.Context, site entities.Site, to string, data ApprovalRequestData) (string, error)
	SendPaymentRequest(ctx context.Context, site entities.Site, data PaymentRequestData) (string, error)
	SendPaymentConfirmation(ctx context.Context, site entities.Site, data PaymentConfirmationData) (string, error)
}
