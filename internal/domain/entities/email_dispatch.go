package entities

import "time"

// DispatchKind names a transactional email in the pipeline.
type DispatchKind string

const (
	DispatchAcknowledgment      DispatchKind = "acknowledgment"
	DispatchMissingInfo         DispatchKind = "missing_info"
	DispatchApprovalRequest     DispatchKind = "approval_request"
	DispatchPaymentRequest      DispatchKind = "payment_request"
	DispatchPaymentConfirmation DispatchKind = "payment_confirmation"
)

// EmailDispatch is one sent notification, recorded in the dispatch ledger.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// The ledger is what makes "resend" an explicit action: the approval flow
// checks it before re-sending the payment-request email.

type EmailDispatch struct {
	ID                string       `json:"id"`
	ClientID          string       `json:"client_id"`
	SiteID            string       `json:"site_id"`
	Kind              DispatchKind `json:"kind"`
	Recipient         string       `json:"recipient"`
	ProviderMessageID string       `json:"provider_message_id,omitempty"`
	SentAt            time.Time    `json:"sent_at"`
}
