package response

// SubmissionResponse mirrors what the site forms expect back.
type SubmissionResponse struct {
	Success    bool   `json:"success"`
	ClientID   string `json:"clientId"`
	SiteID     string `json:"siteId"`
	IsComplete bool   `json:"isComplete"`
	Message    string `json:"message"`
}

// PaymentWebhookResponse covers both the confirmed and the soft-failure
// outcome of a payment notification.
type PaymentWebhookResponse struct {
	Success  bool   `json:"success"`
	ClientID string `json:"clientId,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

type ApprovalRequestResponse struct {
	Success  bool   `json:"success"`
	ClientID string `json:"client_id"`
	Message  string `json:"message"`
}
