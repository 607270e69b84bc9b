package request

// FormSubmissionRequest is the payload posted by every site's
// plan-your-trip form. Field names follow the forms, not the sheet columns.
type FormSubmissionRequest struct {
	SiteID      string `json:"site_id" binding:"required"`
	Journey     string `json:"journey"`
	Month       string `json:"month"`
	Year        string `json:"year"`
	Travelers   string `json:"travelers"`
	Days        string `json:"days"`
	Language    string `json:"language"`
	Budget      string `json:"budget"`
	Requests    string `json:"requests"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"countryCode"`
	Country     string `json:"country"`
	HearAboutUs string `json:"hearAboutUs"`
}

// PaymentNotificationRequest is the payload posted by the payment processor
// or the automation relay in front of it.
type PaymentNotificationRequest struct {
	ClientID   string `json:"clientId" binding:"required"`
	PaymentID  string `json:"paymentId"`
	Amount     string `json:"amount"`
	Currency   string `json:"currency"`
	PayerEmail string `json:"payerEmail"`
	Status     string `json:"status"`
}

// ApprovalRequestRequest asks the admin to review a proposal.
type ApprovalRequestRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}
