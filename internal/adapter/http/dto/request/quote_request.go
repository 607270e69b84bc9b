package request

// QuoteUpdateRequest patches arbitrary columns of one quote row.
type QuoteUpdateRequest struct {
	QuoteID string            `json:"quote_id" binding:"required"`
	SiteID  string            `json:"site_id" binding:"required"`
	Updates map[string]string `json:"updates" binding:"required"`
}

type QuoteDeleteRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
	SiteID  string `json:"site_id" binding:"required"`
}

type QuoteDuplicateRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
	SiteID  string `json:"site_id" binding:"required"`
}
