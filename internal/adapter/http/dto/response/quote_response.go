package response

import "sales_associate/internal/domain/entities"

type QuoteListResponse struct {
	Success bool               `json:"success"`
	Quotes  []entities.Record  `json:"quotes"`
	Count   int                `json:"count"`
}

func FromQuotes(quotes []entities.Record) QuoteListResponse {
	if quotes == nil {
		quotes = []entities.Record{}
	}
	return QuoteListResponse{Success: true, Quotes: quotes, Count: len(quotes)}
}

type ProposalListResponse struct {
	Success   bool              `json:"success"`
	Proposals []entities.Record `json:"proposals"`
	Count     int               `json:"count"`
}

func FromProposals(proposals []entities.Record) ProposalListResponse {
	if proposals == nil {
		proposals = []entities.Record{}
	}
	return ProposalListResponse{Success: true, Proposals: proposals, Count: len(proposals)}
}

type QuoteResponse struct {
	Success bool            `json:"success"`
	Quote   entities.Record `json:"quote"`
}

func FromQuote(quote entities.Record) QuoteResponse {
	return QuoteResponse{Success: true, Quote: quote}
}

type QuoteMutationResponse struct {
	Success    bool   `json:"success"`
	NewQuoteID string `json:"new_quote_id,omitempty"`
}

type NotificationListResponse struct {
	Success       bool                     `json:"success"`
	Notifications []entities.EmailDispatch `json:"notifications"`
	Count         int                      `json:"count"`
}

func FromNotifications(dispatches []entities.EmailDispatch) NotificationListResponse {
	if dispatches == nil {
		dispatches = []entities.EmailDispatch{}
	}
	return NotificationListResponse{Success: true, Notifications: dispatches, Count: len(dispatches)}
}
