package entities

import "strings"

// Record is one spreadsheet row mapped by the header row. Every cell is a
// string at the store level; callers parse dates and numbers themselves.
type Record map[string]string

// Table names (one tab per record type per site).
const (
	TableQuotes    = "Quotes"
	TableProposals = "Proposals"
)

// Well-known column names shared by the Quotes and Proposals tabs.
const (
	ColClientID     = "Client_ID"
	ColFirstName    = "First_Name"
	ColLastName     = "Last_Name"
	ColEmail        = "Email"
	ColStatus       = "Status"
	ColNotes        = "Notes"
	ColCreatedDate  = "Created_Date"
	ColLastUpdated  = "Last_Updated"
	ColApprovedDate = "Approved_Date"
	ColPaymentID    = "Payment_ID"
	ColPaymentDate  = "Payment_Date"
	ColTotalPrice   = "Total_Price"
	ColProposalURL  = "Proposal_URL"
	ColBudget       = "Budget"

	// Rows are tagged with their originating site during aggregation.
	ColSiteID   = "site_id"
	ColSiteName = "site_name"
)

// QuoteStatus tracks the lifecycle of an inbound trip inquiry.
//
// NEW → IN_PROGRESS → ITINERARY_READY → PRICED → SENT_TO_CLIENT → PAID,
// with CANCELLED as a parallel exit and PROPOSAL_APPROVED/PROPOSAL_REJECTED
// mirroring the proposal decision.

type QuoteStatus string

const (
	QuoteStatusNew              QuoteStatus = "NEW"
	QuoteStatusInProgress       QuoteStatus = "IN_PROGRESS"
	QuoteStatusItineraryReady   QuoteStatus = "ITINERARY_READY"
	QuoteStatusPriced           QuoteStatus = "PRICED"
	QuoteStatusSentToClient     QuoteStatus = "SENT_TO_CLIENT"
	QuoteStatusProposalApproved QuoteStatus = "PROPOSAL_APPROVED"
	QuoteStatusProposalRejected QuoteStatus = "PROPOSAL_REJECTED"
	QuoteStatusPaid             QuoteStatus = "PAID"
	QuoteStatusCancelled        QuoteStatus = "CANCELLED"
)

// ProposalStatus tracks a priced itinerary offer through admin approval.
type ProposalStatus string

const (
	ProposalStatusDraft           ProposalStatus = "DRAFT"
	ProposalStatusPendingApproval ProposalStatus = "PENDING_APPROVAL"
	ProposalStatusApproved        ProposalStatus = "APPROVED"
	ProposalStatusRejected        ProposalStatus = "REJECTED"
	ProposalStatusSent            ProposalStatus = "SENT"
	ProposalStatusPaid            ProposalStatus = "PAID"
)

func (r Record) Get(col string) string { return r[col] }

func (r Record) ClientID() string { return r[ColClientID] }

// Valid reports whether the row is usable: a row with no Client_ID, with the
// literal header text as its Client_ID (a re-read header row), or with a comma
// in the ID (malformed multi-value row) is ignorable.
func (r Record) Valid() bool {
	id := r[ColClientID]
	return id != "" && id != ColClientID && !strings.Contains(id, ",")
}
