package usecase

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"sales_associate/internal/domain/entities"
	"sales_associate/internal/domain/validation"
	"sales_associate/internal/usecase/interfaces"
)

// FormSubmission carries the guest-supplied trip-request fields posted by a
// site's plan-your-trip form.
type FormSubmission struct {
	SiteID      string
	Journey     string
	Month       string
	Year        string
	Travelers   string
	Days        string
	Language    string
	Budget      string
	Requests    string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	CountryCode string
	Country     string
	HearAboutUs string
}

// SubmissionResult is what the form webhook reports back to the caller.
type SubmissionResult struct {
	ClientID   string
	SiteID     string
	IsComplete bool
	Message    string
}

type ISubmissionUseCase interface {
	Submit(ctx context.Context, sub FormSubmission) (SubmissionResult, error)
}

type SubmissionUseCase struct {
	store  interfaces.IRecordStore
	sites  *entities.SiteRegistry
	email  interfaces.IEmailSender
	ledger interfaces.IDispatchLedger
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(store interfaces.IRecordStore, sites *entities.SiteRegistry, email interfaces.IEmailSender, ledger interfaces.IDispatchLedger) *SubmissionUseCase {
	return &SubmissionUseCase{store: store, sites: sites, email: email, ledger: ledger}
}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Submit appends a NEW quote row for the site, acknowledges the guest by
// email, and follows up for missing details when the inquiry is incomplete.
// Email failures are logged but never fail the submission.
func (u *SubmissionUseCase) Submit(ctx context.Context, sub FormSubmission) (SubmissionResult, error) {
	site, ok := u.sites.Get(sub.SiteID)
	if !ok {
		return SubmissionResult{}, ErrUnknownSite
	}

	clientID, err := nextClientID(ctx, u.store, site)
	if err != nil {
		return SubmissionResult{}, err
	}

	createdDate := nowISO()
	nights := 0
	if d, err := strconv.Atoi(strings.TrimSpace(sub.Days)); err == nil && d > 0 {
		nights = d - 1
	}
	startDate := approximateStartDate(sub.Month, sub.Year)

	journeyType := validation.InferJourneyType(sub.Journey)
	startCity, endCity := validation.InferCities(sub.Journey)
	hospitality := validation.InferHospitalityLevel(sub.Budget)

	row := []string{
		clientID,
		sub.FirstName,
		sub.LastName,
		sub.Country,
		sub.Email,
		strings.TrimPrefix(sub.CountryCode, "+"),
		sub.Phone,
		sub.Journey,
		startDate,
		"", // End_Date
		sub.Days,
		strconv.Itoa(nights),
		sub.Language,
		hospitality,
		"", // Dream_Experience
		sub.Requests,
		sub.HearAboutUs,
		sub.Travelers,
		sub.Budget,
		startCity,
		endCity,
		journeyType,
		string(entities.QuoteStatusNew),
		"", // Itinerary_Doc_Link
		"", // Proposal_URL
		createdDate,
		createdDate,
		"", // Notes
	}

	if err := u.store.Append(ctx, site.ID, entities.TableQuotes, [][]string{row}); err != nil {
		return SubmissionResult{}, err
	}
	log.Printf("[submission][usecase] quote created client_id=%s site_id=%s", clientID, site.ID)

	days := sub.Days
	if days == "" {
		days = "flexible"
	}
	u.sendAcknowledgment(ctx, site, clientID, interfaces.AcknowledgmentData{
		FirstName: sub.FirstName,
		Email:     sub.Email,
		Journey:   sub.Journey,
		Month:     sub.Month,
		Year:      sub.Year,
		Travelers: sub.Travelers,
		Days:      days,
	})

	result := validation.ValidateQuote(entities.Record{
		entities.ColClientID:  clientID,
		entities.ColFirstName: sub.FirstName,
		entities.ColEmail:     sub.Email,
		"Journey_Interest":    sub.Journey,
		"Days":                sub.Days,
		"Number_Travelers":    sub.Travelers,
	})

	if !result.IsComplete {
		u.sendMissingInfo(ctx, site, clientID, interfaces.MissingInfoData{
			FirstName:     sub.FirstName,
			Email:         sub.Email,
			ClientID:      clientID,
			MissingFields: result.MissingFields,
		})
	}

	message := "Journey request submitted. We'll follow up for more details."
	if result.IsComplete {
		message = "Journey request submitted successfully. Generating itinerary..."
	}
	return SubmissionResult{
		ClientID:   clientID,
		SiteID:     site.ID,
		IsComplete: result.IsComplete,
		Message:    message,
	}, nil
}

func (u *SubmissionUseCase) sendAcknowledgment(ctx context.Context, site entities.Site, clientID string, data interfaces.AcknowledgmentData) {
	if u.email == nil {
		return
	}
	msgID, err := u.email.SendAcknowledgment(ctx, site, data)
	if err != nil {
		log.Printf("[submission][usecase] acknowledgment email failed client_id=%s err=%v", clientID, err)
		return
	}
	recordDispatch(ctx, u.ledger, clientID, site.ID, entities.DispatchAcknowledgment, data.Email, msgID)
}

func (u *SubmissionUseCase) sendMissingInfo(ctx context.Context, site entities.Site, clientID string, data interfaces.MissingInfoData) {
	if u.email == nil {
		return
	}
	msgID, err := u.email.SendMissingInfo(ctx, site, data)
	if err != nil {
		log.Printf("[submission][usecase] missing-info email failed client_id=%s err=%v", clientID, err)
		return
	}
	recordDispatch(ctx, u.ledger, clientID, site.ID, entities.DispatchMissingInfo, data.Email, msgID)
}

// recordDispatch writes a ledger entry for a sent email. Ledger failures are
// logged only; the email already went out.
func recordDispatch(ctx context.Context, ledger interfaces.IDispatchLedger, clientID, siteID string, kind entities.DispatchKind, recipient, msgID string) {
	if ledger == nil {
		return
	}
	_, err := ledger.Record(ctx, entities.EmailDispatch{
		ID:                uuid.NewString(),
		ClientID:          clientID,
		SiteID:            siteID,
		Kind:              kind,
		Recipient:         recipient,
		ProviderMessageID: msgID,
		SentAt:            time.Now().UTC(),
	})
	if err != nil {
		log.Printf("[pipeline][usecase] dispatch ledger write failed client_id=%s kind=%s err=%v", clientID, kind, err)
	}
}

// approximateStartDate maps a month name and year to the 15th of that month,
// or empty when the month is not recognized.
func approximateStartDate(month, year string) string {
	for i, name := range monthNames {
		if name == month {
			return year + "-" + twoDigits(i+1) + "-15"
		}
	}
	return ""
}

func twoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
