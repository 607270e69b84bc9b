package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sales_associate/internal/domain/entities"
	"sales_associate/internal/usecase/interfaces"
	"sales_associate/pkg/approvaltoken"
)

var (
	ErrInvalidToken     = errors.New("invalid or expired approval token")
	ErrProposalNotFound = errors.New("proposal not found")
)

// ApprovalConfig carries the settings the approval flow needs: the shared
// secret and TTL for link tokens, where the links point, who reviews them,
// and the payment URL used when no gateway is configured.
type ApprovalConfig struct {
	Secret             string
	TokenTTL           time.Duration
	BaseURL            string
	AdminEmail         string
	FallbackPaymentURL string
}

type IApprovalUseCase interface {
	Approve(ctx context.Context, clientID, token string) error
	Reject(ctx context.Context, clientID, token, notes string) error
	ResendPaymentRequest(ctx context.Context, clientID, token string) error
	RequestApproval(ctx context.Context, clientID string) error
}

type ApprovalUseCase struct {
	store   interfaces.IRecordStore
	sites   *entities.SiteRegistry
	email   interfaces.IEmailSender
	ledger  interfaces.IDispatchLedger
	gateway interfaces.IPaymentLinkGateway
	cfg     ApprovalConfig
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(store interfaces.IRecordStore, sites *entities.SiteRegistry, email interfaces.IEmailSender, ledger interfaces.IDispatchLedger, gateway interfaces.IPaymentLinkGateway, cfg ApprovalConfig) *ApprovalUseCase {
	return &ApprovalUseCase{store: store, sites: sites, email: email, ledger: ledger, gateway: gateway, cfg: cfg}
}

// Approve marks the proposal APPROVED and its quote PROPOSAL_APPROVED, then
// sends the guest a payment-request email unless one was already sent for
// this client. Token verification happens before any store access.
func (u *ApprovalUseCase) Approve(ctx context.Context, clientID, token string) error {
	site, proposal, err := u.authorize(ctx, clientID, token)
	if err != nil {
		return err
	}

	now := nowISO()
	err = u.store.UpdateByField(ctx, site.ID, entities.TableProposals, entities.ColClientID, clientID, map[string]string{
		entities.ColStatus:       string(entities.ProposalStatusApproved),
		entities.ColApprovedDate: now,
		entities.ColLastUpdated:  now,
	})
	if err != nil {
		return err
	}
	err = u.store.UpdateByField(ctx, site.ID, entities.TableQuotes, entities.ColClientID, clientID, map[string]string{
		entities.ColStatus:      string(entities.QuoteStatusProposalApproved),
		entities.ColLastUpdated: now,
	})
	if err != nil && !errors.Is(err, interfaces.ErrRowNotFound) {
		return err
	}
	log.Printf("[approval][usecase] proposal approved client_id=%s site_id=%s", clientID, site.ID)

	if u.ledger != nil {
		sent, err := u.ledger.Has(ctx, clientID, entities.DispatchPaymentRequest)
		if err != nil {
			log.Printf("[approval][usecase] dispatch ledger read failed client_id=%s err=%v", clientID, err)
		} else if sent {
			log.Printf("[approval][usecase] payment request already sent client_id=%s, use resend", clientID)
			return nil
		}
	}
	u.sendPaymentRequest(ctx, site, clientID, proposal)
	return nil
}

// Reject marks the proposal REJECTED and its quote PROPOSAL_REJECTED with the
// given notes, defaulting the note text when none is supplied.
func (u *ApprovalUseCase) Reject(ctx context.Context, clientID, token, notes string) error {
	site, _, err := u.authorize(ctx, clientID, token)
	if err != nil {
		return err
	}

	proposalNotes := notes
	if proposalNotes == "" {
		proposalNotes = "Rejected by admin"
	}
	quoteNotes := notes
	if quoteNotes == "" {
		quoteNotes = "Proposal rejected"
	}

	now := nowISO()
	err = u.store.UpdateByField(ctx, site.ID, entities.TableProposals, entities.ColClientID, clientID, map[string]string{
		entities.ColStatus:      string(entities.ProposalStatusRejected),
		entities.ColNotes:       proposalNotes,
		entities.ColLastUpdated: now,
	})
	if err != nil {
		return err
	}
	err = u.store.UpdateByField(ctx, site.ID, entities.TableQuotes, entities.ColClientID, clientID, map[string]string{
		entities.ColStatus:      string(entities.QuoteStatusProposalRejected),
		entities.ColNotes:       quoteNotes,
		entities.ColLastUpdated: now,
	})
	if err != nil && !errors.Is(err, interfaces.ErrRowNotFound) {
		return err
	}
	log.Printf("[approval][usecase] proposal rejected client_id=%s site_id=%s", clientID, site.ID)
	return nil
}

// ResendPaymentRequest re-sends the payment-request email without touching
// any status. Resending is an explicit action, never a side effect of
// clicking approve twice.
func (u *ApprovalUseCase) ResendPaymentRequest(ctx context.Context, clientID, token string) error {
	site, proposal, err := u.authorize(ctx, clientID, token)
	if err != nil {
		return err
	}
	u.sendPaymentRequest(ctx, site, clientID, proposal)
	return nil
}

// RequestApproval moves the proposal to PENDING_APPROVAL and emails the admin
// an approve/reject link pair carrying a fresh time-bound token.
func (u *ApprovalUseCase) RequestApproval(ctx context.Context, clientID string) error {
	site, ok := u.sites.SiteForClientID(clientID)
	if !ok {
		return ErrUnknownSite
	}

	proposal, err := u.store.FindByField(ctx, site.ID, entities.TableProposals, entities.ColClientID, clientID)
	if err != nil {
		return err
	}
	if proposal == nil {
		return ErrProposalNotFound
	}

	err = u.store.UpdateByField(ctx, site.ID, entities.TableProposals, entities.ColClientID, clientID, map[string]string{
		entities.ColStatus:      string(entities.ProposalStatusPendingApproval),
		entities.ColLastUpdated: nowISO(),
	})
	if err != nil {
		return err
	}

	quote, err := u.store.FindByField(ctx, site.ID, entities.TableQuotes, entities.ColClientID, clientID)
	if err != nil {
		log.Printf("[approval][usecase] quote lookup failed client_id=%s err=%v", clientID, err)
	}
	clientName := ""
	if quote != nil {
		clientName = strings.TrimSpace(quote[entities.ColFirstName] + " " + quote[entities.ColLastName])
	}

	token := approvaltoken.New(clientID, u.cfg.Secret, u.cfg.TokenTTL)
	summary := fmt.Sprintf("%s %s · %s", priceOrZero(proposal), site.Currency, proposalURL(site, clientID, proposal))

	if u.email == nil {
		return nil
	}
	msgID, err := u.email.SendApprovalRequest(ctx, site, u.cfg.AdminEmail, interfaces.ApprovalRequestData{
		ClientID:        clientID,
		ClientName:      clientName,
		ProposalSummary: summary,
		ApproveURL:      u.approvalLink("approve", clientID, token),
		RejectURL:       u.approvalLink("reject", clientID, token),
	})
	if err != nil {
		log.Printf("[approval][usecase] approval request email failed client_id=%s err=%v", clientID, err)
		return nil
	}
	recordDispatch(ctx, u.ledger, clientID, site.ID, entities.DispatchApprovalRequest, u.cfg.AdminEmail, msgID)
	return nil
}

// authorize verifies the link token, routes the client ID to its site, and
// loads the proposal. An invalid token short-circuits with no store access.
func (u *ApprovalUseCase) authorize(ctx context.Context, clientID, token string) (entities.Site, entities.Record, error) {
	if !approvaltoken.Verify(clientID, token, u.cfg.Secret) {
		return entities.Site{}, nil, ErrInvalidToken
	}
	site, ok := u.sites.SiteForClientID(clientID)
	if !ok {
		return entities.Site{}, nil, ErrUnknownSite
	}
	proposal, err := u.store.FindByField(ctx, site.ID, entities.TableProposals, entities.ColClientID, clientID)
	if err != nil {
		return entities.Site{}, nil, err
	}
	if proposal == nil {
		return entities.Site{}, nil, ErrProposalNotFound
	}
	return site, proposal, nil
}

func (u *ApprovalUseCase) sendPaymentRequest(ctx context.Context, site entities.Site, clientID string, proposal entities.Record) {
	if u.email == nil {
		return
	}
	quote, err := u.store.FindByField(ctx, site.ID, entities.TableQuotes, entities.ColClientID, clientID)
	if err != nil || quote == nil {
		log.Printf("[approval][usecase] quote lookup for payment request failed client_id=%s err=%v", clientID, err)
		return
	}

	amount := priceOrZero(proposal)
	data := interfaces.PaymentRequestData{
		FirstName:   quote[entities.ColFirstName],
		Email:       quote[entities.ColEmail],
		ClientID:    clientID,
		ProposalURL: proposalURL(site, clientID, proposal),
		PaymentURL:  u.paymentLink(ctx, site, clientID, amount),
		TotalAmount: amount,
		Currency:    site.Currency,
	}
	msgID, err := u.email.SendPaymentRequest(ctx, site, data)
	if err != nil {
		log.Printf("[approval][usecase] payment request email failed client_id=%s err=%v", clientID, err)
		return
	}
	recordDispatch(ctx, u.ledger, clientID, site.ID, entities.DispatchPaymentRequest, data.Email, msgID)
}

// paymentLink prefers the configured gateway and falls back to the static
// paypal.me style URL with the amount and currency appended.
func (u *ApprovalUseCase) paymentLink(ctx context.Context, site entities.Site, clientID, amount string) string {
	if u.gateway != nil {
		price, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			price = 0
		}
		title := fmt.Sprintf("%s journey %s", site.Name, clientID)
		link, err := u.gateway.CreatePaymentLink(ctx, clientID, title, price, site.Currency)
		if err == nil {
			return link
		}
		log.Printf("[approval][usecase] payment link creation failed client_id=%s err=%v", clientID, err)
	}
	return fmt.Sprintf("%s/%s%s", strings.TrimSuffix(u.cfg.FallbackPaymentURL, "/"), amount, site.Currency)
}

func (u *ApprovalUseCase) approvalLink(action, clientID, token string) string {
	q := url.Values{}
	q.Set("action", action)
	q.Set("clientId", clientID)
	q.Set("token", token)
	return fmt.Sprintf("%s/v1/webhooks/approval?%s", strings.TrimSuffix(u.cfg.BaseURL, "/"), q.Encode())
}

func priceOrZero(proposal entities.Record) string {
	if v := strings.TrimSpace(proposal[entities.ColTotalPrice]); v != "" {
		return v
	}
	return "0"
}

func proposalURL(site entities.Site, clientID string, proposal entities.Record) string {
	if v := strings.TrimSpace(proposal[entities.ColProposalURL]); v != "" {
		return v
	}
	return fmt.Sprintf("%s/proposal/%s", strings.TrimSuffix(site.SiteURL, "/"), clientID)
}
