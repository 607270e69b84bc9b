package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"sales_associate/internal/domain/entities"
	"sales_associate/internal/usecase/interfaces"
)

var ErrPaymentNotCompleted = errors.New("payment notification not completed")

// PaymentNotification is the payload posted by the payment processor (or the
// automation relay in front of it) when a guest pays.
type PaymentNotification struct {
	ClientID   string
	PaymentID  string
	Amount     string
	Currency   string
	PayerEmail string
	Status     string
}

type IPaymentUseCase interface {
	Confirm(ctx context.Context, n PaymentNotification) error
}

type PaymentUseCase struct {
	store  interfaces.IRecordStore
	sites  *entities.SiteRegistry
	email  interfaces.IEmailSender
	ledger interfaces.IDispatchLedger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(store interfaces.IRecordStore, sites *entities.SiteRegistry, email interfaces.IEmailSender, ledger interfaces.IDispatchLedger) *PaymentUseCase {
	return &PaymentUseCase{store: store, sites: sites, email: email, ledger: ledger}
}

// Confirm applies a completed payment: both the quote and proposal move to
// PAID with the payment id and date, then the guest gets a confirmation
// email. Any status other than COMPLETED is rejected without touching the
// store or sending anything.
func (u *PaymentUseCase) Confirm(ctx context.Context, n PaymentNotification) error {
	if strings.TrimSpace(n.ClientID) == "" || n.Status != "COMPLETED" {
		return ErrPaymentNotCompleted
	}

	site, ok := u.sites.SiteForClientID(n.ClientID)
	if !ok {
		return ErrUnknownSite
	}

	quote, err := u.store.FindByField(ctx, site.ID, entities.TableQuotes, entities.ColClientID, n.ClientID)
	if err != nil {
		return err
	}
	if quote == nil {
		return ErrQuoteNotFound
	}

	now := nowISO()
	patch := map[string]string{
		entities.ColStatus:      string(entities.QuoteStatusPaid),
		entities.ColPaymentID:   n.PaymentID,
		entities.ColPaymentDate: now,
		entities.ColLastUpdated: now,
	}
	if err := u.store.UpdateByField(ctx, site.ID, entities.TableQuotes, entities.ColClientID, n.ClientID, patch); err != nil {
		return err
	}
	err = u.store.UpdateByField(ctx, site.ID, entities.TableProposals, entities.ColClientID, n.ClientID, patch)
	if err != nil && !errors.Is(err, interfaces.ErrRowNotFound) {
		return err
	}
	log.Printf("[payment][usecase] payment confirmed client_id=%s site_id=%s payment_id=%s", n.ClientID, site.ID, n.PaymentID)

	u.sendConfirmation(ctx, site, n, quote)
	return nil
}

func (u *PaymentUseCase) sendConfirmation(ctx context.Context, site entities.Site, n PaymentNotification, quote entities.Record) {
	if u.email == nil {
		return
	}
	amount := n.Amount
	if amount == "" {
		amount = quote[entities.ColBudget]
	}
	if amount == "" {
		amount = "0"
	}
	currency := n.Currency
	if currency == "" {
		currency = site.Currency
	}

	data := interfaces.PaymentConfirmationData{
		FirstName: quote[entities.ColFirstName],
		Email:     quote[entities.ColEmail],
		ClientID:  n.ClientID,
		Amount:    amount,
		Currency:  currency,
	}
	msgID, err := u.email.SendPaymentConfirmation(ctx, site, data)
	if err != nil {
		log.Printf("[payment][usecase] confirmation email failed client_id=%s err=%v", n.ClientID, err)
		return
	}
	recordDispatch(ctx, u.ledger, n.ClientID, site.ID, entities.DispatchPaymentConfirmation, data.Email, msgID)
}
