package interfaces

import "context"

// IPaymentLinkGateway abstracts external checkout providers (e.g. Mercado
// Pago). The approval flow uses it to build the payment link embedded in the
// payment-request email.
type IPaymentLinkGateway interface {
	CreatePaymentLink(ctx context.Context, clientID, title string, amount float64, currency string) (string, error)
}
