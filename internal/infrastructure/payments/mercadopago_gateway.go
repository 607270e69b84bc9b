package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"sales_associate/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway builds checkout-preference links for approved proposals.
// The preference's external reference is the client ID, so inbound payment
// notifications can be reconciled against the quote.

type MercadoPagoGateway struct {
	client   preference.Client
	mockMode bool
}

var _ interfaces.IPaymentLinkGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePaymentLink(ctx context.Context, clientID, title string, amount float64, currency string) (string, error) {
	if g != nil && g.mockMode {
		url := fmt.Sprintf("https://checkout.example.test/pay/%s?amount=%.2f&currency=%s", clientID, amount, currency)
		log.Printf("[payment][gateway] mock link created client_id=%s url=%s", clientID, url)
		return url, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create link start client_id=%s amount=%.2f currency=%s", clientID, amount, currency)

	resp, err := g.client.Create(ctx, preference.Request{
		ExternalReference: clientID,
		Items: []preference.ItemRequest{
			{
				Title:      title,
				Quantity:   1,
				UnitPrice:  amount,
				CurrencyID: currency,
			},
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed client_id=%s err=%v", clientID, err)
		return "", err
	}

	url := resp.InitPoint
	if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") && resp.SandboxInitPoint != "" {
		url = resp.SandboxInitPoint
	}
	log.Printf("[payment][gateway] create link success client_id=%s preference_id=%s", clientID, resp.ID)
	return url, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
