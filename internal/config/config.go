package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"sales_associate/internal/domain/entities"
)

type Config struct {
	AppPort string
	BaseURL string

	// Approval links.
	AdminEmail       string
	ApprovalSecret   string
	ApprovalTokenTTL time.Duration

	// Outbound email.
	ResendAPIKey string
	EmailFrom    string

	// Payment links. FallbackPaymentURL is used when the gateway is not
	// configured; the amount and currency get appended paypal.me style.
	MercadoPagoAccessToken string
	FallbackPaymentURL     string

	// Idempotency store.
	RedisAddr string
	RedisDB   int
	IdempTTL  time.Duration

	// Per-site read timeout during aggregation.
	SiteReadTimeout time.Duration

	Sites []entities.Site
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort: getenv("APP_PORT", "8080"),
		BaseURL: getenv("BASE_URL", "http://localhost:8080"),

		AdminEmail:       os.Getenv("ADMIN_EMAIL"),
		ApprovalSecret:   getenv("APPROVAL_SECRET", "secret"),
		ApprovalTokenTTL: 14 * 24 * time.Hour,

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		EmailFrom:    getenv("EMAIL_FROM", "Slow World <hello@slowmorocco.com>"),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		FallbackPaymentURL:     getenv("FALLBACK_PAYMENT_URL", "https://www.paypal.com/paypalme/slowmorocco"),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		IdempTTL:  300 * time.Second,

		SiteReadTimeout: 15 * time.Second,

		Sites: defaultSites(),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTL = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("APPROVAL_TOKEN_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ApprovalTokenTTL = time.Duration(n) * time.Hour
		}
	}
	return c
}

// defaultSites is the country table. Sheet IDs come from env so each
// deployment points at its own spreadsheets; add new countries here.
func defaultSites() []entities.Site {
	return []entities.Site{
		{
			ID:             "slow-morocco",
			Name:           "Slow Morocco",
			SheetID:        os.Getenv("SLOW_MOROCCO_SHEET_ID"),
			SiteURL:        "https://slowmorocco.com",
			ContactEmail:   "hello@slowmorocco.com",
			Currency:       "EUR",
			ClientIDPrefix: "SM",
		},
		{
			ID:             "slow-namibia",
			Name:           "Slow Namibia",
			SheetID:        os.Getenv("SLOW_NAMIBIA_SHEET_ID"),
			SiteURL:        "https://slownamibia.com",
			ContactEmail:   "hello@slownamibia.com",
			Currency:       "EUR",
			ClientIDPrefix: "SN",
		},
		{
			ID:             "slow-turkiye",
			Name:           "Slow Türkiye",
			SheetID:        os.Getenv("SLOW_TURKIYE_SHEET_ID"),
			SiteURL:        "https://slowturkiye.com",
			ContactEmail:   "hello@slowturkiye.com",
			Currency:       "EUR",
			ClientIDPrefix: "ST",
		},
		{
			ID:             "slow-tunisia",
			Name:           "Slow Tunisia",
			SheetID:        os.Getenv("SLOW_TUNISIA_SHEET_ID"),
			SiteURL:        "https://slowtunisia.com",
			ContactEmail:   "hello@slowtunisia.com",
			Currency:       "EUR",
			ClientIDPrefix: "STU",
		},
		{
			ID:             "slow-mauritius",
			Name:           "Slow Mauritius",
			SheetID:        os.Getenv("SLOW_MAURITIUS_SHEET_ID"),
			SiteURL:        "https://slowmauritius.com",
			ContactEmail:   "hello@slowmauritius.com",
			Currency:       "EUR",
			ClientIDPrefix: "SMU",
		},
	}
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.BaseURL == "" {
		return errors.New("missing BASE_URL")
	}
	if len(c.Sites) == 0 {
		return errors.New("no sites configured")
	}
	seen := map[string]bool{}
	for _, s := range c.Sites {
		if seen[s.ClientIDPrefix] {
			return errors.New("duplicate client id prefix " + s.ClientIDPrefix)
		}
		seen[s.ClientIDPrefix] = true
	}
	return nil
}

// Registry builds the immutable site lookup injected into the usecases.
func (c *Config) Registry() *entities.SiteRegistry {
	return entities.NewSiteRegistry(c.Sites)
}
