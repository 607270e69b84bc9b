package database

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ConnectSheets creates a Google Sheets client using environment variables.
//
// Supported env vars:
//   - GOOGLE_SERVICE_ACCOUNT_BASE64 (whole service-account JSON, base64)
//   - GOOGLE_CLIENT_EMAIL + GOOGLE_PRIVATE_KEY (individual credentials;
//     literal "\n" sequences in the key are unescaped)
func ConnectSheets() *sheets.Service {
	svc, err := NewSheetsServiceFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create sheets client: %v", err)
	}
	return svc
}

func NewSheetsServiceFromEnv(ctx context.Context) (*sheets.Service, error) {
	creds, err := serviceAccountJSONFromEnv()
	if err != nil {
		return nil, err
	}
	return sheets.NewService(ctx,
		option.WithCredentialsJSON(creds),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
}

func serviceAccountJSONFromEnv() ([]byte, error) {
	if b64 := os.Getenv("GOOGLE_SERVICE_ACCOUNT_BASE64"); b64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			return nil, err
		}
		return decoded, nil
	}

	email := os.Getenv("GOOGLE_CLIENT_EMAIL")
	key := strings.ReplaceAll(os.Getenv("GOOGLE_PRIVATE_KEY"), `\n`, "\n")
	if email == "" || key == "" {
		return nil, errors.New("missing GOOGLE_SERVICE_ACCOUNT_BASE64 or GOOGLE_CLIENT_EMAIL/GOOGLE_PRIVATE_KEY")
	}
	return json.Marshal(map[string]string{
		"type":         "service_account",
		"client_email": email,
		"private_key":  key,
		"token_uri":    "https://oauth2.googleapis.com/token",
	})
}
