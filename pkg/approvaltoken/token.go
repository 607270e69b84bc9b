// Package approvaltoken issues and verifies the bearer tokens embedded in the
// approve/reject links emailed to admins.
//
// Two formats verify:
//   - the legacy format, base64(clientID+secret) truncated to 16 characters,
//     kept so links from already-sent emails stay valid;
//   - the issued format, base64url(clientID|expiry) + "." + base64url(HMAC),
//     which is signed and time-bound. New links always carry this one.
package approvaltoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultTTL bounds how long an emailed approval link stays clickable.
const DefaultTTL = 14 * 24 * time.Hour

// New issues a signed, time-bound token for clientID.
func New(clientID, secret string, ttl time.Duration) string {
	return newAt(clientID, secret, ttl, time.Now())
}

func newAt(clientID, secret string, ttl time.Duration, now time.Time) string {
	payload := fmt.Sprintf("%s|%d", clientID, now.Add(ttl).Unix())
	return base64.RawURLEncoding.EncodeToString([]byte(payload)) +
		"." + base64.RawURLEncoding.EncodeToString(sign(payload, secret))
}

// Legacy computes the historical token for clientID.
func Legacy(clientID, secret string) string {
	tok := base64.StdEncoding.EncodeToString([]byte(clientID + secret))
	if len(tok) > 16 {
		tok = tok[:16]
	}
	return tok
}

// Verify reports whether token is valid for clientID. Both formats are
// checked; comparisons are constant-time.
func Verify(clientID, token, secret string) bool {
	return verifyAt(clientID, token, secret, time.Now())
}

func verifyAt(clientID, token, secret string, now time.Time) bool {
	if token == "" {
		return false
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(Legacy(clientID, secret))) == 1 {
		return true
	}

	encPayload, encSig, ok := strings.Cut(token, ".")
	if !ok {
		return false
	}
	payload, err := base64.RawURLEncoding.DecodeString(encPayload)
	if err != nil {
		return false
	}
	sig, err := base64.RawURLEncoding.DecodeString(encSig)
	if err != nil {
		return false
	}
	if !hmac.Equal(sig, sign(string(payload), secret)) {
		return false
	}

	id, expStr, ok := strings.Cut(string(payload), "|")
	if !ok || id != clientID {
		return false
	}
	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil {
		return false
	}
	return now.Unix() <= exp
}

func sign(payload, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return mac.Sum(nil)
}
