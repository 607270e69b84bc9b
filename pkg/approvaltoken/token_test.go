package approvaltoken

import (
	"testing"
	"time"
)

func TestIssuedTokenRoundTrip(t *testing.T) {
	tok := New("SM-2025-001", "s3cret", time.Hour)
	if !Verify("SM-2025-001", tok, "s3cret") {
		t.Fatal("freshly issued token did not verify")
	}
}

func TestIssuedTokenRejections(t *testing.T) {
	tok := New("SM-2025-001", "s3cret", time.Hour)

	if Verify("SM-2025-002", tok, "s3cret") {
		t.Fatal("token verified for a different client id")
	}
	if Verify("SM-2025-001", tok, "other-secret") {
		t.Fatal("token verified with the wrong secret")
	}
	if Verify("SM-2025-001", tok+"x", "s3cret") {
		t.Fatal("tampered token verified")
	}
	if Verify("SM-2025-001", "", "s3cret") {
		t.Fatal("empty token verified")
	}
}

func TestIssuedTokenExpiry(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tok := newAt("SM-2025-001", "s3cret", time.Hour, issued)

	if !verifyAt("SM-2025-001", tok, "s3cret", issued.Add(30*time.Minute)) {
		t.Fatal("token rejected before expiry")
	}
	if verifyAt("SM-2025-001", tok, "s3cret", issued.Add(2*time.Hour)) {
		t.Fatal("expired token verified")
	}
}

func TestLegacyToken(t *testing.T) {
	tok := Legacy("SM-2025-001", "s3cret")
	if len(tok) != 16 {
		t.Fatalf("legacy token length = %d, want 16", len(tok))
	}
	if !Verify("SM-2025-001", tok, "s3cret") {
		t.Fatal("legacy token did not verify")
	}
	if Verify("SM-2025-001", Legacy("SM-2025-001", "other"), "s3cret") {
		t.Fatal("legacy token with wrong secret verified")
	}
}
