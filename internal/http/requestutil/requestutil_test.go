package requestutil

import (
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestIDKeepsValidIDs(t *testing.T) {
	if got := SanitizeRequestID("abc-123_XYZ"); got != "abc-123_XYZ" {
		t.Fatalf("expected valid id to pass through, got %q", got)
	}
}

func TestSanitizeRequestIDReplacesInvalidIDs(t *testing.T) {
	cases := []string{"", "has space", "bad/slash", string(make([]byte, 65))}
	for _, in := range cases {
		got := SanitizeRequestID(in)
		if got == in || got == "" {
			t.Fatalf("expected a fresh id for %q, got %q", in, got)
		}
	}
}

func TestNewRequestIDsAreUnique(t *testing.T) {
	if NewRequestID() == NewRequestID() {
		t.Fatal("expected distinct request ids")
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"
	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.2")

	if got := ClientIP(r); got != "203.0.113.7" {
		t.Fatalf("expected first forwarded address, got %q", got)
	}
}

func TestClientIPFallsBackToRemoteAddr(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.1:1234"

	if got := ClientIP(r); got != "10.0.0.1:1234" {
		t.Fatalf("expected remote addr, got %q", got)
	}
}
