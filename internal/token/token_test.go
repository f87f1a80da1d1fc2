package token

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"
)

// makeToken assembles an unsigned-but-well-formed JWT from raw claim
// maps. The signature part is garbage; Decode never verifies it.
func makeToken(t *testing.T, header, payload map[string]any) string {
	t.Helper()
	encode := func(v any) string {
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshaling segment: %v", err)
		}
		return base64.RawURLEncoding.EncodeToString(b)
	}
	return encode(header) + "." + encode(payload) + ".c2lnbmF0dXJl"
}

func TestDecode(t *testing.T) {
	tok := makeToken(t,
		map[string]any{"alg": "HS256", "typ": "JWT"},
		map[string]any{"sub": "1234567890", "name": "Jane Doe"})

	result, err := Decode(tok)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !result.ValidFormat {
		t.Error("ValidFormat = false, want true")
	}
	if result.Header["alg"] != "HS256" || result.Header["typ"] != "JWT" {
		t.Errorf("Header = %v", result.Header)
	}
	if result.Payload["sub"] != "1234567890" || result.Payload["name"] != "Jane Doe" {
		t.Errorf("Payload = %v", result.Payload)
	}
	if result.Signature != "c2lnbmF0dXJl" {
		t.Errorf("Signature = %q", result.Signature)
	}
	if result.IssuedAt != nil || result.ExpiresAt != nil || result.IsExpired != nil {
		t.Error("timestamp fields set without iat/exp claims")
	}
}

func TestDecode_Timestamps(t *testing.T) {
	tok := makeToken(t,
		map[string]any{"alg": "HS256", "typ": "JWT"},
		map[string]any{"iat": 1516239022, "exp": 1516242622})

	result, err := Decode(tok)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if result.IssuedAt == nil || *result.IssuedAt != 1516239022 {
		t.Fatalf("IssuedAt = %v, want 1516239022", result.IssuedAt)
	}
	if result.IssuedAtReadable == nil || *result.IssuedAtReadable != "2018-01-18 01:30:22 UTC" {
		t.Errorf("IssuedAtReadable = %v", result.IssuedAtReadable)
	}
	if result.ExpiresAt == nil || *result.ExpiresAt != 1516242622 {
		t.Fatalf("ExpiresAt = %v, want 1516242622", result.ExpiresAt)
	}
	if result.IsExpired == nil || !*result.IsExpired {
		t.Error("IsExpired should be true for a 2018 expiry")
	}
}

func TestDecode_NotExpired(t *testing.T) {
	future := time.Now().Add(time.Hour).Unix()
	tok := makeToken(t,
		map[string]any{"alg": "HS256", "typ": "JWT"},
		map[string]any{"exp": future})

	result, err := Decode(tok)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if result.IsExpired == nil || *result.IsExpired {
		t.Error("IsExpired should be false for a future expiry")
	}
}

func TestDecode_WrongPartCount(t *testing.T) {
	for _, tok := range []string{"onlyonepart", "two.parts", "a.b.c.d"} {
		result, err := Decode(tok)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", tok, err)
		}
		if result.ValidFormat {
			t.Errorf("Decode(%q).ValidFormat = true, want false", tok)
		}
		if result.Header == nil || result.Payload == nil {
			t.Errorf("Decode(%q) returned nil maps", tok)
		}
	}
}

func TestDecode_TrimsWhitespace(t *testing.T) {
	tok := makeToken(t,
		map[string]any{"alg": "none"},
		map[string]any{"sub": "x"})
	result, err := Decode("  " + tok + "\n")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !result.ValidFormat {
		t.Error("ValidFormat = false after trimming whitespace")
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := Decode(""); err == nil {
		t.Error("empty token succeeded, want error")
	}
	if _, err := Decode("   "); err == nil {
		t.Error("whitespace token succeeded, want error")
	}
	// three parts but not base64url JSON
	if _, err := Decode("!!!.???.###"); err == nil {
		t.Error("garbage segments succeeded, want error")
	}
	// valid base64 but payload is not a JSON object
	bad := base64.RawURLEncoding.EncodeToString([]byte("not json"))
	if _, err := Decode(bad + "." + bad + ".sig"); err == nil {
		t.Error("non-JSON segments succeeded, want error")
	}
}
