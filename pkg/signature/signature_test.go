package signature

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// rawDigest recomputes a digest independently of the Signer, from an already
// ordered parameter sequence.
func rawDigest(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, Delimiter)))
	return hex.EncodeToString(sum[:])
}

// TestNew_RequiresSecret verifies that signing with a missing secret is
// rejected at construction time.
func TestNew_RequiresSecret(t *testing.T) {
	if _, err := New(""); err != ErrSecretRequired {
		t.Fatalf("New(\"\") error = %v, want ErrSecretRequired", err)
	}
}

// TestSign_Deterministic verifies that identical inputs always produce an
// identical digest and that changing any one field changes it.
func TestSign_Deterministic(t *testing.T) {
	s, err := New("secret")
	if err != nil {
		t.Fatal(err)
	}

	sum := decimal.NewFromInt(15)
	base := s.Sign("test-account", "Test order", sum, "")

	if again := s.Sign("test-account", "Test order", sum, ""); again != base {
		t.Fatalf("re-signing identical inputs changed the digest: %s != %s", again, base)
	}

	variants := []string{
		s.Sign("test-account2", "Test order", sum, ""),
		s.Sign("test-account", "Test order!", sum, ""),
		s.Sign("test-account", "Test order", decimal.NewFromInt(16), ""),
		s.Sign("test-account", "Test order", sum, "RUB"),
	}
	for i, v := range variants {
		if v == base {
			t.Fatalf("variant %d produced the base digest", i)
		}
	}

	other, err := New("secret2")
	if err != nil {
		t.Fatal(err)
	}
	if other.Sign("test-account", "Test order", sum, "") == base {
		t.Fatal("different secrets produced the same digest")
	}
}

// TestSign_CurrencyOmittedEntirely verifies that an absent currency produces
// a three-element parameter sequence, not a four-element one with an empty
// slot.
func TestSign_CurrencyOmittedEntirely(t *testing.T) {
	s, err := New("secret")
	if err != nil {
		t.Fatal(err)
	}
	sum := decimal.NewFromInt(15)

	got := s.Sign("acc", "desc", sum, "")
	if want := rawDigest("acc", "desc", "15", "secret"); got != want {
		t.Fatalf("Sign without currency = %s, want %s", got, want)
	}
	if empty := rawDigest("acc", "", "desc", "15", "secret"); got == empty {
		t.Fatal("absent currency was serialized as an empty slot")
	}

	got = s.Sign("acc", "desc", sum, "RUB")
	if want := rawDigest("acc", "RUB", "desc", "15", "secret"); got != want {
		t.Fatalf("Sign with currency = %s, want %s", got, want)
	}
}

// TestInbound_Canonicalization verifies the inbound rules: signature fields
// and absent values dropped, remaining values sorted by field name, method
// prepended, secret appended.
func TestInbound_Canonicalization(t *testing.T) {
	s, err := New("secret")
	if err != nil {
		t.Fatal(err)
	}

	params := map[string]string{
		"sum":       "15",
		"account":   "test-account",
		"orderId":   "99",
		"empty":     "",
		"signature": "deadbeef",
		"sign":      "cafe",
	}

	// account, orderId, sum -- lexicographic by field name
	want := rawDigest("pay", "test-account", "99", "15", "secret")
	if got := s.Inbound("pay", params); got != want {
		t.Fatalf("Inbound() = %s, want %s", got, want)
	}

	// A modified value must change the digest.
	params["sum"] = "16"
	if got := s.Inbound("pay", params); got == want {
		t.Fatal("modified field value did not change the digest")
	}
}

// TestInbound_OrderInvariance verifies that the digest does not depend on the
// order the parameters were transmitted in.
func TestInbound_OrderInvariance(t *testing.T) {
	s, err := New("secret")
	if err != nil {
		t.Fatal(err)
	}

	forward := map[string]string{}
	backward := map[string]string{}
	pairs := [][2]string{
		{"account", "a"}, {"sum", "15"}, {"orderId", "9"}, {"profit", "14"},
	}
	for _, p := range pairs {
		forward[p[0]] = p[1]
	}
	for i := len(pairs) - 1; i >= 0; i-- {
		backward[pairs[i][0]] = pairs[i][1]
	}

	if s.Inbound("check", forward) != s.Inbound("check", backward) {
		t.Fatal("digest depends on parameter insertion order")
	}
}

// TestVerify verifies the constant-time comparison entry point.
func TestVerify(t *testing.T) {
	s, err := New("secret")
	if err != nil {
		t.Fatal(err)
	}

	params := map[string]string{
		"account": "test-account",
		"sum":     "15",
	}
	params["signature"] = s.Inbound("pay", params)

	if !s.Verify("pay", params) {
		t.Fatal("valid signature did not verify")
	}

	params["sum"] = "16"
	if s.Verify("pay", params) {
		t.Fatal("tampered parameters verified")
	}
}

// TestVerify_SignatureField verifies the fallback to the "sign" field and the
// rejection of callbacks without any signature.
func TestVerify_SignatureField(t *testing.T) {
	s, err := New("secret")
	if err != nil {
		t.Fatal(err)
	}

	params := map[string]string{"account": "a", "sum": "1"}
	params[ParamSign] = s.Inbound("pay", params)
	if !s.Verify("pay", params) {
		t.Fatal("signature under the sign key did not verify")
	}

	if s.Verify("pay", map[string]string{"account": "a"}) {
		t.Fatal("callback without a signature verified")
	}
}
