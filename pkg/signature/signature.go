// Package signature implements the gateway's request signing protocol: a
// SHA-256 digest over a "{up}"-delimited canonical parameter string with the
// project secret appended as the last element.
//
// Outbound and inbound requests canonicalize differently. An outbound request
// controls its own parameter set, so the fields are joined in a fixed declared
// order. An inbound callback's parameter set and transmission order are
// dictated by the gateway, so the fields are sorted by name to make the digest
// reproducible regardless of how the parameters arrived.
package signature

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Delimiter separates canonicalized parameters in the string being digested.
const Delimiter = "{up}"

// Keys under which an inbound callback carries its own signature. Both are
// stripped before the digest is recomputed.
const (
	ParamSignature = "signature"
	ParamSign      = "sign"
)

// ErrSecretRequired is returned by New when the secret key is empty. Signing
// without a secret is a configuration error and is rejected at construction
// time, not at signing time.
var ErrSecretRequired = errors.New("secret key is required")

// Signer computes and verifies gateway signatures for one project secret.
// A Signer is immutable and safe for concurrent use.
type Signer struct {
	secret string
}

// New creates a Signer for the given project secret.
func New(secret string) (*Signer, error) {
	if secret == "" {
		return nil, ErrSecretRequired
	}
	return &Signer{secret: secret}, nil
}

// Sign returns the outbound digest over the fixed-order sequence
//
//	account {up} currency {up} description {up} sum {up} secret
//
// When currency is empty it is omitted entirely, producing a three-element
// parameter sequence rather than an empty slot. The hosted-form URL signs with
// the order currency; the server-to-server initPayment call signs without one.
func (s *Signer) Sign(account, description string, sum decimal.Decimal, currency string) string {
	parts := make([]string, 0, 5)
	parts = append(parts, account)
	if currency != "" {
		parts = append(parts, currency)
	}
	parts = append(parts, description, sum.String(), s.secret)
	return digest(parts)
}

// Inbound returns the digest for a callback parameter set. The callback's own
// signature fields and absent values are dropped, the remaining parameters are
// sorted by field name ascending, the request method is prepended and the
// secret appended:
//
//	method {up} v1 {up} ... {up} vN {up} secret
func (s *Signer) Inbound(method string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if k == ParamSignature || k == ParamSign || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys)+2)
	if method != "" {
		parts = append(parts, method)
	}
	for _, k := range keys {
		parts = append(parts, params[k])
	}
	parts = append(parts, s.secret)
	return digest(parts)
}

// Verify recomputes the inbound digest for the callback parameters and
// compares it to the signature the callback carries. The comparison is
// constant time. A callback without a signature field never verifies.
func (s *Signer) Verify(method string, params map[string]string) bool {
	got, ok := params[ParamSignature]
	if !ok {
		got, ok = params[ParamSign]
	}
	if !ok || got == "" {
		return false
	}
	want := s.Inbound(method, params)
	return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}

func digest(parts []string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, Delimiter)))
	return hex.EncodeToString(sum[:])
}
