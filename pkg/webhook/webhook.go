// Package webhook authenticates and classifies inbound gateway callbacks.
//
// Every callback runs through a strict four-stage filter: source IP
// allow-list, required fields, method support, signature. Each stage
// short-circuits into a structured, localized Outcome; the pipeline never
// returns an error, because the HTTP endpoint must always answer the gateway
// with a well-formed body regardless of why authentication failed.
package webhook

import (
	"net"

	"go.uber.org/zap"

	"github.com/zkelo/unitpay-go/pkg/config"
	"github.com/zkelo/unitpay-go/pkg/locale"
	"github.com/zkelo/unitpay-go/pkg/model"
	"github.com/zkelo/unitpay-go/pkg/signature"
)

// AllowedIPs is the fixed set of gateway server addresses trusted to send
// callbacks. Requests from anywhere else are rejected before any other check.
var AllowedIPs = []string{
	"31.186.100.49",
	"178.132.203.105",
	"52.29.152.23",
	"52.19.56.234",
}

var allowedIPs = func() map[string]struct{} {
	set := make(map[string]struct{}, len(AllowedIPs))
	for _, ip := range AllowedIPs {
		set[ip] = struct{}{}
	}
	return set
}()

// Rejection kind codes. They double as the last segment of the message
// catalog key "response.error.<kind>".
const (
	KindInvalidIP         = "invalid_ip"
	KindMissingParams     = "missing_params"
	KindUnsupportedMethod = "unsupported_method"
	KindInvalidSignature  = "invalid_signature"
)

// Callback is one inbound notification from the gateway. It is received once
// per HTTP call, fully validated and then discarded; no state is kept across
// callbacks.
type Callback struct {
	// Method is the request method: check, pay, preAuth or error.
	Method string
	// Params is the full callback parameter mapping, including the
	// signature field.
	Params map[string]string
	// SourceIP is the address the callback arrived from.
	SourceIP string
}

// IsWaiting reports that the gateway is checking whether the service can be
// provided (method "check").
func (c Callback) IsWaiting() bool { return c.Method == model.RequestCheck }

// IsSuccess reports a successful payment (method "pay").
func (c Callback) IsSuccess() bool { return c.Method == model.RequestPay }

// IsPreAuth reports a pre-authorized payment with held funds (method "preAuth").
func (c Callback) IsPreAuth() bool { return c.Method == model.RequestPreAuth }

// HasFailed reports a payment error (method "error").
func (c Callback) HasFailed() bool { return c.Method == model.RequestError }

// Outcome is the result of authenticating a callback. Success and failure are
// both ordinary values: the HTTP layer serializes the outcome verbatim.
type Outcome struct {
	Success bool `json:"success"`
	// Result is the fixed success code "ok".
	Result string `json:"result,omitempty"`
	// Error is the rejection kind code (invalid_ip, missing_params,
	// unsupported_method, invalid_signature).
	Error string `json:"error,omitempty"`
	// Message is the localized description of the outcome, resolved through
	// the handler's message catalog.
	Message string `json:"message,omitempty"`
}

// Handler authenticates callbacks for one project. It is immutable after
// construction and safe for concurrent use.
type Handler struct {
	signer   *signature.Signer
	messages locale.Source
}

// NewHandler creates a Handler from validated credentials. The messages
// source localizes outcome descriptions; nil selects the default locale
// catalog.
func NewHandler(cfg *config.Config, messages locale.Source) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	signer, err := signature.New(cfg.SecretKey)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = locale.Default()
	}
	return &Handler{signer: signer, messages: messages}, nil
}

// Handle runs the four-stage authentication pipeline over a callback and
// returns the outcome. It never panics and never returns an error.
func (h *Handler) Handle(cb Callback) Outcome {
	if !ipAllowed(cb.SourceIP) {
		return h.reject(cb, KindInvalidIP)
	}
	if cb.Method == "" || len(cb.Params) == 0 {
		return h.reject(cb, KindMissingParams)
	}
	if !model.RequestMethods.IsSupported(cb.Method) {
		return h.reject(cb, KindUnsupportedMethod)
	}
	if !h.signer.Verify(cb.Method, cb.Params) {
		return h.reject(cb, KindInvalidSignature)
	}

	outcomesTotal.WithLabelValues("ok").Inc()
	return Outcome{
		Success: true,
		Result:  "ok",
		Message: h.message("response.result.ok"),
	}
}

func (h *Handler) reject(cb Callback, kind string) Outcome {
	outcomesTotal.WithLabelValues(kind).Inc()
	zap.L().Info("callback rejected",
		zap.String("kind", kind),
		zap.String("method", cb.Method),
		zap.String("source_ip", cb.SourceIP))
	return Outcome{
		Success: false,
		Error:   kind,
		Message: h.message("response.error." + kind),
	}
}

func (h *Handler) message(key string) string {
	msg, ok := h.messages.Message(key)
	if !ok {
		return ""
	}
	return msg
}

// ipAllowed accepts only IPv4 literals from the allow-list.
func ipAllowed(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.To4() == nil {
		return false
	}
	_, ok := allowedIPs[ip]
	return ok
}
