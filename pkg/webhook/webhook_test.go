package webhook

import (
	"testing"

	"github.com/zkelo/unitpay-go/pkg/config"
	"github.com/zkelo/unitpay-go/pkg/locale"
	"github.com/zkelo/unitpay-go/pkg/model"
	"github.com/zkelo/unitpay-go/pkg/signature"
)

const gatewayIP = "31.186.100.49"

func testHandler(t *testing.T) *Handler {
	t.Helper()
	cfg := &config.Config{SecretKey: "secret", PublicKey: "15-a1b2c3"}
	h, err := NewHandler(cfg, locale.English)
	if err != nil {
		t.Fatalf("NewHandler returned error: %v", err)
	}
	return h
}

// signedParams returns a parameter set carrying a valid signature for the
// given method.
func signedParams(t *testing.T, method string, params map[string]string) map[string]string {
	t.Helper()
	signer, err := signature.New("secret")
	if err != nil {
		t.Fatal(err)
	}
	params[signature.ParamSignature] = signer.Inbound(method, params)
	return params
}

// TestHandle_Success runs a fully valid pay callback through the pipeline and
// checks its classification.
func TestHandle_Success(t *testing.T) {
	h := testHandler(t)

	cb := Callback{
		Method: model.RequestPay,
		Params: signedParams(t, model.RequestPay, map[string]string{
			"account": "order-1",
			"sum":     "15",
		}),
		SourceIP: gatewayIP,
	}

	out := h.Handle(cb)
	if !out.Success {
		t.Fatalf("Handle() = %+v, want success", out)
	}
	if out.Result != "ok" || out.Error != "" {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if out.Message == "" {
		t.Fatal("success outcome has no localized message")
	}

	if !cb.IsSuccess() || cb.IsWaiting() || cb.IsPreAuth() || cb.HasFailed() {
		t.Fatal("pay callback misclassified")
	}
}

// TestHandle_IPAllowList verifies that an unknown source IP short-circuits
// the pipeline even when everything else, including the signature, is valid.
func TestHandle_IPAllowList(t *testing.T) {
	h := testHandler(t)

	params := signedParams(t, model.RequestPay, map[string]string{"account": "order-1"})

	for _, ip := range []string{"10.0.0.1", "31.186.100.50", "::1", "not-an-ip", ""} {
		out := h.Handle(Callback{Method: model.RequestPay, Params: params, SourceIP: ip})
		if out.Success || out.Error != KindInvalidIP {
			t.Fatalf("ip %q: outcome = %+v, want invalid_ip", ip, out)
		}
	}

	for _, ip := range AllowedIPs {
		out := h.Handle(Callback{Method: model.RequestPay, Params: params, SourceIP: ip})
		if !out.Success {
			t.Fatalf("allow-listed ip %q rejected: %+v", ip, out)
		}
	}
}

// TestHandle_Stages verifies each rejection stage and its kind code.
func TestHandle_Stages(t *testing.T) {
	h := testHandler(t)

	tests := []struct {
		name string
		cb   Callback
		want string
	}{
		{
			name: "missing method",
			cb:   Callback{Params: map[string]string{"account": "a"}, SourceIP: gatewayIP},
			want: KindMissingParams,
		},
		{
			name: "missing params",
			cb:   Callback{Method: model.RequestPay, SourceIP: gatewayIP},
			want: KindMissingParams,
		},
		{
			name: "unsupported method",
			cb: Callback{
				Method:   "refund",
				Params:   map[string]string{"account": "a"},
				SourceIP: gatewayIP,
			},
			want: KindUnsupportedMethod,
		},
		{
			name: "bad signature",
			cb: Callback{
				Method: model.RequestPay,
				Params: map[string]string{
					"account":   "a",
					"signature": "deadbeef",
				},
				SourceIP: gatewayIP,
			},
			want: KindInvalidSignature,
		},
		{
			name: "no signature",
			cb: Callback{
				Method:   model.RequestPay,
				Params:   map[string]string{"account": "a"},
				SourceIP: gatewayIP,
			},
			want: KindInvalidSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := h.Handle(tt.cb)
			if out.Success {
				t.Fatalf("outcome = %+v, want rejection", out)
			}
			if out.Error != tt.want {
				t.Fatalf("kind = %q, want %q", out.Error, tt.want)
			}
			if out.Message == "" {
				t.Fatal("rejection has no localized message")
			}
		})
	}
}

// TestHandle_TamperedValue verifies that modifying any signed field after
// signing invalidates the callback.
func TestHandle_TamperedValue(t *testing.T) {
	h := testHandler(t)

	params := signedParams(t, model.RequestPay, map[string]string{
		"account": "order-1",
		"sum":     "15",
	})
	params["sum"] = "1500"

	out := h.Handle(Callback{Method: model.RequestPay, Params: params, SourceIP: gatewayIP})
	if out.Success || out.Error != KindInvalidSignature {
		t.Fatalf("outcome = %+v, want invalid_signature", out)
	}
}

// TestHandle_MethodBoundSignature verifies that a signature computed for one
// method does not authenticate another.
func TestHandle_MethodBoundSignature(t *testing.T) {
	h := testHandler(t)

	params := signedParams(t, model.RequestCheck, map[string]string{"account": "order-1"})

	out := h.Handle(Callback{Method: model.RequestPay, Params: params, SourceIP: gatewayIP})
	if out.Success || out.Error != KindInvalidSignature {
		t.Fatalf("outcome = %+v, want invalid_signature", out)
	}
}

// TestHandle_LocalizedMessages verifies that the injected message catalog
// drives the outcome text.
func TestHandle_LocalizedMessages(t *testing.T) {
	cfg := &config.Config{SecretKey: "secret", PublicKey: "15-a1b2c3"}
	h, err := NewHandler(cfg, locale.Map{"response.error.invalid_ip": "нет"})
	if err != nil {
		t.Fatal(err)
	}

	out := h.Handle(Callback{Method: model.RequestPay, SourceIP: "10.0.0.1"})
	if out.Message != "нет" {
		t.Fatalf("message = %q, want override", out.Message)
	}
}

// TestCallback_Classification covers the four-state classification of
// authenticated callbacks.
func TestCallback_Classification(t *testing.T) {
	tests := []struct {
		method  string
		waiting bool
		success bool
		preAuth bool
		failed  bool
	}{
		{method: model.RequestCheck, waiting: true},
		{method: model.RequestPay, success: true},
		{method: model.RequestPreAuth, preAuth: true},
		{method: model.RequestError, failed: true},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			cb := Callback{Method: tt.method}
			if cb.IsWaiting() != tt.waiting || cb.IsSuccess() != tt.success ||
				cb.IsPreAuth() != tt.preAuth || cb.HasFailed() != tt.failed {
				t.Fatalf("method %q misclassified", tt.method)
			}
		})
	}
}

// TestNewHandler_Errors verifies construction failures.
func TestNewHandler_Errors(t *testing.T) {
	if _, err := NewHandler(&config.Config{PublicKey: "1-a"}, nil); err == nil {
		t.Fatal("expected error for missing secret key")
	}
}
