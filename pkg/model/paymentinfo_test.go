package model

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

// TestPaymentInfo_Accessors verifies typed access to a populated snapshot.
func TestPaymentInfo_Accessors(t *testing.T) {
	info := NewPaymentInfo(map[string]any{
		"status":        "success",
		"paymentId":     float64(123456),
		"projectId":     float64(15),
		"account":       "order-1",
		"purse":         "4100...",
		"profit":        14.25,
		"paymentType":   "card",
		"orderSum":      "15",
		"orderCurrency": "RUB",
		"date":          "2020-01-02 03:04:05",
		"payerSum":      15.0,
		"payerCurrency": "RUB",
		"receiptUrl":    "https://unitpay.ru/receipt",
	})

	status, err := info.Status()
	if err != nil || status != StatusSuccess {
		t.Fatalf("Status() = %q, %v", status, err)
	}

	id, err := info.PaymentID()
	if err != nil || id != 123456 {
		t.Fatalf("PaymentID() = %d, %v", id, err)
	}

	sum, err := info.OrderSum()
	if err != nil || !sum.Equal(decimal.NewFromInt(15)) {
		t.Fatalf("OrderSum() = %s, %v", sum, err)
	}

	profit, err := info.Profit()
	if err != nil || !profit.Equal(decimal.NewFromFloat(14.25)) {
		t.Fatalf("Profit() = %s, %v", profit, err)
	}

	if !info.Has("receiptUrl") {
		t.Fatal("Has(receiptUrl) = false")
	}
}

// TestPaymentInfo_FieldNotSet verifies that access to an unset field is an
// error, not a zero default.
func TestPaymentInfo_FieldNotSet(t *testing.T) {
	info := NewPaymentInfo(map[string]any{"status": "wait"})

	if _, err := info.ErrorMessage(); !errors.Is(err, ErrFieldNotSet) {
		t.Fatalf("ErrorMessage() error = %v, want ErrFieldNotSet", err)
	}
	if _, err := info.PaymentID(); !errors.Is(err, ErrFieldNotSet) {
		t.Fatalf("PaymentID() error = %v, want ErrFieldNotSet", err)
	}
	if _, err := info.OrderSum(); !errors.Is(err, ErrFieldNotSet) {
		t.Fatalf("OrderSum() error = %v, want ErrFieldNotSet", err)
	}
	if info.Has("errorMessage") {
		t.Fatal("Has(errorMessage) = true for unset field")
	}
}

// TestPaymentInfo_WrongTypes verifies that malformed gateway fields surface
// on access as conversion errors.
func TestPaymentInfo_WrongTypes(t *testing.T) {
	info := NewPaymentInfo(map[string]any{
		"status":    42,
		"paymentId": "not-a-number",
		"orderSum":  true,
	})

	if _, err := info.Status(); err == nil {
		t.Fatal("expected error for non-string status")
	}
	if _, err := info.PaymentID(); err == nil {
		t.Fatal("expected error for non-numeric paymentId")
	}
	if _, err := info.OrderSum(); err == nil {
		t.Fatal("expected error for non-numeric orderSum")
	}
}

// TestPaymentInfo_NilAttributes verifies that a nil mapping behaves as an
// empty snapshot.
func TestPaymentInfo_NilAttributes(t *testing.T) {
	info := NewPaymentInfo(nil)
	if _, err := info.Status(); !errors.Is(err, ErrFieldNotSet) {
		t.Fatalf("Status() error = %v, want ErrFieldNotSet", err)
	}
}
