package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Payment statuses reported by the gateway.
const (
	StatusSuccess    = "success"
	StatusWait       = "wait"
	StatusError      = "error"
	StatusErrorPay   = "error_pay"   // error on the PAY stage
	StatusErrorCheck = "error_check" // error on the CHECK stage
	StatusRefund     = "refund"
	StatusSecure     = "secure" // payment is being checked by the bank security service
)

// Statuses is the catalog of payment statuses.
var Statuses = newCatalog(
	Entry{StatusSuccess, "Success"},
	Entry{StatusWait, "Waiting"},
	Entry{StatusError, "Error"},
	Entry{StatusErrorPay, "Error on pay stage"},
	Entry{StatusErrorCheck, "Error on check stage"},
	Entry{StatusRefund, "Refunding"},
	Entry{StatusSecure, "Security check"},
)

// ErrFieldNotSet is returned by PaymentInfo accessors when the gateway
// response did not carry the requested field. Use errors.Is to detect it.
var ErrFieldNotSet = errors.New("field is not set")

// PaymentInfo is a read-only snapshot of a payment as returned by the
// getPayment API call. The gateway response is wrapped without validation;
// malformed or missing fields surface lazily, on access, as ErrFieldNotSet
// or a conversion error.
type PaymentInfo struct {
	attrs map[string]any
}

// NewPaymentInfo wraps a raw gateway result mapping.
func NewPaymentInfo(attrs map[string]any) *PaymentInfo {
	if attrs == nil {
		attrs = map[string]any{}
	}
	return &PaymentInfo{attrs: attrs}
}

// Has reports whether the snapshot carries the named raw field.
func (p *PaymentInfo) Has(name string) bool {
	_, ok := p.attrs[name]
	return ok
}

// Status returns the payment status, one of the Statuses catalog codes.
func (p *PaymentInfo) Status() (string, error) {
	return p.stringAttr("status")
}

// PaymentID returns the gateway's payment identifier.
func (p *PaymentInfo) PaymentID() (int64, error) {
	return p.intAttr("paymentId")
}

// ProjectID returns the project the payment belongs to.
func (p *PaymentInfo) ProjectID() (int64, error) {
	return p.intAttr("projectId")
}

// Account returns the account identifier the payment was made for.
func (p *PaymentInfo) Account() (string, error) {
	return p.stringAttr("account")
}

// Purse returns the personal account identifier used to pay.
func (p *PaymentInfo) Purse() (string, error) {
	return p.stringAttr("purse")
}

// Profit returns the income of the payment.
func (p *PaymentInfo) Profit() (decimal.Decimal, error) {
	return p.decimalAttr("profit")
}

// PaymentType returns the payment method code.
func (p *PaymentInfo) PaymentType() (string, error) {
	return p.stringAttr("paymentType")
}

// OrderSum returns the order amount.
func (p *PaymentInfo) OrderSum() (decimal.Decimal, error) {
	return p.decimalAttr("orderSum")
}

// OrderCurrency returns the order currency code.
func (p *PaymentInfo) OrderCurrency() (string, error) {
	return p.stringAttr("orderCurrency")
}

// Date returns the order date and time in "Y-m-d H:i:s" format, as reported
// by the gateway.
func (p *PaymentInfo) Date() (string, error) {
	return p.stringAttr("date")
}

// PayerSum returns the amount debited from the customer's personal account.
func (p *PaymentInfo) PayerSum() (decimal.Decimal, error) {
	return p.decimalAttr("payerSum")
}

// PayerCurrency returns the currency of the debit from the customer's
// personal account.
func (p *PaymentInfo) PayerCurrency() (string, error) {
	return p.stringAttr("payerCurrency")
}

// ReceiptURL returns the link to the invoice.
func (p *PaymentInfo) ReceiptURL() (string, error) {
	return p.stringAttr("receiptUrl")
}

// ErrorMessage returns the error details. The gateway sends it only for
// payments in an error status.
func (p *PaymentInfo) ErrorMessage() (string, error) {
	return p.stringAttr("errorMessage")
}

func (p *PaymentInfo) stringAttr(name string) (string, error) {
	v, ok := p.attrs[name]
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrFieldNotSet)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q is not a string (got %T)", name, v)
	}
	return s, nil
}

func (p *PaymentInfo) intAttr(name string) (int64, error) {
	v, ok := p.attrs[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrFieldNotSet)
	}
	switch n := v.(type) {
	case float64:
		return int64(n), nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case json.Number:
		return n.Int64()
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return 0, fmt.Errorf("field %q is not an integer: %w", name, err)
		}
		return d.IntPart(), nil
	default:
		return 0, fmt.Errorf("field %q is not an integer (got %T)", name, v)
	}
}

func (p *PaymentInfo) decimalAttr(name string) (decimal.Decimal, error) {
	v, ok := p.attrs[name]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%q: %w", name, ErrFieldNotSet)
	}
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case json.Number:
		return decimal.NewFromString(n.String())
	case string:
		return decimal.NewFromString(n)
	default:
		return decimal.Decimal{}, fmt.Errorf("field %q is not a number (got %T)", name, v)
	}
}
