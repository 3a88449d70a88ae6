package sdk

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/zkelo/unitpay-go/pkg/model"
	"github.com/zkelo/unitpay-go/pkg/transport"
)

// FormOptions are the optional parameters of Form. Zero-valued fields are
// omitted from the URL and from the signature.
type FormOptions struct {
	// PaymentMethod overrides the SDK default (bank cards).
	PaymentMethod string
	// Currency is the order currency code (ISO 4217).
	Currency string
	// Locale selects the payment form language.
	Locale string
	// BackURL is the page the customer returns to after payment processing.
	BackURL string
}

// Form builds the hosted payment form URL:
//
//	https://{domain}/pay/{publicKey}/{method}?account=...&sum=...&desc=...&signature=...
//
// All present parameters are validated against their catalogs before the
// signature is computed; a validation failure never produces a partially
// built signed URL. The signature covers account, currency (when present),
// description and sum.
func (s *SDK) Form(sum decimal.Decimal, account, description string, opts *FormOptions) (string, error) {
	if opts == nil {
		opts = &FormOptions{}
	}

	if !sum.IsPositive() {
		return "", ErrInvalidSum
	}
	if account == "" {
		return "", ErrAccountRequired
	}
	if description == "" {
		return "", ErrDescriptionRequired
	}

	method := opts.PaymentMethod
	if method == "" {
		method = s.defaultMethod
	}
	if !model.PaymentMethods.IsSupported(method) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPaymentMethod, method)
	}
	if opts.Currency != "" && !model.Currencies.IsSupported(opts.Currency) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, opts.Currency)
	}
	if opts.Locale != "" && !model.Locales.IsSupported(opts.Locale) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, opts.Locale)
	}

	params := url.Values{}
	params.Set("account", account)
	params.Set("sum", sum.String())
	params.Set("desc", description)
	if opts.Currency != "" {
		params.Set("currency", opts.Currency)
	}
	if opts.Locale != "" {
		params.Set("locale", opts.Locale)
	}
	if opts.BackURL != "" {
		params.Set("backUrl", opts.BackURL)
	}
	params.Set("signature", s.signer.Sign(account, description, sum, opts.Currency))
	if s.testMode {
		params.Set("test", "1")
	}

	return fmt.Sprintf("%s/pay/%s/%s?%s", s.baseURL(), s.cfg.PublicKey, method, params.Encode()), nil
}

// InitPaymentOptions are the optional parameters of InitPayment.
type InitPaymentOptions struct {
	// ResultURL is the page used as the payment result page. When empty the
	// gateway shows its own receipt page.
	ResultURL string
	// Phone is the customer phone number (carrier billing).
	Phone string
	// Operator is the mobile operator code (carrier billing).
	Operator string
}

// InitPayment initiates a payment server-to-server and returns the gateway's
// payment ID. A zero ID with a nil error means the gateway accepted the call
// but declined to create the payment.
//
// The signature covers account, description and sum only; unlike the form
// URL, this endpoint's contract has no currency term.
func (s *SDK) InitPayment(ctx context.Context, method, account string, sum decimal.Decimal, description, ip string, opts *InitPaymentOptions) (int64, error) {
	if opts == nil {
		opts = &InitPaymentOptions{}
	}

	if !model.PaymentMethods.IsSupported(method) {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedPaymentMethod, method)
	}
	if account == "" {
		return 0, ErrAccountRequired
	}
	if !sum.IsPositive() {
		return 0, ErrInvalidSum
	}
	if description == "" {
		return 0, ErrDescriptionRequired
	}
	if net.ParseIP(ip) == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIP, ip)
	}
	if opts.Operator != "" && !model.Operators.IsSupported(opts.Operator) {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedOperator, opts.Operator)
	}

	params := map[string]string{
		"account":     account,
		"sum":         sum.String(),
		"ip":          ip,
		"paymentType": method,
		"projectId":   strconv.Itoa(s.cfg.ProjectID()),
		"desc":        description,
	}
	if opts.ResultURL != "" {
		params["resultUrl"] = opts.ResultURL
	}
	if opts.Phone != "" {
		params["phone"] = opts.Phone
	}
	if opts.Operator != "" {
		params["operator"] = opts.Operator
	}
	// The API contract requires the project secret as a call parameter. It is
	// redacted from transport logs.
	params["secretKey"] = s.cfg.SecretKey
	params["signature"] = s.signer.Sign(account, description, sum, "")

	result, err := s.api(ctx, "initPayment", params)
	if err != nil {
		return 0, err
	}

	id, err := resultInt(result, "paymentId")
	if err != nil {
		zap.L().Info("payment was not created", zap.String("account", account))
		return 0, nil
	}
	return id, nil
}

// GetPayment returns information about a payment by its gateway ID.
func (s *SDK) GetPayment(ctx context.Context, id int64) (*model.PaymentInfo, error) {
	if id <= 0 {
		return nil, ErrInvalidPaymentID
	}

	result, err := s.api(ctx, "getPayment", map[string]string{
		"paymentId": strconv.FormatInt(id, 10),
		"secretKey": s.cfg.SecretKey,
	})
	if err != nil {
		return nil, err
	}
	return model.NewPaymentInfo(result), nil
}

// api performs a gateway API call:
//
//	GET https://{domain}/api?method={method}&params[...]=...
//
// and maps the response envelope. An error envelope surfaces as APIError with
// the gateway's message; a reply missing both error and result is also an
// APIError.
func (s *SDK) api(ctx context.Context, method string, params map[string]string) (map[string]any, error) {
	if s.testMode {
		params["test"] = "1"
	}

	query := url.Values{}
	query.Set("method", method)
	for k, v := range params {
		query.Set("params["+k+"]", v)
	}

	env, err := s.transport.Request(ctx, http.MethodGet, s.baseURL()+"/api", query)
	if err != nil {
		return nil, err
	}

	if env.Error != nil {
		if env.Error.Message == "" {
			return nil, &transport.APIError{Message: "unknown API error"}
		}
		return nil, env.Error
	}
	if env.Result == nil {
		return nil, &transport.APIError{Message: `API response doesn't have field "result"`}
	}
	return env.Result, nil
}

// resultInt extracts an integer field from a decoded JSON result mapping.
func resultInt(result map[string]any, key string) (int64, error) {
	v, ok := result[key]
	if !ok {
		return 0, fmt.Errorf("result has no field %q", key)
	}
	switch n := v.(type) {
	case float64:
		return int64(n), nil
	case string:
		return strconv.ParseInt(n, 10, 64)
	default:
		return 0, fmt.Errorf("result field %q is not an integer (got %T)", key, v)
	}
}
