// Package sdk exposes the high-level gateway SDK entry points. It wires
// together the project credentials, the signature engine and the HTTP
// transport, and implements the outbound operations: the hosted payment form
// URL, server-to-server payment initiation and payment lookup.
package sdk

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/zkelo/unitpay-go/pkg/config"
	"github.com/zkelo/unitpay-go/pkg/model"
	"github.com/zkelo/unitpay-go/pkg/signature"
	"github.com/zkelo/unitpay-go/pkg/transport"
)

// Validation errors returned by the builder operations. They are raised
// before anything is signed or sent over the wire.
var (
	ErrInvalidSum               = errors.New("amount can't be less than or equal 0")
	ErrAccountRequired          = errors.New("account ID is required")
	ErrDescriptionRequired      = errors.New("order description is required")
	ErrUnsupportedPaymentMethod = errors.New("specified payment method is not supported")
	ErrUnsupportedCurrency      = errors.New("specified currency is not supported")
	ErrUnsupportedLocale        = errors.New("specified locale is not supported")
	ErrUnsupportedOperator      = errors.New("specified operator is not supported")
	ErrInvalidIP                = errors.New("invalid IP address")
	ErrInvalidPaymentID         = errors.New("payment ID must be greater than 0")
)

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// SDK is the gateway client. Construct it with New; the zero value is not
// usable. After construction the only mutable state is the default payment
// method, default locale and test mode, all of which are configuration meant
// to be set once before concurrent use.
type SDK struct {
	cfg       *config.Config
	signer    *signature.Signer
	transport transport.Transport

	defaultMethod string
	defaultLocale string
	testMode      bool
}

// Option configures optional SDK collaborators.
type Option func(*SDK)

// WithTransport substitutes the outbound HTTP collaborator. Useful for tests
// and for callers that need custom timeout or retry behavior.
func WithTransport(t transport.Transport) Option {
	return func(s *SDK) {
		s.transport = t
	}
}

// New creates an SDK instance with validated configuration. Invalid
// credentials fail here, never later at signing time.
func New(cfg *config.Config, opts ...Option) (*SDK, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	signer, err := signature.New(cfg.SecretKey)
	if err != nil {
		return nil, err
	}

	s := &SDK{
		cfg:           cfg,
		signer:        signer,
		transport:     transport.NewClient(nil),
		defaultMethod: model.DefaultMethod,
		defaultLocale: model.DefaultLocale,
		testMode:      cfg.TestMode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ToggleTestMode enables or disables test mode. Test requests carry an extra
// test flag so the gateway does not move real money. Set it before concurrent
// use of the SDK.
func (s *SDK) ToggleTestMode(enabled bool) {
	s.testMode = enabled
}

// SetDefaultPaymentMethod changes the payment method used when an operation
// is called without one.
func (s *SDK) SetDefaultPaymentMethod(method string) error {
	if !model.PaymentMethods.IsSupported(method) {
		return fmt.Errorf("%w: %q", ErrUnsupportedPaymentMethod, method)
	}
	s.defaultMethod = method
	return nil
}

// SetDefaultLocale changes the default locale code.
func (s *SDK) SetDefaultLocale(code string) error {
	if !model.Locales.IsSupported(code) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, code)
	}
	s.defaultLocale = code
	return nil
}

// ProjectID returns the numeric project identifier from the credentials.
func (s *SDK) ProjectID() int {
	return s.cfg.ProjectID()
}

func (s *SDK) baseURL() string {
	return "https://" + s.cfg.Domain
}
