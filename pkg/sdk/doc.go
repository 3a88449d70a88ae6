// Package sdk is the entry point for outbound gateway operations.
//
// # Construction
//
// The SDK is built from validated project credentials:
//
//	cfg := &config.Config{SecretKey: secret, PublicKey: public}
//	client, err := sdk.New(cfg)
//	if err != nil {
//		// configuration error: bad credentials or unsupported domain
//	}
//
// # Hosted payment form
//
// Form builds a signed URL the customer opens to pay:
//
//	link, err := client.Form(decimal.NewFromInt(15), "order-1", "Test order", nil)
//
// # Server-to-server calls
//
// InitPayment and GetPayment call the gateway API directly:
//
//	id, err := client.InitPayment(ctx, model.MethodCard, "order-1",
//		decimal.NewFromInt(15), "Test order", "127.0.0.1", nil)
//	info, err := client.GetPayment(ctx, id)
//
// Both block on the HTTP transport and honor the context's deadline and
// cancellation; the SDK adds no timeouts of its own.
//
// # Error taxonomy
//
// Configuration errors come from New. Validation errors (ErrInvalidSum and
// friends) are returned before any network call. Gateway failures surface as
// *transport.APIError carrying the gateway's own message.
//
// # Logging
//
// The package init installs a default global zap logger; replace it with
// zap.ReplaceGlobals for custom logging. Secret-bearing query parameters are
// masked before URLs are logged.
package sdk
