// Package model defines the closed domain catalogs of the gateway (currencies,
// payment methods, mobile operators, locales, inbound request methods, payment
// statuses) and the read-only PaymentInfo snapshot returned by getPayment.
//
// # Catalogs
//
// A Catalog is an immutable, ordered mapping of wire code to display name,
// built once at package init. Every catalog shares the same contract:
//
//	model.Currencies.IsSupported("RUB") // true
//	model.Currencies.IsSupported("")    // false
//	model.Operators.List()              // ordered []Entry
//
// Membership is exact; a code from one catalog is never valid in another.
// There is no dynamic registration: validation everywhere in the SDK is
// decided by these package-level values.
//
// # PaymentInfo
//
// PaymentInfo wraps the raw getPayment result without validating it. Each
// field has a typed accessor that returns ErrFieldNotSet (wrapped with the
// field name) when the gateway did not send the field:
//
//	info, _ := sdk.GetPayment(ctx, 123)
//	status, err := info.Status()
//	if errors.Is(err, model.ErrFieldNotSet) {
//		// gateway response had no "status" field
//	}
//
// Amount fields (Profit, OrderSum, PayerSum) are decimal.Decimal values.
package model
