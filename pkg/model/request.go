package model

// Inbound request methods the gateway uses to report payment lifecycle events.
const (
	// RequestCheck asks whether the service can be provided to the subscriber.
	// It is sent before the payment is executed.
	RequestCheck = "check"
	// RequestPay notifies about a successful payment.
	RequestPay = "pay"
	// RequestPreAuth notifies about a pre-authorized payment whose funds were
	// successfully held.
	RequestPreAuth = "preAuth"
	// RequestError reports a payment failure at any stage. The status is not
	// final: a pay request may still follow an error request.
	RequestError = "error"
)

// RequestMethods is the catalog of inbound callback methods.
var RequestMethods = newCatalog(
	Entry{RequestCheck, "Check"},
	Entry{RequestPay, "Pay"},
	Entry{RequestPreAuth, "PreAuth"},
	Entry{RequestError, "Error"},
)
