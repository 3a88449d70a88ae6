package model

// Payment method codes accepted by the gateway.
const (
	MethodMobile     = "mc"          // direct carrier billing
	MethodCard       = "card"        // bank cards
	MethodWebmoneyZ  = "webmoney"    // WebMoney Z-purse (USD)
	MethodWebmoneyR  = "webmoneyWmr" // WebMoney R-purse (RUB)
	MethodYooMoney   = "yandex"      // YooMoney, former Yandex.Money
	MethodQiwi       = "qiwi"
	MethodPayPal     = "paypal"
	MethodApplePay   = "applepay"
	MethodSamsungPay = "samsungpay"
	MethodGooglePay  = "googlepay"
)

// DefaultMethod is the payment method used when the caller does not pick one.
const DefaultMethod = MethodCard

// PaymentMethods is the catalog of payment methods.
var PaymentMethods = newCatalog(
	Entry{MethodMobile, "Mobile phones"},
	Entry{MethodCard, "Bank cards"},
	Entry{MethodWebmoneyZ, "WebMoney Z-purse"},
	Entry{MethodWebmoneyR, "WebMoney R-purse"},
	Entry{MethodYooMoney, "YooMoney"},
	Entry{MethodQiwi, "QIWI"},
	Entry{MethodPayPal, "PayPal"},
	Entry{MethodApplePay, "Apple Pay"},
	Entry{MethodSamsungPay, "Samsung Pay"},
	Entry{MethodGooglePay, "Google Pay"},
)
