// Package config holds the project credentials and runtime settings used by
// every other package of the SDK.
//
// # Credentials
//
// A gateway project is identified by a public key of the form
// "<projectID>-<random>" and authenticated by a secret key. The SDK never
// transmits or logs the secret except where the gateway API contract itself
// requires it as a call parameter.
//
//	cfg := &config.Config{
//		SecretKey: os.Getenv("UNITPAY_SECRET_KEY"),
//		PublicKey: os.Getenv("UNITPAY_PUBLIC_KEY"),
//	}
//	if err := cfg.Validate(); err != nil {
//		// bad credentials are a fatal configuration error
//	}
//
// # Domains
//
// The gateway is reachable on a small fixed set of domains (unitpay.ru,
// unitpay.money). Validate rejects anything else and defaults to unitpay.ru.
//
// # Files
//
// Load reads the same structure from a YAML file:
//
//	secret_key: "..."
//	public_key: "12345-abcdef"
//	domain: unitpay.ru
//	test_mode: true
package config
