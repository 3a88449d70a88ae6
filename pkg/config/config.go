// Package config defines the runtime configuration for the SDK: project
// credentials, the gateway domain, and test mode. It also provides validation
// and YAML loading helpers.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultDomain is the gateway domain used when Config.Domain is empty.
const DefaultDomain = "unitpay.ru"

// Domains lists the gateway domains the SDK may talk to. Any other value in
// Config.Domain fails validation.
var Domains = []string{
	"unitpay.ru",
	"unitpay.money",
}

var (
	// ErrSecretKeyRequired is returned by Validate when no secret key is set.
	ErrSecretKeyRequired = errors.New("secret key is required")
	// ErrPublicKeyRequired is returned by Validate when no public key is set.
	ErrPublicKeyRequired = errors.New("public key is required")
	// ErrUnsupportedDomain is returned by Validate when Domain is not one of Domains.
	ErrUnsupportedDomain = errors.New("specified domain is not supported")
)

// Config holds the project credentials issued by the gateway.
// Use Validate to fill implicit defaults and to check for required fields.
//
// A Config is immutable after a successful Validate; concurrent use from
// multiple goroutines is safe as long as nothing mutates the fields afterwards.
type Config struct {
	// SecretKey is the project secret used to sign outbound requests and to
	// verify inbound callbacks. It is excluded from JSON marshalling and must
	// never be logged.
	SecretKey string `json:"-" yaml:"secret_key"`
	// PublicKey identifies the project. Its numeric prefix (everything before
	// the first '-') is the project ID.
	PublicKey string `json:"public_key" yaml:"public_key"`
	// Domain is the gateway domain. Default: unitpay.ru.
	Domain string `json:"domain" yaml:"domain"`
	// TestMode marks every outbound request as a test request. Set it once
	// before concurrent use.
	TestMode bool `json:"test_mode" yaml:"test_mode"`

	projectID int
}

// Validate normalizes the configuration by applying the default domain and
// verifies that both keys are present, that the domain is supported and that
// the public key carries a numeric project ID prefix.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return ErrSecretKeyRequired
	}
	if c.PublicKey == "" {
		return ErrPublicKeyRequired
	}

	if c.Domain == "" {
		c.Domain = DefaultDomain
	}
	supported := false
	for _, domain := range Domains {
		if c.Domain == domain {
			supported = true
			break
		}
	}
	if !supported {
		return ErrUnsupportedDomain
	}

	prefix, _, _ := strings.Cut(c.PublicKey, "-")
	id, err := strconv.Atoi(prefix)
	if err != nil || id < 0 {
		return fmt.Errorf("unable to extract project ID from public key %q", c.PublicKey)
	}
	c.projectID = id

	return nil
}

// ProjectID returns the numeric project identifier extracted from the public
// key. It is only meaningful after a successful Validate.
func (c *Config) ProjectID() int {
	return c.projectID
}

// Load reads a YAML configuration file and validates it.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
