// Package config defines the runtime configuration for the AMOS-MVR SDK:
// license credentials, target gateway, request timeout, and debug mode.
// It also provides validation and defaulting helpers plus loaders for
// environment variables and YAML files.
package config

import (
	"errors"
	"fmt"
	"net/mail"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is the AMOS production gateway.
	DefaultBaseURL = "https://africanmarketos.com"
	// DefaultTimeout is applied when Config.Timeout is zero.
	DefaultTimeout = 30 * time.Second
)

// Config holds all SDK settings required to initialize an AMOS client.
// Use Validate to fill implicit defaults and to check for required fields.
type Config struct {
	// LicenseKey is the MVR/AMOS license key, sent as the x-mvr-license
	// header on every scoring call (required).
	LicenseKey string `json:"license_key" yaml:"license_key"`
	// BuyerEmail is the buyer email associated with the license, sent as
	// the x-buyer-email header (required).
	BuyerEmail string `json:"buyer_email" yaml:"buyer_email"`
	// BaseURL is the AMOS gateway address. Default: DefaultBaseURL.
	BaseURL string `json:"base_url" yaml:"base_url"`
	// Timeout bounds each HTTP exchange. Default: DefaultTimeout. In YAML
	// it is set via the timeout_seconds key (a bare number here would be
	// read as nanoseconds).
	Timeout time.Duration `json:"timeout" yaml:"-"`
	// AuthenticatedHealth attaches the license headers to health probes as
	// well. The published contract does not require them there; some
	// gateway deployments do.
	AuthenticatedHealth bool `json:"authenticated_health" yaml:"authenticated_health"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug"`
}

// Validate normalizes the configuration by applying implicit defaults for
// BaseURL and Timeout and verifies that LicenseKey and BuyerEmail are
// provided. BuyerEmail only has to parse as an address; full RFC
// compliance is left to the gateway.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Timeout < 0 {
		return errors.New("timeout must be positive")
	}

	if c.LicenseKey == "" {
		return errors.New("license key is required")
	}

	if c.BuyerEmail == "" {
		return errors.New("buyer email is required")
	}
	if _, err := mail.ParseAddress(c.BuyerEmail); err != nil {
		return fmt.Errorf("buyer email %q is malformed: %w", c.BuyerEmail, err)
	}

	return nil
}

// FromEnv builds a Config from environment variables, loading a .env file
// first when one exists (useful for local development; in production the
// variables are typically set by the orchestration platform).
//
// Recognized variables:
//
//	AMOS_LICENSE_KEY          (required)
//	AMOS_BUYER_EMAIL          (required)
//	AMOS_BASE_URL             (default: DefaultBaseURL)
//	AMOS_TIMEOUT_SECONDS      (default: 30)
//	AMOS_AUTHENTICATED_HEALTH (default: false)
//	AMOS_DEBUG                (default: false)
//
// The returned Config is already validated.
func FromEnv() (*Config, error) {
	_ = godotenv.Load()

	c := &Config{
		LicenseKey:          os.Getenv("AMOS_LICENSE_KEY"),
		BuyerEmail:          os.Getenv("AMOS_BUYER_EMAIL"),
		BaseURL:             os.Getenv("AMOS_BASE_URL"),
		AuthenticatedHealth: envBool("AMOS_AUTHENTICATED_HEALTH"),
		Debug:               envBool("AMOS_DEBUG"),
	}

	if v := os.Getenv("AMOS_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid AMOS_TIMEOUT_SECONDS: %w", err)
		}
		c.Timeout = time.Duration(secs * float64(time.Second))
	}

	return c, c.Validate()
}

// Load reads a Config from a YAML file and validates it. The timeout is
// given in seconds under the timeout_seconds key (fractions allowed).
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening config file %s: %w", path, err)
	}

	var f struct {
		Config         `yaml:",inline"`
		TimeoutSeconds float64 `yaml:"timeout_seconds"`
	}
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("error unmarshalling config file %s: %w", path, err)
	}

	c := f.Config
	if f.TimeoutSeconds != 0 {
		c.Timeout = time.Duration(f.TimeoutSeconds * float64(time.Second))
	}

	return &c, c.Validate()
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}
