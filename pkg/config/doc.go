// Package config provides configuration management for the AMOS-MVR SDK.
//
// This package defines the Config structure that controls all client behavior:
// license credentials, gateway address, request timeout, health-probe
// authentication, and debug logging.
//
// # Basic Configuration
//
// The minimum required configuration needs the license key and buyer email:
//
//	cfg := &config.Config{
//		LicenseKey: "YOUR_LICENSE_KEY",
//		BuyerEmail: "you@example.com",
//	}
//
// Everything else has a default: BaseURL falls back to the production
// gateway (https://africanmarketos.com) and Timeout to 30 seconds.
//
// # Credentials
//
// LicenseKey and BuyerEmail are injected as the x-mvr-license and
// x-buyer-email headers on every scoring call. They are required; Validate
// rejects a config without them. The email only has to parse as an
// address; full RFC validation is the gateway's job.
//
// # Timeout
//
// Timeout bounds the whole HTTP exchange of a single call. A call that
// exceeds it surfaces as a transport failure; the SDK never retries on its
// own.
//
//	cfg.Timeout = 10 * time.Second
//
// In YAML files and the environment, the timeout is given in seconds
// (timeout_seconds / AMOS_TIMEOUT_SECONDS, fractions allowed).
//
// # Health-Probe Authentication
//
// The /health endpoint does not require credentials per the published
// contract. Deployments that gate it anyway can set:
//
//	cfg.AuthenticatedHealth = true
//
// # Loaders
//
// Besides constructing a Config literal, two loaders are available:
//
//	cfg, err := config.FromEnv()          // AMOS_* environment variables / .env
//	cfg, err := config.Load("amos.yaml")  // YAML file
//
// Both return an already-validated Config.
//
// # Configuration Validation
//
// Always call Validate() to apply defaults and check required fields:
//
//	cfg := &config.Config{...}
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("Invalid config: %v", err)
//	}
//
// sdk.New calls Validate for you.
//
// # Thread Safety
//
// Config instances should be created once and not modified after passing to
// sdk.New(). The Config is read-only during SDK operations.
//
// # See Also
//
//   - sdk.New() for client initialization
//   - examples/quick-start for basic configuration
package config
