package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/facturepro/facturepro-api/internal/helpers"
)

// StripeConfig holds the checkout settings of the payment provider.
type StripeConfig struct {
	APIKey       string
	PriceMonthly string
	PriceAnnual  string
	SuccessURL   string
	CancelURL    string
}

// Config is the runtime configuration of the API, read from the environment.
type Config struct {
	Stage                  string
	JWTSecret              string
	PolicyFile             string
	RateLimitRPS           float64
	RateLimitBurst         int
	PaymentPollInterval    time.Duration
	PaymentPollMaxAttempts int
	Stripe                 StripeConfig
	Policy                 *Policy
}

// SecretSource resolves a secret either from an ARN named by secretArnEnvVar
// or from the plain fallbackEnvVar.
type SecretSource interface {
	GetSecretString(ctx context.Context, secretArnEnvVar, fallbackEnvVar string) (string, error)
}

// Load reads the configuration from environment variables. The stage must
// already be valid; callers load .env files before calling it.
func Load() (*Config, error) {
	return LoadWithSecrets(context.Background(), nil)
}

// LoadWithSecrets is Load with the JWT secret and the Stripe key resolved
// through secrets when it is not nil.
func LoadWithSecrets(ctx context.Context, secrets SecretSource) (*Config, error) {
	stage := os.Getenv("STAGE")
	if !helpers.IsValidStage(stage) {
		return nil, fmt.Errorf("invalid STAGE %q", stage)
	}

	cfg := &Config{
		Stage:                  stage,
		JWTSecret:              os.Getenv("JWT_SECRET"),
		PolicyFile:             os.Getenv("POLICY_FILE"),
		RateLimitRPS:           float64(helpers.GetEnvInt("RATE_LIMIT_RPS", 10)),
		RateLimitBurst:         helpers.GetEnvInt("RATE_LIMIT_BURST", 20),
		PaymentPollInterval:    helpers.GetEnvDuration("PAYMENT_POLL_INTERVAL", 3*time.Second),
		PaymentPollMaxAttempts: helpers.GetEnvInt("PAYMENT_POLL_MAX_ATTEMPTS", 20),
		Stripe: StripeConfig{
			APIKey:       os.Getenv("STRIPE_API_KEY"),
			PriceMonthly: os.Getenv("STRIPE_PRICE_MONTHLY"),
			PriceAnnual:  os.Getenv("STRIPE_PRICE_ANNUAL"),
			SuccessURL:   os.Getenv("CHECKOUT_SUCCESS_URL"),
			CancelURL:    os.Getenv("CHECKOUT_CANCEL_URL"),
		},
	}

	if secrets != nil {
		// Lookups fall back to the plain variables already read above.
		if value, err := secrets.GetSecretString(ctx, "JWT_SECRET_ARN", "JWT_SECRET"); err == nil {
			cfg.JWTSecret = value
		}
		if value, err := secrets.GetSecretString(ctx, "STRIPE_API_KEY_ARN", "STRIPE_API_KEY"); err == nil {
			cfg.Stripe.APIKey = value
		}
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.PaymentPollMaxAttempts < 1 {
		return nil, fmt.Errorf("PAYMENT_POLL_MAX_ATTEMPTS must be at least 1")
	}

	policy, err := LoadPolicy(cfg.PolicyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load billing policy: %w", err)
	}
	cfg.Policy = policy

	return cfg, nil
}
