package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/helpers"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// JurisdictionConfig declares a tax jurisdiction beyond the built-in ones,
// or overrides the rates of a built-in one.
type JurisdictionConfig struct {
	Code     string          `yaml:"code"`
	GSTRate  decimal.Decimal `yaml:"gst_rate"`
	PSTRate  decimal.Decimal `yaml:"pst_rate"`
	HSTRate  decimal.Decimal `yaml:"hst_rate"`
	ApplyGST bool            `yaml:"apply_gst"`
	ApplyPST bool            `yaml:"apply_pst"`
	ApplyHST bool            `yaml:"apply_hst"`
}

// Policy holds the billing rules that vary per deployment.
type Policy struct {
	ExemptEmails    []string             `yaml:"exempt_emails"`
	TrialLengthDays int                  `yaml:"trial_length_days"`
	Jurisdictions   []JurisdictionConfig `yaml:"jurisdictions"`
}

// DefaultPolicy returns the policy used when no file is configured.
func DefaultPolicy() *Policy {
	return &Policy{
		TrialLengthDays: constants.DefaultTrialLengthDays,
	}
}

// LoadPolicy reads the policy file at path, applies environment overrides and
// validates the result. An empty path yields the default policy plus overrides.
func LoadPolicy(path string) (*Policy, error) {
	policy := DefaultPolicy()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read policy file: %w", err)
		}
		if err := yaml.Unmarshal(data, policy); err != nil {
			return nil, fmt.Errorf("failed to parse policy file: %w", err)
		}
	}

	policy.applyEnvOverrides()

	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return policy, nil
}

func (p *Policy) applyEnvOverrides() {
	if emails := helpers.SplitList(os.Getenv("EXEMPT_EMAILS")); len(emails) > 0 {
		p.ExemptEmails = emails
	}
	p.TrialLengthDays = helpers.GetEnvInt("TRIAL_LENGTH_DAYS", p.TrialLengthDays)
}

// Validate checks the trial length and every custom jurisdiction.
func (p *Policy) Validate() error {
	if p.TrialLengthDays <= 0 {
		return fmt.Errorf("trial_length_days must be positive, got %d", p.TrialLengthDays)
	}

	seen := make(map[string]bool, len(p.Jurisdictions))
	for i, j := range p.Jurisdictions {
		code := strings.ToUpper(strings.TrimSpace(j.Code))
		if code == "" {
			return fmt.Errorf("jurisdictions[%d]: code is required", i)
		}
		if seen[code] {
			return fmt.Errorf("jurisdictions[%d]: duplicate code %s", i, code)
		}
		seen[code] = true

		if j.ApplyHST && (j.ApplyGST || j.ApplyPST) {
			return fmt.Errorf("jurisdiction %s: HST cannot be combined with GST or PST", code)
		}
		if j.GSTRate.IsNegative() || j.PSTRate.IsNegative() || j.HSTRate.IsNegative() {
			return fmt.Errorf("jurisdiction %s: rates must not be negative", code)
		}
	}
	return nil
}

// ExemptEmailSet returns the exempt emails lower-cased for case-insensitive lookup.
func (p *Policy) ExemptEmailSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.ExemptEmails))
	for _, email := range p.ExemptEmails {
		if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
			set[email] = struct{}{}
		}
	}
	return set
}
