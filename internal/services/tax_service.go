package services

import (
	"sort"
	"strings"

	"github.com/facturepro/facturepro-api/internal/config"
	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/logger"
	"github.com/facturepro/facturepro-api/internal/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TaxService resolves jurisdiction codes to tax profiles
type TaxService struct {
	profiles map[string]business.TaxProfile
	logger   *zap.Logger
}

// builtinProfiles returns the Canadian jurisdictions supported out of the box.
func builtinProfiles() map[string]business.TaxProfile {
	return map[string]business.TaxProfile{
		constants.JurisdictionQuebec: {
			JurisdictionCode: constants.JurisdictionQuebec,
			GSTRate:          decimal.NewFromInt(5),
			PSTRate:          decimal.RequireFromString("9.975"),
			HSTRate:          decimal.Zero,
			ApplyGST:         true,
			ApplyPST:         true,
			Supported:        true,
		},
		constants.JurisdictionOntario: {
			JurisdictionCode: constants.JurisdictionOntario,
			GSTRate:          decimal.Zero,
			PSTRate:          decimal.Zero,
			HSTRate:          decimal.NewFromInt(13),
			ApplyHST:         true,
			Supported:        true,
		},
	}
}

// NewTaxService creates a tax service with the built-in jurisdictions plus the
// configured ones. A configured code replaces a built-in one.
func NewTaxService(custom []config.JurisdictionConfig) *TaxService {
	profiles := builtinProfiles()
	for _, j := range custom {
		code := normalizeJurisdiction(j.Code)
		profiles[code] = business.TaxProfile{
			JurisdictionCode: code,
			GSTRate:          j.GSTRate,
			PSTRate:          j.PSTRate,
			HSTRate:          j.HSTRate,
			ApplyGST:         j.ApplyGST,
			ApplyPST:         j.ApplyPST,
			ApplyHST:         j.ApplyHST,
			Supported:        true,
		}
	}

	return &TaxService{
		profiles: profiles,
		logger:   logger.Log,
	}
}

// Resolve returns the tax profile of a jurisdiction. Unknown codes get a
// zero-tax profile with Supported set to false.
func (s *TaxService) Resolve(code string) business.TaxProfile {
	normalized := normalizeJurisdiction(code)
	if profile, ok := s.profiles[normalized]; ok {
		return profile
	}

	s.logger.Debug("Unsupported jurisdiction, applying no tax", zap.String("jurisdiction", code))
	return business.TaxProfile{
		JurisdictionCode: normalized,
		GSTRate:          decimal.Zero,
		PSTRate:          decimal.Zero,
		HSTRate:          decimal.Zero,
	}
}

// ListJurisdictions returns every known profile sorted by code
func (s *TaxService) ListJurisdictions() []business.TaxProfile {
	out := make([]business.TaxProfile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].JurisdictionCode < out[j].JurisdictionCode
	})
	return out
}

func normalizeJurisdiction(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
