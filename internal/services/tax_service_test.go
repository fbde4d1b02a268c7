package services_test

import (
	"testing"

	"github.com/facturepro/facturepro-api/internal/config"
	"github.com/facturepro/facturepro-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxService_Resolve(t *testing.T) {
	svc := services.NewTaxService(nil)

	qc := svc.Resolve(" qc ")
	assert.Equal(t, "QC", qc.JurisdictionCode)
	assert.True(t, qc.Supported)
	assert.True(t, qc.ApplyGST)
	assert.True(t, qc.ApplyPST)
	assert.False(t, qc.ApplyHST)
	assert.True(t, qc.PSTRate.Equal(dec("9.975")))

	on := svc.Resolve("ON")
	assert.True(t, on.ApplyHST)
	assert.False(t, on.ApplyGST)
	assert.True(t, on.HSTRate.Equal(dec("13")))

	unknown := svc.Resolve("BC")
	assert.False(t, unknown.Supported)
	assert.False(t, unknown.HasTax())
	assert.Equal(t, "BC", unknown.JurisdictionCode)
}

func TestTaxService_CustomJurisdictions(t *testing.T) {
	svc := services.NewTaxService([]config.JurisdictionConfig{
		{Code: "ab", GSTRate: dec("5"), ApplyGST: true},
		{Code: "ON", HSTRate: dec("15"), ApplyHST: true},
	})

	ab := svc.Resolve("AB")
	assert.True(t, ab.Supported)
	assert.True(t, ab.GSTRate.Equal(dec("5")))

	assert.True(t, svc.Resolve("ON").HSTRate.Equal(dec("15")))

	list := svc.ListJurisdictions()
	require.Len(t, list, 3)
	assert.Equal(t, "AB", list[0].JurisdictionCode)
	assert.Equal(t, "ON", list[1].JurisdictionCode)
	assert.Equal(t, "QC", list[2].JurisdictionCode)
}
