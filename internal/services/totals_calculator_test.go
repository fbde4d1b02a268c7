package services_test

import (
	"errors"
	"testing"

	"github.com/facturepro/facturepro-api/internal/services"
	"github.com/facturepro/facturepro-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	taxes := services.NewTaxService(nil)

	tests := []struct {
		name     string
		items    []business.LineItem
		profile  business.TaxProfile
		subtotal string
		gst      string
		pst      string
		hst      string
		total    string
	}{
		{
			name:     "quebec",
			items:    []business.LineItem{lineItem("Consulting", "1", "100")},
			profile:  taxes.Resolve("QC"),
			subtotal: "100", gst: "5", pst: "9.98", hst: "0", total: "114.98",
		},
		{
			name:     "ontario",
			items:    []business.LineItem{lineItem("Consulting", "1", "100")},
			profile:  taxes.Resolve("ON"),
			subtotal: "100", gst: "0", pst: "0", hst: "13", total: "113",
		},
		{
			name:     "unsupported jurisdiction",
			items:    []business.LineItem{lineItem("Consulting", "2", "49.99")},
			profile:  taxes.Resolve("BC"),
			subtotal: "99.98", gst: "0", pst: "0", hst: "0", total: "99.98",
		},
		{
			name: "line totals are rounded before summing",
			items: []business.LineItem{
				lineItem("Hours", "1.5", "33.333"),
				lineItem("Hours", "0.333", "10"),
			},
			profile:  taxes.Resolve("ON"),
			subtotal: "53.33", gst: "0", pst: "0", hst: "6.93", total: "60.26",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, err := services.ComputeTotals(tt.items, tt.profile)
			require.NoError(t, err)
			assert.True(t, totals.Subtotal.Equal(dec(tt.subtotal)), "subtotal %s", totals.Subtotal)
			assert.True(t, totals.GSTAmount.Equal(dec(tt.gst)), "gst %s", totals.GSTAmount)
			assert.True(t, totals.PSTAmount.Equal(dec(tt.pst)), "pst %s", totals.PSTAmount)
			assert.True(t, totals.HSTAmount.Equal(dec(tt.hst)), "hst %s", totals.HSTAmount)
			assert.True(t, totals.Total.Equal(dec(tt.total)), "total %s", totals.Total)
			assert.Len(t, totals.LineTotals, len(tt.items))
		})
	}
}

func TestComputeTotals_TaxesDoNotCompound(t *testing.T) {
	profile := services.NewTaxService(nil).Resolve("QC")
	totals, err := services.ComputeTotals([]business.LineItem{lineItem("Design", "3", "250")}, profile)
	require.NoError(t, err)

	require.Len(t, totals.TaxBreakdown, 2)
	for _, line := range totals.TaxBreakdown {
		assert.True(t, line.TaxableAmount.Equal(totals.Subtotal), "%s taxed on %s", line.TaxType, line.TaxableAmount)
	}
	assert.True(t, totals.PSTAmount.Equal(dec("74.81")))
	assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.TaxTotal())))
}

func TestComputeTotals_Idempotent(t *testing.T) {
	profile := services.NewTaxService(nil).Resolve("QC")
	items := []business.LineItem{lineItem("A", "3", "19.99"), lineItem("B", "0.5", "7.25")}

	first, err := services.ComputeTotals(items, profile)
	require.NoError(t, err)
	second, err := services.ComputeTotals(items, profile)
	require.NoError(t, err)

	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.Subtotal.Equal(second.Subtotal))
}

func TestComputeTotals_Validation(t *testing.T) {
	qc := services.NewTaxService(nil).Resolve("QC")

	tests := []struct {
		name    string
		items   []business.LineItem
		profile business.TaxProfile
	}{
		{name: "no items", items: nil, profile: qc},
		{name: "zero quantity", items: []business.LineItem{lineItem("A", "0", "10")}, profile: qc},
		{name: "negative price", items: []business.LineItem{lineItem("A", "1", "-1")}, profile: qc},
		{name: "blank description", items: []business.LineItem{lineItem("  ", "1", "1")}, profile: qc},
		{
			name:  "hst with gst",
			items: []business.LineItem{lineItem("A", "1", "10")},
			profile: business.TaxProfile{
				GSTRate: dec("5"), HSTRate: dec("13"), ApplyGST: true, ApplyHST: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.ComputeTotals(tt.items, tt.profile)
			require.Error(t, err)
			assert.True(t, errors.Is(err, services.ErrValidation))
		})
	}
}

func TestBuildLineItems_ZeroPriceAllowed(t *testing.T) {
	items, err := services.BuildLineItems(paramsItems(item("Free consultation", "1", "0")))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].LineTotal.IsZero())
}

func TestWithTaxProfile_RecomputesTotals(t *testing.T) {
	taxes := services.NewTaxService(nil)
	doc, err := services.WithItems(business.Document{TaxProfile: taxes.Resolve("QC")},
		[]business.LineItem{lineItem("Consulting", "1", "100")})
	require.NoError(t, err)
	assert.True(t, doc.Total.Equal(dec("114.98")))

	doc, err = services.WithTaxProfile(doc, taxes.Resolve("ON"))
	require.NoError(t, err)
	assert.True(t, doc.Total.Equal(dec("113")))
	assert.True(t, doc.GSTAmount.IsZero())
	assert.Len(t, services.TaxBreakdown(doc), 1)
}
