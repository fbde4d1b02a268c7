package services

import (
	"fmt"
	"strings"

	"github.com/facturepro/facturepro-api/internal/helpers"
	"github.com/facturepro/facturepro-api/internal/types/api/params"
	"github.com/facturepro/facturepro-api/internal/types/business"
	"github.com/shopspring/decimal"
)

// Tax types reported in the breakdown
const (
	taxTypeGST = "gst"
	taxTypePST = "pst"
	taxTypeHST = "hst"
)

// LineTotal returns round2(quantity * unit price).
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return helpers.Round2(quantity.Mul(unitPrice))
}

// BuildLineItems validates user input and returns line items carrying their totals.
func BuildLineItems(items []params.LineItemParams) ([]business.LineItem, error) {
	out := make([]business.LineItem, len(items))
	for i, item := range items {
		out[i] = business.LineItem{
			Description: strings.TrimSpace(item.Description),
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			ProductID:   item.ProductID,
			LineTotal:   LineTotal(item.Quantity, item.UnitPrice),
		}
	}
	if err := ValidateLineItems(out); err != nil {
		return nil, err
	}
	return out, nil
}

// ValidateLineItems checks that there is at least one item and that every item
// has a description, a positive quantity and a non-negative unit price.
func ValidateLineItems(items []business.LineItem) error {
	if len(items) == 0 {
		return NewValidationError("at least one line item is required")
	}

	var details []string
	for i, item := range items {
		if strings.TrimSpace(item.Description) == "" {
			details = append(details, fmt.Sprintf("items[%d].description is required", i))
		}
		if !item.Quantity.IsPositive() {
			details = append(details, fmt.Sprintf("items[%d].quantity must be greater than 0", i))
		}
		if item.UnitPrice.IsNegative() {
			details = append(details, fmt.Sprintf("items[%d].unit_price must not be negative", i))
		}
	}

	if len(details) > 0 {
		return NewValidationError("invalid line items", details...)
	}
	return nil
}

// ValidateTaxProfile rejects profiles that tax the same base twice or carry negative rates.
func ValidateTaxProfile(profile business.TaxProfile) error {
	if profile.DoubleTaxed() {
		return NewValidationError("invalid tax profile", "hst cannot be applied together with gst or pst")
	}
	if profile.GSTRate.IsNegative() || profile.PSTRate.IsNegative() || profile.HSTRate.IsNegative() {
		return NewValidationError("invalid tax profile", "tax rates must not be negative")
	}
	return nil
}

// ComputeTotals derives subtotal, taxes and total from priced line items.
// Each tax is computed on the subtotal, never on another tax.
func ComputeTotals(items []business.LineItem, profile business.TaxProfile) (business.DocumentTotals, error) {
	if err := ValidateLineItems(items); err != nil {
		return business.DocumentTotals{}, err
	}
	if err := ValidateTaxProfile(profile); err != nil {
		return business.DocumentTotals{}, err
	}

	totals := business.DocumentTotals{
		LineTotals:   make([]decimal.Decimal, len(items)),
		TaxBreakdown: []business.TaxBreakdownLine{},
	}
	for i, item := range items {
		lineTotal := LineTotal(item.Quantity, item.UnitPrice)
		totals.LineTotals[i] = lineTotal
		totals.Subtotal = totals.Subtotal.Add(lineTotal)
	}

	if profile.ApplyGST {
		totals.GSTAmount = helpers.PercentOf(totals.Subtotal, profile.GSTRate)
		totals.TaxBreakdown = append(totals.TaxBreakdown, breakdownLine(taxTypeGST, profile.GSTRate, totals.Subtotal, totals.GSTAmount))
	}
	if profile.ApplyPST {
		totals.PSTAmount = helpers.PercentOf(totals.Subtotal, profile.PSTRate)
		totals.TaxBreakdown = append(totals.TaxBreakdown, breakdownLine(taxTypePST, profile.PSTRate, totals.Subtotal, totals.PSTAmount))
	}
	if profile.ApplyHST {
		totals.HSTAmount = helpers.PercentOf(totals.Subtotal, profile.HSTRate)
		totals.TaxBreakdown = append(totals.TaxBreakdown, breakdownLine(taxTypeHST, profile.HSTRate, totals.Subtotal, totals.HSTAmount))
	}

	totals.Total = helpers.SumAmounts(totals.Subtotal, totals.GSTAmount, totals.PSTAmount, totals.HSTAmount)

	if totals.Total.IsNegative() {
		return business.DocumentTotals{}, fmt.Errorf("computed a negative total %s", totals.Total)
	}
	return totals, nil
}

// TaxBreakdown lists the active taxes of a stored document.
func TaxBreakdown(doc business.Document) []business.TaxBreakdownLine {
	lines := []business.TaxBreakdownLine{}
	p := doc.TaxProfile
	if p.ApplyGST {
		lines = append(lines, breakdownLine(taxTypeGST, p.GSTRate, doc.Subtotal, doc.GSTAmount))
	}
	if p.ApplyPST {
		lines = append(lines, breakdownLine(taxTypePST, p.PSTRate, doc.Subtotal, doc.PSTAmount))
	}
	if p.ApplyHST {
		lines = append(lines, breakdownLine(taxTypeHST, p.HSTRate, doc.Subtotal, doc.HSTAmount))
	}
	return lines
}

func breakdownLine(taxType string, rate, base, amount decimal.Decimal) business.TaxBreakdownLine {
	return business.TaxBreakdownLine{
		TaxType:       taxType,
		Rate:          rate,
		TaxableAmount: base,
		Amount:        amount,
	}
}

// WithItems returns a copy of doc with new items and recomputed totals.
// Together with WithTaxProfile it is the only way items or taxes change.
func WithItems(doc business.Document, items []business.LineItem) (business.Document, error) {
	totals, err := ComputeTotals(items, doc.TaxProfile)
	if err != nil {
		return doc, err
	}
	next := doc
	next.Items = withLineTotals(items, totals.LineTotals)
	applyTotals(&next, totals)
	return next, nil
}

// WithTaxProfile returns a copy of doc with the whole tax profile replaced and
// totals recomputed.
func WithTaxProfile(doc business.Document, profile business.TaxProfile) (business.Document, error) {
	totals, err := ComputeTotals(doc.Items, profile)
	if err != nil {
		return doc, err
	}
	next := doc
	next.TaxProfile = profile
	next.Items = withLineTotals(doc.Items, totals.LineTotals)
	applyTotals(&next, totals)
	return next, nil
}

func withLineTotals(items []business.LineItem, lineTotals []decimal.Decimal) []business.LineItem {
	out := make([]business.LineItem, len(items))
	for i, item := range items {
		item.LineTotal = lineTotals[i]
		out[i] = item
	}
	return out
}

func applyTotals(doc *business.Document, totals business.DocumentTotals) {
	doc.Subtotal = totals.Subtotal
	doc.GSTAmount = totals.GSTAmount
	doc.PSTAmount = totals.PSTAmount
	doc.HSTAmount = totals.HSTAmount
	doc.Total = totals.Total
}
