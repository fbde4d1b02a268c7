package business

import "github.com/shopspring/decimal"

// TaxProfile is the set of sales-tax rates and enable flags applied to a document.
// Rates are percentages, e.g. 9.975 for 9.975%.
type TaxProfile struct {
	JurisdictionCode string          `json:"jurisdiction_code"`
	GSTRate          decimal.Decimal `json:"gst_rate"`
	PSTRate          decimal.Decimal `json:"pst_rate"`
	HSTRate          decimal.Decimal `json:"hst_rate"`
	ApplyGST         bool            `json:"apply_gst"`
	ApplyPST         bool            `json:"apply_pst"`
	ApplyHST         bool            `json:"apply_hst"`
	// Supported is false when the jurisdiction is unknown and no tax is applied.
	Supported bool `json:"supported"`
}

// DoubleTaxed reports whether the profile taxes the same base twice,
// i.e. HST is active together with GST or PST.
func (p TaxProfile) DoubleTaxed() bool {
	return p.ApplyHST && (p.ApplyGST || p.ApplyPST)
}

// HasTax reports whether any tax is active.
func (p TaxProfile) HasTax() bool {
	return p.ApplyGST || p.ApplyPST || p.ApplyHST
}

// TaxBreakdownLine is one tax component of a document total.
type TaxBreakdownLine struct {
	TaxType       string          `json:"tax_type"` // "gst", "pst", "hst"
	Rate          decimal.Decimal `json:"rate"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	Amount        decimal.Decimal `json:"amount"`
}
