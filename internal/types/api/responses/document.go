package responses

import (
	"time"

	"github.com/facturepro/facturepro-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Warning codes attached to document responses
const (
	WarningUnsupportedJurisdiction = "unsupported_jurisdiction"
	WarningPartialPayment          = "partial_payment"
)

// TotalsResponse is the result of a totals computation
type TotalsResponse struct {
	business.DocumentTotals
	TaxProfile business.TaxProfile `json:"tax_profile"`
	Warnings   []string            `json:"warnings,omitempty"`
}

// DocumentResponse is a document as returned by the API, with its read-time status
type DocumentResponse struct {
	business.Document
	DisplayStatus  string                      `json:"display_status"`
	TaxBreakdown   []business.TaxBreakdownLine `json:"tax_breakdown"`
	BalanceDue     *decimal.Decimal            `json:"balance_due,omitempty"`
	NextOccurrence *time.Time                  `json:"next_occurrence,omitempty"`
	Warnings       []string                    `json:"warnings,omitempty"`
}

// ExportRow is the flat read model consumed by report and export generators
type ExportRow struct {
	DocumentID     uuid.UUID       `json:"document_id"`
	DocumentNumber string          `json:"document_number"`
	Kind           string          `json:"kind"`
	ClientID       uuid.UUID       `json:"client_id"`
	IssueDate      time.Time       `json:"issue_date"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
	ValidUntil     *time.Time      `json:"valid_until,omitempty"`
	Status         string          `json:"status"`
	Jurisdiction   string          `json:"jurisdiction"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	GSTAmount      decimal.Decimal `json:"gst_amount"`
	PSTAmount      decimal.Decimal `json:"pst_amount"`
	HSTAmount      decimal.Decimal `json:"hst_amount"`
	Total          decimal.Decimal `json:"total"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	PaymentMethod  string          `json:"payment_method,omitempty"`
}
