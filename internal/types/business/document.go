package business

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is a single billed line of an invoice or quote.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	// ProductID only records which catalog product prefilled the line.
	ProductID *uuid.UUID      `json:"product_id,omitempty"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// DocumentTotals holds every amount derived from the items and the tax profile.
type DocumentTotals struct {
	Subtotal     decimal.Decimal    `json:"subtotal"`
	GSTAmount    decimal.Decimal    `json:"gst_amount"`
	PSTAmount    decimal.Decimal    `json:"pst_amount"`
	HSTAmount    decimal.Decimal    `json:"hst_amount"`
	Total        decimal.Decimal    `json:"total"`
	LineTotals   []decimal.Decimal  `json:"line_totals"`
	TaxBreakdown []TaxBreakdownLine `json:"tax_breakdown"`
}

// TaxTotal returns the sum of all tax amounts.
func (t DocumentTotals) TaxTotal() decimal.Decimal {
	return t.GSTAmount.Add(t.PSTAmount).Add(t.HSTAmount)
}

// PaymentInfo records how an invoice was paid.
type PaymentInfo struct {
	PaymentDate   time.Time       `json:"payment_date"`
	PaymentMethod string          `json:"payment_method"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Notes         string          `json:"notes,omitempty"`
}

// Recurrence describes how often a recurring invoice should be reissued.
type Recurrence struct {
	IsRecurring        bool   `json:"is_recurring"`
	RecurrenceType     string `json:"recurrence_type,omitempty"`
	RecurrenceInterval int    `json:"recurrence_interval,omitempty"`
}

// Document is an invoice or a quote. Totals are derived from Items and
// TaxProfile and must only change together with them.
type Document struct {
	ID             uuid.UUID       `json:"id"`
	WorkspaceID    uuid.UUID       `json:"workspace_id"`
	Kind           string          `json:"kind"`
	DocumentNumber string          `json:"document_number"`
	ClientID       uuid.UUID       `json:"client_id"`
	IssueDate      time.Time       `json:"issue_date"`
	DueDate        *time.Time      `json:"due_date,omitempty"`
	ValidUntil     *time.Time      `json:"valid_until,omitempty"`
	Items          []LineItem      `json:"items"`
	TaxProfile     TaxProfile      `json:"tax_profile"`
	Notes          string          `json:"notes"`
	Status         string          `json:"status"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	GSTAmount      decimal.Decimal `json:"gst_amount"`
	PSTAmount      decimal.Decimal `json:"pst_amount"`
	HSTAmount      decimal.Decimal `json:"hst_amount"`
	Total          decimal.Decimal `json:"total"`
	PaymentInfo    *PaymentInfo    `json:"payment_info,omitempty"`
	Recurrence     *Recurrence     `json:"recurrence,omitempty"`
	SourceQuoteID  *uuid.UUID      `json:"source_quote_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Totals returns the stored derived amounts of the document.
func (d Document) Totals() DocumentTotals {
	lineTotals := make([]decimal.Decimal, len(d.Items))
	for i, item := range d.Items {
		lineTotals[i] = item.LineTotal
	}
	return DocumentTotals{
		Subtotal:   d.Subtotal,
		GSTAmount:  d.GSTAmount,
		PSTAmount:  d.PSTAmount,
		HSTAmount:  d.HSTAmount,
		Total:      d.Total,
		LineTotals: lineTotals,
	}
}
