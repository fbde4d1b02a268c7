package services

import (
	"fmt"
	"time"

	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/types/api/params"
	"github.com/facturepro/facturepro-api/internal/types/business"
	"github.com/shopspring/decimal"
)

// Allowed stored transitions. paid, cancelled, accepted and rejected are terminal.
var (
	invoiceTransitions = map[string][]string{
		constants.InvoiceStatusDraft:   {constants.InvoiceStatusSent, constants.InvoiceStatusCancelled},
		constants.InvoiceStatusSent:    {constants.InvoiceStatusPaid, constants.InvoiceStatusOverdue, constants.InvoiceStatusCancelled},
		constants.InvoiceStatusOverdue: {constants.InvoiceStatusPaid},
	}
	quoteTransitions = map[string][]string{
		constants.QuoteStatusPending: {constants.QuoteStatusAccepted, constants.QuoteStatusRejected},
	}
)

var validPaymentMethods = map[string]bool{
	constants.PaymentMethodInterac:  true,
	constants.PaymentMethodCheque:   true,
	constants.PaymentMethodArgent:   true,
	constants.PaymentMethodCarte:    true,
	constants.PaymentMethodVirement: true,
}

// InitialStatus returns the status a new document of kind starts in.
func InitialStatus(kind string) string {
	if kind == constants.DocumentKindQuote {
		return constants.QuoteStatusPending
	}
	return constants.InvoiceStatusDraft
}

// dateBefore reports whether the calendar day of date is strictly before the
// calendar day of now. Dates are stored without a time of day.
func dateBefore(date, now time.Time) bool {
	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	dy, dm, dd := date.UTC().Date()
	return time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC).Before(today)
}

// DisplayStatus returns the status shown to users at instant now. A pending
// quote past its validity date reads as expired and a sent invoice past its
// due date reads as overdue. Neither is written back.
func DisplayStatus(doc business.Document, now time.Time) string {
	switch doc.Kind {
	case constants.DocumentKindQuote:
		if doc.Status == constants.QuoteStatusPending && doc.ValidUntil != nil && dateBefore(*doc.ValidUntil, now) {
			return constants.QuoteStatusExpired
		}
	case constants.DocumentKindInvoice:
		if doc.Status == constants.InvoiceStatusSent && doc.DueDate != nil && dateBefore(*doc.DueDate, now) {
			return constants.InvoiceStatusOverdue
		}
	}
	return doc.Status
}

// IsEditable reports whether items and tax profile may still change.
func IsEditable(doc business.Document) bool {
	return doc.Status == InitialStatus(doc.Kind)
}

// EnsureEditable returns ErrDocumentLocked once a document left its initial status.
func EnsureEditable(doc business.Document) error {
	if !IsEditable(doc) {
		return documentLocked(doc.Kind, doc.Status)
	}
	return nil
}

// IsTerminal reports whether no further status change is possible.
func IsTerminal(doc business.Document) bool {
	return len(transitionsFor(doc.Kind)[doc.Status]) == 0
}

func transitionsFor(kind string) map[string][]string {
	if kind == constants.DocumentKindQuote {
		return quoteTransitions
	}
	return invoiceTransitions
}

// ValidateTransition checks that doc may move to newStatus at instant now.
func ValidateTransition(doc business.Document, newStatus string, now time.Time) error {
	allowed := false
	for _, next := range transitionsFor(doc.Kind)[doc.Status] {
		if next == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return invalidTransition(doc.Kind, doc.Status, newStatus)
	}

	switch {
	case doc.Kind == constants.DocumentKindQuote && newStatus == constants.QuoteStatusAccepted:
		if DisplayStatus(doc, now) == constants.QuoteStatusExpired {
			return fmt.Errorf("%w: valid until %s", ErrQuoteExpired, doc.ValidUntil.Format(time.DateOnly))
		}
	case doc.Kind == constants.DocumentKindInvoice && newStatus == constants.InvoiceStatusOverdue:
		if DisplayStatus(doc, now) != constants.InvoiceStatusOverdue {
			return fmt.Errorf("%w: invoice is not past its due date", ErrInvalidTransition)
		}
	}
	return nil
}

// BuildPaymentInfo validates the payment recorded when an invoice becomes paid.
// The amount defaults to the invoice total. partial is true when a positive
// amount other than the total was recorded.
func BuildPaymentInfo(doc business.Document, p *params.PaymentInfoParams, now time.Time) (info *business.PaymentInfo, partial bool, err error) {
	if p == nil {
		return nil, false, NewValidationError("payment_info is required to mark an invoice as paid")
	}
	if !validPaymentMethods[p.PaymentMethod] {
		return nil, false, NewValidationError("invalid payment_info",
			fmt.Sprintf("payment_method %q must be one of interac, cheque, argent, carte, virement", p.PaymentMethod))
	}

	amount := doc.Total
	if p.AmountPaid != nil {
		amount = *p.AmountPaid
	}
	if !amount.IsPositive() {
		return nil, false, NewValidationError("invalid payment_info", "amount_paid must be greater than 0")
	}

	paymentDate := now
	if p.PaymentDate != nil {
		paymentDate = *p.PaymentDate
	}

	info = &business.PaymentInfo{
		PaymentDate:   paymentDate,
		PaymentMethod: p.PaymentMethod,
		AmountPaid:    amount,
		Notes:         p.Notes,
	}
	return info, IsPartialPayment(doc.Total, info), nil
}

// IsPartialPayment reports whether the recorded amount differs from the total.
func IsPartialPayment(total decimal.Decimal, info *business.PaymentInfo) bool {
	return info != nil && !info.AmountPaid.Equal(total)
}
