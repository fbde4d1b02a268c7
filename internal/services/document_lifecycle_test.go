package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/services"
	"github.com/facturepro/facturepro-api/internal/types/api/params"
	"github.com/facturepro/facturepro-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTransition(t *testing.T) {
	now := date(2026, time.March, 10)
	due := date(2026, time.March, 1)
	validUntil := date(2026, time.March, 9)

	tests := []struct {
		name    string
		doc     business.Document
		to      string
		wantErr error
	}{
		{name: "draft to sent", doc: business.Document{Kind: constants.DocumentKindInvoice, Status: constants.InvoiceStatusDraft}, to: constants.InvoiceStatusSent},
		{name: "sent to paid", doc: business.Document{Kind: constants.DocumentKindInvoice, Status: constants.InvoiceStatusSent}, to: constants.InvoiceStatusPaid},
		{name: "overdue to paid", doc: business.Document{Kind: constants.DocumentKindInvoice, Status: constants.InvoiceStatusOverdue}, to: constants.InvoiceStatusPaid},
		{name: "sent to overdue past due date", doc: business.Document{Kind: constants.DocumentKindInvoice, Status: constants.InvoiceStatusSent, DueDate: &due}, to: constants.InvoiceStatusOverdue},
		{name: "sent to overdue before due date", doc: business.Document{Kind: constants.DocumentKindInvoice, Status: constants.InvoiceStatusSent}, to: constants.InvoiceStatusOverdue, wantErr: services.ErrInvalidTransition},
		{name: "paid to sent", doc: business.Document{Kind: constants.DocumentKindInvoice, Status: constants.InvoiceStatusPaid}, to: constants.InvoiceStatusSent, wantErr: services.ErrInvalidTransition},
		{name: "draft to paid", doc: business.Document{Kind: constants.DocumentKindInvoice, Status: constants.InvoiceStatusDraft}, to: constants.InvoiceStatusPaid, wantErr: services.ErrInvalidTransition},
		{name: "cancelled is terminal", doc: business.Document{Kind: constants.DocumentKindInvoice, Status: constants.InvoiceStatusCancelled}, to: constants.InvoiceStatusDraft, wantErr: services.ErrInvalidTransition},
		{name: "quote accepted", doc: business.Document{Kind: constants.DocumentKindQuote, Status: constants.QuoteStatusPending}, to: constants.QuoteStatusAccepted},
		{name: "expired quote accepted", doc: business.Document{Kind: constants.DocumentKindQuote, Status: constants.QuoteStatusPending, ValidUntil: &validUntil}, to: constants.QuoteStatusAccepted, wantErr: services.ErrQuoteExpired},
		{name: "expired quote rejected", doc: business.Document{Kind: constants.DocumentKindQuote, Status: constants.QuoteStatusPending, ValidUntil: &validUntil}, to: constants.QuoteStatusRejected},
		{name: "expired is never stored", doc: business.Document{Kind: constants.DocumentKindQuote, Status: constants.QuoteStatusPending}, to: constants.QuoteStatusExpired, wantErr: services.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := services.ValidateTransition(tt.doc, tt.to, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestDisplayStatus(t *testing.T) {
	validUntil := date(2026, time.March, 10)
	quote := business.Document{Kind: constants.DocumentKindQuote, Status: constants.QuoteStatusPending, ValidUntil: &validUntil}

	// Valid through the whole validity day.
	assert.Equal(t, constants.QuoteStatusPending, services.DisplayStatus(quote, time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, constants.QuoteStatusExpired, services.DisplayStatus(quote, date(2026, time.March, 11)))

	quote.Status = constants.QuoteStatusAccepted
	assert.Equal(t, constants.QuoteStatusAccepted, services.DisplayStatus(quote, date(2027, time.January, 1)))

	due := date(2026, time.March, 1)
	invoice := business.Document{Kind: constants.DocumentKindInvoice, Status: constants.InvoiceStatusSent, DueDate: &due}
	assert.Equal(t, constants.InvoiceStatusOverdue, services.DisplayStatus(invoice, date(2026, time.March, 2)))
	invoice.Status = constants.InvoiceStatusDraft
	assert.Equal(t, constants.InvoiceStatusDraft, services.DisplayStatus(invoice, date(2026, time.March, 2)))
}

func TestEnsureEditable(t *testing.T) {
	assert.NoError(t, services.EnsureEditable(business.Document{Kind: constants.DocumentKindInvoice, Status: constants.InvoiceStatusDraft}))
	assert.NoError(t, services.EnsureEditable(business.Document{Kind: constants.DocumentKindQuote, Status: constants.QuoteStatusPending}))

	err := services.EnsureEditable(business.Document{Kind: constants.DocumentKindInvoice, Status: constants.InvoiceStatusSent})
	assert.True(t, errors.Is(err, services.ErrDocumentLocked))
	err = services.EnsureEditable(business.Document{Kind: constants.DocumentKindQuote, Status: constants.QuoteStatusAccepted})
	assert.True(t, errors.Is(err, services.ErrDocumentLocked))
}

func TestBuildPaymentInfo(t *testing.T) {
	now := date(2026, time.April, 2)
	doc := business.Document{Kind: constants.DocumentKindInvoice, Status: constants.InvoiceStatusSent, Total: dec("114.98")}

	t.Run("defaults to the total", func(t *testing.T) {
		info, partial, err := services.BuildPaymentInfo(doc, &params.PaymentInfoParams{PaymentMethod: constants.PaymentMethodInterac}, now)
		require.NoError(t, err)
		assert.False(t, partial)
		assert.True(t, info.AmountPaid.Equal(doc.Total))
		assert.Equal(t, now, info.PaymentDate)
	})

	t.Run("partial amount is flagged", func(t *testing.T) {
		amount := dec("50")
		info, partial, err := services.BuildPaymentInfo(doc, &params.PaymentInfoParams{PaymentMethod: constants.PaymentMethodCheque, AmountPaid: &amount}, now)
		require.NoError(t, err)
		assert.True(t, partial)
		assert.True(t, info.AmountPaid.Equal(amount))
	})

	t.Run("unknown method", func(t *testing.T) {
		_, _, err := services.BuildPaymentInfo(doc, &params.PaymentInfoParams{PaymentMethod: "bitcoin"}, now)
		assert.True(t, errors.Is(err, services.ErrValidation))
	})

	t.Run("missing payment info", func(t *testing.T) {
		_, _, err := services.BuildPaymentInfo(doc, nil, now)
		assert.True(t, errors.Is(err, services.ErrValidation))
	})

	t.Run("non positive amount", func(t *testing.T) {
		amount := dec("0")
		_, _, err := services.BuildPaymentInfo(doc, &params.PaymentInfoParams{PaymentMethod: constants.PaymentMethodCarte, AmountPaid: &amount}, now)
		assert.True(t, errors.Is(err, services.ErrValidation))
	})
}
