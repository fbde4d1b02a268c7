package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/db"
	"github.com/facturepro/facturepro-api/internal/mocks"
	"github.com/facturepro/facturepro-api/internal/services"
	"github.com/facturepro/facturepro-api/internal/types/api/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQuoteConversionService_Convert(t *testing.T) {
	now := time.Date(2026, time.May, 4, 9, 30, 0, 0, time.UTC)
	validUntil := date(2026, time.May, 31)
	due := date(2026, time.June, 3)

	store := mocks.NewMockStoreForTest(t)
	svc := services.NewQuoteConversionService(store, nil, fixedClock{now: now})

	quote := pricedDocument(t, constants.DocumentKindQuote, constants.QuoteStatusPending, "QC",
		lineItem("Discovery", "1", "20"),
		lineItem("Wireframes", "2", "10"),
		lineItem("Review", "1", "10"),
	)
	quote.ValidUntil = &validUntil
	quote.Notes = "Merci!"
	require.True(t, quote.Subtotal.Equal(dec("50")))

	store.EXPECT().GetDocumentForUpdate(gomock.Any(), db.GetDocumentForUpdateParams{ID: quote.ID, WorkspaceID: quote.WorkspaceID}).
		Return(storedRow(t, quote), nil)
	store.EXPECT().NextDocumentNumber(gomock.Any(), db.NextDocumentNumberParams{
		WorkspaceID: quote.WorkspaceID,
		Kind:        constants.DocumentKindInvoice,
	}).Return(int64(12), nil)
	store.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.CreateDocumentParams) (db.Document, error) {
			return insertedRow(arg), nil
		},
	)

	invoice, err := svc.Convert(context.Background(), params.ConvertQuoteParams{
		WorkspaceID: quote.WorkspaceID,
		QuoteID:     quote.ID,
		DueDate:     &due,
	})
	require.NoError(t, err)

	assert.Equal(t, constants.DocumentKindInvoice, invoice.Kind)
	assert.Equal(t, constants.InvoiceStatusDraft, invoice.Status)
	assert.Equal(t, "INV-000012", invoice.DocumentNumber)
	assert.Equal(t, quote.ClientID, invoice.ClientID)
	assert.Equal(t, "Merci!", invoice.Notes)
	assert.Equal(t, date(2026, time.May, 4), invoice.IssueDate)
	require.NotNil(t, invoice.SourceQuoteID)
	assert.Equal(t, quote.ID, *invoice.SourceQuoteID)
	require.Len(t, invoice.Items, 3)
	assert.True(t, invoice.Subtotal.Equal(dec("50")))
	assert.True(t, invoice.GSTAmount.Equal(dec("2.5")))
	assert.True(t, invoice.PSTAmount.Equal(dec("4.99")))
	assert.True(t, invoice.Total.Equal(quote.Total))
	assert.Equal(t, "QC", invoice.TaxProfile.JurisdictionCode)
	assert.True(t, invoice.TaxProfile.ApplyGST && invoice.TaxProfile.ApplyPST)
	assert.True(t, invoice.TaxProfile.PSTRate.Equal(quote.TaxProfile.PSTRate))
}

func TestQuoteConversionService_Convert_Rejected(t *testing.T) {
	now := time.Date(2026, time.May, 4, 9, 30, 0, 0, time.UTC)
	due := date(2026, time.June, 3)
	expired := date(2026, time.May, 3)

	tests := []struct {
		name    string
		kind    string
		status  string
		until   *time.Time
		wantErr error
	}{
		{name: "expired quote", kind: constants.DocumentKindQuote, status: constants.QuoteStatusPending, until: &expired, wantErr: services.ErrQuoteExpired},
		{name: "accepted quote", kind: constants.DocumentKindQuote, status: constants.QuoteStatusAccepted, wantErr: services.ErrInvalidTransition},
		{name: "invoice", kind: constants.DocumentKindInvoice, status: constants.InvoiceStatusDraft, wantErr: services.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockStoreForTest(t)
			svc := services.NewQuoteConversionService(store, nil, fixedClock{now: now})

			doc := pricedDocument(t, tt.kind, tt.status, "ON", lineItem("A", "1", "100"))
			doc.ValidUntil = tt.until
			store.EXPECT().GetDocumentForUpdate(gomock.Any(), gomock.Any()).Return(storedRow(t, doc), nil)

			_, err := svc.Convert(context.Background(), params.ConvertQuoteParams{
				WorkspaceID: doc.WorkspaceID,
				QuoteID:     doc.ID,
				DueDate:     &due,
			})
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestQuoteConversionService_Convert_RequiresDueDate(t *testing.T) {
	svc := services.NewQuoteConversionService(mocks.NewMockStoreForTest(t), nil, nil)

	_, err := svc.Convert(context.Background(), params.ConvertQuoteParams{})
	assert.True(t, errors.Is(err, services.ErrValidation))
}
