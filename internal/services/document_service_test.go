package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/db"
	"github.com/facturepro/facturepro-api/internal/mocks"
	"github.com/facturepro/facturepro-api/internal/services"
	"github.com/facturepro/facturepro-api/internal/types/api/params"
	"github.com/facturepro/facturepro-api/internal/types/api/responses"
	"github.com/facturepro/facturepro-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var documentNow = time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

func newDocumentService(t *testing.T) (*services.DocumentService, *mocks.MockStore) {
	store := mocks.NewMockStoreForTest(t)
	svc := services.NewDocumentService(store, services.NewTaxService(nil), nil, fixedClock{now: documentNow})
	return svc, store
}

func TestDocumentService_ComputeTotals(t *testing.T) {
	svc, _ := newDocumentService(t)

	resp, err := svc.ComputeTotals(paramsItems(item("Consulting", "1", "100")), "QC")
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(dec("114.98")))
	assert.Empty(t, resp.Warnings)

	resp, err = svc.ComputeTotals(paramsItems(item("Consulting", "1", "100")), "YT")
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(dec("100")))
	assert.Equal(t, []string{responses.WarningUnsupportedJurisdiction}, resp.Warnings)

	_, err = svc.ComputeTotals(nil, "QC")
	assert.True(t, errors.Is(err, services.ErrValidation))
}

func TestDocumentService_CreateDocument(t *testing.T) {
	svc, store := newDocumentService(t)
	workspaceID := uuid.New()
	due := date(2026, time.April, 9)

	store.EXPECT().NextDocumentNumber(gomock.Any(), db.NextDocumentNumberParams{
		WorkspaceID: workspaceID,
		Kind:        constants.DocumentKindInvoice,
	}).Return(int64(7), nil)
	store.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.CreateDocumentParams) (db.Document, error) {
			assert.Equal(t, "INV-000007", arg.DocumentNumber)
			assert.Equal(t, constants.InvoiceStatusDraft, arg.Status)
			assert.Equal(t, date(2026, time.March, 10), arg.IssueDate)
			return insertedRow(arg), nil
		},
	)

	doc, err := svc.CreateDocument(context.Background(), params.CreateDocumentParams{
		WorkspaceID:      workspaceID,
		Kind:             constants.DocumentKindInvoice,
		ClientID:         uuid.New(),
		Items:            paramsItems(item("Consulting", "1", "100")),
		JurisdictionCode: "QC",
		DueDate:          &due,
		Recurrence:       &business.Recurrence{IsRecurring: true, RecurrenceType: constants.RecurrenceMonthly, RecurrenceInterval: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, "INV-000007", doc.DocumentNumber)
	assert.True(t, doc.GSTAmount.Equal(dec("5")))
	assert.True(t, doc.PSTAmount.Equal(dec("9.98")))
	assert.True(t, doc.Total.Equal(dec("114.98")))
	require.Len(t, doc.Items, 1)
	assert.True(t, doc.Items[0].LineTotal.Equal(dec("100")))
	require.NotNil(t, doc.Recurrence)
	assert.Equal(t, constants.RecurrenceMonthly, doc.Recurrence.RecurrenceType)
}

func TestDocumentService_CreateDocument_Validation(t *testing.T) {
	svc, _ := newDocumentService(t)
	past := date(2026, time.January, 1)

	tests := []struct {
		name   string
		params params.CreateDocumentParams
	}{
		{
			name: "invoice without due date",
			params: params.CreateDocumentParams{
				Kind: constants.DocumentKindInvoice, ClientID: uuid.New(),
				Items: paramsItems(item("A", "1", "1")),
			},
		},
		{
			name: "quote valid until before issue date",
			params: params.CreateDocumentParams{
				Kind: constants.DocumentKindQuote, ClientID: uuid.New(), ValidUntil: &past,
				Items: paramsItems(item("A", "1", "1")),
			},
		},
		{
			name: "unknown kind",
			params: params.CreateDocumentParams{
				Kind: "receipt", ClientID: uuid.New(),
				Items: paramsItems(item("A", "1", "1")),
			},
		},
		{
			name: "no items",
			params: params.CreateDocumentParams{
				Kind: constants.DocumentKindQuote, ClientID: uuid.New(), ValidUntil: &documentNow,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateDocument(context.Background(), tt.params)
			assert.True(t, errors.Is(err, services.ErrValidation), "got %v", err)
		})
	}
}

func TestDocumentService_GetDocument_NotFound(t *testing.T) {
	svc, store := newDocumentService(t)
	store.EXPECT().GetDocument(gomock.Any(), gomock.Any()).Return(db.Document{}, pgx.ErrNoRows)

	_, err := svc.GetDocument(context.Background(), uuid.New(), uuid.New())
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestDocumentService_UpdateItems(t *testing.T) {
	t.Run("draft invoice is repriced", func(t *testing.T) {
		svc, store := newDocumentService(t)
		doc := pricedDocument(t, constants.DocumentKindInvoice, constants.InvoiceStatusDraft, "ON", lineItem("A", "1", "100"))

		store.EXPECT().GetDocumentForUpdate(gomock.Any(), db.GetDocumentForUpdateParams{ID: doc.ID, WorkspaceID: doc.WorkspaceID}).
			Return(storedRow(t, doc), nil)
		store.EXPECT().UpdateDocumentContent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.UpdateDocumentContentParams) (db.Document, error) {
				assert.True(t, arg.Subtotal.Equal(dec("200")))
				assert.True(t, arg.HstAmount.Equal(dec("26")))
				assert.True(t, arg.Total.Equal(dec("226")))
				row := storedRow(t, doc)
				row.Items = arg.Items
				row.Subtotal, row.HstAmount, row.Total = arg.Subtotal, arg.HstAmount, arg.Total
				return row, nil
			},
		)

		updated, err := svc.UpdateItems(context.Background(), params.UpdateItemsParams{
			WorkspaceID: doc.WorkspaceID,
			DocumentID:  doc.ID,
			Items:       paramsItems(item("A", "2", "100")),
		})
		require.NoError(t, err)
		assert.True(t, updated.Total.Equal(dec("226")))
	})

	t.Run("sent invoice is locked", func(t *testing.T) {
		svc, store := newDocumentService(t)
		doc := pricedDocument(t, constants.DocumentKindInvoice, constants.InvoiceStatusSent, "QC", lineItem("A", "1", "100"))
		store.EXPECT().GetDocumentForUpdate(gomock.Any(), gomock.Any()).Return(storedRow(t, doc), nil)

		_, err := svc.UpdateItems(context.Background(), params.UpdateItemsParams{
			WorkspaceID: doc.WorkspaceID,
			DocumentID:  doc.ID,
			Items:       paramsItems(item("A", "5", "100")),
		})
		assert.True(t, errors.Is(err, services.ErrDocumentLocked))
	})
}

func TestDocumentService_UpdateTaxProfile(t *testing.T) {
	svc, store := newDocumentService(t)
	doc := pricedDocument(t, constants.DocumentKindQuote, constants.QuoteStatusPending, "QC", lineItem("A", "1", "100"))

	store.EXPECT().GetDocumentForUpdate(gomock.Any(), gomock.Any()).Return(storedRow(t, doc), nil)
	store.EXPECT().UpdateDocumentContent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.UpdateDocumentContentParams) (db.Document, error) {
			var profile business.TaxProfile
			require.NoError(t, json.Unmarshal(arg.TaxProfile, &profile))
			assert.Equal(t, "ON", profile.JurisdictionCode)
			assert.False(t, profile.ApplyGST)
			assert.True(t, arg.GstAmount.IsZero())
			assert.True(t, arg.PstAmount.IsZero())
			assert.True(t, arg.Total.Equal(dec("113")))
			row := storedRow(t, doc)
			row.TaxProfile = arg.TaxProfile
			row.GstAmount, row.PstAmount, row.HstAmount, row.Total = arg.GstAmount, arg.PstAmount, arg.HstAmount, arg.Total
			return row, nil
		},
	)

	updated, err := svc.UpdateTaxProfile(context.Background(), params.UpdateTaxProfileParams{
		WorkspaceID:      doc.WorkspaceID,
		DocumentID:       doc.ID,
		JurisdictionCode: "on",
	})
	require.NoError(t, err)
	assert.True(t, updated.HSTAmount.Equal(dec("13")))
}

func TestDocumentService_UpdateStatus(t *testing.T) {
	t.Run("draft to sent", func(t *testing.T) {
		svc, store := newDocumentService(t)
		doc := pricedDocument(t, constants.DocumentKindInvoice, constants.InvoiceStatusDraft, "QC", lineItem("A", "1", "100"))

		store.EXPECT().GetDocumentForUpdate(gomock.Any(), gomock.Any()).Return(storedRow(t, doc), nil)
		store.EXPECT().UpdateDocumentStatus(gomock.Any(), db.UpdateDocumentStatusParams{
			ID:          doc.ID,
			WorkspaceID: doc.WorkspaceID,
			Status:      constants.InvoiceStatusSent,
		}).DoAndReturn(func(_ context.Context, arg db.UpdateDocumentStatusParams) (db.Document, error) {
			row := storedRow(t, doc)
			row.Status = arg.Status
			return row, nil
		})

		updated, err := svc.UpdateStatus(context.Background(), params.UpdateStatusParams{
			WorkspaceID: doc.WorkspaceID,
			DocumentID:  doc.ID,
			NewStatus:   constants.InvoiceStatusSent,
		})
		require.NoError(t, err)
		assert.Equal(t, constants.InvoiceStatusSent, updated.Status)
	})

	t.Run("sent to paid stores the payment", func(t *testing.T) {
		svc, store := newDocumentService(t)
		doc := pricedDocument(t, constants.DocumentKindInvoice, constants.InvoiceStatusSent, "QC", lineItem("A", "1", "100"))

		store.EXPECT().GetDocumentForUpdate(gomock.Any(), gomock.Any()).Return(storedRow(t, doc), nil)
		store.EXPECT().UpdateDocumentStatus(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, arg db.UpdateDocumentStatusParams) (db.Document, error) {
				assert.Equal(t, constants.InvoiceStatusPaid, arg.Status)
				var info business.PaymentInfo
				require.NoError(t, json.Unmarshal(arg.PaymentInfo, &info))
				assert.Equal(t, constants.PaymentMethodVirement, info.PaymentMethod)
				assert.True(t, info.AmountPaid.Equal(dec("114.98")))
				row := storedRow(t, doc)
				row.Status = arg.Status
				row.PaymentInfo = arg.PaymentInfo
				return row, nil
			},
		)

		updated, err := svc.UpdateStatus(context.Background(), params.UpdateStatusParams{
			WorkspaceID: doc.WorkspaceID,
			DocumentID:  doc.ID,
			NewStatus:   constants.InvoiceStatusPaid,
			PaymentInfo: &params.PaymentInfoParams{PaymentMethod: constants.PaymentMethodVirement},
		})
		require.NoError(t, err)
		require.NotNil(t, updated.PaymentInfo)

		resp := svc.BuildResponse(*updated)
		require.NotNil(t, resp.BalanceDue)
		assert.True(t, resp.BalanceDue.IsZero())
		assert.NotContains(t, resp.Warnings, responses.WarningPartialPayment)
	})

	t.Run("paid cannot go back to sent", func(t *testing.T) {
		svc, store := newDocumentService(t)
		doc := pricedDocument(t, constants.DocumentKindInvoice, constants.InvoiceStatusPaid, "QC", lineItem("A", "1", "100"))
		store.EXPECT().GetDocumentForUpdate(gomock.Any(), gomock.Any()).Return(storedRow(t, doc), nil)

		_, err := svc.UpdateStatus(context.Background(), params.UpdateStatusParams{
			WorkspaceID: doc.WorkspaceID,
			DocumentID:  doc.ID,
			NewStatus:   constants.InvoiceStatusSent,
		})
		assert.True(t, errors.Is(err, services.ErrInvalidTransition))
	})

	t.Run("payment info outside of paid", func(t *testing.T) {
		svc, store := newDocumentService(t)
		doc := pricedDocument(t, constants.DocumentKindInvoice, constants.InvoiceStatusDraft, "QC", lineItem("A", "1", "100"))
		store.EXPECT().GetDocumentForUpdate(gomock.Any(), gomock.Any()).Return(storedRow(t, doc), nil)

		_, err := svc.UpdateStatus(context.Background(), params.UpdateStatusParams{
			WorkspaceID: doc.WorkspaceID,
			DocumentID:  doc.ID,
			NewStatus:   constants.InvoiceStatusSent,
			PaymentInfo: &params.PaymentInfoParams{PaymentMethod: constants.PaymentMethodCarte},
		})
		assert.True(t, errors.Is(err, services.ErrValidation))
	})
}

func TestDocumentService_UpdateNotes(t *testing.T) {
	svc, store := newDocumentService(t)
	doc := pricedDocument(t, constants.DocumentKindQuote, constants.QuoteStatusRejected, "QC", lineItem("A", "1", "100"))
	store.EXPECT().GetDocumentForUpdate(gomock.Any(), gomock.Any()).Return(storedRow(t, doc), nil)

	_, err := svc.UpdateNotes(context.Background(), doc.WorkspaceID, doc.ID, "too late")
	assert.True(t, errors.Is(err, services.ErrDocumentLocked))
}

func TestDocumentService_ListDocuments(t *testing.T) {
	svc, store := newDocumentService(t)
	workspaceID := uuid.New()
	doc := pricedDocument(t, constants.DocumentKindInvoice, constants.InvoiceStatusDraft, "ON", lineItem("A", "1", "10"))

	store.EXPECT().ListDocuments(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, arg db.ListDocumentsParams) ([]db.Document, error) {
			assert.Equal(t, services.MaxListLimit, arg.Limit)
			assert.Equal(t, int32(0), arg.Offset)
			require.NotNil(t, arg.Kind)
			assert.Equal(t, constants.DocumentKindInvoice, *arg.Kind)
			assert.Nil(t, arg.Status)
			return []db.Document{storedRow(t, doc)}, nil
		},
	)
	store.EXPECT().CountDocuments(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	docs, total, err := svc.ListDocuments(context.Background(), params.ListDocumentsParams{
		WorkspaceID: workspaceID,
		Kind:        constants.DocumentKindInvoice,
		Limit:       500,
		Offset:      -3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, docs, 1)
	assert.Equal(t, doc.ID, docs[0].ID)
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	svc, store := newDocumentService(t)
	workspaceID, documentID := uuid.New(), uuid.New()

	store.EXPECT().DeleteDocument(gomock.Any(), db.DeleteDocumentParams{ID: documentID, WorkspaceID: workspaceID}).Return(int64(1), nil)
	require.NoError(t, svc.DeleteDocument(context.Background(), workspaceID, documentID))

	store.EXPECT().DeleteDocument(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	err := svc.DeleteDocument(context.Background(), workspaceID, documentID)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestDocumentService_BuildResponse(t *testing.T) {
	svc, _ := newDocumentService(t)

	validUntil := date(2026, time.March, 5)
	quote := pricedDocument(t, constants.DocumentKindQuote, constants.QuoteStatusPending, "BC", lineItem("A", "1", "100"))
	quote.ValidUntil = &validUntil

	resp := svc.BuildResponse(quote)
	assert.Equal(t, constants.QuoteStatusExpired, resp.DisplayStatus)
	assert.Equal(t, constants.QuoteStatusPending, resp.Status)
	assert.Contains(t, resp.Warnings, responses.WarningUnsupportedJurisdiction)
	assert.Empty(t, resp.TaxBreakdown)

	invoice := pricedDocument(t, constants.DocumentKindInvoice, constants.InvoiceStatusPaid, "QC", lineItem("A", "1", "100"))
	invoice.PaymentInfo = &business.PaymentInfo{PaymentMethod: constants.PaymentMethodCheque, AmountPaid: dec("100")}
	invoice.Recurrence = &business.Recurrence{IsRecurring: true, RecurrenceType: constants.RecurrenceMonthly, RecurrenceInterval: 1}

	resp = svc.BuildResponse(invoice)
	require.NotNil(t, resp.BalanceDue)
	assert.True(t, resp.BalanceDue.Equal(dec("14.98")))
	assert.Contains(t, resp.Warnings, responses.WarningPartialPayment)
	require.NotNil(t, resp.NextOccurrence)
	assert.Equal(t, date(2026, time.April, 1), *resp.NextOccurrence)
	assert.Len(t, resp.TaxBreakdown, 2)
}
