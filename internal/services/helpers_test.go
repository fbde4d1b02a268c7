package services_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/facturepro/facturepro-api/internal/db"
	"github.com/facturepro/facturepro-api/internal/logger"
	"github.com/facturepro/facturepro-api/internal/services"
	"github.com/facturepro/facturepro-api/internal/types/api/params"
	"github.com/facturepro/facturepro-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func item(description, quantity, unitPrice string) params.LineItemParams {
	return params.LineItemParams{
		Description: description,
		Quantity:    dec(quantity),
		UnitPrice:   dec(unitPrice),
	}
}

func lineItem(description, quantity, unitPrice string) business.LineItem {
	return business.LineItem{
		Description: description,
		Quantity:    dec(quantity),
		UnitPrice:   dec(unitPrice),
	}
}

func paramsItems(items ...params.LineItemParams) []params.LineItemParams {
	return items
}

// storedRow encodes doc the way the documents table stores it.
func storedRow(t *testing.T, doc business.Document) db.Document {
	t.Helper()
	items, err := json.Marshal(doc.Items)
	require.NoError(t, err)
	taxProfile, err := json.Marshal(doc.TaxProfile)
	require.NoError(t, err)

	row := db.Document{
		ID:             doc.ID,
		WorkspaceID:    doc.WorkspaceID,
		Kind:           doc.Kind,
		DocumentNumber: doc.DocumentNumber,
		ClientID:       doc.ClientID,
		IssueDate:      doc.IssueDate,
		DueDate:        doc.DueDate,
		ValidUntil:     doc.ValidUntil,
		Items:          items,
		TaxProfile:     taxProfile,
		Notes:          doc.Notes,
		Status:         doc.Status,
		Subtotal:       doc.Subtotal,
		GstAmount:      doc.GSTAmount,
		PstAmount:      doc.PSTAmount,
		HstAmount:      doc.HSTAmount,
		Total:          doc.Total,
		SourceQuoteID:  doc.SourceQuoteID,
	}
	if doc.PaymentInfo != nil {
		row.PaymentInfo, err = json.Marshal(doc.PaymentInfo)
		require.NoError(t, err)
	}
	return row
}

// insertedRow mimics the row returned by INSERT ... RETURNING.
func insertedRow(arg db.CreateDocumentParams) db.Document {
	return db.Document{
		ID:             uuid.New(),
		WorkspaceID:    arg.WorkspaceID,
		Kind:           arg.Kind,
		DocumentNumber: arg.DocumentNumber,
		ClientID:       arg.ClientID,
		IssueDate:      arg.IssueDate,
		DueDate:        arg.DueDate,
		ValidUntil:     arg.ValidUntil,
		Items:          arg.Items,
		TaxProfile:     arg.TaxProfile,
		Notes:          arg.Notes,
		Status:         arg.Status,
		Subtotal:       arg.Subtotal,
		GstAmount:      arg.GstAmount,
		PstAmount:      arg.PstAmount,
		HstAmount:      arg.HstAmount,
		Total:          arg.Total,
		Recurrence:     arg.Recurrence,
		SourceQuoteID:  arg.SourceQuoteID,
	}
}

// pricedDocument returns a stored document priced under jurisdiction.
func pricedDocument(t *testing.T, kind, status, jurisdiction string, items ...business.LineItem) business.Document {
	t.Helper()
	doc, err := services.WithTaxProfile(business.Document{
		ID:             uuid.New(),
		WorkspaceID:    uuid.New(),
		Kind:           kind,
		DocumentNumber: services.FormatDocumentNumber(kind, 1),
		ClientID:       uuid.New(),
		IssueDate:      date(2026, time.March, 1),
		Items:          items,
		Status:         status,
	}, services.NewTaxService(nil).Resolve(jurisdiction))
	require.NoError(t, err)
	return doc
}
