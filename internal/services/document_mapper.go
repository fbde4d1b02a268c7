package services

import (
	"encoding/json"
	"fmt"

	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/db"
	"github.com/facturepro/facturepro-api/internal/types/business"
)

// FormatDocumentNumber renders the n-th number of a kind, e.g. INV-000042.
func FormatDocumentNumber(kind string, n int64) string {
	prefix := constants.InvoiceNumberPrefix
	if kind == constants.DocumentKindQuote {
		prefix = constants.QuoteNumberPrefix
	}
	return fmt.Sprintf("%s-%06d", prefix, n)
}

// documentFromDB converts a stored row, decoding its JSONB columns.
func documentFromDB(row db.Document) (business.Document, error) {
	doc := business.Document{
		ID:             row.ID,
		WorkspaceID:    row.WorkspaceID,
		Kind:           row.Kind,
		DocumentNumber: row.DocumentNumber,
		ClientID:       row.ClientID,
		IssueDate:      row.IssueDate,
		DueDate:        row.DueDate,
		ValidUntil:     row.ValidUntil,
		Notes:          row.Notes,
		Status:         row.Status,
		Subtotal:       row.Subtotal,
		GSTAmount:      row.GstAmount,
		PSTAmount:      row.PstAmount,
		HSTAmount:      row.HstAmount,
		Total:          row.Total,
		SourceQuoteID:  row.SourceQuoteID,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}

	if err := json.Unmarshal(row.Items, &doc.Items); err != nil {
		return doc, fmt.Errorf("failed to decode items of document %s: %w", row.ID, err)
	}
	if err := json.Unmarshal(row.TaxProfile, &doc.TaxProfile); err != nil {
		return doc, fmt.Errorf("failed to decode tax profile of document %s: %w", row.ID, err)
	}
	if len(row.PaymentInfo) > 0 {
		doc.PaymentInfo = &business.PaymentInfo{}
		if err := json.Unmarshal(row.PaymentInfo, doc.PaymentInfo); err != nil {
			return doc, fmt.Errorf("failed to decode payment info of document %s: %w", row.ID, err)
		}
	}
	if len(row.Recurrence) > 0 {
		doc.Recurrence = &business.Recurrence{}
		if err := json.Unmarshal(row.Recurrence, doc.Recurrence); err != nil {
			return doc, fmt.Errorf("failed to decode recurrence of document %s: %w", row.ID, err)
		}
	}
	return doc, nil
}

func documentsFromDB(rows []db.Document) ([]business.Document, error) {
	docs := make([]business.Document, 0, len(rows))
	for _, row := range rows {
		doc, err := documentFromDB(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// encodeOptional marshals v, or returns nil so the column is stored as NULL.
func encodeOptional[T any](v *T) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func createParamsFromDocument(doc business.Document) (db.CreateDocumentParams, error) {
	items, err := json.Marshal(doc.Items)
	if err != nil {
		return db.CreateDocumentParams{}, fmt.Errorf("failed to encode items: %w", err)
	}
	taxProfile, err := json.Marshal(doc.TaxProfile)
	if err != nil {
		return db.CreateDocumentParams{}, fmt.Errorf("failed to encode tax profile: %w", err)
	}
	recurrence, err := encodeOptional(doc.Recurrence)
	if err != nil {
		return db.CreateDocumentParams{}, fmt.Errorf("failed to encode recurrence: %w", err)
	}

	return db.CreateDocumentParams{
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
		Recurrence:     recurrence,
		SourceQuoteID:  doc.SourceQuoteID,
	}, nil
}

func contentParamsFromDocument(doc business.Document) (db.UpdateDocumentContentParams, error) {
	items, err := json.Marshal(doc.Items)
	if err != nil {
		return db.UpdateDocumentContentParams{}, fmt.Errorf("failed to encode items: %w", err)
	}
	taxProfile, err := json.Marshal(doc.TaxProfile)
	if err != nil {
		return db.UpdateDocumentContentParams{}, fmt.Errorf("failed to encode tax profile: %w", err)
	}

	return db.UpdateDocumentContentParams{
		ID:          doc.ID,
		WorkspaceID: doc.WorkspaceID,
		Items:       items,
		TaxProfile:  taxProfile,
		Notes:       doc.Notes,
		Subtotal:    doc.Subtotal,
		GstAmount:   doc.GSTAmount,
		PstAmount:   doc.PSTAmount,
		HstAmount:   doc.HSTAmount,
		Total:       doc.Total,
	}, nil
}
