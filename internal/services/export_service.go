package services

import (
	"context"
	"sort"

	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/db"
	"github.com/facturepro/facturepro-api/internal/interfaces"
	"github.com/facturepro/facturepro-api/internal/types/api/params"
	"github.com/facturepro/facturepro-api/internal/types/api/responses"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ExportService selects the rows behind CSV and PDF exports. Rendering bytes
// is left to the caller.
type ExportService struct {
	queries db.Querier
	clock   interfaces.Clock
}

// NewExportService creates a new export service
func NewExportService(queries db.Querier, clock interfaces.Clock) *ExportService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &ExportService{queries: queries, clock: clock}
}

// Rows returns one flat row per document of the requested kind issued in
// [From, To], ordered by document number.
func (s *ExportService) Rows(ctx context.Context, exportParams params.ExportParams) ([]responses.ExportRow, error) {
	if exportParams.Kind != constants.DocumentKindInvoice && exportParams.Kind != constants.DocumentKindQuote {
		return nil, NewValidationError("invalid export", "kind must be invoice or quote")
	}
	if exportParams.From != nil && exportParams.To != nil && exportParams.To.Before(*exportParams.From) {
		return nil, NewValidationError("invalid export", "to must not be before from")
	}

	rows, err := s.queries.ListDocumentsForExport(ctx, db.ListDocumentsForExportParams{
		WorkspaceID: exportParams.WorkspaceID,
		Kind:        exportParams.Kind,
		FromDate:    exportParams.From,
		ToDate:      exportParams.To,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents for export")
	}

	docs, err := documentsFromDB(rows)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	out := make([]responses.ExportRow, 0, len(docs))
	for _, doc := range docs {
		row := responses.ExportRow{
			DocumentID:     doc.ID,
			DocumentNumber: doc.DocumentNumber,
			Kind:           doc.Kind,
			ClientID:       doc.ClientID,
			IssueDate:      doc.IssueDate,
			DueDate:        doc.DueDate,
			ValidUntil:     doc.ValidUntil,
			Status:         DisplayStatus(doc, now),
			Jurisdiction:   doc.TaxProfile.JurisdictionCode,
			Subtotal:       doc.Subtotal,
			GSTAmount:      doc.GSTAmount,
			PSTAmount:      doc.PSTAmount,
			HSTAmount:      doc.HSTAmount,
			Total:          doc.Total,
			AmountPaid:     decimal.Zero,
		}
		if doc.PaymentInfo != nil {
			row.AmountPaid = doc.PaymentInfo.AmountPaid
			row.PaymentMethod = doc.PaymentInfo.PaymentMethod
		}
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DocumentNumber < out[j].DocumentNumber
	})
	return out, nil
}
