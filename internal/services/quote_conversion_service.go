package services

import (
	"context"
	"fmt"
	"time"

	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/db"
	"github.com/facturepro/facturepro-api/internal/interfaces"
	"github.com/facturepro/facturepro-api/internal/logger"
	"github.com/facturepro/facturepro-api/internal/metrics"
	"github.com/facturepro/facturepro-api/internal/types/api/params"
	"github.com/facturepro/facturepro-api/internal/types/business"
	"go.uber.org/zap"
)

// QuoteConversionService creates draft invoices from pending quotes
type QuoteConversionService struct {
	store   db.Store
	metrics *metrics.Metrics
	clock   interfaces.Clock
	logger  *zap.Logger
}

// NewQuoteConversionService creates a new quote conversion service
func NewQuoteConversionService(store db.Store, m *metrics.Metrics, clock interfaces.Clock) *QuoteConversionService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &QuoteConversionService{
		store:   store,
		metrics: m,
		clock:   clock,
		logger:  logger.Log,
	}
}

// Convert creates a draft invoice carrying the quote's client, items, tax
// profile, notes and totals. The quote itself is left untouched.
func (s *QuoteConversionService) Convert(ctx context.Context, convertParams params.ConvertQuoteParams) (*business.Document, error) {
	if convertParams.DueDate == nil {
		return nil, NewValidationError("due_date is required to convert a quote")
	}
	now := s.clock.Now()
	issueDate := truncateToDate(now)
	dueDate := truncateToDate(*convertParams.DueDate)
	if dueDate.Before(issueDate) {
		return nil, NewValidationError("invalid conversion", "due_date must not be before issue_date")
	}

	var invoice business.Document
	err := s.store.ExecTx(ctx, func(q db.Querier) error {
		quote, err := lockDocument(ctx, q, convertParams.WorkspaceID, convertParams.QuoteID)
		if err != nil {
			return err
		}
		if quote.Kind != constants.DocumentKindQuote {
			return NewValidationError("only quotes can be converted", fmt.Sprintf("document %s is an %s", quote.DocumentNumber, quote.Kind))
		}

		switch DisplayStatus(quote, now) {
		case constants.QuoteStatusPending:
		case constants.QuoteStatusExpired:
			return fmt.Errorf("%w: quote %s", ErrQuoteExpired, quote.DocumentNumber)
		default:
			return fmt.Errorf("%w: quote %s is %s", ErrInvalidTransition, quote.DocumentNumber, quote.Status)
		}

		invoice, err = insertWithNextNumber(ctx, q, invoiceFromQuote(quote, issueDate, dueDate))
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordQuoteConversion()
	s.logger.Info("Quote converted to invoice",
		zap.String("workspace_id", convertParams.WorkspaceID.String()),
		zap.String("quote_id", convertParams.QuoteID.String()),
		zap.String("document_id", invoice.ID.String()),
		zap.String("document_number", invoice.DocumentNumber))

	return &invoice, nil
}

// invoiceFromQuote copies the billable content of quote verbatim, totals included.
func invoiceFromQuote(quote business.Document, issueDate, dueDate time.Time) business.Document {
	items := make([]business.LineItem, len(quote.Items))
	copy(items, quote.Items)
	quoteID := quote.ID

	return business.Document{
		WorkspaceID:   quote.WorkspaceID,
		Kind:          constants.DocumentKindInvoice,
		ClientID:      quote.ClientID,
		IssueDate:     issueDate,
		DueDate:       &dueDate,
		Items:         items,
		TaxProfile:    quote.TaxProfile,
		Notes:         quote.Notes,
		Status:        constants.InvoiceStatusDraft,
		Subtotal:      quote.Subtotal,
		GSTAmount:     quote.GSTAmount,
		PSTAmount:     quote.PSTAmount,
		HSTAmount:     quote.HSTAmount,
		Total:         quote.Total,
		SourceQuoteID: &quoteID,
	}
}
