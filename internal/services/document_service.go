package services

import (
	"context"
	"time"

	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/db"
	"github.com/facturepro/facturepro-api/internal/interfaces"
	"github.com/facturepro/facturepro-api/internal/logger"
	"github.com/facturepro/facturepro-api/internal/metrics"
	"github.com/facturepro/facturepro-api/internal/types/api/params"
	"github.com/facturepro/facturepro-api/internal/types/api/responses"
	"github.com/facturepro/facturepro-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Listing page sizes
const (
	DefaultListLimit int32 = 20
	MaxListLimit     int32 = 100
)

// DocumentService handles invoice and quote creation, edits and status changes.
// Every mutation reads the row with FOR UPDATE and writes it back in the same
// transaction. There is no version column, so concurrent editors see last write wins.
type DocumentService struct {
	store      db.Store
	taxService interfaces.TaxService
	metrics    *metrics.Metrics
	clock      interfaces.Clock
	logger     *zap.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(store db.Store, taxService interfaces.TaxService, m *metrics.Metrics, clock interfaces.Clock) *DocumentService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &DocumentService{
		store:      store,
		taxService: taxService,
		metrics:    m,
		clock:      clock,
		logger:     logger.Log,
	}
}

// ComputeTotals prices items under a jurisdiction without persisting anything
func (s *DocumentService) ComputeTotals(items []params.LineItemParams, jurisdictionCode string) (*responses.TotalsResponse, error) {
	profile := s.taxService.Resolve(jurisdictionCode)

	lineItems, err := BuildLineItems(items)
	if err != nil {
		s.metrics.RecordTotalsComputation(profile.JurisdictionCode, err)
		return nil, err
	}

	totals, err := ComputeTotals(lineItems, profile)
	s.metrics.RecordTotalsComputation(profile.JurisdictionCode, err)
	if err != nil {
		return nil, err
	}

	resp := &responses.TotalsResponse{
		DocumentTotals: totals,
		TaxProfile:     profile,
	}
	if !profile.Supported {
		resp.Warnings = append(resp.Warnings, responses.WarningUnsupportedJurisdiction)
	}
	return resp, nil
}

// CreateDocument validates and stores a new invoice or quote with the next
// number of its kind. Number allocation and insert share one transaction.
func (s *DocumentService) CreateDocument(ctx context.Context, createParams params.CreateDocumentParams) (*business.Document, error) {
	doc, err := s.newDocument(createParams)
	if err != nil {
		return nil, err
	}

	var created business.Document
	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		var txErr error
		created, txErr = insertWithNextNumber(ctx, q, doc)
		return txErr
	})
	if err != nil {
		s.logger.Error("Failed to create document",
			zap.String("workspace_id", createParams.WorkspaceID.String()),
			zap.String("kind", createParams.Kind),
			zap.Error(err))
		return nil, err
	}

	s.metrics.RecordDocumentCreated(created.Kind)
	s.logger.Info("Document created",
		zap.String("workspace_id", created.WorkspaceID.String()),
		zap.String("document_id", created.ID.String()),
		zap.String("document_number", created.DocumentNumber))

	return &created, nil
}

func (s *DocumentService) newDocument(p params.CreateDocumentParams) (business.Document, error) {
	var details []string
	if p.Kind != constants.DocumentKindInvoice && p.Kind != constants.DocumentKindQuote {
		details = append(details, "kind must be invoice or quote")
	}
	if p.ClientID == uuid.Nil {
		details = append(details, "client_id is required")
	}

	issueDate := truncateToDate(s.clock.Now())
	if p.IssueDate != nil {
		issueDate = truncateToDate(*p.IssueDate)
	}

	doc := business.Document{
		WorkspaceID: p.WorkspaceID,
		Kind:        p.Kind,
		ClientID:    p.ClientID,
		IssueDate:   issueDate,
		Notes:       p.Notes,
		Status:      InitialStatus(p.Kind),
	}

	switch p.Kind {
	case constants.DocumentKindInvoice:
		if p.DueDate == nil {
			details = append(details, "due_date is required for invoices")
		} else {
			due := truncateToDate(*p.DueDate)
			if due.Before(issueDate) {
				details = append(details, "due_date must not be before issue_date")
			}
			doc.DueDate = &due
		}
	case constants.DocumentKindQuote:
		if p.ValidUntil == nil {
			details = append(details, "valid_until is required for quotes")
		} else {
			validUntil := truncateToDate(*p.ValidUntil)
			if validUntil.Before(issueDate) {
				details = append(details, "valid_until must not be before issue_date")
			}
			doc.ValidUntil = &validUntil
		}
	}
	if len(details) > 0 {
		return doc, NewValidationError("invalid document", details...)
	}

	recurrence, err := ValidateRecurrence(p.Kind, p.Recurrence)
	if err != nil {
		return doc, err
	}
	doc.Recurrence = recurrence

	items, err := BuildLineItems(p.Items)
	if err != nil {
		return doc, err
	}
	doc.Items = items

	return WithTaxProfile(doc, s.taxService.Resolve(p.JurisdictionCode))
}

// insertWithNextNumber allocates the next number of doc's kind and inserts doc.
// It must run inside a transaction so a rollback also returns the number.
func insertWithNextNumber(ctx context.Context, q db.Querier, doc business.Document) (business.Document, error) {
	n, err := q.NextDocumentNumber(ctx, db.NextDocumentNumberParams{
		WorkspaceID: doc.WorkspaceID,
		Kind:        doc.Kind,
	})
	if err != nil {
		return business.Document{}, errors.Wrap(err, "failed to allocate document number")
	}
	doc.DocumentNumber = FormatDocumentNumber(doc.Kind, n)

	createParams, err := createParamsFromDocument(doc)
	if err != nil {
		return business.Document{}, err
	}
	row, err := q.CreateDocument(ctx, createParams)
	if err != nil {
		return business.Document{}, errors.Wrap(err, "failed to insert document")
	}
	return documentFromDB(row)
}

// GetDocument returns a document of the workspace
func (s *DocumentService) GetDocument(ctx context.Context, workspaceID, documentID uuid.UUID) (*business.Document, error) {
	row, err := s.store.GetDocument(ctx, db.GetDocumentParams{ID: documentID, WorkspaceID: workspaceID})
	if err != nil {
		return nil, wrapLookupError(err, documentID)
	}
	doc, err := documentFromDB(row)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListDocuments returns one page of documents and the total count matching the filters
func (s *DocumentService) ListDocuments(ctx context.Context, listParams params.ListDocumentsParams) ([]business.Document, int64, error) {
	limit := listParams.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset := listParams.Offset
	if offset < 0 {
		offset = 0
	}

	kind := optionalString(listParams.Kind)
	status := optionalString(listParams.Status)

	rows, err := s.store.ListDocuments(ctx, db.ListDocumentsParams{
		WorkspaceID: listParams.WorkspaceID,
		Limit:       limit,
		Offset:      offset,
		Kind:        kind,
		Status:      status,
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list documents")
	}

	total, err := s.store.CountDocuments(ctx, db.CountDocumentsParams{
		WorkspaceID: listParams.WorkspaceID,
		Kind:        kind,
		Status:      status,
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count documents")
	}

	docs, err := documentsFromDB(rows)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// UpdateItems replaces the items of an editable document and recomputes its totals
func (s *DocumentService) UpdateItems(ctx context.Context, updateParams params.UpdateItemsParams) (*business.Document, error) {
	return s.updateContent(ctx, updateParams.WorkspaceID, updateParams.DocumentID, func(doc business.Document) (business.Document, error) {
		if err := EnsureEditable(doc); err != nil {
			return doc, err
		}
		items, err := BuildLineItems(updateParams.Items)
		if err != nil {
			return doc, err
		}
		return WithItems(doc, items)
	})
}

// UpdateTaxProfile switches the jurisdiction of an editable document. The whole
// profile is replaced and totals are recomputed.
func (s *DocumentService) UpdateTaxProfile(ctx context.Context, updateParams params.UpdateTaxProfileParams) (*business.Document, error) {
	profile := s.taxService.Resolve(updateParams.JurisdictionCode)
	return s.updateContent(ctx, updateParams.WorkspaceID, updateParams.DocumentID, func(doc business.Document) (business.Document, error) {
		if err := EnsureEditable(doc); err != nil {
			return doc, err
		}
		return WithTaxProfile(doc, profile)
	})
}

// UpdateNotes replaces the free-text notes of any document not yet in a terminal status
func (s *DocumentService) UpdateNotes(ctx context.Context, workspaceID, documentID uuid.UUID, notes string) (*business.Document, error) {
	return s.updateContent(ctx, workspaceID, documentID, func(doc business.Document) (business.Document, error) {
		if IsTerminal(doc) {
			return doc, documentLocked(doc.Kind, doc.Status)
		}
		doc.Notes = notes
		return doc, nil
	})
}

func (s *DocumentService) updateContent(ctx context.Context, workspaceID, documentID uuid.UUID, mutate func(business.Document) (business.Document, error)) (*business.Document, error) {
	var updated business.Document
	err := s.store.ExecTx(ctx, func(q db.Querier) error {
		current, err := lockDocument(ctx, q, workspaceID, documentID)
		if err != nil {
			return err
		}

		next, err := mutate(current)
		if err != nil {
			return err
		}

		contentParams, err := contentParamsFromDocument(next)
		if err != nil {
			return err
		}
		row, err := q.UpdateDocumentContent(ctx, contentParams)
		if err != nil {
			return errors.Wrap(err, "failed to update document")
		}
		updated, err = documentFromDB(row)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Document updated",
		zap.String("workspace_id", workspaceID.String()),
		zap.String("document_id", documentID.String()))
	return &updated, nil
}

// UpdateStatus moves a document through its lifecycle. Marking an invoice paid
// stores the payment in the same UPDATE as the status.
func (s *DocumentService) UpdateStatus(ctx context.Context, statusParams params.UpdateStatusParams) (*business.Document, error) {
	now := s.clock.Now()

	var (
		updated  business.Document
		previous string
	)
	err := s.store.ExecTx(ctx, func(q db.Querier) error {
		current, err := lockDocument(ctx, q, statusParams.WorkspaceID, statusParams.DocumentID)
		if err != nil {
			return err
		}
		previous = current.Status

		if err := ValidateTransition(current, statusParams.NewStatus, now); err != nil {
			return err
		}

		var paymentInfo []byte
		if current.Kind == constants.DocumentKindInvoice && statusParams.NewStatus == constants.InvoiceStatusPaid {
			info, _, err := BuildPaymentInfo(current, statusParams.PaymentInfo, now)
			if err != nil {
				return err
			}
			if paymentInfo, err = encodeOptional(info); err != nil {
				return errors.Wrap(err, "failed to encode payment info")
			}
		} else if statusParams.PaymentInfo != nil {
			return NewValidationError("payment_info is only accepted when marking an invoice as paid")
		}

		row, err := q.UpdateDocumentStatus(ctx, db.UpdateDocumentStatusParams{
			ID:          current.ID,
			WorkspaceID: current.WorkspaceID,
			Status:      statusParams.NewStatus,
			PaymentInfo: paymentInfo,
		})
		if err != nil {
			return errors.Wrap(err, "failed to update document status")
		}
		updated, err = documentFromDB(row)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordTransition(updated.Kind, previous, updated.Status)
	s.logger.Info("Document status changed",
		zap.String("workspace_id", updated.WorkspaceID.String()),
		zap.String("document_id", updated.ID.String()),
		zap.String("from", previous),
		zap.String("status", updated.Status))
	return &updated, nil
}

// DeleteDocument permanently removes a document
func (s *DocumentService) DeleteDocument(ctx context.Context, workspaceID, documentID uuid.UUID) error {
	rows, err := s.store.DeleteDocument(ctx, db.DeleteDocumentParams{ID: documentID, WorkspaceID: workspaceID})
	if err != nil {
		return errors.Wrap(err, "failed to delete document")
	}
	if rows == 0 {
		return errors.Wrapf(ErrNotFound, "document %s", documentID)
	}

	s.logger.Info("Document deleted",
		zap.String("workspace_id", workspaceID.String()),
		zap.String("document_id", documentID.String()))
	return nil
}

// BuildResponse decorates a document with its read-time status, tax breakdown and warnings
func (s *DocumentService) BuildResponse(doc business.Document) responses.DocumentResponse {
	resp := responses.DocumentResponse{
		Document:      doc,
		DisplayStatus: DisplayStatus(doc, s.clock.Now()),
		TaxBreakdown:  TaxBreakdown(doc),
	}

	if !doc.TaxProfile.Supported {
		resp.Warnings = append(resp.Warnings, responses.WarningUnsupportedJurisdiction)
	}
	if doc.PaymentInfo != nil {
		balance := decimal.Max(doc.Total.Sub(doc.PaymentInfo.AmountPaid), decimal.Zero)
		resp.BalanceDue = &balance
		if IsPartialPayment(doc.Total, doc.PaymentInfo) {
			resp.Warnings = append(resp.Warnings, responses.WarningPartialPayment)
		}
	}
	if doc.Recurrence != nil && doc.Recurrence.IsRecurring {
		if next, err := NextOccurrence(*doc.Recurrence, doc.IssueDate); err == nil {
			resp.NextOccurrence = &next
		}
	}
	return resp
}

// lockDocument reads a document with a row lock for the rest of the transaction.
func lockDocument(ctx context.Context, q db.Querier, workspaceID, documentID uuid.UUID) (business.Document, error) {
	row, err := q.GetDocumentForUpdate(ctx, db.GetDocumentForUpdateParams{ID: documentID, WorkspaceID: workspaceID})
	if err != nil {
		return business.Document{}, wrapLookupError(err, documentID)
	}
	return documentFromDB(row)
}

func wrapLookupError(err error, documentID uuid.UUID) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errors.Wrapf(ErrNotFound, "document %s", documentID)
	}
	return errors.Wrap(err, "failed to load document")
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
