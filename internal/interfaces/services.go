package interfaces

import (
	"context"
	"time"

	"github.com/facturepro/facturepro-api/internal/types/api/params"
	"github.com/facturepro/facturepro-api/internal/types/api/responses"
	"github.com/facturepro/facturepro-api/internal/types/business"
	"github.com/google/uuid"
)

// TaxService resolves jurisdiction codes to tax profiles
type TaxService interface {
	Resolve(code string) business.TaxProfile
	ListJurisdictions() []business.TaxProfile
}

// DocumentService handles invoice and quote operations
type DocumentService interface {
	ComputeTotals(items []params.LineItemParams, jurisdictionCode string) (*responses.TotalsResponse, error)
	CreateDocument(ctx context.Context, params params.CreateDocumentParams) (*business.Document, error)
	GetDocument(ctx context.Context, workspaceID, documentID uuid.UUID) (*business.Document, error)
	ListDocuments(ctx context.Context, params params.ListDocumentsParams) ([]business.Document, int64, error)
	UpdateItems(ctx context.Context, params params.UpdateItemsParams) (*business.Document, error)
	UpdateTaxProfile(ctx context.Context, params params.UpdateTaxProfileParams) (*business.Document, error)
	UpdateNotes(ctx context.Context, workspaceID, documentID uuid.UUID, notes string) (*business.Document, error)
	UpdateStatus(ctx context.Context, params params.UpdateStatusParams) (*business.Document, error)
	DeleteDocument(ctx context.Context, workspaceID, documentID uuid.UUID) error
	BuildResponse(doc business.Document) responses.DocumentResponse
}

// QuoteConversionService turns accepted-for-billing quotes into draft invoices
type QuoteConversionService interface {
	Convert(ctx context.Context, params params.ConvertQuoteParams) (*business.Document, error)
}

// ExportService selects the data behind document exports
type ExportService interface {
	Rows(ctx context.Context, params params.ExportParams) ([]responses.ExportRow, error)
}

// AccessEvaluator decides whether a workspace may use gated features
type AccessEvaluator interface {
	Evaluate(state business.SubscriptionState, email string) business.AccessDecision
}

// SubscriptionService handles workspace subscription state and checkout
type SubscriptionService interface {
	GetState(ctx context.Context, workspaceID uuid.UUID) (*business.SubscriptionState, error)
	EvaluateAccess(ctx context.Context, workspaceID uuid.UUID, email string) (*responses.AccessResponse, error)
	StartCheckout(ctx context.Context, params params.StartCheckoutParams) (*business.CheckoutSession, error)
	AwaitCheckout(ctx context.Context, workspaceID uuid.UUID, sessionID string) (*business.SubscriptionState, error)
}

// Clock abstracts the current time so date-dependent rules can be tested
type Clock interface {
	Now() time.Time
}
