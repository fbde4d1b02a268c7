package params

import (
	"time"

	"github.com/facturepro/facturepro-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemParams contains the user-supplied fields of a line item
type LineItemParams struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	ProductID   *uuid.UUID
}

// CreateDocumentParams contains parameters for creating an invoice or a quote
type CreateDocumentParams struct {
	WorkspaceID      uuid.UUID
	Kind             string
	ClientID         uuid.UUID
	Items            []LineItemParams
	JurisdictionCode string
	IssueDate        *time.Time
	DueDate          *time.Time // invoices
	ValidUntil       *time.Time // quotes
	Notes            string
	Recurrence       *business.Recurrence // invoices only
}

// PaymentInfoParams contains the payment details recorded when an invoice is paid
type PaymentInfoParams struct {
	PaymentDate   *time.Time
	PaymentMethod string
	AmountPaid    *decimal.Decimal // defaults to the invoice total
	Notes         string
}

// UpdateStatusParams contains parameters for a status change
type UpdateStatusParams struct {
	WorkspaceID uuid.UUID
	DocumentID  uuid.UUID
	NewStatus   string
	PaymentInfo *PaymentInfoParams
}

// UpdateItemsParams replaces the items of an editable document
type UpdateItemsParams struct {
	WorkspaceID uuid.UUID
	DocumentID  uuid.UUID
	Items       []LineItemParams
}

// UpdateTaxProfileParams switches the jurisdiction of an editable document
type UpdateTaxProfileParams struct {
	WorkspaceID      uuid.UUID
	DocumentID       uuid.UUID
	JurisdictionCode string
}

// ConvertQuoteParams contains parameters for converting a quote into an invoice
type ConvertQuoteParams struct {
	WorkspaceID uuid.UUID
	QuoteID     uuid.UUID
	DueDate     *time.Time
}

// ListDocumentsParams contains list filters
type ListDocumentsParams struct {
	WorkspaceID uuid.UUID
	Kind        string
	Status      string
	Limit       int32
	Offset      int32
}

// ExportParams selects the documents included in an export
type ExportParams struct {
	WorkspaceID uuid.UUID
	Kind        string
	From        *time.Time
	To          *time.Time
}
