package requests

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemRequest represents a line item in document requests
type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	ProductID   *uuid.UUID      `json:"product_id,omitempty"`
}

// RecurrenceRequest represents the recurring schedule of an invoice
type RecurrenceRequest struct {
	IsRecurring        bool   `json:"is_recurring"`
	RecurrenceType     string `json:"recurrence_type,omitempty"`
	RecurrenceInterval int    `json:"recurrence_interval,omitempty"`
}

// ComputeTotalsRequest asks for totals without persisting anything
type ComputeTotalsRequest struct {
	Items            []LineItemRequest `json:"items"`
	JurisdictionCode string            `json:"jurisdiction_code"`
}

// CreateDocumentRequest represents the request to create an invoice or quote
type CreateDocumentRequest struct {
	Kind             string             `json:"kind" binding:"required,oneof=invoice quote"`
	ClientID         uuid.UUID          `json:"client_id" binding:"required"`
	Items            []LineItemRequest  `json:"items"`
	JurisdictionCode string             `json:"jurisdiction_code"`
	IssueDate        *time.Time         `json:"issue_date,omitempty"`
	DueDate          *time.Time         `json:"due_date,omitempty"`
	ValidUntil       *time.Time         `json:"valid_until,omitempty"`
	Notes            string             `json:"notes"`
	Recurrence       *RecurrenceRequest `json:"recurrence,omitempty"`
}

// UpdateItemsRequest replaces all items of a document
type UpdateItemsRequest struct {
	Items []LineItemRequest `json:"items"`
}

// UpdateTaxProfileRequest switches the jurisdiction of a document
type UpdateTaxProfileRequest struct {
	JurisdictionCode string `json:"jurisdiction_code" binding:"required"`
}

// UpdateNotesRequest replaces the free-text notes of a document
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// PaymentInfoRequest carries the payment recorded with a paid status
type PaymentInfoRequest struct {
	PaymentDate   *time.Time       `json:"payment_date,omitempty"`
	PaymentMethod string           `json:"payment_method"`
	AmountPaid    *decimal.Decimal `json:"amount_paid,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

// UpdateStatusRequest represents a status change
type UpdateStatusRequest struct {
	Status      string              `json:"status" binding:"required"`
	PaymentInfo *PaymentInfoRequest `json:"payment_info,omitempty"`
}

// ConvertQuoteRequest represents the request to convert a quote into an invoice
type ConvertQuoteRequest struct {
	DueDate *time.Time `json:"due_date" binding:"required"`
}

// ListDocumentsQuery holds the query string filters of the document list
type ListDocumentsQuery struct {
	Kind   string `form:"kind" binding:"omitempty,oneof=invoice quote"`
	Status string `form:"status"`
	Limit  int32  `form:"limit" binding:"omitempty,min=1"`
	Offset int32  `form:"offset" binding:"omitempty,min=0"`
}

// ExportQuery selects the documents of an export. Dates use YYYY-MM-DD.
type ExportQuery struct {
	Kind string `form:"kind" binding:"omitempty,oneof=invoice quote"`
	From string `form:"from"`
	To   string `form:"to"`
}
