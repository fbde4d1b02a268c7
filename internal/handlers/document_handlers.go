package handlers

import (
	"net/http"
	"time"

	"github.com/facturepro/facturepro-api/internal/interfaces"
	"github.com/facturepro/facturepro-api/internal/types/api/params"
	"github.com/facturepro/facturepro-api/internal/types/api/requests"
	"github.com/facturepro/facturepro-api/internal/types/api/responses"
	"github.com/facturepro/facturepro-api/internal/types/business"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// DocumentHandler handles invoice and quote HTTP requests
type DocumentHandler struct {
	common            *CommonServices
	documentService   interfaces.DocumentService
	conversionService interfaces.QuoteConversionService
	exportService     interfaces.ExportService
	logger            *zap.Logger
}

// NewDocumentHandler creates a handler with interface dependencies
func NewDocumentHandler(
	common *CommonServices,
	documentService interfaces.DocumentService,
	conversionService interfaces.QuoteConversionService,
	exportService interfaces.ExportService,
	logger *zap.Logger,
) *DocumentHandler {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &DocumentHandler{
		common:            common,
		documentService:   documentService,
		conversionService: conversionService,
		exportService:     exportService,
		logger:            logger,
	}
}

func lineItemParams(items []requests.LineItemRequest) []params.LineItemParams {
	out := make([]params.LineItemParams, len(items))
	for i, item := range items {
		out[i] = params.LineItemParams{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			ProductID:   item.ProductID,
		}
	}
	return out
}

// ComputeTotals prices line items without saving anything
// @Summary Compute document totals
// @Description Computes line totals, subtotal and taxes for a jurisdiction. Nothing is persisted.
// @Tags documents
// @Accept json
// @Produce json
// @Param body body requests.ComputeTotalsRequest true "Items and jurisdiction"
// @Success 200 {object} responses.TotalsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/documents/totals [post]
func (h *DocumentHandler) ComputeTotals(c *gin.Context) {
	var req requests.ComputeTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, CodeBadRequest)
		return
	}

	totals, err := h.documentService.ComputeTotals(lineItemParams(req.Items), req.JurisdictionCode)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to compute totals")
		return
	}

	c.JSON(http.StatusOK, totals)
}

// CreateDocument creates an invoice or a quote
// @Summary Create a document
// @Description Creates a draft invoice or a pending quote with a sequential number
// @Tags documents
// @Accept json
// @Produce json
// @Param body body requests.CreateDocumentRequest true "Document creation request"
// @Success 201 {object} responses.DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Router /api/v1/documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	workspaceID, ok := h.common.workspaceOrAbort(c)
	if !ok {
		return
	}

	var req requests.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, CodeBadRequest)
		return
	}

	createParams := params.CreateDocumentParams{
		WorkspaceID:      workspaceID,
		Kind:             req.Kind,
		ClientID:         req.ClientID,
		Items:            lineItemParams(req.Items),
		JurisdictionCode: req.JurisdictionCode,
		IssueDate:        req.IssueDate,
		DueDate:          req.DueDate,
		ValidUntil:       req.ValidUntil,
		Notes:            req.Notes,
	}
	if req.Recurrence != nil {
		createParams.Recurrence = &business.Recurrence{
			IsRecurring:        req.Recurrence.IsRecurring,
			RecurrenceType:     req.Recurrence.RecurrenceType,
			RecurrenceInterval: req.Recurrence.RecurrenceInterval,
		}
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), createParams)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to create document")
		return
	}

	h.logger.Info("Document created",
		zap.String("workspace_id", workspaceID.String()),
		zap.String("document_id", doc.ID.String()),
		zap.String("document_number", doc.DocumentNumber),
	)
	c.JSON(http.StatusCreated, h.documentService.BuildResponse(*doc))
}

// GetDocument returns one document
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param document_id path string true "Document ID"
// @Success 200 {object} responses.DocumentResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/documents/{document_id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	workspaceID, ok := h.common.workspaceOrAbort(c)
	if !ok {
		return
	}
	documentID, ok := h.common.uuidParam(c, "document_id")
	if !ok {
		return
	}

	doc, err := h.documentService.GetDocument(c.Request.Context(), workspaceID, documentID)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to get document")
		return
	}

	c.JSON(http.StatusOK, h.documentService.BuildResponse(*doc))
}

// ListDocuments returns a page of documents
// @Summary List documents
// @Tags documents
// @Produce json
// @Param kind query string false "invoice or quote"
// @Param status query string false "Stored status"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} responses.PaginatedResponse
// @Router /api/v1/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	workspaceID, ok := h.common.workspaceOrAbort(c)
	if !ok {
		return
	}

	var query requests.ListDocumentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.common.HandleError(c, err, "Invalid query parameters", http.StatusBadRequest, CodeBadRequest)
		return
	}

	docs, total, err := h.documentService.ListDocuments(c.Request.Context(), params.ListDocumentsParams{
		WorkspaceID: workspaceID,
		Kind:        query.Kind,
		Status:      query.Status,
		Limit:       query.Limit,
		Offset:      query.Offset,
	})
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to list documents")
		return
	}

	data := make([]responses.DocumentResponse, len(docs))
	for i, doc := range docs {
		data[i] = h.documentService.BuildResponse(doc)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = int32(len(docs))
	}
	c.JSON(http.StatusOK, responses.PaginatedResponse{
		Data:    data,
		Object:  "list",
		HasMore: int64(query.Offset)+int64(len(docs)) < total,
		Pagination: responses.Pagination{
			Limit:      limit,
			Offset:     query.Offset,
			TotalItems: total,
		},
	})
}

// UpdateItems replaces the items of an editable document
// @Summary Replace document items
// @Tags documents
// @Accept json
// @Produce json
// @Param document_id path string true "Document ID"
// @Param body body requests.UpdateItemsRequest true "New items"
// @Success 200 {object} responses.DocumentResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/documents/{document_id}/items [put]
func (h *DocumentHandler) UpdateItems(c *gin.Context) {
	workspaceID, ok := h.common.workspaceOrAbort(c)
	if !ok {
		return
	}
	documentID, ok := h.common.uuidParam(c, "document_id")
	if !ok {
		return
	}

	var req requests.UpdateItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, CodeBadRequest)
		return
	}

	doc, err := h.documentService.UpdateItems(c.Request.Context(), params.UpdateItemsParams{
		WorkspaceID: workspaceID,
		DocumentID:  documentID,
		Items:       lineItemParams(req.Items),
	})
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to update items")
		return
	}

	c.JSON(http.StatusOK, h.documentService.BuildResponse(*doc))
}

// UpdateTaxProfile switches the jurisdiction of an editable document
// @Summary Change document jurisdiction
// @Tags documents
// @Accept json
// @Produce json
// @Param document_id path string true "Document ID"
// @Param body body requests.UpdateTaxProfileRequest true "Jurisdiction"
// @Success 200 {object} responses.DocumentResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/documents/{document_id}/tax-profile [put]
func (h *DocumentHandler) UpdateTaxProfile(c *gin.Context) {
	workspaceID, ok := h.common.workspaceOrAbort(c)
	if !ok {
		return
	}
	documentID, ok := h.common.uuidParam(c, "document_id")
	if !ok {
		return
	}

	var req requests.UpdateTaxProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, CodeBadRequest)
		return
	}

	doc, err := h.documentService.UpdateTaxProfile(c.Request.Context(), params.UpdateTaxProfileParams{
		WorkspaceID:      workspaceID,
		DocumentID:       documentID,
		JurisdictionCode: req.JurisdictionCode,
	})
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to update tax profile")
		return
	}

	c.JSON(http.StatusOK, h.documentService.BuildResponse(*doc))
}

// UpdateNotes replaces the notes of a non-terminal document
// @Summary Edit document notes
// @Tags documents
// @Accept json
// @Produce json
// @Param document_id path string true "Document ID"
// @Param body body requests.UpdateNotesRequest true "Notes"
// @Success 200 {object} responses.DocumentResponse
// @Router /api/v1/documents/{document_id}/notes [put]
func (h *DocumentHandler) UpdateNotes(c *gin.Context) {
	workspaceID, ok := h.common.workspaceOrAbort(c)
	if !ok {
		return
	}
	documentID, ok := h.common.uuidParam(c, "document_id")
	if !ok {
		return
	}

	var req requests.UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, CodeBadRequest)
		return
	}

	doc, err := h.documentService.UpdateNotes(c.Request.Context(), workspaceID, documentID, req.Notes)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to update notes")
		return
	}

	c.JSON(http.StatusOK, h.documentService.BuildResponse(*doc))
}

// UpdateStatus moves a document through its lifecycle
// @Summary Change document status
// @Description Marking an invoice paid requires payment_info
// @Tags documents
// @Accept json
// @Produce json
// @Param document_id path string true "Document ID"
// @Param body body requests.UpdateStatusRequest true "Target status"
// @Success 200 {object} responses.DocumentResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/documents/{document_id}/status [post]
func (h *DocumentHandler) UpdateStatus(c *gin.Context) {
	workspaceID, ok := h.common.workspaceOrAbort(c)
	if !ok {
		return
	}
	documentID, ok := h.common.uuidParam(c, "document_id")
	if !ok {
		return
	}

	var req requests.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, CodeBadRequest)
		return
	}

	statusParams := params.UpdateStatusParams{
		WorkspaceID: workspaceID,
		DocumentID:  documentID,
		NewStatus:   req.Status,
	}
	if req.PaymentInfo != nil {
		statusParams.PaymentInfo = &params.PaymentInfoParams{
			PaymentDate:   req.PaymentInfo.PaymentDate,
			PaymentMethod: req.PaymentInfo.PaymentMethod,
			AmountPaid:    req.PaymentInfo.AmountPaid,
			Notes:         req.PaymentInfo.Notes,
		}
	}

	doc, err := h.documentService.UpdateStatus(c.Request.Context(), statusParams)
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to update status")
		return
	}

	h.logger.Info("Document status changed",
		zap.String("workspace_id", workspaceID.String()),
		zap.String("document_id", documentID.String()),
		zap.String("status", doc.Status),
	)
	c.JSON(http.StatusOK, h.documentService.BuildResponse(*doc))
}

// ConvertQuote creates a draft invoice from a pending quote
// @Summary Convert a quote to an invoice
// @Tags documents
// @Accept json
// @Produce json
// @Param document_id path string true "Quote ID"
// @Param body body requests.ConvertQuoteRequest true "Invoice due date"
// @Success 201 {object} responses.DocumentResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/documents/{document_id}/convert [post]
func (h *DocumentHandler) ConvertQuote(c *gin.Context) {
	workspaceID, ok := h.common.workspaceOrAbort(c)
	if !ok {
		return
	}
	quoteID, ok := h.common.uuidParam(c, "document_id")
	if !ok {
		return
	}

	var req requests.ConvertQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, CodeBadRequest)
		return
	}

	invoice, err := h.conversionService.Convert(c.Request.Context(), params.ConvertQuoteParams{
		WorkspaceID: workspaceID,
		QuoteID:     quoteID,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to convert quote")
		return
	}

	c.JSON(http.StatusCreated, h.documentService.BuildResponse(*invoice))
}

// DeleteDocument permanently removes a document
// @Summary Delete a document
// @Tags documents
// @Param document_id path string true "Document ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/documents/{document_id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	workspaceID, ok := h.common.workspaceOrAbort(c)
	if !ok {
		return
	}
	documentID, ok := h.common.uuidParam(c, "document_id")
	if !ok {
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), workspaceID, documentID); err != nil {
		h.common.HandleServiceError(c, err, "Failed to delete document")
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportDocuments returns the flat export rows of a kind and date range
// @Summary Export documents
// @Tags documents
// @Produce json
// @Param kind query string true "invoice or quote"
// @Param from query string false "First issue date, YYYY-MM-DD"
// @Param to query string false "Last issue date, YYYY-MM-DD"
// @Success 200 {array} responses.ExportRow
// @Router /api/v1/documents/export [get]
func (h *DocumentHandler) ExportDocuments(c *gin.Context) {
	workspaceID, ok := h.common.workspaceOrAbort(c)
	if !ok {
		return
	}

	var query requests.ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.common.HandleError(c, err, "Invalid query parameters", http.StatusBadRequest, CodeBadRequest)
		return
	}

	from, err := parseDateQuery(query.From)
	if err != nil {
		h.common.HandleError(c, err, "Invalid from date, expected YYYY-MM-DD", http.StatusBadRequest, CodeBadRequest)
		return
	}
	to, err := parseDateQuery(query.To)
	if err != nil {
		h.common.HandleError(c, err, "Invalid to date, expected YYYY-MM-DD", http.StatusBadRequest, CodeBadRequest)
		return
	}

	rows, err := h.exportService.Rows(c.Request.Context(), params.ExportParams{
		WorkspaceID: workspaceID,
		Kind:        query.Kind,
		From:        from,
		To:          to,
	})
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to export documents")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   rows,
	})
}

func parseDateQuery(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
