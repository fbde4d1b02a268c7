package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/logger"
	"github.com/facturepro/facturepro-api/internal/middleware"
	"github.com/facturepro/facturepro-api/internal/services"
	"github.com/facturepro/facturepro-api/internal/types/api/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Error codes returned in the "code" field of error bodies
const (
	CodeValidation        = "validation_error"
	CodeNotFound          = "not_found"
	CodeDocumentLocked    = "document_locked"
	CodeInvalidTransition = "invalid_transition"
	CodeQuoteExpired      = "quote_expired"
	CodeAccessDenied      = middleware.AccessDeniedCode
	CodeCheckoutExpired   = "checkout_expired"
	CodeCheckoutPending   = "checkout_pending"
	CodeBadRequest        = "bad_request"
	CodeUnauthorized      = "unauthorized"
	CodeInternal          = "internal_error"
)

// Use types from the centralized packages
type (
	ErrorResponse   = responses.ErrorResponse
	SuccessResponse = responses.SuccessResponse
)

var (
	errWorkspaceMissing  = errors.New("workspace ID not found")
	errWorkspaceMismatch = errors.New("workspace header does not match the authenticated workspace")
)

// CommonServices holds dependencies shared by all handlers
type CommonServices struct {
	logger *zap.Logger
}

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	Logger *zap.Logger
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}
	return &CommonServices{logger: config.Logger}
}

// GetLogger returns the logger
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// HandleError logs err and renders a JSON error body with the given status
func (s *CommonServices) HandleError(c *gin.Context, err error, message string, statusCode int, code string) {
	log := middleware.LogWithCorrelationID(c.Request.Context())
	if err != nil {
		fields := []zap.Field{
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		}
		if statusCode >= http.StatusInternalServerError {
			log.Error(message, fields...)
		} else {
			log.Debug(message, fields...)
		}
	}

	c.JSON(statusCode, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// HandleServiceError maps a domain error onto its HTTP status and error code.
// Unrecognised errors become a 500 with the given fallback message.
func (s *CommonServices) HandleServiceError(c *gin.Context, err error, fallback string) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   validationErr.Message,
			Code:    CodeValidation,
			Details: validationErr.Details,
		})
	case errors.Is(err, services.ErrValidation):
		s.HandleError(c, err, err.Error(), http.StatusBadRequest, CodeValidation)
	case errors.Is(err, services.ErrNotFound):
		s.HandleError(c, err, "Resource not found", http.StatusNotFound, CodeNotFound)
	case errors.Is(err, services.ErrDocumentLocked):
		s.HandleError(c, err, err.Error(), http.StatusConflict, CodeDocumentLocked)
	case errors.Is(err, services.ErrInvalidTransition):
		s.HandleError(c, err, err.Error(), http.StatusConflict, CodeInvalidTransition)
	case errors.Is(err, services.ErrQuoteExpired):
		s.HandleError(c, err, "Quote has expired", http.StatusUnprocessableEntity, CodeQuoteExpired)
	case errors.Is(err, services.ErrCheckoutExpired):
		s.HandleError(c, err, "Checkout session expired", http.StatusUnprocessableEntity, CodeCheckoutExpired)
	case errors.Is(err, services.ErrCheckoutPending):
		s.HandleError(c, err, "Checkout not completed yet", http.StatusRequestTimeout, CodeCheckoutPending)
	case errors.Is(err, services.ErrAccessDenied):
		s.HandleError(c, err, "An active subscription is required for this action", http.StatusPaymentRequired, CodeAccessDenied)
	default:
		s.HandleError(c, err, fallback, http.StatusInternalServerError, CodeInternal)
	}
}

// GetWorkspaceID returns the workspace resolved by the auth middleware. An
// X-Workspace-ID header, when sent, must name the same workspace.
func GetWorkspaceID(c *gin.Context) (uuid.UUID, error) {
	value := c.GetString(constants.WorkspaceIDKey)
	if value == "" {
		return uuid.Nil, errWorkspaceMissing
	}
	workspaceID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid workspace ID: %w", err)
	}

	if header := c.GetHeader(constants.WorkspaceIDHeader); header != "" {
		headerID, err := uuid.Parse(header)
		if err != nil || headerID != workspaceID {
			return uuid.Nil, errWorkspaceMismatch
		}
	}
	return workspaceID, nil
}

// GetUserEmail returns the email claim set by the auth middleware
func GetUserEmail(c *gin.Context) string {
	return c.GetString(constants.UserEmailKey)
}

// workspaceOrAbort resolves the workspace or writes a 401 and reports false
func (s *CommonServices) workspaceOrAbort(c *gin.Context) (uuid.UUID, bool) {
	workspaceID, err := GetWorkspaceID(c)
	if err != nil {
		s.HandleError(c, err, "Workspace ID required", http.StatusUnauthorized, CodeUnauthorized)
		return uuid.Nil, false
	}
	return workspaceID, true
}

// uuidParam parses a UUID path parameter or writes a 400 and reports false
func (s *CommonServices) uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		s.HandleError(c, err, fmt.Sprintf("Invalid %s format", name), http.StatusBadRequest, CodeBadRequest)
		return uuid.Nil, false
	}
	return id, true
}
