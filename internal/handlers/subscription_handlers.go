package handlers

import (
	"net/http"

	"github.com/facturepro/facturepro-api/internal/interfaces"
	"github.com/facturepro/facturepro-api/internal/types/api/params"
	"github.com/facturepro/facturepro-api/internal/types/api/requests"
	"github.com/facturepro/facturepro-api/internal/types/api/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubscriptionHandler handles the workspace's own FacturePro subscription
type SubscriptionHandler struct {
	common              *CommonServices
	subscriptionService interfaces.SubscriptionService
	logger              *zap.Logger
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(common *CommonServices, subscriptionService interfaces.SubscriptionService, logger *zap.Logger) *SubscriptionHandler {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &SubscriptionHandler{
		common:              common,
		subscriptionService: subscriptionService,
		logger:              logger,
	}
}

// GetAccess evaluates whether the workspace may use gated features
// @Summary Evaluate subscription access
// @Tags subscription
// @Produce json
// @Success 200 {object} responses.AccessResponse
// @Router /api/v1/subscription/access [get]
func (h *SubscriptionHandler) GetAccess(c *gin.Context) {
	workspaceID, ok := h.common.workspaceOrAbort(c)
	if !ok {
		return
	}

	access, err := h.subscriptionService.EvaluateAccess(c.Request.Context(), workspaceID, GetUserEmail(c))
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to evaluate access")
		return
	}

	c.JSON(http.StatusOK, access)
}

// StartCheckout opens a hosted checkout session for a plan
// @Summary Start a subscription checkout
// @Tags subscription
// @Accept json
// @Produce json
// @Param body body requests.StartCheckoutRequest true "Plan"
// @Success 201 {object} responses.CheckoutResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/subscription/checkout [post]
func (h *SubscriptionHandler) StartCheckout(c *gin.Context) {
	workspaceID, ok := h.common.workspaceOrAbort(c)
	if !ok {
		return
	}

	var req requests.StartCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.common.HandleError(c, err, "Invalid request body", http.StatusBadRequest, CodeBadRequest)
		return
	}

	session, err := h.subscriptionService.StartCheckout(c.Request.Context(), params.StartCheckoutParams{
		WorkspaceID: workspaceID,
		Email:       GetUserEmail(c),
		Plan:        req.Plan,
	})
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to start checkout")
		return
	}

	h.logger.Info("Checkout session opened",
		zap.String("workspace_id", workspaceID.String()),
		zap.String("session_id", session.ID),
		zap.String("plan", req.Plan),
	)
	c.JSON(http.StatusCreated, responses.CheckoutResponse{SessionID: session.ID, URL: session.URL})
}

// AwaitCheckout waits for a checkout session to complete and returns the
// resulting access decision
// @Summary Wait for checkout completion
// @Tags subscription
// @Produce json
// @Param session_id path string true "Checkout session ID"
// @Success 200 {object} responses.AccessResponse
// @Failure 408 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/subscription/checkout/{session_id}/await [post]
func (h *SubscriptionHandler) AwaitCheckout(c *gin.Context) {
	workspaceID, ok := h.common.workspaceOrAbort(c)
	if !ok {
		return
	}

	sessionID := c.Param("session_id")
	if sessionID == "" {
		h.common.HandleError(c, nil, "Session ID required", http.StatusBadRequest, CodeBadRequest)
		return
	}

	if _, err := h.subscriptionService.AwaitCheckout(c.Request.Context(), workspaceID, sessionID); err != nil {
		h.common.HandleServiceError(c, err, "Failed to confirm checkout")
		return
	}

	access, err := h.subscriptionService.EvaluateAccess(c.Request.Context(), workspaceID, GetUserEmail(c))
	if err != nil {
		h.common.HandleServiceError(c, err, "Failed to evaluate access")
		return
	}

	c.JSON(http.StatusOK, access)
}
