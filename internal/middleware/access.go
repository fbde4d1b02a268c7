package middleware

import (
	"net/http"

	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/interfaces"
	"github.com/facturepro/facturepro-api/internal/types/api/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccessDeniedCode is the error code returned when a subscription blocks a request
const AccessDeniedCode = "access_denied"

// RequireAccess blocks gated requests with 402 when the workspace subscription
// does not grant access. Must run after RequireAuth.
func RequireAccess(subscriptions interfaces.SubscriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := LogWithCorrelationID(c.Request.Context())

		workspaceID, err := uuid.Parse(c.GetString(constants.WorkspaceIDKey))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{
				Error: "Workspace not resolved",
				Code:  "unauthorized",
			})
			return
		}

		access, err := subscriptions.EvaluateAccess(c.Request.Context(), workspaceID, c.GetString(constants.UserEmailKey))
		if err != nil {
			log.Error("Failed to evaluate subscription access",
				zap.String("workspace_id", workspaceID.String()),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
				Error: "Failed to evaluate subscription access",
				Code:  "internal_error",
			})
			return
		}

		if !access.HasAccess {
			log.Info("Access denied by subscription",
				zap.String("workspace_id", workspaceID.String()),
				zap.String("status", access.SubscriptionStatus),
				zap.String("reason", access.Reason),
			)
			c.AbortWithStatusJSON(http.StatusPaymentRequired, responses.ErrorResponse{
				Error:   "An active subscription is required for this action",
				Code:    AccessDeniedCode,
				Details: append([]string{access.Reason}, access.Notices...),
			})
			return
		}

		c.Next()
	}
}
