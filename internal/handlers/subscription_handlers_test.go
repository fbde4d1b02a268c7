package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/mocks"
	"github.com/facturepro/facturepro-api/internal/services"
	"github.com/facturepro/facturepro-api/internal/types/api/params"
	"github.com/facturepro/facturepro-api/internal/types/api/responses"
	"github.com/facturepro/facturepro-api/internal/types/business"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSubscriptionRouter(t *testing.T) (uuid.UUID, *mocks.MockSubscriptionService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	subscriptions := mocks.NewMockSubscriptionService(ctrl)
	h := NewSubscriptionHandler(NewCommonServices(CommonServicesConfig{}), subscriptions, nil)

	workspaceID := uuid.New()
	router := newTestRouter(workspaceID)
	group := router.Group("/api/v1/subscription")
	group.GET("/access", h.GetAccess)
	group.POST("/checkout", h.StartCheckout)
	group.POST("/checkout/:session_id/await", h.AwaitCheckout)
	return workspaceID, subscriptions, router
}

func TestSubscriptionHandler_GetAccess(t *testing.T) {
	workspaceID, subscriptions, router := newSubscriptionRouter(t)
	subscriptions.EXPECT().EvaluateAccess(gomock.Any(), workspaceID, testEmail).Return(&responses.AccessResponse{
		HasAccess:          true,
		SubscriptionStatus: constants.SubscriptionStatusTrial,
		DaysRemaining:      3,
		Reason:             constants.AccessReasonTrialActive,
		Notices:            []string{constants.NoticeTrialEnding},
	}, nil)

	w := performRequest(t, router, http.MethodGet, "/api/v1/subscription/access", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp responses.AccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.HasAccess)
	assert.Equal(t, 3, resp.DaysRemaining)
	assert.Equal(t, []string{constants.NoticeTrialEnding}, resp.Notices)
}

func TestSubscriptionHandler_StartCheckout(t *testing.T) {
	t.Run("invalid plan", func(t *testing.T) {
		_, _, router := newSubscriptionRouter(t)
		w := performRequest(t, router, http.MethodPost, "/api/v1/subscription/checkout", map[string]string{"plan": "weekly"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("opens session", func(t *testing.T) {
		workspaceID, subscriptions, router := newSubscriptionRouter(t)
		subscriptions.EXPECT().StartCheckout(gomock.Any(), params.StartCheckoutParams{
			WorkspaceID: workspaceID,
			Email:       testEmail,
			Plan:        constants.PlanAnnual,
		}).Return(&business.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/cs_test_1"}, nil)

		w := performRequest(t, router, http.MethodPost, "/api/v1/subscription/checkout", map[string]string{"plan": "annual"})

		require.Equal(t, http.StatusCreated, w.Code)
		var resp responses.CheckoutResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "cs_test_1", resp.SessionID)
	})
}

func TestSubscriptionHandler_AwaitCheckout(t *testing.T) {
	tests := []struct {
		name           string
		awaitErr       error
		expectedStatus int
		expectedCode   string
	}{
		{name: "completed", expectedStatus: http.StatusOK},
		{name: "expired session", awaitErr: services.ErrCheckoutExpired, expectedStatus: http.StatusUnprocessableEntity, expectedCode: CodeCheckoutExpired},
		{name: "still pending", awaitErr: services.ErrCheckoutPending, expectedStatus: http.StatusRequestTimeout, expectedCode: CodeCheckoutPending},
		{name: "foreign session", awaitErr: services.ErrNotFound, expectedStatus: http.StatusNotFound, expectedCode: CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workspaceID, subscriptions, router := newSubscriptionRouter(t)
			if tt.awaitErr != nil {
				subscriptions.EXPECT().AwaitCheckout(gomock.Any(), workspaceID, "cs_test_1").Return(nil, tt.awaitErr)
			} else {
				subscriptions.EXPECT().AwaitCheckout(gomock.Any(), workspaceID, "cs_test_1").
					Return(&business.SubscriptionState{WorkspaceID: workspaceID, SubscriptionStatus: constants.SubscriptionStatusActive}, nil)
				subscriptions.EXPECT().EvaluateAccess(gomock.Any(), workspaceID, testEmail).
					DoAndReturn(func(context.Context, uuid.UUID, string) (*responses.AccessResponse, error) {
						return &responses.AccessResponse{HasAccess: true, SubscriptionStatus: constants.SubscriptionStatusActive}, nil
					})
			}

			w := performRequest(t, router, http.MethodPost, "/api/v1/subscription/checkout/cs_test_1/await", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Code)
			}
		})
	}
}
