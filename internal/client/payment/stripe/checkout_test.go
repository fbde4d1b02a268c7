package stripe

import (
	"testing"
	"time"

	"github.com/facturepro/facturepro-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

func TestNewCheckoutClient(t *testing.T) {
	_, err := NewCheckoutClient(config.StripeConfig{})
	assert.Error(t, err)

	client, err := NewCheckoutClient(config.StripeConfig{APIKey: "sk_test_123"})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestCheckoutClient_PriceForPlan(t *testing.T) {
	client, err := NewCheckoutClient(config.StripeConfig{
		APIKey:       "sk_test_123",
		PriceMonthly: "price_monthly",
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		plan    string
		want    string
		wantErr bool
	}{
		{"monthly", "monthly", "price_monthly", false},
		{"annual without price", "annual", "", true},
		{"unknown plan", "weekly", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.priceForPlan(tt.plan)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapCheckoutSession(t *testing.T) {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	t.Run("complete session with subscription", func(t *testing.T) {
		session := &stripe.CheckoutSession{
			ID:                "cs_test_1",
			Status:            stripe.CheckoutSessionStatusComplete,
			PaymentStatus:     stripe.CheckoutSessionPaymentStatusPaid,
			ClientReferenceID: "workspace-1",
			Metadata:          map[string]string{"plan": "annual"},
			Customer:          &stripe.Customer{ID: "cus_1"},
			Subscription: &stripe.Subscription{
				ID: "sub_1",
				Items: &stripe.SubscriptionItemList{
					Data: []*stripe.SubscriptionItem{
						{CurrentPeriodStart: start.Unix(), CurrentPeriodEnd: end.Unix()},
					},
				},
			},
		}

		status := mapCheckoutSession(session)
		assert.Equal(t, "complete", status.Status)
		assert.Equal(t, "paid", status.PaymentStatus)
		assert.Equal(t, "annual", status.Plan)
		assert.Equal(t, "cus_1", status.ProviderCustomerID)
		assert.Equal(t, "sub_1", status.ProviderSubscriptionID)
		require.NotNil(t, status.CurrentPeriodEnd)
		assert.True(t, end.Equal(*status.CurrentPeriodEnd))
		assert.True(t, start.Equal(*status.CurrentPeriodStart))
	})

	t.Run("open session without subscription", func(t *testing.T) {
		status := mapCheckoutSession(&stripe.CheckoutSession{ID: "cs_test_2", Status: stripe.CheckoutSessionStatusOpen})
		assert.Equal(t, "open", status.Status)
		assert.Empty(t, status.ProviderSubscriptionID)
		assert.Nil(t, status.CurrentPeriodEnd)
	})
}
