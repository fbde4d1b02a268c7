package business

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionState is the billing record of a workspace.
type SubscriptionState struct {
	WorkspaceID            uuid.UUID  `json:"workspace_id"`
	SubscriptionStatus     string     `json:"subscription_status"`
	Plan                   string     `json:"plan,omitempty"`
	TrialStartDate         time.Time  `json:"trial_start_date"`
	CurrentPeriodStart     *time.Time `json:"current_period_start,omitempty"`
	CurrentPeriodEnd       *time.Time `json:"current_period_end,omitempty"`
	ProviderCustomerID     string     `json:"provider_customer_id,omitempty"`
	ProviderSubscriptionID string     `json:"provider_subscription_id,omitempty"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// AccessDecision is the outcome of evaluating a subscription state.
type AccessDecision struct {
	HasAccess          bool     `json:"has_access"`
	SubscriptionStatus string   `json:"subscription_status"`
	DaysRemaining      int      `json:"days_remaining"`
	Reason             string   `json:"reason"`
	Notices            []string `json:"notices,omitempty"`
}

// CheckoutSession is a hosted payment page opened with the payment provider.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CheckoutStatus is the provider-reported state of a checkout session.
type CheckoutStatus struct {
	SessionID              string     `json:"session_id"`
	Status                 string     `json:"status"`
	PaymentStatus          string     `json:"payment_status"`
	ClientReferenceID      string     `json:"client_reference_id,omitempty"`
	Plan                   string     `json:"plan,omitempty"`
	ProviderCustomerID     string     `json:"provider_customer_id,omitempty"`
	ProviderSubscriptionID string     `json:"provider_subscription_id,omitempty"`
	CurrentPeriodStart     *time.Time `json:"current_period_start,omitempty"`
	CurrentPeriodEnd       *time.Time `json:"current_period_end,omitempty"`
}
