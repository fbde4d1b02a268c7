package responses

import (
	"time"

	"github.com/facturepro/facturepro-api/internal/types/business"
)

// AccessResponse is returned by the access evaluation endpoint
type AccessResponse struct {
	HasAccess          bool       `json:"has_access"`
	SubscriptionStatus string     `json:"subscription_status"`
	DaysRemaining      int        `json:"days_remaining"`
	Reason             string     `json:"reason"`
	Notices            []string   `json:"notices,omitempty"`
	Plan               string     `json:"plan,omitempty"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end,omitempty"`
}

// NewAccessResponse merges an access decision with the state it was computed from
func NewAccessResponse(decision business.AccessDecision, state business.SubscriptionState) AccessResponse {
	return AccessResponse{
		HasAccess:          decision.HasAccess,
		SubscriptionStatus: decision.SubscriptionStatus,
		DaysRemaining:      decision.DaysRemaining,
		Reason:             decision.Reason,
		Notices:            decision.Notices,
		Plan:               state.Plan,
		CurrentPeriodEnd:   state.CurrentPeriodEnd,
	}
}

// CheckoutResponse is returned when a checkout session is opened
type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}
