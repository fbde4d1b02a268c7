package params

import "github.com/google/uuid"

// StartCheckoutParams contains parameters for opening a subscription checkout
type StartCheckoutParams struct {
	WorkspaceID uuid.UUID
	Email       string
	Plan        string
}

// CheckoutSessionParams is what the payment provider needs to open a checkout session
type CheckoutSessionParams struct {
	WorkspaceID   uuid.UUID
	CustomerEmail string
	Plan          string
	CustomerID    string // existing provider customer, if any
}
