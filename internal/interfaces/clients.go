package interfaces

import (
	"context"

	"github.com/facturepro/facturepro-api/internal/types/api/params"
	"github.com/facturepro/facturepro-api/internal/types/business"
)

// PaymentProvider opens hosted checkout sessions and reports their outcome
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, params params.CheckoutSessionParams) (*business.CheckoutSession, error)
	GetCheckoutStatus(ctx context.Context, sessionID string) (*business.CheckoutStatus, error)
}
