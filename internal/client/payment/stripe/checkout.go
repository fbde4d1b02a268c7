package stripe

import (
	"context"
	"fmt"
	"time"

	"github.com/facturepro/facturepro-api/internal/config"
	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/logger"
	"github.com/facturepro/facturepro-api/internal/types/api/params"
	"github.com/facturepro/facturepro-api/internal/types/business"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

const (
	metadataWorkspaceID = "workspace_id"
	metadataPlan        = "plan"
)

// CheckoutClient opens Stripe Checkout sessions for workspace subscriptions
type CheckoutClient struct {
	client *stripe.Client
	config config.StripeConfig
	logger *zap.Logger
}

// NewCheckoutClient creates a Stripe checkout client
func NewCheckoutClient(cfg config.StripeConfig) (*CheckoutClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("stripe API key not provided in configuration")
	}
	return &CheckoutClient{
		client: stripe.NewClient(cfg.APIKey, nil),
		config: cfg,
		logger: logger.Log,
	}, nil
}

func (c *CheckoutClient) priceForPlan(plan string) (string, error) {
	var price string
	switch plan {
	case constants.PlanMonthly:
		price = c.config.PriceMonthly
	case constants.PlanAnnual:
		price = c.config.PriceAnnual
	default:
		return "", fmt.Errorf("unknown plan %q", plan)
	}
	if price == "" {
		return "", fmt.Errorf("no stripe price configured for plan %s", plan)
	}
	return price, nil
}

// CreateCheckoutSession opens a subscription-mode checkout session for the plan
func (c *CheckoutClient) CreateCheckoutSession(ctx context.Context, sessionParams params.CheckoutSessionParams) (*business.CheckoutSession, error) {
	price, err := c.priceForPlan(sessionParams.Plan)
	if err != nil {
		return nil, err
	}

	workspaceID := sessionParams.WorkspaceID.String()
	createParams := &stripe.CheckoutSessionCreateParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{
			{
				Price:    stripe.String(price),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(c.config.SuccessURL),
		CancelURL:         stripe.String(c.config.CancelURL),
		ClientReferenceID: stripe.String(workspaceID),
		Metadata: map[string]string{
			metadataWorkspaceID: workspaceID,
			metadataPlan:        sessionParams.Plan,
		},
	}
	if sessionParams.CustomerID != "" {
		createParams.Customer = stripe.String(sessionParams.CustomerID)
	} else if sessionParams.CustomerEmail != "" {
		createParams.CustomerEmail = stripe.String(sessionParams.CustomerEmail)
	}

	session, err := c.client.V1CheckoutSessions.Create(ctx, createParams)
	if err != nil {
		c.logger.Error("Failed to create checkout session",
			zap.String("provider", constants.StripeProvider),
			zap.String("workspace_id", workspaceID),
			zap.Error(err))
		return nil, fmt.Errorf("stripe checkout session creation failed: %w", err)
	}

	return &business.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// GetCheckoutStatus retrieves a checkout session with its subscription expanded
func (c *CheckoutClient) GetCheckoutStatus(ctx context.Context, sessionID string) (*business.CheckoutStatus, error) {
	retrieveParams := &stripe.CheckoutSessionRetrieveParams{}
	retrieveParams.AddExpand("subscription")

	session, err := c.client.V1CheckoutSessions.Retrieve(ctx, sessionID, retrieveParams)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve stripe checkout session %s: %w", sessionID, err)
	}

	return mapCheckoutSession(session), nil
}

// mapCheckoutSession converts a Stripe session into the provider-neutral status.
func mapCheckoutSession(session *stripe.CheckoutSession) *business.CheckoutStatus {
	status := &business.CheckoutStatus{
		SessionID:         session.ID,
		Status:            string(session.Status),
		PaymentStatus:     string(session.PaymentStatus),
		ClientReferenceID: session.ClientReferenceID,
		Plan:              session.Metadata[metadataPlan],
	}
	if session.Customer != nil {
		status.ProviderCustomerID = session.Customer.ID
	}
	if sub := session.Subscription; sub != nil {
		status.ProviderSubscriptionID = sub.ID
		if sub.Items != nil && len(sub.Items.Data) > 0 {
			item := sub.Items.Data[0]
			status.CurrentPeriodStart = unixTime(item.CurrentPeriodStart)
			status.CurrentPeriodEnd = unixTime(item.CurrentPeriodEnd)
		}
	}
	return status
}

func unixTime(seconds int64) *time.Time {
	if seconds == 0 {
		return nil
	}
	t := time.Unix(seconds, 0).UTC()
	return &t
}
