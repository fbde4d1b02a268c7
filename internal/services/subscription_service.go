package services

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/db"
	"github.com/facturepro/facturepro-api/internal/interfaces"
	"github.com/facturepro/facturepro-api/internal/logger"
	"github.com/facturepro/facturepro-api/internal/metrics"
	"github.com/facturepro/facturepro-api/internal/types/api/params"
	"github.com/facturepro/facturepro-api/internal/types/api/responses"
	"github.com/facturepro/facturepro-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CheckoutPollConfig bounds how long AwaitCheckout waits for the provider.
type CheckoutPollConfig struct {
	Interval    time.Duration
	MaxAttempts int
}

// SubscriptionService handles workspace subscription records and checkout
type SubscriptionService struct {
	queries   db.Querier
	provider  interfaces.PaymentProvider
	evaluator interfaces.AccessEvaluator
	metrics   *metrics.Metrics
	clock     interfaces.Clock
	poll      CheckoutPollConfig
	logger    *zap.Logger
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(
	queries db.Querier,
	provider interfaces.PaymentProvider,
	evaluator interfaces.AccessEvaluator,
	m *metrics.Metrics,
	clock interfaces.Clock,
	poll CheckoutPollConfig,
) *SubscriptionService {
	if clock == nil {
		clock = SystemClock{}
	}
	if poll.Interval <= 0 {
		poll.Interval = 3 * time.Second
	}
	if poll.MaxAttempts < 1 {
		poll.MaxAttempts = 20
	}
	return &SubscriptionService{
		queries:   queries,
		provider:  provider,
		evaluator: evaluator,
		metrics:   m,
		clock:     clock,
		poll:      poll,
		logger:    logger.Log,
	}
}

// GetState returns the subscription record of a workspace, starting a trial
// when the workspace has none yet.
func (s *SubscriptionService) GetState(ctx context.Context, workspaceID uuid.UUID) (*business.SubscriptionState, error) {
	row, err := s.queries.GetSubscription(ctx, workspaceID)
	if errors.Is(err, pgx.ErrNoRows) {
		s.logger.Info("Starting trial for workspace without subscription",
			zap.String("workspace_id", workspaceID.String()))
		row, err = s.queries.EnsureSubscription(ctx, db.EnsureSubscriptionParams{
			WorkspaceID:    workspaceID,
			TrialStartDate: s.clock.Now(),
		})
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load subscription")
	}

	state := subscriptionFromDB(row)
	return &state, nil
}

// EvaluateAccess loads the workspace state and decides whether email may use gated features
func (s *SubscriptionService) EvaluateAccess(ctx context.Context, workspaceID uuid.UUID, email string) (*responses.AccessResponse, error) {
	state, err := s.GetState(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	decision := s.evaluator.Evaluate(*state, email)
	s.metrics.RecordAccessDecision(decision.Reason, decision.HasAccess)

	resp := responses.NewAccessResponse(decision, *state)
	return &resp, nil
}

// StartCheckout opens a hosted checkout session for plan
func (s *SubscriptionService) StartCheckout(ctx context.Context, checkoutParams params.StartCheckoutParams) (*business.CheckoutSession, error) {
	if checkoutParams.Plan != constants.PlanMonthly && checkoutParams.Plan != constants.PlanAnnual {
		return nil, NewValidationError("invalid plan", "plan must be monthly or annual")
	}

	state, err := s.GetState(ctx, checkoutParams.WorkspaceID)
	if err != nil {
		return nil, err
	}

	session, err := s.provider.CreateCheckoutSession(ctx, params.CheckoutSessionParams{
		WorkspaceID:   checkoutParams.WorkspaceID,
		CustomerEmail: checkoutParams.Email,
		Plan:          checkoutParams.Plan,
		CustomerID:    state.ProviderCustomerID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create checkout session")
	}

	s.logger.Info("Checkout session created",
		zap.String("workspace_id", checkoutParams.WorkspaceID.String()),
		zap.String("session_id", session.ID),
		zap.String("plan", checkoutParams.Plan))
	return session, nil
}

// AwaitCheckout polls the provider at a fixed interval until the session
// completes, expires, the attempts run out or ctx is done. A completed session
// activates the subscription with the provider's billing period.
func (s *SubscriptionService) AwaitCheckout(ctx context.Context, workspaceID uuid.UUID, sessionID string) (*business.SubscriptionState, error) {
	var completed *business.CheckoutStatus

	operation := func() error {
		status, err := s.provider.GetCheckoutStatus(ctx, sessionID)
		if err != nil {
			s.logger.Warn("Checkout status poll failed", zap.String("session_id", sessionID), zap.Error(err))
			return err
		}
		s.metrics.RecordCheckoutPoll(status.Status)

		if status.ClientReferenceID != "" && status.ClientReferenceID != workspaceID.String() {
			return backoff.Permanent(errors.Wrapf(ErrNotFound, "checkout session %s", sessionID))
		}

		switch status.Status {
		case constants.CheckoutStatusComplete:
			completed = status
			return nil
		case constants.CheckoutStatusExpired:
			return backoff.Permanent(errors.Wrapf(ErrCheckoutExpired, "session %s", sessionID))
		default:
			return ErrCheckoutPending
		}
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(s.poll.Interval), uint64(s.poll.MaxAttempts-1)),
		ctx,
	)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	plan := completed.Plan
	if plan == "" {
		plan = constants.PlanMonthly
	}

	row, err := s.queries.UpdateSubscriptionBilling(ctx, db.UpdateSubscriptionBillingParams{
		WorkspaceID:            workspaceID,
		Status:                 constants.SubscriptionStatusActive,
		Plan:                   plan,
		CurrentPeriodStart:     completed.CurrentPeriodStart,
		CurrentPeriodEnd:       completed.CurrentPeriodEnd,
		ProviderCustomerID:     completed.ProviderCustomerID,
		ProviderSubscriptionID: completed.ProviderSubscriptionID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to activate subscription")
	}

	s.logger.Info("Subscription activated",
		zap.String("workspace_id", workspaceID.String()),
		zap.String("session_id", sessionID),
		zap.String("plan", plan))

	state := subscriptionFromDB(row)
	return &state, nil
}

func subscriptionFromDB(row db.Subscription) business.SubscriptionState {
	return business.SubscriptionState{
		WorkspaceID:            row.WorkspaceID,
		SubscriptionStatus:     row.Status,
		Plan:                   row.Plan,
		TrialStartDate:         row.TrialStartDate,
		CurrentPeriodStart:     row.CurrentPeriodStart,
		CurrentPeriodEnd:       row.CurrentPeriodEnd,
		ProviderCustomerID:     row.ProviderCustomerID,
		ProviderSubscriptionID: row.ProviderSubscriptionID,
		UpdatedAt:              row.UpdatedAt,
	}
}
