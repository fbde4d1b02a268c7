package services

import (
	"math"
	"strings"
	"time"

	"github.com/facturepro/facturepro-api/internal/config"
	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/interfaces"
	"github.com/facturepro/facturepro-api/internal/types/business"
)

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time { return time.Now() }

// AccessEvaluator decides feature access from a subscription state
type AccessEvaluator struct {
	exemptEmails    map[string]struct{}
	trialLengthDays int
	clock           interfaces.Clock
}

// NewAccessEvaluator creates an evaluator with the exemption set and trial
// length of policy. A nil clock means the wall clock.
func NewAccessEvaluator(policy *config.Policy, clock interfaces.Clock) *AccessEvaluator {
	if policy == nil {
		policy = config.DefaultPolicy()
	}
	if clock == nil {
		clock = SystemClock{}
	}
	trialLength := policy.TrialLengthDays
	if trialLength <= 0 {
		trialLength = constants.DefaultTrialLengthDays
	}
	return &AccessEvaluator{
		exemptEmails:    policy.ExemptEmailSet(),
		trialLengthDays: trialLength,
		clock:           clock,
	}
}

// Evaluate returns the access decision for state as seen by the user email.
func (e *AccessEvaluator) Evaluate(state business.SubscriptionState, email string) business.AccessDecision {
	now := e.clock.Now()
	decision := business.AccessDecision{
		SubscriptionStatus: state.SubscriptionStatus,
	}

	if e.isExempt(email) {
		decision.HasAccess = true
		decision.Reason = constants.AccessReasonExempt
		return decision
	}

	switch state.SubscriptionStatus {
	case constants.SubscriptionStatusTrial:
		elapsed := now.Sub(state.TrialStartDate).Hours() / 24
		decision.DaysRemaining = ceilDays(float64(e.trialLengthDays) - elapsed)
		decision.HasAccess = decision.DaysRemaining > 0
		decision.Reason = constants.AccessReasonTrialActive
		if !decision.HasAccess {
			decision.Reason = constants.AccessReasonTrialExpired
		} else if decision.DaysRemaining <= constants.TrialWarningThresholdDays {
			decision.Notices = append(decision.Notices, constants.NoticeTrialEnding)
		}

	case constants.SubscriptionStatusActive:
		decision.HasAccess = true
		decision.Reason = constants.AccessReasonActive
		if state.CurrentPeriodEnd != nil {
			decision.DaysRemaining = daysUntil(now, *state.CurrentPeriodEnd)
			if now.After(*state.CurrentPeriodEnd) {
				decision.HasAccess = false
				decision.Reason = constants.AccessReasonPeriodEnded
			}
		}

	case constants.SubscriptionStatusCancelled:
		decision.Reason = constants.AccessReasonCancelledEnded
		if state.CurrentPeriodEnd != nil && !now.After(*state.CurrentPeriodEnd) {
			decision.HasAccess = true
			decision.DaysRemaining = daysUntil(now, *state.CurrentPeriodEnd)
			decision.Reason = constants.AccessReasonCancelledGrace
		}
		if decision.DaysRemaining > 0 {
			decision.Notices = append(decision.Notices, constants.NoticeReactivate)
		}

	case constants.SubscriptionStatusPastDue:
		decision.Reason = constants.AccessReasonPastDue

	case constants.SubscriptionStatusSuspended:
		decision.Reason = constants.AccessReasonSuspended

	default:
		decision.Reason = constants.AccessReasonUnknownStatus
	}

	if !decision.HasAccess {
		decision.Notices = append(decision.Notices, constants.NoticeAccessBlocked)
	}
	return decision
}

func (e *AccessEvaluator) isExempt(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	_, ok := e.exemptEmails[email]
	return ok
}

func daysUntil(now, end time.Time) int {
	return ceilDays(end.Sub(now).Hours() / 24)
}

// ceilDays rounds a fractional day count up and never returns a negative value.
func ceilDays(days float64) int {
	if days <= 0 {
		return 0
	}
	return int(math.Ceil(days))
}
