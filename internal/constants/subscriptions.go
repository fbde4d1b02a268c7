package constants

// Subscription statuses
const (
	SubscriptionStatusTrial     = "trial"
	SubscriptionStatusActive    = "active"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusPastDue   = "past_due"
	SubscriptionStatusSuspended = "suspended"
)

// Subscription plans
const (
	PlanMonthly = "monthly"
	PlanAnnual  = "annual"
)

// DefaultTrialLengthDays is used when the policy does not configure a trial length
const DefaultTrialLengthDays = 14

// TrialWarningThresholdDays is the number of remaining trial days at or below
// which the trial_ending notice is surfaced.
const TrialWarningThresholdDays = 3

// Access decision reasons
const (
	AccessReasonExempt         = "exempt"
	AccessReasonTrialActive    = "trial_active"
	AccessReasonTrialExpired   = "trial_expired"
	AccessReasonActive         = "subscription_active"
	AccessReasonPeriodEnded    = "period_ended"
	AccessReasonCancelledGrace = "cancelled_grace_period"
	AccessReasonCancelledEnded = "cancelled_period_ended"
	AccessReasonPastDue        = "past_due"
	AccessReasonSuspended      = "suspended"
	AccessReasonUnknownStatus  = "unknown_status"
)

// Advisory notices returned alongside an access decision
const (
	NoticeTrialEnding   = "trial_ending"
	NoticeAccessBlocked = "access_blocked"
	NoticeReactivate    = "reactivate"
)

// Checkout session states reported by the payment provider
const (
	CheckoutStatusOpen     = "open"
	CheckoutStatusComplete = "complete"
	CheckoutStatusExpired  = "expired"
)
