package services

import (
	"fmt"
	"time"

	"github.com/facturepro/facturepro-api/internal/constants"
	"github.com/facturepro/facturepro-api/internal/types/business"
)

var recurrenceTypes = map[string]bool{
	constants.RecurrenceWeekly:    true,
	constants.RecurrenceMonthly:   true,
	constants.RecurrenceQuarterly: true,
	constants.RecurrenceYearly:    true,
}

// ValidateRecurrence checks a recurrence descriptor for a document of kind and
// returns its normalized form. A non-recurring descriptor is cleared to nil.
func ValidateRecurrence(kind string, r *business.Recurrence) (*business.Recurrence, error) {
	if r == nil || !r.IsRecurring {
		return nil, nil
	}
	if kind != constants.DocumentKindInvoice {
		return nil, NewValidationError("invalid recurrence", "only invoices can recur")
	}

	var details []string
	if !recurrenceTypes[r.RecurrenceType] {
		details = append(details, fmt.Sprintf("recurrence_type %q must be one of weekly, monthly, quarterly, yearly", r.RecurrenceType))
	}
	if r.RecurrenceInterval < 1 {
		details = append(details, "recurrence_interval must be at least 1")
	}
	if len(details) > 0 {
		return nil, NewValidationError("invalid recurrence", details...)
	}

	return &business.Recurrence{
		IsRecurring:        true,
		RecurrenceType:     r.RecurrenceType,
		RecurrenceInterval: r.RecurrenceInterval,
	}, nil
}

// NextOccurrence returns the date the descriptor implies after from.
func NextOccurrence(r business.Recurrence, from time.Time) (time.Time, error) {
	if !r.IsRecurring {
		return time.Time{}, NewValidationError("invoice is not recurring")
	}
	if r.RecurrenceInterval < 1 {
		return time.Time{}, NewValidationError("invalid recurrence", "recurrence_interval must be at least 1")
	}

	n := r.RecurrenceInterval
	switch r.RecurrenceType {
	case constants.RecurrenceWeekly:
		return from.AddDate(0, 0, 7*n), nil
	case constants.RecurrenceMonthly:
		return addMonths(from, n), nil
	case constants.RecurrenceQuarterly:
		return addMonths(from, 3*n), nil
	case constants.RecurrenceYearly:
		return addMonths(from, 12*n), nil
	default:
		return time.Time{}, NewValidationError("invalid recurrence", fmt.Sprintf("unknown recurrence_type %q", r.RecurrenceType))
	}
}

// addMonths moves from by n calendar months, clamping the day to the last day
// of the target month so Jan 31 + 1 month is Feb 28 (or 29).
func addMonths(from time.Time, n int) time.Time {
	y, m, d := from.Date()
	firstOfTarget := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, from.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	hh, mm, ss := from.Clock()
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, hh, mm, ss, from.Nanosecond(), from.Location())
}
