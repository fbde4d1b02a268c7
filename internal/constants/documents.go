package constants

// Document kinds
const (
	DocumentKindInvoice = "invoice"
	DocumentKindQuote   = "quote"
)

// Invoice statuses
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSent      = "sent"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

// Quote statuses. QuoteStatusExpired is never stored, it is derived at read time.
const (
	QuoteStatusPending  = "pending"
	QuoteStatusAccepted = "accepted"
	QuoteStatusRejected = "rejected"
	QuoteStatusExpired  = "expired"
)

// Payment methods accepted when recording an invoice payment
const (
	PaymentMethodInterac  = "interac"
	PaymentMethodCheque   = "cheque"
	PaymentMethodArgent   = "argent"
	PaymentMethodCarte    = "carte"
	PaymentMethodVirement = "virement"
)

// Recurrence types
const (
	RecurrenceWeekly    = "weekly"
	RecurrenceMonthly   = "monthly"
	RecurrenceQuarterly = "quarterly"
	RecurrenceYearly    = "yearly"
)

// Document number prefixes
const (
	InvoiceNumberPrefix = "INV"
	QuoteNumberPrefix   = "QUO"
)

// Jurisdiction codes with built-in tax rules
const (
	JurisdictionQuebec  = "QC"
	JurisdictionOntario = "ON"
)
