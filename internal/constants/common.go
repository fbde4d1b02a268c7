package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Payment providers
	StripeProvider = "stripe"

	// Service name reported in structured logs
	ServiceName = "facturepro-api"
)

// Request context keys shared between middleware and handlers
const (
	WorkspaceIDKey = "workspaceID"
	UserEmailKey   = "userEmail"
	UserIDKey      = "userID"
)

// Headers
const (
	WorkspaceIDHeader = "X-Workspace-ID"
)
