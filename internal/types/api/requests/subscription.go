package requests

// StartCheckoutRequest represents the request to open a subscription checkout
type StartCheckoutRequest struct {
	Plan string `json:"plan" binding:"required,oneof=monthly annual"`
}
