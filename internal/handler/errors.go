package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Link error messages
	ErrMsgLinkNotConfigured = "Affiliate link is not configured"

	// Admin error messages
	ErrMsgReloadNetworksFailed = "Failed to reload network profiles"
)

// Success messages for API responses
const (
	MsgNetworksReloadedSuccess = "Network profiles reloaded successfully"
)
