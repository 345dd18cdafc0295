package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "CART_ITEM_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the unified envelope used for error payloads emitted by the
// delivery layer's central error handler.
type Response struct {
	Success  bool             `json:"success"`
	Code     int              `json:"code"`
	Message  string           `json:"message"`
	Error    *ErrorInfo       `json:"error,omitempty"`
	Redirect string           `json:"redirect,omitempty"`
	Actions  []RecoveryAction `json:"actions,omitempty"`
}
