package models

// ErrorResponse is the JSON body written for every failed host RPC call.
type ErrorResponse struct {
	// Code is a stable machine-readable error variant, e.g. "not_started".
	Code string `json:"code"`

	// Message is the human-readable error text.
	Message string `json:"message"`
}

// SessionsResponse wraps a journal listing.
type SessionsResponse struct {
	Sessions []SessionRecord `json:"sessions"`
	Length   int             `json:"length"`
}
