package dto

// ErrorResponse is the uniform failure body. Code is stable and meant for
// machines; Error is the human-readable message.
type ErrorResponse struct {
	Code  string `json:"code,omitempty"`
	Error string `json:"error"`
}

// CountResponse wraps cardinality replies ({"count": n}).
type CountResponse struct {
	Count int64 `json:"count"`
}
