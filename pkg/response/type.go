package response

// Resp is the JSON envelope of every API response. Data is set on success, Errors on field validation failures.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
