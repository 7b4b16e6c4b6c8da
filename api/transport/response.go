package transport

import "encoding/json"

// Envelope is the uniform wrapper returned by every endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody carries the wire error taxonomy.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// NewSuccess returns a success envelope. An empty message defaults to
// "Success" so every response carries one.
func NewSuccess(data interface{}, message string) Envelope {
	if message == "" {
		message = "Success"
	}
	return Envelope{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// NewError returns an error envelope with optional field-level details.
func NewError(code, message string, details interface{}) Envelope {
	return Envelope{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
