package dto

// Response is the standard API response envelope
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorInfo carries error details in a response
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewSuccessResponse creates a successful response
func NewSuccessResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// NewListResponse creates a successful response with a count in the meta
func NewListResponse(data interface{}, count int) Response {
	return Response{Success: true, Data: data, Meta: map[string]int{"count": count}}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return Response{Success: false, Error: &ErrorInfo{Code: code, Message: message}}
}
