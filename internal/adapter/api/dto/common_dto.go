package dto

// ErrorResponse is the error payload returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// MessageResponse is the payload for operations that only confirm an
// action, such as a soft delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewMessageResponse creates a new message response.
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// RefResponse is a shallow view of a referenced catalog row, used where
// the original API populated references for display.
type RefResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	NameUrdu string `json:"nameUrdu"`
}

func toRef(id, name, nameUrdu string) *RefResponse {
	if id == "" {
		return nil
	}
	return &RefResponse{ID: id, Name: name, NameUrdu: nameUrdu}
}
