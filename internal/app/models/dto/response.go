package dto

import "time"

// APIResponse provides the standard envelope for successful responses
type APIResponse struct {
	Success   bool      `json:"success" example:"true"`
	Message   string    `json:"message,omitempty" example:"Resource added successfully!"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse creates a success envelope around data
func NewAPIResponse(data any) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse creates a success envelope with a message and data
func NewMessageResponse(message string, data any) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}
