package dto

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

// PageResponse carries the flash message the login/signup pages surface.
type PageResponse struct {
	Page    string `json:"page"`
	Message string `json:"message,omitempty"`
}

type DashboardResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	Data any    `json:"data,omitempty"`
}
