package models

// APIResponse is the envelope used by the signup and catalog endpoints.
// Data has no omitempty: an empty listing still serializes as "data": [].
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}
