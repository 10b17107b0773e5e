// Package dto defines data transfer objects for API requests and responses.
package dto

// UpdateProfileRequest represents the request body for profile update.
// Absent fields are left unchanged; the email cannot be changed.
type UpdateProfileRequest struct {
	Name           *string `json:"name,omitempty"`
	FirstDayOfWeek *string `json:"first_day_of_week,omitempty"`
}
