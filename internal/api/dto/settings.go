package dto

// UpdateThemeRequest represents the request body for switching the UI theme
type UpdateThemeRequest struct {
	Theme string `json:"theme" binding:"required" validate:"required,oneof=light dark" example:"dark"`
}

// SettingsResponse represents the application settings in API responses
type SettingsResponse struct {
	Theme string `json:"theme"`
}
