package dto

// UpsertReflectionRequest represents the request body for writing a day's reflection
// @Description Request body for creating or replacing the reflection of a day
type UpsertReflectionRequest struct {
	Well        string `json:"well"`
	Improvement string `json:"improvement"`
	Journal     string `json:"journal"`
}

// ReflectionResponse represents a daily reflection in API responses
type ReflectionResponse struct {
	Date        string `json:"date"`
	Well        string `json:"well"`
	Improvement string `json:"improvement"`
	Journal     string `json:"journal"`
}

// ReflectionListResponse represents a list of reflections with a total count
type ReflectionListResponse struct {
	Reflections []ReflectionResponse `json:"reflections"`
	Total       int                  `json:"total"`
}
