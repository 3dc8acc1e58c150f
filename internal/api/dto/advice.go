package dto

// AdviceResponse represents a daily coaching message in API responses
// @Description Coaching advice for a day's schedule; generated reports whether
// the text came from the language model or from the built-in fallback
type AdviceResponse struct {
	Date      string `json:"date"`
	Text      string `json:"text"`
	Generated bool   `json:"generated"`
}
