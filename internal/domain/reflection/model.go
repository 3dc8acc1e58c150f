package reflection

// DateLayout is the calendar-date format reflection keys use.
const DateLayout = "2006-01-02"

// Reflection is a free-text journal entry for one calendar day. At most
// one entry exists per date; edits overwrite in place.
type Reflection struct {
	Date        string `json:"date"`
	Well        string `json:"well"`
	Improvement string `json:"improvement"`
	Journal     string `json:"journal"`
}
