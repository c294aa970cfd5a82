package entities

// CalendarEvent is the free-text note attached to a calendar day.
// Date is the key, formatted YYYY-MM-DD.
type CalendarEvent struct {
	Date string `json:"date"`
	Text string `json:"text"`
}
