package gcalendar

import "time"

// EventInput is the input for creating a calendar event.
type EventInput struct {
	CalendarID string
	Title      string
	Details    string
	Start      time.Time
	End        time.Time
	Timezone   string // e.g. "Europe/Berlin"
}

// Event is a simplified representation of a calendar event.
type Event struct {
	ID      string
	Title   string
	Details string
	Link    string
	Start   time.Time
	End     time.Time
}
