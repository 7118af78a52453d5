package models

import "time"

// EventType enumerates the calendar event kinds
type EventType string

const (
	EventAppointment EventType = "appointment"
	EventMedication  EventType = "medication"
	EventActivity    EventType = "activity"
	EventSocial      EventType = "social"
)

// CalendarEvent is a dated event. Time is a time-of-day string in "HH:MM"
// form; reminder dispatch compares it to the current time at minute
// granularity.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Time        string    `json:"time"`
	Description string    `json:"description"`
	Type        EventType `json:"type"`
	Location    string    `json:"location,omitempty"`
	Reminder    bool      `json:"reminder"`
	Date        time.Time `json:"date"`
	CreatedBy   string    `json:"createdBy"`
}
