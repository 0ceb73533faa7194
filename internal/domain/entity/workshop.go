package entity

import (
	"time"

	"github.com/google/uuid"
)

// Workshop is an artist-authored calendar event with time bounds and
// capacity. The public calendar is a read projection over all workshops.
type Workshop struct {
	ID              uuid.UUID
	ArtistID        uuid.UUID // Owning artist account.
	ArtistName      string    // Display name frozen at creation.
	Title           string
	Description     string
	Date            time.Time // Calendar day of the workshop.
	StartTime       string    // "HH:MM", local to the workshop.
	EndTime         string    // "HH:MM", local to the workshop.
	Location        string    // Defaults to "Online".
	MaxParticipants int       // Capacity; at least 1.
	Price           float64   // Defaults to 0 (free).
	Category        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CalendarEvent is the shape consumed by the client-side calendar widget:
// a title, a start date, and a bag of extended properties.
type CalendarEvent struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Start         string         `json:"start"`
	ExtendedProps map[string]any `json:"extendedProps"`
}

// ToCalendarEvent projects the workshop into the calendar-event shape.
func (w *Workshop) ToCalendarEvent() CalendarEvent {
	return CalendarEvent{
		ID:    w.ID.String(),
		Title: w.Title,
		Start: w.Date.Format("2006-01-02"),
		ExtendedProps: map[string]any{
			"artistName":      w.ArtistName,
			"description":     w.Description,
			"startTime":       w.StartTime,
			"endTime":         w.EndTime,
			"location":        w.Location,
			"maxParticipants": w.MaxParticipants,
			"price":           w.Price,
			"category":        w.Category,
		},
	}
}
