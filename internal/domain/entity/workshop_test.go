package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWorkshop_ToCalendarEvent(t *testing.T) {
	workshop := &Workshop{
		ID:              uuid.New(),
		ArtistName:      "Meera Pottery",
		Title:           "Wheel Throwing Basics",
		Description:     "Hands-on introduction",
		Date:            time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "12:00",
		Location:        "Jaipur Studio",
		MaxParticipants: 8,
		Price:           500,
		Category:        "Pottery",
	}

	event := workshop.ToCalendarEvent()

	assert.Equal(t, workshop.ID.String(), event.ID)
	assert.Equal(t, "Wheel Throwing Basics", event.Title)
	assert.Equal(t, "2026-03-14", event.Start)
	assert.Equal(t, "Meera Pottery", event.ExtendedProps["artistName"])
	assert.Equal(t, "10:00", event.ExtendedProps["startTime"])
	assert.Equal(t, "12:00", event.ExtendedProps["endTime"])
	assert.Equal(t, "Jaipur Studio", event.ExtendedProps["location"])
	assert.Equal(t, 8, event.ExtendedProps["maxParticipants"])
}
