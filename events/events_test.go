package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYACC2025(t *testing.T) {
	event := YACC2025(time.UTC)

	assert.Equal(t, "December 20, 2025", event.DeadlineText())
	assert.Equal(t, "December 26-30, 2025", event.DateRange())
	assert.Equal(t, "Anilao National High School, Iloilo", event.EventLocation.String())
	assert.NotEmpty(t, event.Contacts)
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected string
	}{
		{
			name:     "single day",
			start:    time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
			expected: "March 3, 2025",
		},
		{
			name:     "same month",
			start:    time.Date(2025, time.December, 26, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2025, time.December, 30, 0, 0, 0, 0, time.UTC),
			expected: "December 26-30, 2025",
		},
		{
			name:     "across months",
			start:    time.Date(2025, time.November, 29, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2025, time.December, 2, 0, 0, 0, 0, time.UTC),
			expected: "November 29 - December 2, 2025",
		},
		{
			name:     "across years",
			start:    time.Date(2025, time.December, 30, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
			expected: "December 30, 2025 - January 2, 2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Event{StartTime: tt.start, EndTime: tt.end}
			assert.Equal(t, tt.expected, e.DateRange())
		})
	}
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "Gym", Location{Name: "Gym"}.String())
	assert.Equal(t, "Gym, Iloilo", Location{Name: "Gym", LocAddress: Address{Province: "Iloilo"}}.String())
}
