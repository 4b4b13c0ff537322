package events

import (
	"fmt"
	"time"
)

// Event holds the static logistics printed in participant emails.
type Event struct {
	Name                 string
	Committee            string
	EventLocation        Location
	StartTime            time.Time
	EndTime              time.Time
	RegistrationDeadline time.Time
	Contacts             []Contact
	ContactEmail         string
	ImportantNotes       []string
}

type Contact struct {
	Name  string
	Phone string
}

// YACC2025 is the event this service takes registrations for.
func YACC2025(loc *time.Location) Event {
	return Event{
		Name:      "YACC 2025",
		Committee: "YACC 2025 Sports Committee",
		EventLocation: Location{
			Name: "Anilao National High School",
			LocAddress: Address{
				Municipality: "Anilao",
				Province:     "Iloilo",
				Country:      "Philippines",
			},
		},
		StartTime:            time.Date(2025, time.December, 26, 0, 0, 0, 0, loc),
		EndTime:              time.Date(2025, time.December, 30, 0, 0, 0, 0, loc),
		RegistrationDeadline: time.Date(2025, time.December, 20, 0, 0, 0, 0, loc),
		Contacts: []Contact{
			{Name: "Pstr. Joven Borja", Phone: "0927-818-2968"},
		},
		ContactEmail: "yacc2025connect@gmail.com",
		ImportantNotes: []string{
			"One sport per participant rule is strictly enforced",
			"Bring required equipment as specified in rules",
		},
	}
}

// DeadlineText formats the registration deadline, e.g. "December 20, 2025".
func (e Event) DeadlineText() string {
	return e.RegistrationDeadline.Format("January 2, 2006")
}

// DateRange formats the event dates compactly, e.g. "December 26-30, 2025".
func (e Event) DateRange() string {
	start, end := e.StartTime, e.EndTime

	switch {
	case start.Year() != end.Year():
		return fmt.Sprintf("%s - %s", start.Format("January 2, 2006"), end.Format("January 2, 2006"))
	case start.Month() != end.Month():
		return fmt.Sprintf("%s - %s, %d", start.Format("January 2"), end.Format("January 2"), end.Year())
	case start.Day() != end.Day():
		return fmt.Sprintf("%s %d-%d, %d", start.Month(), start.Day(), end.Day(), end.Year())
	default:
		return start.Format("January 2, 2006")
	}
}
