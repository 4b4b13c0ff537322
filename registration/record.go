package registration

import "time"

const (
	STATUS_PENDING         = "Pending"
	PAYMENT_STATUS_UNPAID  = "Unpaid"
	TimestampLayout        = "1/2/2006, 3:04:05 PM"
	RegistrationDateLayout = "1/2/2006"
)

// Columns is the header row of the registrations table. Record.Row follows the same order.
var Columns = []string{
	"Registration ID",
	"Timestamp",
	"Full Name",
	"Age",
	"Gender",
	"Contact",
	"Email",
	"Organization",
	"Island",
	"Sport ID",
	"Sport Name",
	"Sport Type",
	"Team Members Count",
	"Coach Name",
	"Coach Position",
	"Status",
	"Payment Status",
	"Notes",
}

// Record is one persisted registration. Optional request fields are already
// defaulted here so nothing downstream has to deal with nil.
type Record struct {
	RegistrationID   string
	RegisteredAt     time.Time
	FullName         string
	Age              string
	Gender           string
	Contact          string
	Email            string
	Organization     string
	Island           string
	SportID          string
	SportName        string
	SportType        string
	TeamMembersCount int
	CoachName        string
	CoachPosition    string
	Status           string
	PaymentStatus    string
	Notes            string
}

// NewRecord maps a validated request onto a row. Only the first sport is kept.
func NewRecord(registrationID string, registeredAt time.Time, req Request) Record {
	personal := req.Personal
	sport := req.Sports[0]

	rec := Record{
		RegistrationID:   registrationID,
		RegisteredAt:     registeredAt,
		FullName:         personal.FullName.String(),
		Age:              personal.Age.String(),
		Gender:           personal.Gender.String(),
		Contact:          personal.Contact.String(),
		Email:            personal.Email.String(),
		Organization:     personal.Organization.String(),
		Island:           personal.Island.String(),
		SportID:          sport.ID.String(),
		SportName:        sport.Name.String(),
		SportType:        sport.Type.String(),
		TeamMembersCount: len(req.TeamMembers),
		Status:           STATUS_PENDING,
		PaymentStatus:    PAYMENT_STATUS_UNPAID,
	}

	if req.Coach != nil {
		rec.CoachName = req.Coach.Name.String()
		rec.CoachPosition = req.Coach.Position.String()
	}

	return rec
}

// Timestamp is RegisteredAt in the form written to the Timestamp column.
func (r Record) Timestamp() string {
	return r.RegisteredAt.Format(TimestampLayout)
}

func (r Record) RegistrationDate() string {
	return r.RegisteredAt.Format(RegistrationDateLayout)
}

func (r Record) Row() []any {
	return []any{
		r.RegistrationID,
		r.Timestamp(),
		r.FullName,
		r.Age,
		r.Gender,
		r.Contact,
		r.Email,
		r.Organization,
		r.Island,
		r.SportID,
		r.SportName,
		r.SportType,
		r.TeamMembersCount,
		r.CoachName,
		r.CoachPosition,
		r.Status,
		r.PaymentStatus,
		r.Notes,
	}
}
