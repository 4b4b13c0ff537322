package registration

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"
)

const idPrefix = "YACC"

// IDPattern matches every ID the generator can produce.
var IDPattern = regexp.MustCompile(`^YACC\d{10}$`)

// IDGenerator builds IDs of the form YACC + YYMMDD + a random 4 digit suffix.
// IDs are not checked against existing records, two registrations on the same
// day can collide.
type IDGenerator struct {
	loc    *time.Location
	now    func() time.Time
	suffix func() int
}

func NewIDGenerator(loc *time.Location) *IDGenerator {
	return &IDGenerator{
		loc:    loc,
		now:    time.Now,
		suffix: func() int { return rand.IntN(9999) },
	}
}

// Now is the generator's clock in its configured location.
func (g *IDGenerator) Now() time.Time {
	return g.now().In(g.loc)
}

func (g *IDGenerator) Generate() string {
	return g.GenerateAt(g.Now())
}

func (g *IDGenerator) GenerateAt(t time.Time) string {
	t = t.In(g.loc)
	return fmt.Sprintf("%s%02d%02d%02d%04d", idPrefix, t.Year()%100, int(t.Month()), t.Day(), g.suffix())
}
