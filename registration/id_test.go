package registration

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestIDGenerator(t *testing.T) {
	t.Run("date part and zero padded suffix", func(t *testing.T) {
		g := &IDGenerator{
			loc:    manila,
			now:    time.Now,
			suffix: func() int { return 42 },
		}

		id := g.GenerateAt(time.Date(2025, time.January, 5, 9, 0, 0, 0, manila))
		assert.Equal(t, "YACC2501050042", id)
	})

	t.Run("uses the configured location for the date", func(t *testing.T) {
		g := &IDGenerator{
			loc:    manila,
			now:    time.Now,
			suffix: func() int { return 0 },
		}

		// 20:00 UTC on the 31st is already the 1st in Manila
		id := g.GenerateAt(time.Date(2025, time.December, 31, 20, 0, 0, 0, time.UTC))
		assert.Equal(t, "YACC2601010000", id)
	})

	t.Run("default generator produces well formed ids", func(t *testing.T) {
		g := NewIDGenerator(manila)
		for range 1000 {
			id := g.Generate()
			assert.Len(t, id, 14)
			assert.Regexp(t, IDPattern, id)
		}
	})
}

func TestIDGeneratorProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seconds := rapid.Int64Range(
			time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC).Unix(),
			time.Date(2099, time.December, 31, 23, 59, 59, 0, time.UTC).Unix(),
		).Draw(t, "seconds")
		suffix := rapid.IntRange(0, 9998).Draw(t, "suffix")
		offsetHours := rapid.IntRange(-12, 14).Draw(t, "offsetHours")

		loc := time.FixedZone("test", offsetHours*60*60)
		g := &IDGenerator{
			loc:    loc,
			now:    time.Now,
			suffix: func() int { return suffix },
		}

		instant := time.Unix(seconds, 0)
		id := g.GenerateAt(instant)

		if len(id) != 14 {
			t.Fatalf("id %q has length %d", id, len(id))
		}
		if !IDPattern.MatchString(id) {
			t.Fatalf("id %q does not match %s", id, IDPattern)
		}

		local := instant.In(loc)
		wantDate := fmt.Sprintf("%02d%02d%02d", local.Year()%100, int(local.Month()), local.Day())
		if id[4:10] != wantDate {
			t.Fatalf("id %q date part %q, want %q", id, id[4:10], wantDate)
		}
		if id[10:] != fmt.Sprintf("%04d", suffix) {
			t.Fatalf("id %q suffix %q, want %04d", id, id[10:], suffix)
		}
	})
}
