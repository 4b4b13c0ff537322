package registration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Request is the body of a submitRegistration call.
type Request struct {
	Personal    *Personal         `json:"personal"`
	Sports      []Sport           `json:"sports"`
	TeamMembers []json.RawMessage `json:"teamMembers"`
	Coach       *Coach            `json:"coach"`
}

type Personal struct {
	FullName     Text `json:"fullName"`
	Age          Text `json:"age"`
	Gender       Text `json:"gender"`
	Contact      Text `json:"contact"`
	Email        Text `json:"email"`
	Organization Text `json:"organization"`
	Island       Text `json:"island"`
}

type Sport struct {
	ID   Text `json:"id"`
	Name Text `json:"name"`
	Type Text `json:"type"`
}

type Coach struct {
	Name     Text `json:"name"`
	Position Text `json:"position"`
}

// Text is a form field taken as written. The web form posts ages and phone
// numbers as numbers, older clients post strings. Null reads as empty.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(strings.TrimSpace(s))
		return nil
	}

	if bytes.Equal(data, []byte("true")) || bytes.Equal(data, []byte("false")) {
		*t = Text(data)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a string, number or boolean: %w", err)
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string {
	return string(t)
}

// Validate rejects a request that is missing the personal block or a sport selection.
func (r Request) Validate() error {
	if r.Personal == nil || len(r.Sports) == 0 {
		return NewMissingRequiredInformationError(r.Personal == nil, len(r.Sports) == 0)
	}
	return nil
}
