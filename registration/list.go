package registration

import "context"

// MaxListLimit caps a single page of ListRegistrations.
const MaxListLimit int32 = 1000

// Lister is implemented by stores that can read registrations back, oldest first.
// The sheets store cannot; operators read the spreadsheet directly.
type Lister interface {
	ListRegistrations(ctx context.Context, cursor *string, limit int32) (ListResponse, error)
}

// Getter is implemented by stores that can look a single registration up by ID.
type Getter interface {
	GetRegistration(ctx context.Context, registrationID string) (Record, error)
}

type ListResponse struct {
	Records     []Record
	Cursor      *string
	HasNextPage bool
}

// ClampListLimit bounds a requested page size to [1, MaxListLimit].
func ClampListLimit(limit int32) int32 {
	return min(max(limit, 1), MaxListLimit)
}
