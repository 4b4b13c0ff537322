package events

type Location struct {
	Name       string
	LocAddress Address
}

type Address struct {
	Municipality string
	Province     string
	Country      string
}

// String renders the venue the way it is printed in email footers.
func (l Location) String() string {
	if l.LocAddress.Province == "" {
		return l.Name
	}
	return l.Name + ", " + l.LocAddress.Province
}
