package appointment

import "fmt"

// Kind selects the per-entity counter of an IDIssuer and the letter its IDs
// start with.
type Kind string

const (
	KindPatient     Kind = "P"
	KindDoctor      Kind = "D"
	KindAppointment Kind = "A"
)

// IDIssuer hands out sequential identifiers such as P001, D001, A001.
// Counters are 1-based and independent per kind. Past 999 the numeral simply
// widens (A1000).
type IDIssuer struct {
	counters map[Kind]int
}

func NewIDIssuer() *IDIssuer {
	return &IDIssuer{counters: make(map[Kind]int)}
}

// Next advances the counter for kind and returns the new identifier.
func (i *IDIssuer) Next(kind Kind) string {
	i.counters[kind]++
	return fmt.Sprintf("%s%03d", kind, i.counters[kind])
}

// Reset puts every counter back to zero.
func (i *IDIssuer) Reset() {
	i.counters = make(map[Kind]int)
}
