package lookup

import "github.com/heartmarshall/torque-dictionary/internal/domain"

// Status distinguishes the successful lookup outcomes.
// Provider failures are reported as errors, not as a Status.
type Status int

const (
	StatusFound Status = iota
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Result is the outcome of a successful lookup.
// For StatusNotFound, Entry is domain.NewEmptyEntry(requested word).
type Result struct {
	Status Status
	Entry  domain.WordEntry
}
