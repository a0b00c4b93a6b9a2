package hours

import (
	"fmt"
	"slices"
)

// ChangeType tells whether a range was added or removed.
type ChangeType int

const (
	// Added marks minutes open in the new value only.
	Added ChangeType = iota + 1
	// Removed marks minutes open in the old value only.
	Removed
)

func (t ChangeType) String() string {
	switch t {
	case Added:
		return "ADDED"
	case Removed:
		return "REMOVED"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t ChangeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Change is one entry of a range set diff.
type Change struct {
	Type  ChangeType `json:"type" yaml:"type" xml:"type,attr"`
	Range HourRange  `json:"range" yaml:"range" xml:"range,attr"`
}

func (c Change) String() string {
	return fmt.Sprintf("%s %s", c.Type, c.Range)
}

// DayChange is one entry of a day or week diff.
type DayChange struct {
	Type  ChangeType   `json:"type" yaml:"type" xml:"type,attr"`
	Day   DayOfTheWeek `json:"day" yaml:"day" xml:"day,attr"`
	Range HourRange    `json:"range" yaml:"range" xml:"range,attr"`
}

func (c DayChange) String() string {
	return fmt.Sprintf("%s %s %s", c.Type, c.Day, c.Range)
}

func sortChanges(changes []Change) {
	slices.SortFunc(changes, func(a, b Change) int {
		return a.Range.Compare(b.Range)
	})
}

func tagChanges(day DayOfTheWeek, changes []Change) []DayChange {
	out := make([]DayChange, len(changes))
	for i, c := range changes {
		out[i] = DayChange{Type: c.Type, Day: day, Range: c.Range}
	}
	return out
}
