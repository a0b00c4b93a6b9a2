package hours

import "math/bits"

const minuteWords = (MinutesPerDay + 63) / 64

// Minutes is an indicator set with one slot per minute of a single day.
type Minutes struct {
	words [minuteWords]uint64
}

// minutesOf returns the coverage of same-day ranges. Ranges wrapping past
// midnight must have been normalized by the caller.
func minutesOf(ranges ...HourRange) Minutes {
	var m Minutes
	for _, r := range ranges {
		m.setRange(r.start, r.end)
	}
	return m
}

func (m *Minutes) setRange(from, to int) {
	for i := from; i < to; i++ {
		m.words[i/64] |= 1 << (uint(i) % 64)
	}
}

// Get reports whether minute i is set.
func (m Minutes) Get(i int) bool {
	if i < 0 || i >= MinutesPerDay {
		return false
	}
	return m.words[i/64]&(1<<(uint(i)%64)) != 0
}

// Or returns the union.
func (m Minutes) Or(other Minutes) Minutes {
	for i := range m.words {
		m.words[i] |= other.words[i]
	}
	return m
}

// And returns the intersection.
func (m Minutes) And(other Minutes) Minutes {
	for i := range m.words {
		m.words[i] &= other.words[i]
	}
	return m
}

// AndNot returns the minutes of m that are not in other.
func (m Minutes) AndNot(other Minutes) Minutes {
	for i := range m.words {
		m.words[i] &^= other.words[i]
	}
	return m
}

// IsEmpty reports whether no minute is set.
func (m Minutes) IsEmpty() bool {
	for _, w := range m.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of set minutes.
func (m Minutes) Count() int {
	n := 0
	for _, w := range m.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Ranges returns the maximal runs of set minutes in ascending order.
// Runs that touch are returned as one range.
func (m Minutes) Ranges() []HourRange {
	var out []HourRange
	start := -1
	for i := 0; i < MinutesPerDay; i++ {
		switch set := m.Get(i); {
		case set && start < 0:
			start = i
		case !set && start >= 0:
			out = append(out, HourRange{start: start, end: i})
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, HourRange{start: start, end: MinutesPerDay})
	}
	return out
}
