package hours

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuinorg/objects4go/errors"
)

func TestParseDayOpeningHours(t *testing.T) {
	d, err := ParseDayOpeningHours("Mon 13:00-17:00+09:00-12:00")
	require.NoError(t, err)
	assert.Equal(t, Monday, d.Day())
	assert.Equal(t, "MON 09:00-12:00+13:00-17:00", d.String())
	assert.True(t, d.IsNormalized())
}

func TestIsValidDayOpeningHours(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"Mon 09:00-12:00", true},
		{"ph 10:00-14:00", true},
		{"Fri 18:00-03:00", true},
		{"Mon", false},
		{"Mon  09:00-12:00", false},
		{"Mon 09:00-12:00 ", false},
		{"Xyz 09:00-12:00", false},
		{"PH 18:00-03:00", false},
		{"Mon-Fri 09:00-12:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDayOpeningHours(tt.value))
		})
	}
}

func TestNewDayOpeningHours(t *testing.T) {
	d, err := NewDayOpeningHours(Tuesday, MustParseHourRanges("09:00-12:00"))
	require.NoError(t, err)
	assert.Equal(t, "TUE 09:00-12:00", d.String())

	_, err = NewDayOpeningHours(PublicHoliday, MustParseHourRanges("18:00-03:00"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))

	_, err = NewDayOpeningHours(Monday, HourRanges{})
	assert.Error(t, err)

	_, err = NewDayOpeningHours(0, MustParseHourRanges("09:00-12:00"))
	assert.Error(t, err)
}

func TestDayOpeningHoursNormalize(t *testing.T) {
	tests := []struct {
		value string
		want  []string
	}{
		{"Mon 09:00-12:00", []string{"MON 09:00-12:00"}},
		{"Fri 18:00-03:00", []string{"FRI 18:00-24:00", "SAT 00:00-03:00"}},
		{"Sun 09:00-12:00+22:00-02:00", []string{"SUN 09:00-12:00+22:00-24:00", "MON 00:00-02:00"}},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var got []string
			for _, d := range MustParseDayOpeningHours(tt.value).Normalize() {
				got = append(got, d.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDayOpeningHoursAdd(t *testing.T) {
	d, err := MustParseDayOpeningHours("Mon 09:00-12:00").Add(MustParseDayOpeningHours("Mon 11:00-13:00"))
	require.NoError(t, err)
	assert.Equal(t, "MON 09:00-13:00", d.String())

	_, err = MustParseDayOpeningHours("Mon 09:00-12:00").Add(MustParseDayOpeningHours("Tue 11:00-13:00"))
	assert.True(t, errors.IsCode(err, errors.ErrCodePrecondition))
}

func TestDayOpeningHoursDiff(t *testing.T) {
	changes, err := MustParseDayOpeningHours("Wed 09:00-12:00").Diff(MustParseDayOpeningHours("Wed 09:00-12:00+13:00-17:00"))
	require.NoError(t, err)
	assert.Equal(t, []DayChange{{Type: Added, Day: Wednesday, Range: MustParseHourRange("13:00-17:00")}}, changes)
	assert.Equal(t, "ADDED WED 13:00-17:00", changes[0].String())

	_, err = MustParseDayOpeningHours("Wed 09:00-12:00").Diff(MustParseDayOpeningHours("Thu 09:00-12:00"))
	assert.True(t, errors.IsCode(err, errors.ErrCodePrecondition))
}

func TestDayOpeningHoursAsChanges(t *testing.T) {
	d := MustParseDayOpeningHours("Sat 09:00-12:00+13:00-15:00")

	added := d.AsAddedChanges()
	require.Len(t, added, 2)
	assert.Equal(t, "ADDED SAT 09:00-12:00", added[0].String())
	assert.Equal(t, "ADDED SAT 13:00-15:00", added[1].String())

	removed := d.AsRemovedChanges()
	require.Len(t, removed, 2)
	assert.Equal(t, Removed, removed[1].Type)
}

func TestDayOpeningHoursEqualsComparesDay(t *testing.T) {
	a := MustParseDayOpeningHours("Mon 09:00-12:00")
	assert.True(t, a.Equals(MustParseDayOpeningHours("Mon 14:00-15:00")))
	assert.False(t, a.Equals(MustParseDayOpeningHours("Tue 09:00-12:00")))
}

func TestDayOpeningHoursOpenAt(t *testing.T) {
	d := MustParseDayOpeningHours("Thu 09:00-12:00+12:00-13:00")
	open, err := d.OpenAt(MustParseHourRange("11:30-12:30"))
	require.NoError(t, err)
	assert.True(t, open)

	open, err = d.OpenAt(MustParseHourRange("12:30-13:30"))
	require.NoError(t, err)
	assert.False(t, open)
}

func TestDayOpeningHoursText(t *testing.T) {
	var d DayOpeningHours
	require.NoError(t, d.UnmarshalText([]byte("sun 10:00-14:00")))
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "SUN 10:00-14:00", string(text))
	assert.Error(t, d.UnmarshalText([]byte("sun")))
}
